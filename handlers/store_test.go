package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestCreateStore(t *testing.T) {
	db := freshDB()
	router := setupStoreRouter(db)
	_, token := seedTestUser(db, "owner@test.com")

	w := httptest.NewRecorder()
	req := authRequest("POST", "/api/stores", map[string]interface{}{
		"name": "My Fashion Store",
	}, token)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponse(w)
	if resp["name"] != "My Fashion Store" {
		t.Errorf("expected name 'My Fashion Store', got %v", resp["name"])
	}
	if resp["slug"] != "my-fashion-store" {
		t.Errorf("expected slug 'my-fashion-store', got %v", resp["slug"])
	}
}

func TestCreateStoreMissingName(t *testing.T) {
	db := freshDB()
	router := setupStoreRouter(db)
	_, token := seedTestUser(db, "owner@test.com")

	w := httptest.NewRecorder()
	req := authRequest("POST", "/api/stores", map[string]interface{}{}, token)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if resp := parseResponse(w); resp["error"] != "Name is required" {
		t.Errorf("expected 'Name is required', got %v", resp["error"])
	}
}

func TestCreateStoreUnauthenticated(t *testing.T) {
	db := freshDB()
	router := setupStoreRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/stores", map[string]interface{}{
		"name": "No Token Store",
	}))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetStoresOnlyOwn(t *testing.T) {
	db := freshDB()
	router := setupStoreRouter(db)
	owner, token := seedTestUser(db, "owner@test.com")
	other, _ := seedTestUser(db, "other@test.com")
	seedStore(db, "Mine", owner.ID)
	seedStore(db, "Theirs", other.ID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/stores", nil, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	result := parseResponseArray(w)
	if len(result) != 1 {
		t.Fatalf("expected 1 store, got %d", len(result))
	}
	if result[0].(map[string]interface{})["name"] != "Mine" {
		t.Errorf("expected only the caller's store, got %v", result[0])
	}
}

func TestGetStore(t *testing.T) {
	db := freshDB()
	router := setupStoreRouter(db)
	owner, token := seedTestUser(db, "owner@test.com")
	store := seedStore(db, "Mine", owner.ID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", fmt.Sprintf("/api/stores/%s", store.ID), nil, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if resp := parseResponse(w); resp["id"] != store.ID.String() {
		t.Errorf("expected store %s, got %v", store.ID, resp["id"])
	}
}

func TestGetStoreNotOwned(t *testing.T) {
	db := freshDB()
	router := setupStoreRouter(db)
	owner, _ := seedTestUser(db, "owner@test.com")
	_, otherToken := seedTestUser(db, "other@test.com")
	store := seedStore(db, "Mine", owner.ID)

	// Someone else's store reads as missing, not as forbidden.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", fmt.Sprintf("/api/stores/%s", store.ID), nil, otherToken))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateStore(t *testing.T) {
	db := freshDB()
	router := setupStoreRouter(db)
	owner, token := seedTestUser(db, "owner@test.com")
	store := seedStore(db, "Old Name", owner.ID)

	w := httptest.NewRecorder()
	req := authRequest("PATCH", fmt.Sprintf("/api/stores/%s", store.ID), map[string]interface{}{
		"name": "New Name",
	}, token)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponse(w)
	if resp["name"] != "New Name" {
		t.Errorf("expected name 'New Name', got %v", resp["name"])
	}
	if resp["slug"] != "new-name" {
		t.Errorf("expected slug to follow the name, got %v", resp["slug"])
	}
}

func TestUpdateStoreNotFound(t *testing.T) {
	db := freshDB()
	router := setupStoreRouter(db)
	_, token := seedTestUser(db, "owner@test.com")

	w := httptest.NewRecorder()
	req := authRequest("PATCH", fmt.Sprintf("/api/stores/%s", uuid.New()), map[string]interface{}{
		"name": "Ghost",
	}, token)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteStore(t *testing.T) {
	db := freshDB()
	router := setupStoreRouter(db)
	owner, token := seedTestUser(db, "owner@test.com")
	store := seedStore(db, "Empty Store", owner.ID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("DELETE", fmt.Sprintf("/api/stores/%s", store.ID), nil, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", fmt.Sprintf("/api/stores/%s", store.ID), nil, token))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestDeleteStoreWithCatalogData(t *testing.T) {
	db := freshDB()
	router := setupStoreRouter(db)
	owner, token := seedTestUser(db, "owner@test.com")
	store := seedStore(db, "Busy Store", owner.ID)
	seedCategory(db, "Clothing", store.ID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("DELETE", fmt.Sprintf("/api/stores/%s", store.ID), nil, token))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponse(w)
	if resp["code"] != "conflict" {
		t.Errorf("expected code 'conflict', got %v", resp["code"])
	}
	if count := resp["category_count"].(float64); int(count) != 1 {
		t.Errorf("expected category_count 1, got %v", resp["category_count"])
	}

	// Store survives the blocked delete
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", fmt.Sprintf("/api/stores/%s", store.ID), nil, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected store to survive blocked delete, got %d", w.Code)
	}
}
