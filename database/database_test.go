package database

import (
	"os"
	"testing"

	"vendora-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// The model tags carry PostgreSQL defaults, so the test schema is
	// created by hand.
	err = db.Exec(`CREATE TABLE "users" (
		"id" TEXT PRIMARY KEY,
		"email" TEXT NOT NULL UNIQUE,
		"password" TEXT NOT NULL,
		"name" TEXT,
		"created_at" DATETIME,
		"updated_at" DATETIME,
		"deleted_at" DATETIME
	)`).Error
	if err != nil {
		t.Fatalf("failed to create users table: %v", err)
	}
	return db
}

func TestCreateDefaultAdmin(t *testing.T) {
	os.Unsetenv("ADMIN_EMAIL")
	os.Unsetenv("ADMIN_PASSWORD")
	db := openTestDB(t)

	if err := CreateDefaultAdmin(db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var admin models.User
	if err := db.Where("email = ?", "admin@vendora.dev").First(&admin).Error; err != nil {
		t.Fatalf("expected default admin to exist: %v", err)
	}
	if admin.Name != "Admin User" {
		t.Errorf("expected name 'Admin User', got %q", admin.Name)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")); err != nil {
		t.Error("expected the default password to verify against the stored hash")
	}
}

func TestCreateDefaultAdminIdempotent(t *testing.T) {
	os.Unsetenv("ADMIN_EMAIL")
	os.Unsetenv("ADMIN_PASSWORD")
	db := openTestDB(t)

	if err := CreateDefaultAdmin(db); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if err := CreateDefaultAdmin(db); err != nil {
		t.Fatalf("second call: %v", err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly 1 user after two calls, got %d", count)
	}
}

func TestCreateDefaultAdminCustomCredentials(t *testing.T) {
	os.Setenv("ADMIN_EMAIL", "boss@example.com")
	os.Setenv("ADMIN_PASSWORD", "supersecret")
	defer os.Unsetenv("ADMIN_EMAIL")
	defer os.Unsetenv("ADMIN_PASSWORD")
	db := openTestDB(t)

	if err := CreateDefaultAdmin(db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var admin models.User
	if err := db.Where("email = ?", "boss@example.com").First(&admin).Error; err != nil {
		t.Fatalf("expected custom admin to exist: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("supersecret")); err != nil {
		t.Error("expected the custom password to verify against the stored hash")
	}
}
