package handlers

import (
	"net/http"

	"vendora-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type StoreHandler struct {
	DB  *gorm.DB
	Log *zap.SugaredLogger
}

// currentUserID reads the authenticated user from the request context.
// The auth middleware sets it; a missing value means the route was wired
// without the middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// storeOwnedBy reports whether the store in the request path exists and is
// owned by the given user. Every mutating catalog operation goes through
// this check before touching child records.
func storeOwnedBy(db *gorm.DB, storeID string, userID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&models.Store{}).
		Where("id = ? AND user_id = ?", storeID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (h *StoreHandler) CreateStore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if req.Name == "" {
		badRequest(c, "Name is required")
		return
	}

	store := models.Store{
		Name:   req.Name,
		Slug:   slug.Make(req.Name),
		UserID: userID,
	}

	if err := h.DB.Create(&store).Error; err != nil {
		h.Log.Errorw("[STORES_POST] failed to create store", "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) GetStores(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	var stores []models.Store
	if err := h.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&stores).Error; err != nil {
		h.Log.Errorw("[STORES_GET] failed to fetch stores", "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, stores)
}

func (h *StoreHandler) GetStore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	var store models.Store
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("storeId"), userID).First(&store).Error; err != nil {
		notFound(c, "Store not found")
		return
	}

	c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) UpdateStore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if req.Name == "" {
		badRequest(c, "Name is required")
		return
	}

	var store models.Store
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("storeId"), userID).First(&store).Error; err != nil {
		notFound(c, "Store not found")
		return
	}

	store.Name = req.Name
	store.Slug = slug.Make(req.Name)

	if err := h.DB.Save(&store).Error; err != nil {
		h.Log.Errorw("[STORE_PATCH] failed to update store", "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) DeleteStore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	var store models.Store
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("storeId"), userID).First(&store).Error; err != nil {
		notFound(c, "Store not found")
		return
	}

	// A store with catalog data cannot be removed until the data is gone.
	var categoryCount int64
	if err := h.DB.Model(&models.Category{}).Where("store_id = ?", store.ID).Count(&categoryCount).Error; err != nil {
		h.Log.Errorw("[STORE_DELETE] failed to check store dependencies", "error", err)
		internalError(c)
		return
	}
	var productCount int64
	if err := h.DB.Model(&models.Product{}).Where("store_id = ?", store.ID).Count(&productCount).Error; err != nil {
		h.Log.Errorw("[STORE_DELETE] failed to check store dependencies", "error", err)
		internalError(c)
		return
	}

	if categoryCount > 0 || productCount > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error":          "Cannot delete store with existing catalog data",
			"code":           CodeConflict,
			"category_count": categoryCount,
			"product_count":  productCount,
		})
		return
	}

	if err := h.DB.Delete(&store).Error; err != nil {
		h.Log.Errorw("[STORE_DELETE] failed to delete store", "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, store)
}
