package handlers

import (
	"net/http"

	"vendora-backend/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	DB  *gorm.DB
	Log *zap.SugaredLogger
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	storeID := c.Param("storeId")
	if storeID == "" {
		badRequest(c, "Store id is required")
		return
	}

	var categories []models.Category
	if err := h.DB.Where("store_id = ?", storeID).Order("created_at DESC").Find(&categories).Error; err != nil {
		h.Log.Errorw("[CATEGORIES_GET] failed to fetch categories", "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID := c.Param("categoryId")
	if categoryID == "" {
		badRequest(c, "Category id is required")
		return
	}

	var category models.Category
	if err := h.DB.Preload("Subcategories").
		Where("id = ? AND store_id = ?", categoryID, c.Param("storeId")).
		First(&category).Error; err != nil {
		notFound(c, "Category not found")
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
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

	storeID := c.Param("storeId")
	owned, err := storeOwnedBy(h.DB, storeID, userID)
	if err != nil {
		h.Log.Errorw("[CATEGORIES_POST] failed to check store ownership", "error", err)
		internalError(c)
		return
	}
	if !owned {
		notOwner(c)
		return
	}

	var store models.Store
	if err := h.DB.First(&store, "id = ?", storeID).Error; err != nil {
		h.Log.Errorw("[CATEGORIES_POST] failed to fetch store", "error", err)
		internalError(c)
		return
	}

	category := models.Category{
		Name:    req.Name,
		StoreID: store.ID,
	}

	if err := h.DB.Create(&category).Error; err != nil {
		h.Log.Errorw("[CATEGORIES_POST] failed to create category", "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
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

	categoryID := c.Param("categoryId")
	if categoryID == "" {
		badRequest(c, "Category id is required")
		return
	}

	owned, err := storeOwnedBy(h.DB, c.Param("storeId"), userID)
	if err != nil {
		h.Log.Errorw("[CATEGORY_PATCH] failed to check store ownership", "error", err)
		internalError(c)
		return
	}
	if !owned {
		notOwner(c)
		return
	}

	var category models.Category
	if err := h.DB.Where("id = ? AND store_id = ?", categoryID, c.Param("storeId")).First(&category).Error; err != nil {
		notFound(c, "Category not found")
		return
	}

	category.Name = req.Name

	if err := h.DB.Save(&category).Error; err != nil {
		h.Log.Errorw("[CATEGORY_PATCH] failed to update category", "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	categoryID := c.Param("categoryId")
	if categoryID == "" {
		badRequest(c, "Category id is required")
		return
	}

	owned, err := storeOwnedBy(h.DB, c.Param("storeId"), userID)
	if err != nil {
		h.Log.Errorw("[CATEGORY_DELETE] failed to check store ownership", "error", err)
		internalError(c)
		return
	}
	if !owned {
		notOwner(c)
		return
	}

	var category models.Category
	if err := h.DB.Where("id = ? AND store_id = ?", categoryID, c.Param("storeId")).First(&category).Error; err != nil {
		notFound(c, "Category not found")
		return
	}

	// Check if category has associated subcategories
	var subcategoryCount int64
	if err := h.DB.Model(&models.Subcategory{}).Where("category_id = ?", category.ID).Count(&subcategoryCount).Error; err != nil {
		h.Log.Errorw("[CATEGORY_DELETE] failed to check category dependencies", "error", err)
		internalError(c)
		return
	}
	if subcategoryCount > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error":           "Cannot delete category with sub categories",
			"code":            CodeConflict,
			"scategory_count": subcategoryCount,
		})
		return
	}

	// Check if category has associated products
	var productCount int64
	if err := h.DB.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&productCount).Error; err != nil {
		h.Log.Errorw("[CATEGORY_DELETE] failed to check category dependencies", "error", err)
		internalError(c)
		return
	}
	if productCount > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error":         "Cannot delete category with associated products",
			"code":          CodeConflict,
			"product_count": productCount,
		})
		return
	}

	if err := h.DB.Delete(&category).Error; err != nil {
		h.Log.Errorw("[CATEGORY_DELETE] failed to delete category", "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, category)
}
