package handlers

import (
	"errors"
	"net/http"

	"vendora-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SubcategoryHandler struct {
	DB  *gorm.DB
	Log *zap.SugaredLogger
}

type imagePayload struct {
	URL string `json:"url"`
}

type subcategoryRequest struct {
	Name       string         `json:"name"`
	CategoryID uuid.UUID      `json:"categoryId"`
	Simages    []imagePayload `json:"simages"`
}

// validate applies the required-field checks in the order clients observe
// them: name, then images, then category. Returns false after writing the
// 400 response.
func (r *subcategoryRequest) validate(c *gin.Context) bool {
	if r.Name == "" {
		badRequest(c, "Name is required")
		return false
	}
	if len(r.Simages) == 0 {
		badRequest(c, "Images are required")
		return false
	}
	if r.CategoryID == uuid.Nil {
		badRequest(c, "Category id is required")
		return false
	}
	return true
}

// GetSubcategories lists the store's sub categories, newest first, with the
// parent category preloaded for the listing table.
func (h *SubcategoryHandler) GetSubcategories(c *gin.Context) {
	storeID := c.Param("storeId")
	if storeID == "" {
		badRequest(c, "Store id is required")
		return
	}

	var subcategories []models.Subcategory
	if err := h.DB.Preload("Category").
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&subcategories).Error; err != nil {
		h.Log.Errorw("[SCATEGORIES_GET] failed to fetch sub categories", "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, subcategories)
}

// GetSubcategory returns a single sub category with its category and image
// collection. A miss is a 404, never a 200 with an empty body.
func (h *SubcategoryHandler) GetSubcategory(c *gin.Context) {
	scategoryID := c.Param("scategoryId")
	if scategoryID == "" {
		badRequest(c, "Sub category id is required")
		return
	}

	var subcategory models.Subcategory
	if err := h.DB.Preload("Category").Preload("Images").
		Where("id = ? AND store_id = ?", scategoryID, c.Param("storeId")).
		First(&subcategory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Sub category not found")
			return
		}
		h.Log.Errorw("[SCATEGORY_GET] failed to fetch sub category", "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, subcategory)
}

func (h *SubcategoryHandler) CreateSubcategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	var req subcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if !req.validate(c) {
		return
	}

	storeID := c.Param("storeId")
	if storeID == "" {
		badRequest(c, "Store id is required")
		return
	}

	owned, err := storeOwnedBy(h.DB, storeID, userID)
	if err != nil {
		h.Log.Errorw("[SCATEGORIES_POST] failed to check store ownership", "error", err)
		internalError(c)
		return
	}
	if !owned {
		notOwner(c)
		return
	}

	// The parent category must live in the same store.
	var category models.Category
	if err := h.DB.Where("id = ? AND store_id = ?", req.CategoryID, storeID).First(&category).Error; err != nil {
		badRequest(c, "Parent category not found")
		return
	}

	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		notOwner(c)
		return
	}

	images := make([]models.SubcategoryImage, len(req.Simages))
	for i, img := range req.Simages {
		images[i] = models.SubcategoryImage{URL: img.URL}
	}

	subcategory := models.Subcategory{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		StoreID:    storeUUID,
		Images:     images,
	}

	if err := h.DB.Create(&subcategory).Error; err != nil {
		h.Log.Errorw("[SCATEGORIES_POST] failed to create sub category", "error", err)
		internalError(c)
		return
	}

	if err := h.DB.Preload("Category").Preload("Images").First(&subcategory, "id = ?", subcategory.ID).Error; err != nil {
		h.Log.Errorw("[SCATEGORIES_POST] failed to fetch created sub category", "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, subcategory)
}

// UpdateSubcategory replaces the record's name and category and swaps the
// whole image collection for the submitted list. The clear-and-reinsert pair
// runs inside one transaction so a crash can never leave the sub category
// with no images.
func (h *SubcategoryHandler) UpdateSubcategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	var req subcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if !req.validate(c) {
		return
	}

	scategoryID := c.Param("scategoryId")
	if scategoryID == "" {
		badRequest(c, "Sub category id is required")
		return
	}

	storeID := c.Param("storeId")
	owned, err := storeOwnedBy(h.DB, storeID, userID)
	if err != nil {
		h.Log.Errorw("[SCATEGORY_PATCH] failed to check store ownership", "error", err)
		internalError(c)
		return
	}
	if !owned {
		notOwner(c)
		return
	}

	var subcategory models.Subcategory
	if err := h.DB.Where("id = ? AND store_id = ?", scategoryID, storeID).First(&subcategory).Error; err != nil {
		notFound(c, "Sub category not found")
		return
	}

	var category models.Category
	if err := h.DB.Where("id = ? AND store_id = ?", req.CategoryID, storeID).First(&category).Error; err != nil {
		badRequest(c, "Parent category not found")
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		subcategory.Name = req.Name
		subcategory.CategoryID = req.CategoryID
		if err := tx.Save(&subcategory).Error; err != nil {
			return err
		}

		if err := tx.Where("subcategory_id = ?", subcategory.ID).Delete(&models.SubcategoryImage{}).Error; err != nil {
			return err
		}

		images := make([]models.SubcategoryImage, len(req.Simages))
		for i, img := range req.Simages {
			images[i] = models.SubcategoryImage{SubcategoryID: subcategory.ID, URL: img.URL}
		}
		return tx.Create(&images).Error
	})
	if err != nil {
		h.Log.Errorw("[SCATEGORY_PATCH] failed to update sub category", "error", err)
		internalError(c)
		return
	}

	if err := h.DB.Preload("Category").Preload("Images").First(&subcategory, "id = ?", subcategory.ID).Error; err != nil {
		h.Log.Errorw("[SCATEGORY_PATCH] failed to fetch updated sub category", "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, subcategory)
}

func (h *SubcategoryHandler) DeleteSubcategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	scategoryID := c.Param("scategoryId")
	if scategoryID == "" {
		badRequest(c, "Sub category id is required")
		return
	}

	storeID := c.Param("storeId")
	owned, err := storeOwnedBy(h.DB, storeID, userID)
	if err != nil {
		h.Log.Errorw("[SCATEGORY_DELETE] failed to check store ownership", "error", err)
		internalError(c)
		return
	}
	if !owned {
		notOwner(c)
		return
	}

	var subcategory models.Subcategory
	if err := h.DB.Where("id = ? AND store_id = ?", scategoryID, storeID).First(&subcategory).Error; err != nil {
		notFound(c, "Sub category not found")
		return
	}

	// Products referencing this sub category block the delete.
	var productCount int64
	if err := h.DB.Model(&models.Product{}).Where("subcategory_id = ?", subcategory.ID).Count(&productCount).Error; err != nil {
		h.Log.Errorw("[SCATEGORY_DELETE] failed to check sub category dependencies", "error", err)
		internalError(c)
		return
	}
	if productCount > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error":         "Make sure you removed all products using this sub category first",
			"code":          CodeConflict,
			"product_count": productCount,
		})
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subcategory_id = ?", subcategory.ID).Delete(&models.SubcategoryImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&subcategory).Error
	})
	if err != nil {
		h.Log.Errorw("[SCATEGORY_DELETE] failed to delete sub category", "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, subcategory)
}
