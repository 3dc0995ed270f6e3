package handlers

import (
	"errors"
	"net/http"

	"vendora-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProductHandler struct {
	DB  *gorm.DB
	Log *zap.SugaredLogger
}

type productRequest struct {
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	CategoryID    uuid.UUID       `json:"categoryId"`
	SubcategoryID uuid.UUID       `json:"scategoryId"`
	Images        []imagePayload  `json:"images"`
	IsFeatured    bool            `json:"isFeatured"`
	IsArchived    bool            `json:"isArchived"`
}

func (r *productRequest) validate(c *gin.Context) bool {
	if r.Name == "" {
		badRequest(c, "Name is required")
		return false
	}
	if len(r.Images) == 0 {
		badRequest(c, "Images are required")
		return false
	}
	if r.Price.LessThanOrEqual(decimal.Zero) {
		badRequest(c, "Price is required")
		return false
	}
	if r.CategoryID == uuid.Nil {
		badRequest(c, "Category id is required")
		return false
	}
	if r.SubcategoryID == uuid.Nil {
		badRequest(c, "Sub category id is required")
		return false
	}
	return true
}

// GetProducts lists the store's products. Archived products are hidden
// unless showAll=true; categoryId, scategoryId, isFeatured and search
// narrow the result the way the storefront filters do.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	storeID := c.Param("storeId")
	if storeID == "" {
		badRequest(c, "Store id is required")
		return
	}

	query := h.DB.Preload("Category").Preload("Images").
		Where("store_id = ?", storeID)

	if categoryID := c.Query("categoryId"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if scategoryID := c.Query("scategoryId"); scategoryID != "" {
		query = query.Where("subcategory_id = ?", scategoryID)
	}
	if c.Query("isFeatured") == "true" {
		query = query.Where("is_featured = ?", true)
	}
	if c.Query("showAll") != "true" {
		query = query.Where("is_archived = ?", false)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		h.Log.Errorw("[PRODUCTS_GET] failed to fetch products", "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID := c.Param("productId")
	if productID == "" {
		badRequest(c, "Product id is required")
		return
	}

	var product models.Product
	if err := h.DB.Preload("Category").Preload("Subcategory").Preload("Images").
		Where("id = ? AND store_id = ?", productID, c.Param("storeId")).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Product not found")
			return
		}
		h.Log.Errorw("[PRODUCT_GET] failed to fetch product", "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if !req.validate(c) {
		return
	}

	storeID := c.Param("storeId")
	owned, err := storeOwnedBy(h.DB, storeID, userID)
	if err != nil {
		h.Log.Errorw("[PRODUCTS_POST] failed to check store ownership", "error", err)
		internalError(c)
		return
	}
	if !owned {
		notOwner(c)
		return
	}

	var category models.Category
	if err := h.DB.Where("id = ? AND store_id = ?", req.CategoryID, storeID).First(&category).Error; err != nil {
		badRequest(c, "Parent category not found")
		return
	}
	var subcategory models.Subcategory
	if err := h.DB.Where("id = ? AND store_id = ?", req.SubcategoryID, storeID).First(&subcategory).Error; err != nil {
		badRequest(c, "Parent sub category not found")
		return
	}

	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		notOwner(c)
		return
	}

	images := make([]models.ProductImage, len(req.Images))
	for i, img := range req.Images {
		images[i] = models.ProductImage{URL: img.URL}
	}

	product := models.Product{
		Name:          req.Name,
		Price:         req.Price,
		StoreID:       storeUUID,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		IsFeatured:    req.IsFeatured,
		IsArchived:    req.IsArchived,
		Images:        images,
	}

	if err := h.DB.Create(&product).Error; err != nil {
		h.Log.Errorw("[PRODUCTS_POST] failed to create product", "error", err)
		internalError(c)
		return
	}

	if err := h.DB.Preload("Category").Preload("Images").First(&product, "id = ?", product.ID).Error; err != nil {
		h.Log.Errorw("[PRODUCTS_POST] failed to fetch created product", "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct rewrites the product and swaps its image collection for the
// submitted list in one transaction, like the sub category update.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if !req.validate(c) {
		return
	}

	productID := c.Param("productId")
	if productID == "" {
		badRequest(c, "Product id is required")
		return
	}

	storeID := c.Param("storeId")
	owned, err := storeOwnedBy(h.DB, storeID, userID)
	if err != nil {
		h.Log.Errorw("[PRODUCT_PATCH] failed to check store ownership", "error", err)
		internalError(c)
		return
	}
	if !owned {
		notOwner(c)
		return
	}

	var product models.Product
	if err := h.DB.Where("id = ? AND store_id = ?", productID, storeID).First(&product).Error; err != nil {
		notFound(c, "Product not found")
		return
	}

	var category models.Category
	if err := h.DB.Where("id = ? AND store_id = ?", req.CategoryID, storeID).First(&category).Error; err != nil {
		badRequest(c, "Parent category not found")
		return
	}
	var subcategory models.Subcategory
	if err := h.DB.Where("id = ? AND store_id = ?", req.SubcategoryID, storeID).First(&subcategory).Error; err != nil {
		badRequest(c, "Parent sub category not found")
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		product.Name = req.Name
		product.Price = req.Price
		product.CategoryID = req.CategoryID
		product.SubcategoryID = req.SubcategoryID
		product.IsFeatured = req.IsFeatured
		product.IsArchived = req.IsArchived
		if err := tx.Save(&product).Error; err != nil {
			return err
		}

		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}

		images := make([]models.ProductImage, len(req.Images))
		for i, img := range req.Images {
			images[i] = models.ProductImage{ProductID: product.ID, URL: img.URL}
		}
		return tx.Create(&images).Error
	})
	if err != nil {
		h.Log.Errorw("[PRODUCT_PATCH] failed to update product", "error", err)
		internalError(c)
		return
	}

	if err := h.DB.Preload("Category").Preload("Images").First(&product, "id = ?", product.ID).Error; err != nil {
		h.Log.Errorw("[PRODUCT_PATCH] failed to fetch updated product", "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	productID := c.Param("productId")
	if productID == "" {
		badRequest(c, "Product id is required")
		return
	}

	storeID := c.Param("storeId")
	owned, err := storeOwnedBy(h.DB, storeID, userID)
	if err != nil {
		h.Log.Errorw("[PRODUCT_DELETE] failed to check store ownership", "error", err)
		internalError(c)
		return
	}
	if !owned {
		notOwner(c)
		return
	}

	var product models.Product
	if err := h.DB.Where("id = ? AND store_id = ?", productID, storeID).First(&product).Error; err != nil {
		notFound(c, "Product not found")
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		h.Log.Errorw("[PRODUCT_DELETE] failed to delete product", "error", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, product)
}
