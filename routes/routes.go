package routes

import (
	"time"

	"vendora-backend/handlers"
	"vendora-backend/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, log *zap.SugaredLogger) {
	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: db, Log: log}
	storeHandler := &handlers.StoreHandler{DB: db, Log: log}
	categoryHandler := &handlers.CategoryHandler{DB: db, Log: log}
	subcategoryHandler := &handlers.SubcategoryHandler{DB: db, Log: log}
	productHandler := &handlers.ProductHandler{DB: db, Log: log}

	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		auth.Use(authLimiter.Middleware())
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Store management (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/profile", authHandler.GetProfile)

		protected.POST("/stores", storeHandler.CreateStore)
		protected.GET("/stores", storeHandler.GetStores)
		protected.GET("/stores/:storeId", storeHandler.GetStore)
		protected.PATCH("/stores/:storeId", storeHandler.UpdateStore)
		protected.DELETE("/stores/:storeId", storeHandler.DeleteStore)
	}

	// Store-scoped catalog routes. Reads are public; mutations require the
	// authenticated store owner.
	store := api.Group("/:storeId")
	{
		store.GET("/categories", categoryHandler.GetCategories)
		store.GET("/categories/:categoryId", categoryHandler.GetCategory)

		store.GET("/scategories", subcategoryHandler.GetSubcategories)
		store.GET("/scategories/:scategoryId", subcategoryHandler.GetSubcategory)

		store.GET("/products", productHandler.GetProducts)
		store.GET("/products/:productId", productHandler.GetProduct)
	}

	storeAdmin := store.Group("")
	storeAdmin.Use(middleware.AuthMiddleware())
	{
		storeAdmin.POST("/categories", categoryHandler.CreateCategory)
		storeAdmin.PATCH("/categories/:categoryId", categoryHandler.UpdateCategory)
		storeAdmin.DELETE("/categories/:categoryId", categoryHandler.DeleteCategory)

		storeAdmin.POST("/scategories", subcategoryHandler.CreateSubcategory)
		storeAdmin.PATCH("/scategories/:scategoryId", subcategoryHandler.UpdateSubcategory)
		storeAdmin.DELETE("/scategories/:scategoryId", subcategoryHandler.DeleteSubcategory)

		storeAdmin.POST("/products", productHandler.CreateProduct)
		storeAdmin.PATCH("/products/:productId", productHandler.UpdateProduct)
		storeAdmin.DELETE("/products/:productId", productHandler.DeleteProduct)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
