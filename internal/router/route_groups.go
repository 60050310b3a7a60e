package router

import (
	"resto_pos_backend/internal/handlers"
	"resto_pos_backend/internal/middleware"
	"resto_pos_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupCartRoutes sets up the active cart and checkout routes.
func SetupCartRoutes(authenticatedGroup *gin.RouterGroup, cartHandler *handlers.CartHandler) {
	cartRoutes := authenticatedGroup.Group("/cart")
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.POST("/items", cartHandler.AddItem)
		cartRoutes.PATCH("/items/:id", cartHandler.UpdateItem)
		cartRoutes.DELETE("/items/:id", cartHandler.RemoveItem)
		cartRoutes.DELETE("", cartHandler.ClearCart)
		cartRoutes.POST("/checkout", cartHandler.Checkout)
	}
}

// SetupOrderRoutes sets up the order history routes. Cancel and delete are
// admin tools; the service layer enforces the role as well.
func SetupOrderRoutes(authenticatedGroup *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orderRoutes := authenticatedGroup.Group("/orders")
	{
		orderRoutes.GET("", orderHandler.GetOrders)
		orderRoutes.GET("/:id", orderHandler.GetOrderByID)
		orderRoutes.GET("/:id/receipt", orderHandler.GetReceipt)
	}

	adminOrderRoutes := authenticatedGroup.Group("/orders")
	adminOrderRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		adminOrderRoutes.PATCH("/:id/cancel", orderHandler.CancelOrder)
		adminOrderRoutes.DELETE("/:id", orderHandler.DeleteOrder)
	}
}

// SetupCatalogRoutes sets up product, category, ingredient and recipe
// routes. Reads are open to any authenticated user; writes are admin only.
func SetupCatalogRoutes(authenticatedGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	authenticatedGroup.GET("/products", catalogHandler.GetProducts)
	authenticatedGroup.GET("/products/:id", catalogHandler.GetProductByID)
	authenticatedGroup.GET("/categories", catalogHandler.GetCategories)
	authenticatedGroup.GET("/ingredients", catalogHandler.GetIngredients)
	authenticatedGroup.GET("/recipes", catalogHandler.GetRecipes)
	authenticatedGroup.GET("/recipes/:productId", catalogHandler.GetRecipeByProduct)

	adminWrites := authenticatedGroup.Group("")
	adminWrites.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		adminWrites.POST("/products", catalogHandler.CreateProduct)
		adminWrites.PUT("/products/:id", catalogHandler.UpdateProduct)
		adminWrites.DELETE("/products/:id", catalogHandler.DeleteProduct)

		adminWrites.POST("/categories", catalogHandler.CreateCategory)
		adminWrites.PUT("/categories/:id", catalogHandler.UpdateCategory)
		adminWrites.DELETE("/categories/:id", catalogHandler.DeleteCategory)

		adminWrites.POST("/ingredients", catalogHandler.CreateIngredient)
		adminWrites.PUT("/ingredients/:id", catalogHandler.UpdateIngredient)
		adminWrites.DELETE("/ingredients/:id", catalogHandler.DeleteIngredient)

		adminWrites.PUT("/recipes", catalogHandler.SetRecipe)
		adminWrites.DELETE("/recipes/:productId", catalogHandler.DeleteRecipe)
	}
}

// SetupSettingsRoutes sets up the business settings routes.
func SetupSettingsRoutes(authenticatedGroup *gin.RouterGroup, settingsHandler *handlers.SettingsHandler) {
	authenticatedGroup.GET("/settings", settingsHandler.GetSettings)
	authenticatedGroup.PUT("/settings", middleware.RoleAuthMiddleware(models.RoleAdmin), settingsHandler.UpdateSettings)
}

// SetupReportRoutes sets up the reporting routes.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := authenticatedGroup.Group("/reports")
	reportRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		reportRoutes.GET("/sales", reportHandler.GetSalesReport)
		reportRoutes.GET("/sales/export", reportHandler.ExportSalesCSV)
		reportRoutes.GET("/low-stock", reportHandler.GetLowStock)
	}
}

// SetupUserRoutes sets up the admin user management routes.
func SetupUserRoutes(authenticatedGroup *gin.RouterGroup, userHandler *handlers.UserHandler) {
	userRoutes := authenticatedGroup.Group("/users")
	userRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		userRoutes.GET("", userHandler.GetUsers)
		userRoutes.POST("", userHandler.CreateUser)
		userRoutes.PATCH("/:id/pin", userHandler.UpdateUserPin)
		userRoutes.DELETE("/:id", userHandler.DeleteUser)
	}
}
