package router

import (
	"resto_pos_backend/internal/handlers"
	"resto_pos_backend/internal/middleware"
	"resto_pos_backend/internal/services"
	"resto_pos_backend/internal/store"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, st *store.State) {
	// Initialize Services
	sessionService := services.NewSessionService(st)
	cartService := services.NewCartService(st)
	catalogService := services.NewCatalogService(st)
	settingsService := services.NewSettingsService(st)
	reportService := services.NewReportService(st)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(sessionService)
	userHandler := handlers.NewUserHandler(sessionService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(cartService, reportService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	reportHandler := handlers.NewReportHandler(reportService)

	apiV1 := engine.Group("/api/v1")

	// Login is the only public route; everything else needs a session token.
	apiV1.POST("/auth/login", authHandler.Login)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		authenticated.POST("/auth/logout", authHandler.Logout)
		authenticated.GET("/auth/me", authHandler.GetCurrentUser)

		SetupCartRoutes(authenticated, cartHandler)
		SetupOrderRoutes(authenticated, orderHandler)
		SetupCatalogRoutes(authenticated, catalogHandler)
		SetupSettingsRoutes(authenticated, settingsHandler)
		SetupReportRoutes(authenticated, reportHandler)
		SetupUserRoutes(authenticated, userHandler)
	}
}
