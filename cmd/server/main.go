package main

import (
	"log"
	"net/http"
	"os"

	"resto_pos_backend/internal/router"
	"resto_pos_backend/internal/store"
	"resto_pos_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	utils.InitLogger()
	utils.InitAuth(os.Getenv("JWT_SECRET"))

	dataDir := utils.Getenv("DATA_DIR", "./data")
	seedOnEmpty := utils.GetenvBool("SEED_ON_EMPTY", true)

	fileStore := store.NewFileStore(dataDir, seedOnEmpty)
	state := store.NewState(fileStore)
	utils.LogInfo("State loaded", map[string]interface{}{
		"data_dir": dataDir,
		"products": len(state.Products),
		"users":    len(state.Users),
		"orders":   len(state.Orders),
	})

	engine := gin.Default()
	engine.Use(utils.GinLogger())

	// CORS configuration
	config := cors.DefaultConfig()
	config.AllowOrigins = utils.GetenvList("CORS_ALLOWED_ORIGINS",
		[]string{"http://localhost:3000", "http://localhost:5173"})
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	router.Setup(engine, state)

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
