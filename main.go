package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/plugah603/plugah-api/initializers"
	"github.com/plugah603/plugah-api/routes"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	allowedOrigins := []string{"http://localhost:5173"}
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		allowedOrigins = append(allowedOrigins, frontend)
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	routes.DefaultRoutes(server)
	routes.OrderRoutes(server)
	routes.CatalogRoutes(server)
	routes.SongRoutes(server)
	routes.ContentRoutes(server)
	routes.GalleryRoutes(server)
	server.Run()
}
