package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/plugah603/plugah-api/controllers"
)

func GalleryRoutes(server *gin.Engine) {
	server.GET("/api/gallery", controllers.GetGalleryImages)
	server.POST("/api/gallery", controllers.UploadGalleryImages)
}
