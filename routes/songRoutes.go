package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/plugah603/plugah-api/controllers"
)

func SongRoutes(server *gin.Engine) {
	server.GET("/api/songs", controllers.GetSongs)
	server.POST("/api/songs", controllers.CreateSong)
}
