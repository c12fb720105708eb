package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/plugah603/plugah-api/controllers"
)

func ContentRoutes(server *gin.Engine) {
	server.GET("/api/content", controllers.GetContent)
	server.POST("/api/content", controllers.UpdateContent)
}
