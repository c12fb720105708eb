package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/plugah603/plugah-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
