package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/plugah603/plugah-api/controllers"
)

func CatalogRoutes(server *gin.Engine) {
	server.GET("/api/catalog", controllers.GetCatalog)
}
