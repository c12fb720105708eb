package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/plugah603/plugah-api/controllers"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/api/orders", controllers.CreateOrder)
	server.GET("/api/orders", controllers.GetOrders)
	server.PATCH("/api/orders/:orderId", controllers.UpdateOrderPaymentStatus)
}
