package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Plugah 603 API.

The following are the endpoints for this API:

ORDERS
- POST "/api/orders" - Submit a new merch order
- GET "/api/orders" - Get all orders
- PATCH "/api/orders/{orderId}" - Update order payment status

CATALOG
- GET "/api/catalog" - Get the merch catalog

SONGS
- GET "/api/songs" - Get all unit songs
- POST "/api/songs" - Add a unit song

CONTENT
- GET "/api/content" - Get all site text entries
- POST "/api/content" - Update a site text entry by key

GALLERY
- GET "/api/gallery" - Get all gallery images
- POST "/api/gallery" - Upload gallery images`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
