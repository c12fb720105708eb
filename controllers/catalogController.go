package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plugah603/plugah-api/catalog"
)

// GetCatalog serves the static merchandise catalog backing the
// storefront grid.
func GetCatalog(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"products": catalog.Entries(),
		"sizes":    catalog.Sizes,
	})
}
