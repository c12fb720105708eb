package controllers

import (
	"errors"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	msgInvalidRequestBody   = "Invalid request body"
	msgInternalServerError  = "Internal server error"
	msgFailedToCreateOrder  = "Failed to create order"
	msgFailedToFetchOrders  = "Unable to fetch orders"
	msgFailedToCreateSong   = "Failed to create song"
	msgFailedToFetchSongs   = "Unable to fetch songs"
	msgFailedToSaveContent  = "Failed to save site content"
	msgFailedToFetchContent = "Unable to fetch site content"
	msgFailedToFetchGallery = "Unable to fetch gallery images"
	msgOrderNotFound        = "Order not found"
	msgFailedToUpdateOrder  = "Failed to update order"
)

func sendJSONResponse(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"message": message})
}

// sendValidationError reports a 400 with the offending field when one is
// known.
func sendValidationError(ctx *gin.Context, message, field string) {
	if field == "" {
		ctx.JSON(400, gin.H{"message": message})
		return
	}
	ctx.JSON(400, gin.H{"message": message, "field": field})
}

// bindingField extracts the JSON name of the first failed field from a
// gin binding error, if the error came from the validator.
func bindingField(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ""
	}
	return jsonFieldName(verrs[0].Field())
}

func jsonFieldName(structField string) string {
	if structField == "" {
		return ""
	}
	runes := []rune(structField)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
