package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plugah603/plugah-api/initializers"
	"github.com/plugah603/plugah-api/models"
	"gorm.io/gorm"
)

func GetContent(ctx *gin.Context) {
	var content []models.SiteContent
	if result := initializers.DB.Find(&content); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchContent)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, content)
}

// UpdateContent upserts one key-value pair of site text.
func UpdateContent(ctx *gin.Context) {
	var input models.UpdateContentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Println("Bind error:", err)
		sendValidationError(ctx, msgInvalidRequestBody, bindingField(err))
		return
	}

	var content models.SiteContent
	err := initializers.DB.Where("`key` = ?", input.Key).First(&content).Error

	if err == nil {
		content.Value = input.Value
		if err := initializers.DB.Save(&content).Error; err != nil {
			log.Println("Content update error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveContent)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, content)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveContent)
		return
	}

	content = models.SiteContent{Key: input.Key, Value: input.Value}
	if err := initializers.DB.Create(&content).Error; err != nil {
		log.Println("Content creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveContent)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, content)
}
