package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plugah603/plugah-api/initializers"
	"github.com/plugah603/plugah-api/models"
)

func GetSongs(ctx *gin.Context) {
	var songs []models.Song
	if result := initializers.DB.Order("special desc, created_at asc").Find(&songs); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchSongs)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, songs)
}

func CreateSong(ctx *gin.Context) {
	var song models.Song
	if err := ctx.ShouldBindJSON(&song); err != nil {
		log.Println("Bind error:", err)
		sendValidationError(ctx, msgInvalidRequestBody, bindingField(err))
		return
	}

	if err := initializers.DB.Create(&song).Error; err != nil {
		log.Println("Song creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateSong)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, song)
}
