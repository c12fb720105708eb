package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/plugah603/plugah-api/initializers"
	"github.com/plugah603/plugah-api/models"
	"github.com/plugah603/plugah-api/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func CreateOrder(ctx *gin.Context) {
	var input models.CreateOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Println("Bind error:", err)
		sendValidationError(ctx, msgInvalidRequestBody, bindingField(err))
		return
	}

	items, err := json.Marshal(input.Items)
	if err != nil {
		log.Println("Items marshal error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	order := models.Order{
		Reference:     uuid.NewString(),
		FullName:      input.FullName,
		Phone:         input.Phone,
		Note:          input.Note,
		Items:         datatypes.JSON(items),
		TotalAmount:   input.TotalAmount,
		PaymentMethod: input.PaymentMethod,
	}

	if err := initializers.DB.Create(&order).Error; err != nil {
		log.Println("Order creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateOrder)
		return
	}

	// Best-effort side channel, never gates the response.
	go func() {
		if err := utils.NotifyOrderWebhook(order, input.Items); err != nil {
			log.Println("Order webhook delivery failed:", err)
		}
	}()

	sendJSONResponse(ctx, http.StatusCreated, order)
}

func GetOrders(ctx *gin.Context) {
	var orders []models.Order
	if result := initializers.DB.Order("created_at desc").Find(&orders); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchOrders)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, orders)
}

func UpdateOrderPaymentStatus(ctx *gin.Context) {
	var body struct {
		IsPaid *bool `json:"isPaid" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendValidationError(ctx, msgInvalidRequestBody, bindingField(err))
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendValidationError(ctx, "Failed to parse orderId", "orderId")
		return
	}

	var order models.Order
	if err := initializers.DB.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToUpdateOrder)
		}
		return
	}

	if err := initializers.DB.Model(&order).Update("is_paid", *body.IsPaid).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToUpdateOrder)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, order)
}
