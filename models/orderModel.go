package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Reference     string         `json:"reference"`
	FullName      string         `json:"fullName"`
	Phone         string         `json:"phone"`
	Note          string         `json:"note"`
	Items         datatypes.JSON `json:"items"`
	TotalAmount   int            `json:"totalAmount"`
	PaymentMethod string         `json:"paymentMethod"`
	IsPaid        bool           `json:"isPaid"`
}

type OrderItemInput struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Size     string `json:"size,omitempty"`
}

type CreateOrderInput struct {
	FullName      string           `json:"fullName" binding:"required"`
	Phone         string           `json:"phone" binding:"required"`
	Note          string           `json:"note"`
	Items         []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	TotalAmount   int              `json:"totalAmount" binding:"required,gt=0"`
	PaymentMethod string           `json:"paymentMethod" binding:"required"`
}
