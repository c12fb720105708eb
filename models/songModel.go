package models

import "gorm.io/gorm"

type Song struct {
	gorm.Model
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Special bool   `json:"special"`
}
