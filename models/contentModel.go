package models

import "gorm.io/gorm"

type SiteContent struct {
	gorm.Model
	Key   string `json:"key" gorm:"uniqueIndex;size:191"`
	Value string `json:"value"`
}

type UpdateContentInput struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}
