package models

import "gorm.io/gorm"

type GalleryImage struct {
	gorm.Model
	Url     string `json:"url" binding:"required"`
	Caption string `json:"caption"`
}
