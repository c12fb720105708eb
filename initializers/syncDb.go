package initializers

import (
	"log"

	"github.com/plugah603/plugah-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.Order{}, &models.Song{}, &models.SiteContent{}, &models.GalleryImage{})
	log.Println("Database synced successfully.")
}
