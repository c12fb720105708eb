package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/plugah603/plugah-api/initializers"
	"github.com/plugah603/plugah-api/models"
)

// getS3Uploader returns a configured S3 uploader for gallery images.
func getS3Uploader() (*manager.Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

func galleryBucket() string {
	if bucket := os.Getenv("GALLERY_BUCKET"); bucket != "" {
		return bucket
	}
	return "plugah603"
}

func GetGalleryImages(ctx *gin.Context) {
	var images []models.GalleryImage
	if result := initializers.DB.Order("created_at asc").Find(&images); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchGallery)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, images)
}

func UploadGalleryImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		sendValidationError(ctx, "Invalid form data", "")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		sendValidationError(ctx, "No files uploaded", "images")
		return
	}

	caption := ctx.PostForm("caption")

	uploader, err := getS3Uploader()
	if err != nil {
		log.Println("AWS config error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to configure AWS")
		return
	}

	var uploadedUrls []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Unique key so re-uploads never overwrite earlier images.
		uniqueFilename := fmt.Sprintf("gallery/%s-%s", time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String(galleryBucket()),
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedUrls = append(uploadedUrls, result.Location)

		image := models.GalleryImage{Url: result.Location, Caption: caption}
		if err := initializers.DB.Create(&image).Error; err != nil {
			log.Printf("Error saving gallery image to database: %v", err)
		}
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
	}
	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	sendJSONResponse(ctx, http.StatusOK, response)
}
