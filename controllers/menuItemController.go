package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Kibet/tableserve-api/initializers"
	"github.com/Kibet/tableserve-api/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// GetMenuItems lists active menu items for customers, each joined to its
// category (items without a category still appear). An optional
// ?category=slug narrows the listing.
func GetMenuItems(ctx *gin.Context) {
	query := initializers.DB.Model(&models.MenuItem{}).
		Preload("Category").
		Where("menu_items.is_active = ?", true)

	if slug := ctx.Query("category"); slug != "" {
		var category models.Category
		if err := initializers.DB.Where("slug = ?", slug).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
			} else {
				respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch menu items", err)
			}
			return
		}
		query = query.Where("menu_items.category_id = ?", category.ID).
			Order("menu_items.display_order, menu_items.name")
	} else {
		query = query.
			Joins("LEFT JOIN categories ON categories.id = menu_items.category_id").
			Order("categories.display_order, menu_items.display_order, menu_items.name")
	}

	var menuItems []models.MenuItem
	if result := query.Find(&menuItems); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch menu items", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, menuItems)
}

// GetAllMenuItems is the admin listing: inactive items included.
func GetAllMenuItems(ctx *gin.Context) {
	var menuItems []models.MenuItem
	result := initializers.DB.
		Preload("Category").
		Joins("LEFT JOIN categories ON categories.id = menu_items.category_id").
		Order("categories.display_order, menu_items.display_order, menu_items.name").
		Find(&menuItems)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch menu items", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, menuItems)
}

func GetMenuItem(ctx *gin.Context) {
	menuItemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var menuItem models.MenuItem
	result := initializers.DB.Preload("Category").First(&menuItem, menuItemId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, menuItem)
}

func CreateMenuItem(ctx *gin.Context) {
	var menuItem models.MenuItem
	if err := ctx.ShouldBindJSON(&menuItem); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if menuItem.Price < 0 {
		respondWithError(ctx, http.StatusBadRequest, "Price cannot be negative", nil)
		return
	}

	if err := initializers.DB.Create(&menuItem).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create menu item", err)
		return
	}

	ctx.JSON(http.StatusCreated, menuItem)
}

func UpdateMenuItem(ctx *gin.Context) {
	menuItemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var menuItem models.MenuItem
	if err := initializers.DB.First(&menuItem, menuItemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", err)
		}
		return
	}

	var updates models.MenuItem
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if updates.Price < 0 {
		respondWithError(ctx, http.StatusBadRequest, "Price cannot be negative", nil)
		return
	}

	menuItem.Name = updates.Name
	menuItem.Description = updates.Description
	menuItem.Price = updates.Price
	menuItem.CategoryID = updates.CategoryID
	menuItem.ImageURL = updates.ImageURL
	menuItem.ModelURL = updates.ModelURL
	menuItem.Tags = updates.Tags
	menuItem.DisplayOrder = updates.DisplayOrder
	if updates.IsActive != nil {
		menuItem.IsActive = updates.IsActive
	}

	if err := initializers.DB.Save(&menuItem).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update menu item", err)
		return
	}

	ctx.JSON(http.StatusOK, menuItem)
}

// DeleteMenuItem removes an item from the catalog. Historical order
// items are untouched: they carry their own name and price snapshots.
func DeleteMenuItem(ctx *gin.Context) {
	menuItemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	if result := initializers.DB.Delete(&models.MenuItem{}, menuItemId); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete menu item", result.Error)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

func isModelFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".glb", ".gltf":
		return true
	}
	return false
}

// UploadMenuItemMedia uploads menu item photos and 3D models to S3 and
// records the resulting URLs on the item. Image files land on imageUrl,
// .glb/.gltf files on modelUrl.
func UploadMenuItemMedia(ctx *gin.Context) {
	menuItemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var menuItem models.MenuItem
	if err := initializers.DB.First(&menuItem, menuItemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate menu item", err)
		}
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	files := form.File["media"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		bucket = "tableserve-media"
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

		// Unique key so concurrent uploads never overwrite each other
		uniqueFilename := fmt.Sprintf("%d-%s-%s", menuItemId, time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
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

		if isModelFile(file.Filename) {
			menuItem.ModelURL = result.Location
		} else {
			menuItem.ImageURL = result.Location
		}
	}

	if len(uploadedUrls) > 0 {
		if err := initializers.DB.Save(&menuItem).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to save media URLs", err)
			return
		}
	}

	response := gin.H{
		"message":  "Files processed",
		"urls":     uploadedUrls,
		"menuItem": menuItem,
	}
	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	ctx.JSON(http.StatusOK, response)
}
