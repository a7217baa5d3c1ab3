package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Kibet/tableserve-api/initializers"
	"github.com/Kibet/tableserve-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCategories lists active categories for the customer menu.
func GetCategories(ctx *gin.Context) {
	var categories []models.Category
	result := initializers.DB.
		Where("is_active = ?", true).
		Order("display_order, name").
		Find(&categories)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// GetAllCategories is the admin listing: inactive categories included.
func GetAllCategories(ctx *gin.Context) {
	var categories []models.Category
	result := initializers.DB.Order("display_order, name").Find(&categories)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// slugInUse reports whether another live category already owns the slug.
func slugInUse(slug string, excludeID uint) (bool, error) {
	var count int64
	err := initializers.DB.Model(&models.Category{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}

func CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	taken, err := slugInUse(category.Slug, 0)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create category", err)
		return
	}
	if taken {
		respondWithError(ctx, http.StatusBadRequest, "Category slug already in use", nil)
		return
	}

	if err := initializers.DB.Create(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create category", err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

func UpdateCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	var category models.Category
	if err := initializers.DB.First(&category, categoryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve category", err)
		}
		return
	}

	var updates models.Category
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	taken, err := slugInUse(updates.Slug, category.ID)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update category", err)
		return
	}
	if taken {
		respondWithError(ctx, http.StatusBadRequest, "Category slug already in use", nil)
		return
	}

	category.Name = updates.Name
	category.Slug = updates.Slug
	category.DisplayOrder = updates.DisplayOrder
	if updates.IsActive != nil {
		category.IsActive = updates.IsActive
	}

	if err := initializers.DB.Save(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update category", err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category. Menu items keep their rows and fall
// back to no category, matching the nullable categoryId contract. The
// delete is a hard delete so the slug is freed for reuse immediately.
func DeleteCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MenuItem{}).
			Where("category_id = ?", categoryId).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Category{}, categoryId).Error
	})
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete category", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
