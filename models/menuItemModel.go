package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name         string         `json:"name" binding:"required"`
	Description  string         `json:"description"`
	Price        float64        `json:"price" binding:"min=0"`
	CategoryID   *uint          `json:"categoryId"`
	Category     *Category      `json:"category,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	ImageURL     string         `json:"imageUrl"`
	ModelURL     string         `json:"modelUrl"`
	Tags         datatypes.JSON `json:"tags"`
	IsActive     *bool          `json:"isActive" gorm:"default:true"`
	DisplayOrder int            `json:"displayOrder"`
}
