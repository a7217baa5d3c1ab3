package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name         string `json:"name" binding:"required"`
	Slug         string `json:"slug" binding:"required" gorm:"uniqueIndex"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     *bool  `json:"isActive" gorm:"default:true"`
}
