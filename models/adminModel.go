package models

import "gorm.io/gorm"

type Admin struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
}

type LoginData struct {
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}
