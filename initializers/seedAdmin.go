package initializers

import (
	"errors"
	"log"
	"os"

	"github.com/Kibet/tableserve-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin ensures a staff account exists. The credential is taken from
// ADMIN_USERNAME/ADMIN_PASSWORD and only the bcrypt hash is stored.
func SeedAdmin() error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seed.")
		return nil
	}

	var admin models.Admin
	err := DB.Where("username = ?", username).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin = models.Admin{Username: username, PasswordHash: string(hash)}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Seeded admin account:", username)
	return nil
}
