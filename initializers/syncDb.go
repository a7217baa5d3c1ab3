package initializers

import (
	"log"

	"github.com/Kibet/tableserve-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.Admin{}, &models.Category{}, &models.MenuItem{}, &models.Order{}, &models.OrderItem{})
	log.Println("Database synced successfully.")
}
