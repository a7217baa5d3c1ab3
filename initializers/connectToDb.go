package initializers

import (
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectToDB opens the database named by DB_DRIVER: "mysql" (default,
// DSN from DB_DSN) or "sqlite" (file from DB_SOURCE), which also backs
// local development without a running server.
func ConnectToDB() {
	var err error

	switch os.Getenv("DB_DRIVER") {
	case "sqlite":
		source := os.Getenv("DB_SOURCE")
		if source == "" {
			source = "tableserve.db"
		}
		DB, err = gorm.Open(sqlite.Open(source), &gorm.Config{})
	default:
		DB, err = gorm.Open(mysql.Open(os.Getenv("DB_DSN")), &gorm.Config{})
	}

	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
}
