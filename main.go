package main

import (
	"log"
	"os"
	"time"

	"github.com/Kibet/tableserve-api/initializers"
	"github.com/Kibet/tableserve-api/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
	if err := initializers.SeedAdmin(); err != nil {
		log.Fatal("Failed to seed admin account: ", err)
	}
}

func main() {
	server := gin.Default()

	allowOrigins := []string{"http://localhost:5173"}
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		allowOrigins = append(allowOrigins, frontend)
	}
	server.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.MenuRoutes(server)
	routes.OrderRoutes(server)
	routes.AdminRoutes(server)
	routes.AnalyticsRoutes(server)

	server.Run()
}
