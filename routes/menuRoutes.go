package routes

import (
	"github.com/Kibet/tableserve-api/controllers"
	"github.com/gin-gonic/gin"
)

func MenuRoutes(server *gin.Engine) {
	server.GET("/api/categories", controllers.GetCategories)
	server.GET("/api/menu-items", controllers.GetMenuItems)
	server.GET("/api/menu-items/:id", controllers.GetMenuItem)
}
