package routes

import (
	"github.com/Kibet/tableserve-api/controllers"
	"github.com/Kibet/tableserve-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AdminRoutes(server *gin.Engine) {
	server.POST("/api/admin/login", controllers.AdminLogin)
	server.POST("/api/admin/logout", controllers.AdminLogout)
	server.GET("/api/admin/status", controllers.AdminStatus)

	admin := server.Group("/api/admin", middlewares.RequireAdmin())
	{
		admin.GET("/menu-items", controllers.GetAllMenuItems)
		admin.POST("/menu-items", controllers.CreateMenuItem)
		admin.PUT("/menu-items/:id", controllers.UpdateMenuItem)
		admin.DELETE("/menu-items/:id", controllers.DeleteMenuItem)
		admin.POST("/menu-items/:id/media", controllers.UploadMenuItemMedia)

		admin.GET("/categories", controllers.GetAllCategories)
		admin.POST("/categories", controllers.CreateCategory)
		admin.PUT("/categories/:id", controllers.UpdateCategory)
		admin.DELETE("/categories/:id", controllers.DeleteCategory)
	}
}
