package routes

import (
	"github.com/Kibet/tableserve-api/controllers"
	"github.com/Kibet/tableserve-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AnalyticsRoutes(server *gin.Engine) {
	analytics := server.Group("/api/analytics", middlewares.RequireAdmin())
	{
		analytics.GET("/today", controllers.GetTodayStats)
		analytics.GET("/sales-by-hour", controllers.GetSalesByHour)
		analytics.GET("/popular-items", controllers.GetPopularItems)
	}
}
