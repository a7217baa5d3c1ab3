package routes

import (
	"github.com/Kibet/tableserve-api/controllers"
	"github.com/Kibet/tableserve-api/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/api/orders", controllers.CreateOrder)
	server.GET("/api/orders", controllers.GetOrders)
	server.GET("/api/orders/:id", controllers.GetOrder)
	server.GET("/api/orders/by-number/:orderNumber", controllers.GetOrderByNumber)
	server.GET("/api/orders/table/:tableNumber", controllers.GetOrdersByTable)
	server.PATCH("/api/orders/:id/status", controllers.UpdateOrderStatus)
	server.PATCH("/api/orders/:id/payment", middlewares.RequireAdmin(), controllers.UpdatePaymentStatus)
}
