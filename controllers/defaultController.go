package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the TableServe API. Scan your table code and order away.

The following are the endpoints for this API:

MENU
- GET "/api/categories" - Active categories
- GET "/api/menu-items" - Active menu items (optional ?category=slug)
- GET "/api/menu-items/:id" - Menu item by ID

ORDERS
- POST "/api/orders" - Place an order for a table
- GET "/api/orders" - All orders
- GET "/api/orders/:id" - Order by ID
- GET "/api/orders/by-number/:orderNumber" - Order by order number
- GET "/api/orders/table/:tableNumber" - Orders for a table
- PATCH "/api/orders/:id/status" - Advance order status

ADMIN (session required)
- POST "/api/admin/login" - Staff login
- POST "/api/admin/logout" - Staff logout
- GET "/api/admin/status" - Session check
- PATCH "/api/orders/:id/payment" - Update payment status
- GET "/api/analytics/today" - Today's sales stats
- GET "/api/analytics/sales-by-hour" - Hourly sales breakdown
- GET "/api/analytics/popular-items" - Best sellers
- POST/PUT/DELETE "/api/admin/menu-items(/:id)" - Menu management
- POST "/api/admin/menu-items/:id/media" - Upload photos / 3D models
- POST/PUT/DELETE "/api/admin/categories(/:id)" - Category management`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
