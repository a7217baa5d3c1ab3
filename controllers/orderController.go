package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Kibet/tableserve-api/initializers"
	"github.com/Kibet/tableserve-api/models"
	"github.com/Kibet/tableserve-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func orderService() *services.OrderService {
	return services.NewOrderService(initializers.DB)
}

// serviceErrorResponse maps order engine errors onto the HTTP taxonomy.
func serviceErrorResponse(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, err.Error())
	default:
		log.Println(fallback+":", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, fallback)
	}
}

func CreateOrder(ctx *gin.Context) {
	var req services.CreateOrderReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := orderService().Create(&req)
	if err != nil {
		serviceErrorResponse(ctx, err, "Failed to create order")
		return
	}

	ctx.JSON(http.StatusCreated, order)
}

// GetOrders lists all orders, newest first, for the staff dashboard.
func GetOrders(ctx *gin.Context) {
	var orders []models.Order
	result := initializers.DB.
		Preload("OrderItems").
		Order("created_at DESC").
		Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

func GetOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var order models.Order
	result := initializers.DB.Preload("OrderItems").First(&order, orderId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch order", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// GetOrderByNumber serves the customer status page, which only knows the
// human-shareable order number.
func GetOrderByNumber(ctx *gin.Context) {
	orderNumber := ctx.Param("orderNumber")

	var order models.Order
	result := initializers.DB.
		Preload("OrderItems").
		Where("order_number = ?", orderNumber).
		First(&order)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch order", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, order)
}

func GetOrdersByTable(ctx *gin.Context) {
	tableNumber, err := strconv.Atoi(ctx.Param("tableNumber"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid table number")
		return
	}

	var orders []models.Order
	result := initializers.DB.
		Preload("OrderItems").
		Where("table_number = ?", tableNumber).
		Order("created_at DESC").
		Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := orderService().AdvanceStatus(orderId, orderStatusData.Status)
	if err != nil {
		serviceErrorResponse(ctx, err, "Failed to update order status")
		return
	}

	ctx.JSON(http.StatusOK, order)
}

func UpdatePaymentStatus(ctx *gin.Context) {
	var paymentData struct {
		PaymentStatus string `json:"paymentStatus"`
	}
	if err := ctx.ShouldBindJSON(&paymentData); err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := orderService().UpdatePaymentStatus(orderId, paymentData.PaymentStatus)
	if err != nil {
		serviceErrorResponse(ctx, err, "Failed to update payment status")
		return
	}

	ctx.JSON(http.StatusOK, order)
}
