package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Kibet/tableserve-api/models"
	"github.com/Kibet/tableserve-api/utils"
	"gorm.io/gorm"
)

const (
	minTableNumber = 1
	maxTableNumber = 100
)

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// ----- DTOs from controllers -----

type OrderItemIn struct {
	MenuItemID int     `json:"menuItemId"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
}

type CreateOrderReq struct {
	TableNumber         int           `json:"tableNumber"`
	Items               []OrderItemIn `json:"items"`
	PaymentMethod       string        `json:"paymentMethod"`
	SpecialInstructions string        `json:"specialInstructions"`
	EstimatedTime       int           `json:"estimatedTime"`
}

// Create validates the checkout request, prices it, and writes the order
// and its items as one transaction. A failed item insert rolls the whole
// order back.
func (s *OrderService) Create(req *CreateOrderReq) (*models.Order, error) {
	if req.TableNumber < minTableNumber || req.TableNumber > maxTableNumber {
		return nil, fmt.Errorf("%w: table number must be between %d and %d", ErrValidation, minTableNumber, maxTableNumber)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrValidation)
	}
	if req.PaymentMethod != models.PaymentMethodCash && req.PaymentMethod != models.PaymentMethodCard {
		return nil, fmt.Errorf("%w: payment method must be cash or card", ErrValidation)
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: item quantity must be at least 1", ErrValidation)
		}
		if item.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: item unit price cannot be negative", ErrValidation)
		}
	}

	// Price through the cart value object so the checkout math has a
	// single home. Lines are taken as sent; the client owns merging.
	lines := make([]models.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, models.CartItem{
			MenuItemID: item.MenuItemID,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
		})
	}
	cart := models.Cart{Items: lines}

	orderNumber, err := GenerateOrderNumber()
	if err != nil {
		return nil, err
	}

	estimatedTime := req.EstimatedTime
	if estimatedTime <= 0 {
		estimatedTime = models.DefaultEstimatedTime
	}

	order := models.Order{
		OrderNumber:         orderNumber,
		TableNumber:         req.TableNumber,
		Status:              models.OrderStatusReceived,
		TotalAmount:         cart.Subtotal(),
		PaymentMethod:       req.PaymentMethod,
		PaymentStatus:       models.PaymentStatusPending,
		SpecialInstructions: req.SpecialInstructions,
		EstimatedTime:       estimatedTime,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, item := range req.Items {
			name := menuItemName(tx, item.MenuItemID)
			orderItem := models.OrderItem{
				OrderID:    int(order.ID),
				MenuItemID: item.MenuItemID,
				Name:       name,
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice,
				TotalPrice: models.Round2(item.UnitPrice * float64(item.Quantity)),
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
			order.OrderItems = append(order.OrderItems, orderItem)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// menuItemName resolves the name snapshot for an order line. A missing
// menu item is tolerated: the order keeps the id and an empty name.
func menuItemName(tx *gorm.DB, menuItemID int) string {
	var menuItem models.MenuItem
	if err := tx.Select("name").First(&menuItem, menuItemID).Error; err != nil {
		return ""
	}
	return menuItem.Name
}

// UpdatePaymentStatus restricts the payment flag to the closed
// pending/paid set.
func (s *OrderService) UpdatePaymentStatus(orderID int, paymentStatus string) (*models.Order, error) {
	if paymentStatus != models.PaymentStatusPending && paymentStatus != models.PaymentStatusPaid {
		return nil, fmt.Errorf("%w: payment status must be pending or paid", ErrValidation)
	}

	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return nil, err
	}

	if err := s.DB.Model(&order).Updates(map[string]any{
		"payment_status": paymentStatus,
		"updated_at":     time.Now(),
	}).Error; err != nil {
		return nil, err
	}
	order.PaymentStatus = paymentStatus
	return &order, nil
}

// GenerateOrderNumber builds a human-shareable, collision-resistant
// order number: ORD + epoch millis + random hex suffix.
func GenerateOrderNumber() (string, error) {
	suffix, err := utils.GenerateCode(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD%d%s", time.Now().UnixMilli(), suffix), nil
}
