package models

import "gorm.io/gorm"

const (
	OrderStatusReceived  = "received"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusServed    = "served"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"

	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"

	// DefaultEstimatedTime is the preparation estimate (minutes) assigned
	// to new orders unless the client supplies one.
	DefaultEstimatedTime = 20
)

type Order struct {
	gorm.Model
	OrderNumber         string      `json:"orderNumber" gorm:"uniqueIndex"`
	TableNumber         int         `json:"tableNumber"`
	Status              string      `json:"status"`
	TotalAmount         float64     `json:"totalAmount"`
	PaymentMethod       string      `json:"paymentMethod"`
	PaymentStatus       string      `json:"paymentStatus"`
	SpecialInstructions string      `json:"specialInstructions"`
	EstimatedTime       int         `json:"estimatedTime"`
	OrderItems          []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem rows are immutable once written. Name and UnitPrice are
// snapshots taken at checkout so order history survives menu edits
// and deletions.
type OrderItem struct {
	gorm.Model
	OrderID    int     `json:"orderId"`
	MenuItemID int     `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}
