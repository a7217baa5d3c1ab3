package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Kibet/tableserve-api/models"
	"gorm.io/gorm"
)

// previousStatus maps each status to the only state it may be entered
// from. Orders move strictly forward:
// received -> preparing -> ready -> served.
var previousStatus = map[string]string{
	models.OrderStatusPreparing: models.OrderStatusReceived,
	models.OrderStatusReady:     models.OrderStatusPreparing,
	models.OrderStatusServed:    models.OrderStatusReady,
}

func validOrderStatus(status string) bool {
	switch status {
	case models.OrderStatusReceived, models.OrderStatusPreparing,
		models.OrderStatusReady, models.OrderStatusServed:
		return true
	}
	return false
}

// AdvanceStatus moves an order to the target status. Setting the current
// status again is a no-op; any other move must be the single next step in
// the chain. The transition itself is a guarded conditional update so two
// staff members racing on the same order cannot double-advance it.
func (s *OrderService) AdvanceStatus(orderID int, target string) (*models.Order, error) {
	if !validOrderStatus(target) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, target)
	}

	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return nil, err
	}

	if order.Status == target {
		return &order, nil
	}

	from, ok := previousStatus[target]
	if !ok || from != order.Status {
		return nil, fmt.Errorf("%w: cannot move order from %q to %q", ErrValidation, order.Status, target)
	}

	result := s.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(map[string]any{"status": target, "updated_at": time.Now()})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Lost the race: someone else already moved this order.
		return nil, fmt.Errorf("%w: cannot move order from %q to %q", ErrValidation, order.Status, target)
	}

	order.Status = target
	return &order, nil
}
