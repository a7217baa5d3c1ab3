package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/Kibet/tableserve-api/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *OrderService {
	t.Helper()

	// Named in-memory database: the connection pool must see one store.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Admin{}, &models.Category{}, &models.MenuItem{},
		&models.Order{}, &models.OrderItem{},
	))

	return NewOrderService(db)
}

func validOrderReq() *CreateOrderReq {
	return &CreateOrderReq{
		TableNumber: 7,
		Items: []OrderItemIn{
			{MenuItemID: 1, Quantity: 2, UnitPrice: 10.00},
			{MenuItemID: 2, Quantity: 1, UnitPrice: 5.00},
		},
		PaymentMethod: models.PaymentMethodCash,
	}
}

func TestCreateOrderComputesTotal(t *testing.T) {
	s := newTestService(t)

	order, err := s.Create(validOrderReq())
	require.NoError(t, err)
	require.Equal(t, 25.00, order.TotalAmount)
	require.Equal(t, models.OrderStatusReceived, order.Status)
	require.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	require.Equal(t, models.DefaultEstimatedTime, order.EstimatedTime)
	require.NotEmpty(t, order.OrderNumber)
	require.Len(t, order.OrderItems, 2)
	require.Equal(t, 20.00, order.OrderItems[0].TotalPrice)
	require.Equal(t, 5.00, order.OrderItems[1].TotalPrice)
}

func TestCreateOrderSnapshotsMenuItemNames(t *testing.T) {
	s := newTestService(t)

	item := models.MenuItem{Name: "Margherita", Price: 10.00}
	require.NoError(t, s.DB.Create(&item).Error)

	req := &CreateOrderReq{
		TableNumber:   3,
		Items:         []OrderItemIn{{MenuItemID: int(item.ID), Quantity: 1, UnitPrice: 10.00}},
		PaymentMethod: models.PaymentMethodCard,
	}
	order, err := s.Create(req)
	require.NoError(t, err)
	require.Equal(t, "Margherita", order.OrderItems[0].Name)
}

func TestCreateOrderValidation(t *testing.T) {
	s := newTestService(t)

	cases := []struct {
		name   string
		mutate func(*CreateOrderReq)
	}{
		{"table number zero", func(r *CreateOrderReq) { r.TableNumber = 0 }},
		{"table number too large", func(r *CreateOrderReq) { r.TableNumber = 101 }},
		{"empty item list", func(r *CreateOrderReq) { r.Items = nil }},
		{"zero quantity", func(r *CreateOrderReq) { r.Items[0].Quantity = 0 }},
		{"negative price", func(r *CreateOrderReq) { r.Items[0].UnitPrice = -1 }},
		{"unknown payment method", func(r *CreateOrderReq) { r.PaymentMethod = "crypto" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validOrderReq()
			tc.mutate(req)
			_, err := s.Create(req)
			require.ErrorIs(t, err, ErrValidation)
		})
	}

	// No order rows may survive a failed create.
	var count int64
	require.NoError(t, s.DB.Model(&models.Order{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateOrderRollsBackWhenItemInsertFails(t *testing.T) {
	s := newTestService(t)

	// Sabotage the item table so the order row lands but the first
	// item insert blows up mid-transaction.
	require.NoError(t, s.DB.Migrator().DropTable(&models.OrderItem{}))

	_, err := s.Create(validOrderReq())
	require.Error(t, err)

	// The rollback must leave no orphaned order behind.
	var count int64
	require.NoError(t, s.DB.Model(&models.Order{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateOrderTableNumberBoundaries(t *testing.T) {
	s := newTestService(t)

	for _, table := range []int{1, 100} {
		req := validOrderReq()
		req.TableNumber = table
		_, err := s.Create(req)
		require.NoError(t, err, "table %d should be accepted", table)
	}
}

func TestCreateOrderEstimatedTimeOverride(t *testing.T) {
	s := newTestService(t)

	req := validOrderReq()
	req.EstimatedTime = 35
	order, err := s.Create(req)
	require.NoError(t, err)
	require.Equal(t, 35, order.EstimatedTime)
}

func TestOrderNumbersAreUniqueUnderConcurrency(t *testing.T) {
	const n = 500

	var wg sync.WaitGroup
	numbers := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			number, err := GenerateOrderNumber()
			if err == nil {
				numbers <- number
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]bool, n)
	count := 0
	for number := range numbers {
		require.False(t, seen[number], "duplicate order number %s", number)
		seen[number] = true
		count++
	}
	require.Equal(t, n, count)
}

func TestCreatedOrdersGetDistinctNumbers(t *testing.T) {
	s := newTestService(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		order, err := s.Create(validOrderReq())
		require.NoError(t, err)
		require.False(t, seen[order.OrderNumber], "duplicate order number %s", order.OrderNumber)
		seen[order.OrderNumber] = true
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	s := newTestService(t)

	order, err := s.Create(validOrderReq())
	require.NoError(t, err)

	updated, err := s.UpdatePaymentStatus(int(order.ID), models.PaymentStatusPaid)
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusPaid, updated.PaymentStatus)

	_, err = s.UpdatePaymentStatus(int(order.ID), "refunded")
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.UpdatePaymentStatus(99999, models.PaymentStatusPaid)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOrderTotalRounding(t *testing.T) {
	s := newTestService(t)

	req := &CreateOrderReq{
		TableNumber:   1,
		Items:         []OrderItemIn{{MenuItemID: 1, Quantity: 3, UnitPrice: 3.33}},
		PaymentMethod: models.PaymentMethodCash,
	}
	order, err := s.Create(req)
	require.NoError(t, err)
	require.Equal(t, 9.99, order.TotalAmount)

	req = &CreateOrderReq{
		TableNumber:   1,
		Items:         []OrderItemIn{{MenuItemID: 1, Quantity: 3, UnitPrice: 0.10}},
		PaymentMethod: models.PaymentMethodCash,
	}
	order, err = s.Create(req)
	require.NoError(t, err)
	require.Equal(t, 0.30, order.TotalAmount, fmt.Sprintf("got %v", order.TotalAmount))
}
