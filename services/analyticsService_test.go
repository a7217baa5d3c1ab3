package services

import (
	"testing"
	"time"

	"github.com/Kibet/tableserve-api/models"
	"github.com/stretchr/testify/require"
)

func TestGetTodayStats(t *testing.T) {
	s := newTestService(t)

	for _, order := range []struct {
		table int
		total float64
	}{
		{table: 1, total: 25.00},
		{table: 1, total: 10.00},
		{table: 2, total: 31.00},
	} {
		req := validOrderReq()
		req.TableNumber = order.table
		req.Items = []OrderItemIn{{MenuItemID: 1, Quantity: 1, UnitPrice: order.total}}
		_, err := s.Create(req)
		require.NoError(t, err)
	}

	// An order from yesterday must not count.
	old := models.Order{
		OrderNumber:   "ORD-yesterday",
		TableNumber:   9,
		Status:        models.OrderStatusServed,
		TotalAmount:   100.00,
		PaymentMethod: models.PaymentMethodCash,
		PaymentStatus: models.PaymentStatusPaid,
	}
	require.NoError(t, s.DB.Create(&old).Error)
	require.NoError(t, s.DB.Model(&old).
		Update("created_at", time.Now().AddDate(0, 0, -1)).Error)

	stats, err := s.GetTodayStats()
	require.NoError(t, err)
	require.Equal(t, 66.00, stats.TotalSales)
	require.Equal(t, int64(3), stats.TotalOrders)
	require.Equal(t, 22.00, stats.AvgOrder)
	require.Equal(t, int64(2), stats.TablesServed)
}

func TestGetTodayStatsEmpty(t *testing.T) {
	s := newTestService(t)

	stats, err := s.GetTodayStats()
	require.NoError(t, err)
	require.Zero(t, stats.TotalSales)
	require.Zero(t, stats.TotalOrders)
	require.Zero(t, stats.AvgOrder)
	require.Zero(t, stats.TablesServed)
}

func TestGetSalesByHour(t *testing.T) {
	s := newTestService(t)

	_, err := s.Create(validOrderReq())
	require.NoError(t, err)
	_, err = s.Create(validOrderReq())
	require.NoError(t, err)

	sales, err := s.GetSalesByHour()
	require.NoError(t, err)
	require.Len(t, sales, 1)
	require.Equal(t, time.Now().Hour(), sales[0].Hour)
	require.Equal(t, 2, sales[0].Orders)
	require.Equal(t, 50.00, sales[0].Sales)
}

func TestGetPopularItems(t *testing.T) {
	s := newTestService(t)

	pizza := models.MenuItem{Name: "Margherita", Price: 10.00}
	soda := models.MenuItem{Name: "Lemonade", Price: 5.00}
	require.NoError(t, s.DB.Create(&pizza).Error)
	require.NoError(t, s.DB.Create(&soda).Error)

	req := &CreateOrderReq{
		TableNumber: 4,
		Items: []OrderItemIn{
			{MenuItemID: int(pizza.ID), Quantity: 3, UnitPrice: 10.00},
			{MenuItemID: int(soda.ID), Quantity: 1, UnitPrice: 5.00},
		},
		PaymentMethod: models.PaymentMethodCash,
	}
	_, err := s.Create(req)
	require.NoError(t, err)

	items, err := s.GetPopularItems(5)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Margherita", items[0].Name)
	require.Equal(t, 3, items[0].Quantity)
	require.Equal(t, 30.00, items[0].Revenue)
	require.Equal(t, "Lemonade", items[1].Name)
}

func TestGetPopularItemsCountsUnnamedSnapshots(t *testing.T) {
	s := newTestService(t)

	// Ordering a menu item id with no menu row leaves an empty name
	// snapshot. It still ranks, labeled by its id.
	req := &CreateOrderReq{
		TableNumber: 4,
		Items: []OrderItemIn{
			{MenuItemID: 42, Quantity: 2, UnitPrice: 6.00},
		},
		PaymentMethod: models.PaymentMethodCash,
	}
	_, err := s.Create(req)
	require.NoError(t, err)

	items, err := s.GetPopularItems(5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Item #42", items[0].Name)
	require.Equal(t, 2, items[0].Quantity)
	require.Equal(t, 12.00, items[0].Revenue)
}
