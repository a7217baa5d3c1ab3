package services

import (
	"fmt"
	"time"

	"github.com/Kibet/tableserve-api/models"
)

type TodayStats struct {
	TotalSales   float64 `json:"totalSales"`
	TotalOrders  int64   `json:"totalOrders"`
	AvgOrder     float64 `json:"avgOrder"`
	TablesServed int64   `json:"tablesServed"`
}

type HourlySales struct {
	Hour   int     `json:"hour"`
	Sales  float64 `json:"sales"`
	Orders int     `json:"orders"`
}

type PopularItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// GetTodayStats aggregates all orders created since local midnight.
func (s *OrderService) GetTodayStats() (*TodayStats, error) {
	var stats TodayStats
	err := s.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total_sales, COUNT(*) AS total_orders, COALESCE(AVG(total_amount), 0) AS avg_order, COUNT(DISTINCT table_number) AS tables_served").
		Where("created_at >= ?", startOfToday()).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	stats.TotalSales = models.Round2(stats.TotalSales)
	stats.AvgOrder = models.Round2(stats.AvgOrder)
	return &stats, nil
}

// GetSalesByHour buckets today's orders by hour of creation. Grouping
// happens in Go so the query stays portable across mysql and sqlite.
func (s *OrderService) GetSalesByHour() ([]HourlySales, error) {
	var orders []models.Order
	if err := s.DB.Where("created_at >= ?", startOfToday()).Find(&orders).Error; err != nil {
		return nil, err
	}

	buckets := make(map[int]*HourlySales)
	for _, order := range orders {
		hour := order.CreatedAt.Local().Hour()
		bucket, ok := buckets[hour]
		if !ok {
			bucket = &HourlySales{Hour: hour}
			buckets[hour] = bucket
		}
		bucket.Sales = models.Round2(bucket.Sales + order.TotalAmount)
		bucket.Orders++
	}

	sales := make([]HourlySales, 0, 24)
	for hour := 0; hour < 24; hour++ {
		if bucket, ok := buckets[hour]; ok {
			sales = append(sales, *bucket)
		}
	}
	return sales, nil
}

// GetPopularItems returns the best-selling menu items by total quantity.
// Grouping keys on menu_item_id so order items whose name snapshot is
// empty still count; those get an "Item #<id>" label.
func (s *OrderService) GetPopularItems(limit int) ([]PopularItem, error) {
	if limit <= 0 {
		limit = 5
	}
	var rows []struct {
		MenuItemID int
		Name       string
		Quantity   int
		Revenue    float64
	}
	err := s.DB.Model(&models.OrderItem{}).
		Select("menu_item_id, MAX(name) AS name, SUM(quantity) AS quantity, COALESCE(SUM(total_price), 0) AS revenue").
		Group("menu_item_id").
		Order("quantity DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]PopularItem, 0, len(rows))
	for _, row := range rows {
		name := row.Name
		if name == "" {
			name = fmt.Sprintf("Item #%d", row.MenuItemID)
		}
		items = append(items, PopularItem{
			Name:     name,
			Quantity: row.Quantity,
			Revenue:  models.Round2(row.Revenue),
		})
	}
	return items, nil
}
