package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// LowStockThreshold is the stock level below which a product is flagged.
const LowStockThreshold = 10

// MonthlySales is one month's revenue in the trailing twelve-month series.
type MonthlySales struct {
	Month string  `json:"month"` // YYYY-MM
	Sales float64 `json:"sales"`
}

// DashboardStats aggregates the operator dashboard numbers. Sales and profit
// count confirmed and delivered orders only.
type DashboardStats struct {
	TotalSales    float64           `json:"total_sales"`
	TotalProfit   float64           `json:"total_profit"`
	TotalOrders   int               `json:"total_orders"`
	PendingOrders int               `json:"pending_orders"`
	TotalProducts int               `json:"total_products"`
	LowStock      []*entity.Product `json:"low_stock"`
	MonthlySales  []MonthlySales    `json:"monthly_sales"`
	StatusCounts  map[string]int    `json:"status_counts"`
}

// StatsUsecase computes operator dashboard aggregates.
type StatsUsecase interface {
	// Dashboard returns the current dashboard numbers.
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
