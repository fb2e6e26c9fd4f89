package impl

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type statsService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewStatsService creates a new stats service instance
func NewStatsService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) usecase.StatsUsecase {
	return &statsService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		now:         time.Now,
	}
}

// Dashboard computes the operator dashboard numbers. Sales and profit count
// confirmed and delivered orders only; profit needs a product's cost price
// and treats an unknown cost as zero.
func (s *statsService) Dashboard(ctx context.Context) (*usecase.DashboardStats, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	costByProduct := make(map[uuid.UUID]float64, len(products))
	for _, product := range products {
		costByProduct[product.ID] = product.CostPrice
	}

	stats := &usecase.DashboardStats{
		TotalOrders:   len(orders),
		TotalProducts: len(products),
		StatusCounts:  make(map[string]int),
	}

	months := trailingMonths(s.now(), 12)
	salesByMonth := make(map[string]float64, len(months))
	for _, month := range months {
		salesByMonth[month] = 0
	}

	for _, order := range orders {
		stats.StatusCounts[string(order.Status)]++
		if order.Status == entity.OrderStatusPending {
			stats.PendingOrders++
		}

		if !order.Status.CommitsStock() {
			continue
		}

		stats.TotalSales += order.TotalAmount
		for _, item := range order.Items {
			stats.TotalProfit += (item.Price - costByProduct[item.ProductID]) * float64(item.Quantity)
		}

		month := order.CreatedAt.Format("2006-01")
		if _, tracked := salesByMonth[month]; tracked {
			salesByMonth[month] += order.TotalAmount
		}
	}

	stats.MonthlySales = make([]usecase.MonthlySales, 0, len(months))
	for _, month := range months {
		stats.MonthlySales = append(stats.MonthlySales, usecase.MonthlySales{
			Month: month,
			Sales: salesByMonth[month],
		})
	}

	for _, product := range products {
		if product.Stock < usecase.LowStockThreshold {
			stats.LowStock = append(stats.LowStock, product)
		}
	}

	return stats, nil
}

// trailingMonths returns the last n months as YYYY-MM keys, oldest first.
func trailingMonths(now time.Time, n int) []string {
	months := make([]string, 0, n)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)
	for i := 0; i < n; i++ {
		months = append(months, first.AddDate(0, i, 0).Format("2006-01"))
	}

	return months
}
