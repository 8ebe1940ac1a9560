package reports

import (
	"context"

	pkgerrors "github.com/salesdash-io/salesdash-api/pkg/errors"
	"gorm.io/gorm"
)

// Defaults applied when a request omits or mangles its limit parameter.
const (
	DefaultRecentOrdersLimit   = 1000
	DefaultOrderAnalyticsLimit = 10000
	DefaultProductWindowLimit  = 10000
	DefaultDailyRevenueDays    = 365

	monthlyRevenueMonths = 12
	customerListCap      = 20
	topCustomersCap      = 10
	productListCap       = 20
	overviewOfficesCap   = 5
	overviewLeadersCap   = 10
)

// Service exposes the read-only aggregations behind the dashboard API.
type Service interface {
	Summary(ctx context.Context) (*Summary, error)
	RecentOrders(ctx context.Context, limit int) ([]OrderRow, error)
	OrderAnalytics(ctx context.Context, limit int) (*OrderAnalytics, error)
	Customers(ctx context.Context) ([]CustomerRow, error)
	TopCustomers(ctx context.Context) ([]TopCustomerRow, error)
	Products(ctx context.Context, recentOrders int) ([]ProductRow, error)
	ProductMix(ctx context.Context) (*ProductMix, error)
	DailyRevenue(ctx context.Context, days int) ([]RevenuePoint, error)
	MonthlyRevenue(ctx context.Context) ([]MonthlyRevenuePoint, error)
	InventoryAnalysis(ctx context.Context) ([]InventoryLineRow, error)
	ProductLines(ctx context.Context) ([]ProductLineRow, error)
	Employees(ctx context.Context) ([]EmployeeRow, error)
	EmployeePerformance(ctx context.Context) ([]EmployeePerformanceRow, error)
	Offices(ctx context.Context) ([]OfficeRow, error)
	SalesByRegion(ctx context.Context) ([]RegionSalesRow, error)
	Overview(ctx context.Context) (*Overview, error)
}

type service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) Service {
	return &service{db: db}
}

func (s *service) scan(ctx context.Context, dest any, op string, sql string, args ...any) error {
	if err := s.db.WithContext(ctx).Raw(sql, args...).Scan(dest).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, op)
	}
	return nil
}
