package controllers

import (
	"context"

	"github.com/salesdash-io/salesdash-api/internal/reports"
)

// stubReports records the last call and returns canned data. Handlers are
// exercised against it so no test here needs a database.
type stubReports struct {
	err error

	lastOrdersLimit    int
	lastAnalyticsLimit int
	lastProductWindow  int
	lastRevenueDays    int

	summary        *reports.Summary
	orders         []reports.OrderRow
	analytics      *reports.OrderAnalytics
	customers      []reports.CustomerRow
	topCustomers   []reports.TopCustomerRow
	products       []reports.ProductRow
	mix            *reports.ProductMix
	daily          []reports.RevenuePoint
	monthly        []reports.MonthlyRevenuePoint
	inventory      []reports.InventoryLineRow
	productLines   []reports.ProductLineRow
	employees      []reports.EmployeeRow
	employeePerf   []reports.EmployeePerformanceRow
	offices        []reports.OfficeRow
	regions        []reports.RegionSalesRow
	overview       *reports.Overview
}

func (s *stubReports) Summary(ctx context.Context) (*reports.Summary, error) {
	return s.summary, s.err
}

func (s *stubReports) RecentOrders(ctx context.Context, limit int) ([]reports.OrderRow, error) {
	s.lastOrdersLimit = limit
	return s.orders, s.err
}

func (s *stubReports) OrderAnalytics(ctx context.Context, limit int) (*reports.OrderAnalytics, error) {
	s.lastAnalyticsLimit = limit
	return s.analytics, s.err
}

func (s *stubReports) Customers(ctx context.Context) ([]reports.CustomerRow, error) {
	return s.customers, s.err
}

func (s *stubReports) TopCustomers(ctx context.Context) ([]reports.TopCustomerRow, error) {
	return s.topCustomers, s.err
}

func (s *stubReports) Products(ctx context.Context, recentOrders int) ([]reports.ProductRow, error) {
	s.lastProductWindow = recentOrders
	return s.products, s.err
}

func (s *stubReports) ProductMix(ctx context.Context) (*reports.ProductMix, error) {
	return s.mix, s.err
}

func (s *stubReports) DailyRevenue(ctx context.Context, days int) ([]reports.RevenuePoint, error) {
	s.lastRevenueDays = days
	return s.daily, s.err
}

func (s *stubReports) MonthlyRevenue(ctx context.Context) ([]reports.MonthlyRevenuePoint, error) {
	return s.monthly, s.err
}

func (s *stubReports) InventoryAnalysis(ctx context.Context) ([]reports.InventoryLineRow, error) {
	return s.inventory, s.err
}

func (s *stubReports) ProductLines(ctx context.Context) ([]reports.ProductLineRow, error) {
	return s.productLines, s.err
}

func (s *stubReports) Employees(ctx context.Context) ([]reports.EmployeeRow, error) {
	return s.employees, s.err
}

func (s *stubReports) EmployeePerformance(ctx context.Context) ([]reports.EmployeePerformanceRow, error) {
	return s.employeePerf, s.err
}

func (s *stubReports) Offices(ctx context.Context) ([]reports.OfficeRow, error) {
	return s.offices, s.err
}

func (s *stubReports) SalesByRegion(ctx context.Context) ([]reports.RegionSalesRow, error) {
	return s.regions, s.err
}

func (s *stubReports) Overview(ctx context.Context) (*reports.Overview, error) {
	return s.overview, s.err
}
