package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/salesdash-io/salesdash-api/internal/reports"
	"github.com/salesdash-io/salesdash-api/pkg/config"
	"github.com/salesdash-io/salesdash-api/pkg/metrics"
)

type fakeReports struct{}

func (fakeReports) Summary(context.Context) (*reports.Summary, error) {
	return &reports.Summary{TotalCustomers: 1}, nil
}
func (fakeReports) RecentOrders(context.Context, int) ([]reports.OrderRow, error)   { return nil, nil }
func (fakeReports) OrderAnalytics(context.Context, int) (*reports.OrderAnalytics, error) {
	return &reports.OrderAnalytics{}, nil
}
func (fakeReports) Customers(context.Context) ([]reports.CustomerRow, error)       { return nil, nil }
func (fakeReports) TopCustomers(context.Context) ([]reports.TopCustomerRow, error) { return nil, nil }
func (fakeReports) Products(context.Context, int) ([]reports.ProductRow, error)    { return nil, nil }
func (fakeReports) ProductMix(context.Context) (*reports.ProductMix, error) {
	return &reports.ProductMix{}, nil
}
func (fakeReports) DailyRevenue(context.Context, int) ([]reports.RevenuePoint, error) {
	return nil, nil
}
func (fakeReports) MonthlyRevenue(context.Context) ([]reports.MonthlyRevenuePoint, error) {
	return nil, nil
}
func (fakeReports) InventoryAnalysis(context.Context) ([]reports.InventoryLineRow, error) {
	return nil, nil
}
func (fakeReports) ProductLines(context.Context) ([]reports.ProductLineRow, error) { return nil, nil }
func (fakeReports) Employees(context.Context) ([]reports.EmployeeRow, error)       { return nil, nil }
func (fakeReports) EmployeePerformance(context.Context) ([]reports.EmployeePerformanceRow, error) {
	return nil, nil
}
func (fakeReports) Offices(context.Context) ([]reports.OfficeRow, error)            { return nil, nil }
func (fakeReports) SalesByRegion(context.Context) ([]reports.RegionSalesRow, error) { return nil, nil }
func (fakeReports) Overview(context.Context) (*reports.Overview, error) {
	return &reports.Overview{}, nil
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{App: config.AppConfig{Env: "dev"}}
	return NewRouter(cfg, nil, okPinger{}, metrics.NewHTTPMetrics(nil), fakeReports{})
}

func TestRouterServesAllReportRoutes(t *testing.T) {
	router := newTestRouter(t)

	paths := []string{
		"/",
		"/health/live",
		"/health/ready",
		"/api/dashboard/summary",
		"/api/orders/recent",
		"/api/orders/analytics",
		"/api/customers",
		"/api/customers/top",
		"/api/products",
		"/api/products/distribution",
		"/api/product-lines",
		"/api/revenue/daily",
		"/api/revenue/monthly",
		"/api/inventory/analysis",
		"/api/employees",
		"/api/employees/performance",
		"/api/offices",
		"/api/sales/by-region",
		"/api/dashboard/overview",
	}
	for _, p := range paths {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", p, nil))
		require.Equalf(t, http.StatusOK, rec.Code, "GET %s", p)
	}
}

func TestRouterRejectsUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterRejectsWrites(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/customers", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouterExposesMetrics(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterEchoesRequestID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest("GET", "/api/dashboard/summary", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.EqualValues(t, 1, got["totalCustomers"])
}
