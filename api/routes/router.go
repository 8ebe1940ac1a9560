package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/salesdash-io/salesdash-api/api/controllers"
	"github.com/salesdash-io/salesdash-api/api/middleware"
	"github.com/salesdash-io/salesdash-api/internal/reports"
	"github.com/salesdash-io/salesdash-api/pkg/config"
	"github.com/salesdash-io/salesdash-api/pkg/db"
	"github.com/salesdash-io/salesdash-api/pkg/logger"
	"github.com/salesdash-io/salesdash-api/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	reportsService reports.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.HTTP.CORSOrigins),
		middleware.Metrics(httpMetrics),
	)

	r.Get("/", controllers.Root())

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/summary", controllers.DashboardSummary(reportsService, logg))
			r.Get("/overview", controllers.DashboardOverview(reportsService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/recent", controllers.RecentOrders(reportsService, logg))
			r.Get("/analytics", controllers.OrderAnalytics(reportsService, logg))
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.Customers(reportsService, logg))
			r.Get("/top", controllers.TopCustomers(reportsService, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.Products(reportsService, logg))
			r.Get("/distribution", controllers.ProductMix(reportsService, logg))
		})
		r.Get("/product-lines", controllers.ProductLines(reportsService, logg))

		r.Route("/revenue", func(r chi.Router) {
			r.Get("/daily", controllers.DailyRevenue(reportsService, logg))
			r.Get("/monthly", controllers.MonthlyRevenue(reportsService, logg))
		})

		r.Get("/inventory/analysis", controllers.InventoryAnalysis(reportsService, logg))

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", controllers.Employees(reportsService, logg))
			r.Get("/performance", controllers.EmployeePerformance(reportsService, logg))
		})

		r.Get("/offices", controllers.Offices(reportsService, logg))
		r.Get("/sales/by-region", controllers.SalesByRegion(reportsService, logg))
	})

	return r
}
