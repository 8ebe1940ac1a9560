package controllers

import (
	"net/http"

	"github.com/salesdash-io/salesdash-api/api/responses"
	"github.com/salesdash-io/salesdash-api/api/validators"
	"github.com/salesdash-io/salesdash-api/internal/reports"
	"github.com/salesdash-io/salesdash-api/pkg/logger"
)

func RecentOrders(service reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		limit := validators.QueryLimit(r, "limit", reports.DefaultRecentOrdersLimit)
		rows, err := service.RecentOrders(ctx, limit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, emptyAsSlice(rows))
	}
}

func OrderAnalytics(service reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		limit := validators.QueryLimit(r, "limit", reports.DefaultOrderAnalyticsLimit)
		row, err := service.OrderAnalytics(ctx, limit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, row)
	}
}

// emptyAsSlice keeps empty result sets encoding as [] instead of null.
func emptyAsSlice[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
