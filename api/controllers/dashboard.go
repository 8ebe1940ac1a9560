package controllers

import (
	"net/http"

	"github.com/salesdash-io/salesdash-api/api/responses"
	"github.com/salesdash-io/salesdash-api/internal/reports"
	"github.com/salesdash-io/salesdash-api/pkg/logger"
)

func DashboardSummary(service reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		summary, err := service.Summary(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

func DashboardOverview(service reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		overview, err := service.Overview(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, overview)
	}
}
