package controllers

import (
	"net/http"

	"github.com/salesdash-io/salesdash-api/api/responses"
	"github.com/salesdash-io/salesdash-api/internal/reports"
	"github.com/salesdash-io/salesdash-api/pkg/logger"
)

func Employees(service reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		rows, err := service.Employees(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, emptyAsSlice(rows))
	}
}

func EmployeePerformance(service reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		rows, err := service.EmployeePerformance(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, emptyAsSlice(rows))
	}
}
