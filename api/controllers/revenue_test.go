package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/salesdash-io/salesdash-api/internal/reports"
)

func TestDailyRevenuePassesDays(t *testing.T) {
	svc := &stubReports{daily: []reports.RevenuePoint{
		{Date: "2004-03-10", Revenue: 100},
		{Date: "2004-03-11", Revenue: 65},
	}}

	rec := httptest.NewRecorder()
	DailyRevenue(svc, nil).ServeHTTP(rec, httptest.NewRequest("GET", "/api/revenue/daily?limit=30", nil))

	require.Equal(t, 200, rec.Code)
	require.Equal(t, 30, svc.lastRevenueDays)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "2004-03-10", got[0]["date"])
}

func TestDailyRevenueDefaultDays(t *testing.T) {
	svc := &stubReports{}

	rec := httptest.NewRecorder()
	DailyRevenue(svc, nil).ServeHTTP(rec, httptest.NewRequest("GET", "/api/revenue/daily", nil))

	require.Equal(t, reports.DefaultDailyRevenueDays, svc.lastRevenueDays)
}

func TestMonthlyRevenueShape(t *testing.T) {
	svc := &stubReports{monthly: []reports.MonthlyRevenuePoint{
		{Month: "2004-03", Revenue: 165},
		{Month: "2004-01", Revenue: 180},
	}}

	rec := httptest.NewRecorder()
	MonthlyRevenue(svc, nil).ServeHTTP(rec, httptest.NewRequest("GET", "/api/revenue/monthly", nil))

	require.Equal(t, 200, rec.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "2004-03", got[0]["month"])
}
