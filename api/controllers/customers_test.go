package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/salesdash-io/salesdash-api/internal/reports"
)

func TestCustomersShape(t *testing.T) {
	svc := &stubReports{customers: []reports.CustomerRow{
		{CustomerNumber: 103, CustomerName: "Atelier graphique", City: "Nantes",
			Country: "France", OrderCount: 3, TotalPayment: 22314.36},
	}}

	rec := httptest.NewRecorder()
	Customers(svc, nil).ServeHTTP(rec, httptest.NewRequest("GET", "/api/customers", nil))

	require.Equal(t, 200, rec.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.EqualValues(t, 103, got[0]["customerNumber"])
	require.EqualValues(t, 3, got[0]["orderCount"])
	require.InDelta(t, 22314.36, got[0]["totalPayment"].(float64), 0.001)
}

func TestTopCustomersShape(t *testing.T) {
	svc := &stubReports{topCustomers: []reports.TopCustomerRow{
		{CustomerNumber: 141, CustomerName: "Euro+ Shopping Channel", Country: "Spain", TotalSpent: 715738.98},
	}}

	rec := httptest.NewRecorder()
	TopCustomers(svc, nil).ServeHTTP(rec, httptest.NewRequest("GET", "/api/customers/top", nil))

	require.Equal(t, 200, rec.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.InDelta(t, 715738.98, got[0]["totalSpent"].(float64), 0.001)
}
