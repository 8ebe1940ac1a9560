package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/salesdash-io/salesdash-api/internal/reports"
	pkgerrors "github.com/salesdash-io/salesdash-api/pkg/errors"
)

func TestProductsWindowFromQuery(t *testing.T) {
	svc := &stubReports{products: []reports.ProductRow{
		{ProductCode: "S10_1", ProductName: "Roadster", ProductLine: "Classic Cars",
			QuantityInStock: 40, BuyPrice: 50, MSRP: 95, OrderCount: 12},
	}}

	rec := httptest.NewRecorder()
	Products(svc, nil).ServeHTTP(rec, httptest.NewRequest("GET", "/api/products?limit=500", nil))

	require.Equal(t, 200, rec.Code)
	require.Equal(t, 500, svc.lastProductWindow)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "S10_1", got[0]["productCode"])
	require.InDelta(t, 95.0, got[0]["MSRP"].(float64), 0.001)
}

func TestInventoryAnalysisError(t *testing.T) {
	svc := &stubReports{err: pkgerrors.New(pkgerrors.CodeDependency, "query inventory analysis")}

	rec := httptest.NewRecorder()
	InventoryAnalysis(svc, nil).ServeHTTP(rec, httptest.NewRequest("GET", "/api/inventory/analysis", nil))

	require.Equal(t, 500, rec.Code)
	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "query inventory analysis", got["error"])
}

func TestProductLinesEmptyIsArray(t *testing.T) {
	svc := &stubReports{}

	rec := httptest.NewRecorder()
	ProductLines(svc, nil).ServeHTTP(rec, httptest.NewRequest("GET", "/api/product-lines", nil))

	require.Equal(t, 200, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestProductMixShape(t *testing.T) {
	svc := &stubReports{mix: &reports.ProductMix{
		TotalProducts: 110,
		AverageMSRP:   100.44,
		StockLevels: []reports.MixBucket{
			{Label: "high", Count: 79, Percent: 71.81818181818181},
			{Label: "low", Count: 17, Percent: 15.454545454545455},
			{Label: "medium", Count: 14, Percent: 12.727272727272727},
		},
	}}

	rec := httptest.NewRecorder()
	ProductMix(svc, nil).ServeHTTP(rec, httptest.NewRequest("GET", "/api/products/distribution", nil))

	require.Equal(t, 200, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.EqualValues(t, 110, got["totalProducts"])
	levels := got["stockLevels"].([]any)
	require.Equal(t, "high", levels[0].(map[string]any)["label"])
}
