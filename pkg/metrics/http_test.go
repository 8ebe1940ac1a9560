package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestObserveRequestRecordsLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("/api/customers", "get", 200, 25*time.Millisecond)
	m.ObserveRequest("/api/customers", "GET", 200, 5*time.Millisecond)
	m.ObserveRequest("", "GET", 500, time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	var requests *dto.MetricFamily
	for _, fam := range families {
		if fam.GetName() == "http_requests_total" {
			requests = fam
		}
	}
	if requests == nil {
		t.Fatal("expected http_requests_total family")
	}

	byRoute := map[string]float64{}
	for _, metric := range requests.GetMetric() {
		var route string
		for _, label := range metric.GetLabel() {
			if label.GetName() == "route" {
				route = label.GetValue()
			}
		}
		byRoute[route] += metric.GetCounter().GetValue()
	}

	if byRoute["/api/customers"] != 2 {
		t.Fatalf("expected 2 requests for /api/customers, got %v", byRoute["/api/customers"])
	}
	if byRoute["unknown"] != 1 {
		t.Fatalf("expected empty route to normalize to unknown, got %v", byRoute)
	}
}

func TestNilReceiverIsSafe(t *testing.T) {
	var m *HTTPMetrics
	m.ObserveRequest("/api/offices", "GET", 200, time.Millisecond)

	empty := NewHTTPMetrics(nil)
	empty.ObserveRequest("/api/offices", "GET", 200, time.Millisecond)
}
