package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Route(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	handler := m.Route("/api/products/{id}")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/products/99" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{"/api/products/2", "/api/products/5", "/api/products/99"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	var observations uint64
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			switch family.GetName() {
			case "cafe_http_requests_total":
				assert.Equal(t, "/api/products/{id}", labels["route"])
				counts[labels["status"]] += metric.GetCounter().GetValue()
			case "cafe_http_request_duration_seconds":
				observations += metric.GetHistogram().GetSampleCount()
			}
		}
	}

	assert.Equal(t, float64(2), counts["200"])
	assert.Equal(t, float64(1), counts["404"])
	assert.Equal(t, uint64(3), observations)
}
