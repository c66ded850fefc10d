package health

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestRequestMetricsCarryAppNamespace(t *testing.T) {
	registry := prometheus.NewRegistry()
	assert.NoError(t, registry.Register(HttpDuration))
	assert.NoError(t, registry.Register(HttpRequests))

	HttpRequests.WithLabelValues("GET", "/orders", "200").Inc()
	HttpDuration.WithLabelValues("GET", "/orders", "200").Observe(0.01)

	families, err := registry.Gather()
	assert.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Contains(t, names, "comanda_http_requests_total")
	assert.Contains(t, names, "comanda_http_request_duration_seconds")
}
