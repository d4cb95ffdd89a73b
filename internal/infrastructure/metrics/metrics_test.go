package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/vendor-portal/internal/infrastructure/metrics"
)

func TestGateway_ObserveYForcedLogout(t *testing.T) {
	reg := metrics.NewRegistry()
	g := metrics.NewGateway(reg)

	g.Observe("GET", "/products", 200, 15*time.Millisecond)
	g.Observe("GET", "/products", 401, 5*time.Millisecond)
	g.Observe("GET", "/products", 0, time.Millisecond)
	g.ForcedLogout()

	n, err := testutil.GatherAndCount(reg, "vendor_portal_gateway_requests_total")
	assert.NoError(t, err)
	assert.Equal(t, 3, n, "una serie por status")

	n, err = testutil.GatherAndCount(reg, "vendor_portal_session_forced_logouts_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestGateway_NilEsSeguro(t *testing.T) {
	var g *metrics.Gateway
	assert.NotPanics(t, func() {
		g.Observe("GET", "/x", 200, time.Millisecond)
		g.ForcedLogout()
	})
}
