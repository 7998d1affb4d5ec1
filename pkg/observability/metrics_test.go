package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	m := NewMetrics()

	m.HTTPRequestsTotal.WithLabelValues("POST", "/auth/login", "200").Inc()
	m.HTTPRequestDuration.WithLabelValues("POST", "/auth/login").Observe(0.05)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/auth/login", "200")))

	// Both collectors must live on the dedicated registry.
	families, err := m.Registry.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 2)
}
