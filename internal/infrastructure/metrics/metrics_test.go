package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.TransfersCreated.Inc()
	m.TransferAmount.Observe(30)
	m.TransferErrors.WithLabelValues("insufficient_funds").Inc()
	m.CustomersCreated.Inc()
	m.AccountsCreated.Inc()
	m.ConsistencyChecks.WithLabelValues("consistent").Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.TransfersCreated))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.TransferErrors.WithLabelValues("insufficient_funds")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
