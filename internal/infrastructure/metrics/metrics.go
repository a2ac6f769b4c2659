package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the ledger's Prometheus collectors.
type Metrics struct {
	// Transfer metrics
	TransfersCreated prometheus.Counter
	TransferDuration prometheus.Histogram
	TransferAmount   prometheus.Histogram
	TransferErrors   *prometheus.CounterVec

	// Entity metrics
	CustomersCreated prometheus.Counter
	AccountsCreated  prometheus.Counter

	// Consistency metrics
	ConsistencyChecks *prometheus.CounterVec
}

// New creates and registers all ledger metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TransfersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_transfers_created_total",
			Help: "Total number of transfers created",
		}),
		TransferDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_transfer_duration_seconds",
			Help:    "Duration of transfer operations",
			Buckets: prometheus.DefBuckets,
		}),
		TransferAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_transfer_amount",
			Help:    "Transfer amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		TransferErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transfer_errors_total",
				Help: "Total number of transfer errors by type",
			},
			[]string{"error_type"},
		),

		CustomersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_customers_created_total",
			Help: "Total number of customers created",
		}),
		AccountsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_accounts_created_total",
			Help: "Total number of accounts created",
		}),

		ConsistencyChecks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_consistency_checks_total",
				Help: "Total consistency checks by result",
			},
			[]string{"result"},
		),
	}
}
