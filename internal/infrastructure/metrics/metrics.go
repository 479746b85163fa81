package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Event metrics
	EventsApplied    *prometheus.CounterVec
	EventsRejected   *prometheus.CounterVec
	RecordsMalformed prometheus.Counter
	DepositAmount    prometheus.Histogram

	// Account metrics
	AccountsLocked prometheus.Counter
	OpenDisputes   prometheus.Gauge

	// Run metrics
	RunDuration    prometheus.Histogram
	ExportDuration *prometheus.HistogramVec
	ExportErrors   *prometheus.CounterVec
}

// New creates all metrics and registers them with reg. A nil reg uses the
// default Prometheus registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		EventsApplied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txengine_events_applied_total",
				Help: "Total number of ledger events applied",
			},
			[]string{"kind"},
		),
		EventsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txengine_events_rejected_total",
				Help: "Total number of ledger events rejected by type and reason",
			},
			[]string{"kind", "reason"},
		),
		RecordsMalformed: factory.NewCounter(prometheus.CounterOpts{
			Name: "txengine_records_malformed_total",
			Help: "Total number of input records that could not be parsed",
		}),
		DepositAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "txengine_deposit_amount",
			Help:    "Deposit amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),

		AccountsLocked: factory.NewCounter(prometheus.CounterOpts{
			Name: "txengine_accounts_locked_total",
			Help: "Total number of accounts locked by a chargeback",
		}),
		OpenDisputes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "txengine_open_disputes",
			Help: "Current number of disputed deposits",
		}),

		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "txengine_run_duration_seconds",
			Help:    "Duration of a processing run",
			Buckets: prometheus.DefBuckets,
		}),
		ExportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "txengine_export_duration_seconds",
				Help:    "Duration of summary exports",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"sink"},
		),
		ExportErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txengine_export_errors_total",
				Help: "Total summary export failures",
			},
			[]string{"sink"},
		),
	}
}

// WriteTextfile dumps everything gathered by g to path in the text
// exposition format, for the node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return prometheus.WriteToTextfile(path, g)
}
