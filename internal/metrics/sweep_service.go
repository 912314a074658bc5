package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sweepServiceBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sbtc_signer",
		Subsystem: "sweep_service",
		Name:      "batches_total",
		Help:      "Count of candidate batches validated.",
	}, []string{"status"})
	sweepServiceBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sbtc_signer",
		Subsystem: "sweep_service",
		Name:      "batch_duration_seconds",
		Help:      "Duration of validating a candidate batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	sweepServiceBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sbtc_signer",
		Subsystem: "sweep_service",
		Name:      "batch_size",
		Help:      "Number of candidates per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	})
)

// SweepService tracks batch validation runs.
type SweepService struct{}

// NewSweepService creates a SweepService metrics collector.
func NewSweepService() *SweepService {
	return &SweepService{}
}

// ObserveBatch records one batch of candidates.
func (m SweepService) ObserveBatch(err error, candidates int, started time.Time) {
	status := statusOf(err)
	sweepServiceBatchTotal.WithLabelValues(status).Inc()
	sweepServiceBatchDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	sweepServiceBatchSize.Observe(float64(candidates))
}
