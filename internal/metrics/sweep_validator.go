package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sweepValidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sbtc_signer",
		Subsystem: "sweep_validator",
		Name:      "validations_total",
		Help:      "Count of sweep transaction validations by result and rejection reason.",
	}, []string{"result", "reason"})
	sweepValidationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sbtc_signer",
		Subsystem: "sweep_validator",
		Name:      "validation_duration_seconds",
		Help:      "Duration of sweep transaction validations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"result"})
)

// SweepValidator tracks sweep validation outcomes.
type SweepValidator struct{}

// NewSweepValidator creates a SweepValidator metrics collector.
func NewSweepValidator() *SweepValidator {
	return &SweepValidator{}
}

// ObserveValidation records one validation. reason is empty unless the
// transaction was rejected.
func (m SweepValidator) ObserveValidation(result, reason string, started time.Time) {
	if reason == "" {
		reason = "none"
	}
	sweepValidationsTotal.WithLabelValues(result, reason).Inc()
	sweepValidationDuration.WithLabelValues(result).Observe(time.Since(started).Seconds())
}
