package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// extractionsTotal counts embedding extractions by outcome.
	extractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retrocare_extractions_total",
			Help: "Total embedding extraction requests by status",
		},
		[]string{"status"}, // "ok", "error", "unavailable"
	)

	// comparisonsTotal counts scoring pipeline runs by outcome.
	comparisonsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retrocare_comparisons_total",
			Help: "Total embedding comparisons by status",
		},
		[]string{"status"}, // "ok", "error"
	)

	// anomalyScores tracks the distribution of final anomaly scores.
	anomalyScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "retrocare_anomaly_score",
			Help:    "Distribution of final anomaly scores",
			Buckets: prometheus.LinearBuckets(0.0, 0.1, 11),
		},
	)

	// estimatedSNR tracks the distribution of estimated SNR values in dB.
	estimatedSNR = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "retrocare_estimated_snr_db",
			Help:    "Distribution of estimated signal-to-noise ratios in dB",
			Buckets: prometheus.LinearBuckets(0.0, 3.0, 11),
		},
	)
)
