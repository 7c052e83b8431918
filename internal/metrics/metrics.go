package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreOperationsTotal counts store operations by operation and result
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecochain_store_operations_total",
			Help: "Total number of store operations",
		},
		[]string{"operation", "result"},
	)

	// StoreOperationDuration tracks store operation latency
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ecochain_store_operation_duration_seconds",
			Help:    "Store operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// EcoActionsSubmitted counts submitted eco actions by action type
	EcoActionsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecochain_eco_actions_submitted_total",
			Help: "Total number of eco actions submitted",
		},
		[]string{"action_type"},
	)

	// VotesCast counts governance votes by direction
	VotesCast = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecochain_votes_cast_total",
			Help: "Total number of governance votes cast",
		},
		[]string{"direction"},
	)

	// SnapshotsTotal counts platform stats snapshots by status
	SnapshotsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecochain_snapshots_total",
			Help: "Total number of platform stats snapshots",
		},
		[]string{"status"},
	)

	// LastSnapshotTimestamp tracks the unix time of the last successful snapshot
	LastSnapshotTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ecochain_last_snapshot_timestamp_seconds",
			Help: "Unix time of the last successful platform stats snapshot",
		},
	)

	// ErrorsTotal counts errors by type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecochain_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)

// ObserveStoreOperation records the outcome and latency of one store call.
func ObserveStoreOperation(op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	StoreOperationsTotal.WithLabelValues(op, result).Inc()
	StoreOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
