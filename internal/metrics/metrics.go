package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PartitionsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_partitions_resolved_total",
			Help: "Total number of partitions returned by resolution, by source",
		},
		[]string{"source"},
	)

	EmptyResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_empty_resolutions_total",
			Help: "Total number of well-formed requests that resolved to no partition",
		},
		[]string{"game_mode", "source"},
	)

	PartitionReadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracker_partition_read_duration_seconds",
			Help:    "Duration of per-partition reads in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	PartitionReadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_partition_read_errors_total",
			Help: "Total number of failed per-partition reads",
		},
		[]string{"operation", "table"},
	)
)

// RecordResolution counts the partitions a request resolved to.
func RecordResolution(gameMode, source string, partitions int) {
	if partitions == 0 {
		EmptyResolutions.WithLabelValues(gameMode, source).Inc()
		return
	}
	PartitionsResolved.WithLabelValues(source).Add(float64(partitions))
}

// RecordRead observes a per-partition read started at start.
func RecordRead(operation, table string, start time.Time, err error) {
	PartitionReadDuration.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	if err != nil {
		PartitionReadErrors.WithLabelValues(operation, table).Inc()
	}
}
