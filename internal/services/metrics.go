package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all custom Prometheus metrics for the application
type Metrics struct {
	MemoriesCreated   prometheus.Counter
	MemoriesDeleted   prometheus.Counter
	TranscriptsSaved  prometheus.Counter
	TranscriptsListed prometheus.Counter
	// Transcript entries dropped during listing because the value was
	// missing or unparsable (best-effort listing contract).
	TranscriptsSkipped prometheus.Counter
	SummariesServed    prometheus.Counter

	StoreErrors *prometheus.CounterVec
}

var globalMetrics *Metrics

// InitMetrics initializes the Prometheus metrics
func InitMetrics() *Metrics {
	metrics := &Metrics{
		MemoriesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "memomate_memories_created_total",
			Help: "Total number of memory records created",
		}),
		MemoriesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "memomate_memories_deleted_total",
			Help: "Total number of memory delete requests processed",
		}),
		TranscriptsSaved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "memomate_transcripts_saved_total",
			Help: "Total number of transcript chunks saved",
		}),
		TranscriptsListed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "memomate_transcript_listings_total",
			Help: "Total number of transcript listing requests",
		}),
		TranscriptsSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "memomate_transcripts_skipped_total",
			Help: "Transcript entries skipped during listing (missing or unparsable)",
		}),
		SummariesServed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "memomate_summaries_served_total",
			Help: "Total number of summarize requests served",
		}),
		StoreErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "memomate_store_errors_total",
			Help: "Total number of key-value store failures by operation",
		}, []string{"operation"}),
	}

	globalMetrics = metrics
	return metrics
}

// GetMetrics returns the global metrics instance (nil until InitMetrics)
func GetMetrics() *Metrics {
	return globalMetrics
}

func recordMemoryCreated() {
	if globalMetrics != nil {
		globalMetrics.MemoriesCreated.Inc()
	}
}

func recordMemoryDeleted() {
	if globalMetrics != nil {
		globalMetrics.MemoriesDeleted.Inc()
	}
}

func recordTranscriptSaved() {
	if globalMetrics != nil {
		globalMetrics.TranscriptsSaved.Inc()
	}
}

func recordTranscriptListing() {
	if globalMetrics != nil {
		globalMetrics.TranscriptsListed.Inc()
	}
}

func recordTranscriptSkipped() {
	if globalMetrics != nil {
		globalMetrics.TranscriptsSkipped.Inc()
	}
}

func recordSummaryServed() {
	if globalMetrics != nil {
		globalMetrics.SummariesServed.Inc()
	}
}

func recordStoreError(operation string) {
	if globalMetrics != nil {
		globalMetrics.StoreErrors.WithLabelValues(operation).Inc()
	}
}
