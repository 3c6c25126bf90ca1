package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	EntriesSaved = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "journal_entries_saved_total",
		Help: "Entries persisted to the substrate",
	})
	EntriesDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "journal_entries_deleted_total",
		Help: "Entry delete operations issued",
	})
	SaveDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "journal_save_seconds",
		Help:    "Time to validate, score and persist one entry",
		Buckets: prometheus.DefBuckets,
	})
	DecodeFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "journal_decode_failures_total",
		Help: "Stored records that failed to deserialize during listing",
	})
)

func init() {
	prometheus.MustRegister(EntriesSaved, EntriesDeleted, SaveDuration, DecodeFailures)
}
