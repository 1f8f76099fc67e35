package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"altboard/internal/db"
)

var (
	suggestionsDesc = prometheus.NewDesc(
		"altboard_suggestions",
		"Current suggestion count by status",
		[]string{"status"},
		nil,
	)

	// SubmissionsTotal counts submission attempts by outcome.
	SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "altboard_submissions_total",
			Help: "Total submission attempts by outcome",
		},
		[]string{"outcome"}, // accepted, invalid, rate_limited, error
	)

	// ReviewsTotal counts admin review decisions.
	ReviewsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "altboard_reviews_total",
			Help: "Total review decisions by outcome",
		},
		[]string{"decision"}, // approved, rejected
	)
)

// StatusCollector is a custom Prometheus collector that reads suggestion
// counts from the database on each scrape.
type StatusCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *StatusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- suggestionsDesc
}

// Collect queries the database for suggestion counts per status and emits
// them as gauges.
func (c *StatusCollector) Collect(ch chan<- prometheus.Metric) {
	counts, err := c.db.CountByStatus(context.Background())
	if err != nil {
		slog.Error("failed to collect suggestion metrics", "error", err)
		return
	}
	for status, count := range counts {
		ch <- prometheus.MustNewConstMetric(
			suggestionsDesc,
			prometheus.GaugeValue,
			float64(count),
			status,
		)
	}
}

var initOnce sync.Once

// Init registers the counters and the status collector with the default
// registry. Must be called once at startup.
func Init(database *db.DB) {
	initOnce.Do(func() {
		prometheus.MustRegister(SubmissionsTotal, ReviewsTotal)
		prometheus.MustRegister(&StatusCollector{db: database})
	})
}

// RecordSubmission records a submission attempt outcome.
func RecordSubmission(outcome string) {
	SubmissionsTotal.WithLabelValues(outcome).Inc()
}

// RecordReview records a review decision.
func RecordReview(decision string) {
	ReviewsTotal.WithLabelValues(decision).Inc()
}
