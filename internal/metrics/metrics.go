// Package metrics exposes Prometheus collectors for the harvesting engine.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	pagesFetchedTotal     *prometheus.CounterVec
	recordsPersistedTotal *prometheus.CounterVec
	scrapeErrorsTotal     *prometheus.CounterVec
	retriesTotal          prometheus.Counter
	rateLimitHitsTotal    prometheus.Counter
	rateLimitWaitSeconds  *prometheus.HistogramVec
	runActive             prometheus.Gauge

	once sync.Once
)

// Init registers the collectors. Safe to call more than once.
func Init() {
	once.Do(func() {
		pagesFetchedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "harvester_pages_fetched_total",
				Help: "Pages fetched, labeled by content type and outcome.",
			},
			[]string{"content_type", "outcome"},
		)
		recordsPersistedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "harvester_records_persisted_total",
				Help: "Validated records persisted, labeled by content type.",
			},
			[]string{"content_type"},
		)
		scrapeErrorsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "harvester_scrape_errors_total",
				Help: "Recoverable scrape errors, labeled by category.",
			},
			[]string{"category"},
		)
		retriesTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "harvester_retries_total",
				Help: "Page fetch retries across all runs.",
			},
		)
		rateLimitHitsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "harvester_rate_limit_hits_total",
				Help: "HTTP 429 responses observed from the source.",
			},
		)
		rateLimitWaitSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "harvester_rate_limit_wait_seconds",
				Help:    "Token bucket wait durations per host.",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"host"},
		)
		runActive = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "harvester_run_active",
				Help: "1 while a harvest run is executing.",
			},
		)
	})
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObservePageFetch counts a fetched page by content type and outcome.
func ObservePageFetch(contentType, outcome string) {
	if pagesFetchedTotal != nil {
		pagesFetchedTotal.WithLabelValues(contentType, outcome).Inc()
	}
}

// ObservePersisted counts validated records written to the gateway.
func ObservePersisted(contentType string, n int) {
	if recordsPersistedTotal != nil && n > 0 {
		recordsPersistedTotal.WithLabelValues(contentType).Add(float64(n))
	}
}

// ObserveError counts a recoverable scrape error by category.
func ObserveError(category string) {
	if scrapeErrorsTotal != nil {
		scrapeErrorsTotal.WithLabelValues(category).Inc()
	}
}

// ObserveRetry counts a page fetch retry.
func ObserveRetry() {
	if retriesTotal != nil {
		retriesTotal.Inc()
	}
}

// ObserveRateLimitHit counts an HTTP 429 from the source.
func ObserveRateLimitHit() {
	if rateLimitHitsTotal != nil {
		rateLimitHitsTotal.Inc()
	}
}

// ObserveRateLimitWait records a token bucket wait.
func ObserveRateLimitWait(host string, d time.Duration) {
	if rateLimitWaitSeconds != nil {
		rateLimitWaitSeconds.WithLabelValues(host).Observe(d.Seconds())
	}
}

// SetRunActive flips the active-run gauge.
func SetRunActive(active bool) {
	if runActive == nil {
		return
	}
	if active {
		runActive.Set(1)
	} else {
		runActive.Set(0)
	}
}
