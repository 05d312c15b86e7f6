package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// MetricsNamespace is the namespace for all mediascrape metrics.
	MetricsNamespace = "mediascrape"

	// MetricsSubsystem is the subsystem for HTTP API metrics.
	MetricsSubsystem = "api"
)

// Scrape outcomes used as the outcome label.
const (
	outcomeOK       = "ok"
	outcomeInvalid  = "invalid"
	outcomeUpstream = "upstream_error"
	outcomeError    = "error"
)

// Metrics holds the Prometheus metrics of the HTTP API.
type Metrics struct {
	ScrapesTotal          *prometheus.CounterVec
	ScrapeDurationSeconds *prometheus.HistogramVec
}

// NewMetrics creates and registers the API metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)
	return &Metrics{
		ScrapesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: MetricsNamespace,
				Subsystem: MetricsSubsystem,
				Name:      "scrapes_total",
				Help:      "Total number of scrape requests by site, operation and outcome",
			},
			[]string{"site", "op", "outcome"},
		),
		ScrapeDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: MetricsNamespace,
				Subsystem: MetricsSubsystem,
				Name:      "scrape_duration_seconds",
				Help:      "Duration of scrape requests, including the upstream fetch",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"site", "op"},
		),
	}
}

func (m *Metrics) observe(site, op, outcome string, elapsed time.Duration) {
	m.ScrapesTotal.WithLabelValues(site, op, outcome).Inc()
	m.ScrapeDurationSeconds.WithLabelValues(site, op).Observe(elapsed.Seconds())
}
