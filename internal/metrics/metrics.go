// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the recording interface consumed by the fetch pipeline and the
// HTTP middleware.
type Recorder interface {
	RecordFetch(lang string, outcome string)
	RecordResolution(lang string, source string)
	RecordUpstreamLatency(d time.Duration)
	RecordHTTPStatus(statusCode int)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	fetchTotal      *prometheus.CounterVec
	resolutionTotal *prometheus.CounterVec
	upstreamLatency prometheus.Histogram
	httpStatus      *prometheus.CounterVec
}

// NewCollector builds a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		fetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "boapi_fetch_total",
			Help: "Bulletin listing fetches by language and outcome",
		}, []string{"lang", "outcome"}),
		resolutionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "boapi_resolution_total",
			Help: "Identifier resolutions by language and source (live or fallback)",
		}, []string{"lang", "source"}),
		upstreamLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "boapi_upstream_latency_seconds",
			Help:    "Latency of upstream listing calls in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "boapi_http_status_total",
			Help: "Responses served by HTTP status code",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.fetchTotal,
		c.resolutionTotal,
		c.upstreamLatency,
		c.httpStatus,
	)

	return c
}

func (c *Collector) RecordFetch(lang, outcome string) {
	c.fetchTotal.WithLabelValues(lang, outcome).Inc()
}

func (c *Collector) RecordResolution(lang, source string) {
	c.resolutionTotal.WithLabelValues(lang, source).Inc()
}

func (c *Collector) RecordUpstreamLatency(d time.Duration) {
	c.upstreamLatency.Observe(d.Seconds())
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop is a Recorder that discards everything. Used in tests and wherever
// metrics are not wired.
type Nop struct{}

func (Nop) RecordFetch(string, string)          {}
func (Nop) RecordResolution(string, string)     {}
func (Nop) RecordUpstreamLatency(time.Duration) {}
func (Nop) RecordHTTPStatus(int)                {}
