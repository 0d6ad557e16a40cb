package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordFetch("fr", "ok")
	c.RecordFetch("fr", "ok")
	c.RecordResolution("ar", "fallback")
	c.RecordHTTPStatus(404)

	if got := testutil.ToFloat64(c.fetchTotal.WithLabelValues("fr", "ok")); got != 2 {
		t.Errorf("fetch_total{fr,ok} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.resolutionTotal.WithLabelValues("ar", "fallback")); got != 1 {
		t.Errorf("resolution_total{ar,fallback} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.httpStatus.WithLabelValues("404")); got != 1 {
		t.Errorf("http_status_total{404} = %v, want 1", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordUpstreamLatency(250 * time.Millisecond)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "boapi_upstream_latency_seconds") {
		t.Error("scrape output missing upstream latency histogram")
	}
}
