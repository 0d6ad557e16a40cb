package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/sggtools/boapi/internal/httpserver/deps"
	"github.com/sggtools/boapi/internal/metrics"
)

func init() { Register(registerMetrics) }

func registerMetrics(r chi.Router, d deps.Deps) {
	if d.Gatherer == nil {
		return
	}
	r.Method("GET", "/metrics", metrics.Handler(d.Gatherer))
}
