package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/sggtools/boapi/internal/httpserver/deps"
	"github.com/sggtools/boapi/internal/httpserver/handlers"
	"github.com/sggtools/boapi/internal/httpserver/mw"
)

func init() { Register(registerText) }

func registerText(r chi.Router, d deps.Deps) {
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:      d.TextRateBurst,
		PerMinute:  d.TextRatePerMin,
		TrustProxy: d.TrustProxy,
	})
	r.With(limit).Get("/api/BO/Text/{lang}", handlers.Text(d))
}
