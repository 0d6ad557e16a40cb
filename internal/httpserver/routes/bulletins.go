package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/sggtools/boapi/internal/httpserver/deps"
	"github.com/sggtools/boapi/internal/httpserver/handlers"
)

func init() { Register(registerBulletins) }

func registerBulletins(r chi.Router, d deps.Deps) {
	r.Get("/api/BO/{lang}", handlers.Latest(d))
	r.Get("/api/BO/ALL/{lang}", handlers.All(d))
}
