package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/sggtools/boapi/internal/httpserver/deps"
	"github.com/sggtools/boapi/internal/httpserver/handlers"
)

func init() { Register(registerSnapshot) }

func registerSnapshot(r chi.Router, d deps.Deps) {
	r.Get("/api/BO/Snapshot/{lang}", handlers.Snapshot(d))
}
