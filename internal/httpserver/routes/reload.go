package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/sggtools/boapi/internal/httpserver/deps"
	"github.com/sggtools/boapi/internal/httpserver/handlers"
	"github.com/sggtools/boapi/internal/httpserver/mw"
)

func init() { Register(registerReload) }

func registerReload(r chi.Router, d deps.Deps) {
	r.With(mw.Bearer(d.ReloadToken)).Post("/reload", handlers.Reload(d))
}
