package handlers

import (
	"net/http"

	"github.com/sggtools/boapi/internal/httpserver/deps"
	"github.com/sggtools/boapi/internal/logger"
)

// Latest serves the most recent bulletin of one edition. Upstream errors and
// an empty listing both come out as 404; the upstream is scraped and this
// layer deliberately does not distinguish "absent" from "unavailable".
func Latest(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang, ok := langParam(w, r)
		if !ok {
			return
		}

		item, err := d.Fetcher.Latest(r.Context(), lang)
		if err != nil {
			d.Logger.Warn("latest bulletin fetch failed",
				logger.String("lang", string(lang)),
				logger.Error(err))
			writeError(w, http.StatusNotFound, "Latest Bulletin Officiel not found")
			return
		}
		if item == nil {
			writeError(w, http.StatusNotFound, "Latest Bulletin Officiel not found")
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

// All serves the full bulletin listing of one edition, in upstream order.
func All(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang, ok := langParam(w, r)
		if !ok {
			return
		}

		items, err := d.Fetcher.All(r.Context(), lang)
		if err != nil {
			d.Logger.Warn("bulletin listing fetch failed",
				logger.String("lang", string(lang)),
				logger.Error(err))
			writeError(w, http.StatusNotFound, "No Bulletin Officiel was found")
			return
		}
		if len(items) == 0 {
			writeError(w, http.StatusNotFound, "No Bulletin Officiel was found")
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}
