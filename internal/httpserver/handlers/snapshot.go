package handlers

import (
	"net/http"

	"github.com/sggtools/boapi/internal/httpserver/deps"
)

// Snapshot serves the locally cached bulletin listing for one edition.
// 404 when the snapshot feature is disabled or the language has no entries.
func Snapshot(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang, ok := langParam(w, r)
		if !ok {
			return
		}

		if d.MemoryIndex == nil {
			writeError(w, http.StatusNotFound, "No snapshot available")
			return
		}

		items, ok := d.MemoryIndex.Get(lang)
		if !ok || len(items) == 0 {
			writeError(w, http.StatusNotFound, "No snapshot available")
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}
