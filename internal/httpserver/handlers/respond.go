package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sggtools/boapi/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// langParam resolves the {lang} route segment. Unknown codes are a 404, not
// a 400: the path simply does not exist.
func langParam(w http.ResponseWriter, r *http.Request) (domain.Language, bool) {
	lang, ok := domain.ParseLanguage(chi.URLParam(r, "lang"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown language")
		return "", false
	}
	return lang, true
}
