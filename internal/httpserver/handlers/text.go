package handlers

import (
	"net/http"

	"github.com/sggtools/boapi/internal/httpserver/deps"
	"github.com/sggtools/boapi/internal/logger"
)

type textResponse struct {
	Text string `json:"text"`
}

// Text fetches the latest bulletin of one edition and proxies its PDF through
// the text-extraction service.
func Text(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang, ok := langParam(w, r)
		if !ok {
			return
		}

		item, err := d.Fetcher.Latest(r.Context(), lang)
		if err != nil || item == nil {
			if err != nil {
				d.Logger.Warn("latest bulletin fetch failed",
					logger.String("lang", string(lang)),
					logger.Error(err))
			}
			writeError(w, http.StatusNotFound, "Latest Bulletin Officiel not found")
			return
		}

		text := ""
		if item.DocumentURL != "" {
			text, err = d.Extractor.Extract(r.Context(), item.DocumentURL)
			if err != nil {
				d.Logger.Warn("pdf text extraction failed",
					logger.String("lang", string(lang)),
					logger.String("url", item.DocumentURL),
					logger.Error(err))
				text = ""
			}
		}

		if text == "" {
			writeError(w, http.StatusNotFound, "Text content not found")
			return
		}

		writeJSON(w, http.StatusOK, textResponse{Text: text})
	}
}
