package handlers

import (
	"net/http"

	"github.com/sggtools/boapi/internal/httpserver/deps"
	"github.com/sggtools/boapi/internal/logger"
)

// Reload triggers a manual re-read of the local snapshot file.
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.ReloadTrigger == nil {
			writeError(w, http.StatusNotFound, "Snapshot reloading is not enabled")
			return
		}

		select {
		case d.ReloadTrigger <- struct{}{}:
			d.Logger.Info("manual snapshot reload triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusAccepted, map[string]string{"status": "reload triggered"})
		default:
			d.Logger.Warn("snapshot reload already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			writeError(w, http.StatusTooManyRequests, "Reload already in progress")
		}
	}
}
