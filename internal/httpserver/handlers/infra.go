package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sggtools/boapi/internal/httpserver/deps"
)

type componentStatus struct {
	OK              bool   `json:"ok"`
	BulletinsLoaded *int   `json:"bulletins_loaded,omitempty"`
	LastReload      string `json:"last_reload,omitempty"`
	Mode            string `json:"mode,omitempty"`
	Error           string `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports component health: the local snapshot, the optional redis
// store, and how identifier resolution is configured.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]componentStatus{
			"snapshot": checkSnapshot(d),
			"redis":    checkRedis(d),
			"resolver": {
				OK:   true,
				Mode: "live-scrape+static-fallback",
			},
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Mode:       determineMode(components),
			Components: components,
		})
	}
}

func determineMode(components map[string]componentStatus) string {
	// The live fetch path does not depend on snapshot or redis, so those
	// only ever degrade the service, never break it.
	for _, name := range []string{"snapshot", "redis"} {
		if c, exists := components[name]; exists && !c.OK {
			return "degraded"
		}
	}
	return "full"
}

func checkSnapshot(d deps.Deps) componentStatus {
	if d.MemoryIndex == nil {
		// Not configured is not a failure, the live path carries the API.
		return componentStatus{OK: true, Mode: "disabled"}
	}

	count := d.MemoryIndex.Count()
	lastReload := "never"
	if t := d.MemoryIndex.GetLastReload(); !t.IsZero() {
		lastReload = t.Format("2006-01-02 15:04:05")
	}

	return componentStatus{
		OK:              count > 0,
		BulletinsLoaded: &count,
		LastReload:      lastReload,
	}
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{OK: true, Mode: "disabled"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{OK: false, Mode: "unreachable", Error: err.Error()}
	}

	return componentStatus{OK: true, Mode: "connected"}
}
