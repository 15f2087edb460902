// internal/status/status.go
//
// Read-only diagnostics endpoints over the resolved configuration.
//
//	GET /healthz       – liveness, always 200 once the process is up.
//	GET /config        – every field, secrets masked.
//	GET /capabilities  – which optional integrations are configured.
//
// Nothing here can change configuration; the handler holds a copy.
package status

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/tradeagent/internal/config"
	"github.com/yanizio/tradeagent/internal/middleware"
)

// Handler returns a chi router serving the status endpoints for cfg.
func Handler(cfg config.Settings) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging, middleware.Security)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})

	redacted := cfg.Redacted()
	r.Get("/config", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, redacted)
	})

	caps := cfg.Capabilities()
	r.Get("/capabilities", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, caps)
	})

	return r
}

// writeJSON writes v as indented JSON.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		zap.S().Warnw("status encode failed", "err", err)
	}
}
