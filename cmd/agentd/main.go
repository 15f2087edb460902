// cmd/agentd/main.go
//
// Trading-agent status daemon.
//
// Start-up
// --------
//
//  0. Install a console bootstrap logger so resolution events are visible.
//
//  1. Resolve configuration once (env file → process env → validation →
//     logs directory).  Any failure is fatal; we never run half-configured.
//
//  2. Start the daily rotating logger in the resolved logs directory at the
//     resolved level (tees to console when running in a TTY).
//
//  3. Mount the read-only status endpoints and Prometheus /metrics.
//
//  4. Serve with timeouts derived from request_timeout.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yanizio/tradeagent/internal/config"
	"github.com/yanizio/tradeagent/internal/logger"
	"github.com/yanizio/tradeagent/internal/server"
	"github.com/yanizio/tradeagent/internal/status"
)

const listenAddr = ":8081"

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	//
	// ── 1.  Configuration ───────────────────────────────────────────────
	//
	boot := logger.Bootstrap()
	cfg, err := config.Get()
	if err != nil {
		boot.Fatalw("resolve config", "err", err)
	}

	//
	// ── 2.  Logger ──────────────────────────────────────────────────────
	//
	logOut, err := logger.New(cfg.LogsDir, cfg.LogLevel, runningInTTY())
	if err != nil {
		boot.Fatalw("start logger", "err", err)
	}
	_ = boot.Sync()
	defer func() { _ = logOut.Sync() }()

	logOut.Infow("agent configuration",
		"chain", cfg.DefaultChain,
		"risk_profile", cfg.DefaultRiskProfile,
		"debate_rounds", cfg.DebateRounds,
		"mcp_server", cfg.MCPServerURL,
		"capabilities", cfg.Capabilities(),
	)

	//
	// ── 3.  Routes ──────────────────────────────────────────────────────
	//
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/", status.Handler(cfg))

	//
	// ── 4.  Serve ───────────────────────────────────────────────────────
	//
	srv := server.New(listenAddr, r, cfg)
	logOut.Infow("listening", "addr", listenAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logOut.Fatalw("http server", "err", err)
	}
}
