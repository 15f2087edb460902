// internal/server/timeouts.go
//
// HTTP server helper with timeouts derived from configuration.
//
//   • ReadHeaderTimeout  – abort slow-loris headers (10 s)
//   • ReadTimeout        – request_timeout
//   • WriteTimeout       – request_timeout plus a small grace period
//   • IdleTimeout        – close keep-alives on idle clients (60 s)
//

package server

import (
	"net/http"
	"time"

	"github.com/yanizio/tradeagent/internal/config"
)

const (
	headerTimeout = 10 * time.Second
	writeGrace    = 5 * time.Second
	idleTimeout   = 60 * time.Second
)

// New constructs an *http.Server whose read and write budgets follow
// cfg.RequestTimeout.  A non-positive timeout leaves the body unbounded.
func New(addr string, handler http.Handler, cfg config.Settings) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: headerTimeout,
		IdleTimeout:       idleTimeout,
	}
	if d := cfg.RequestTimeoutDuration(); d > 0 {
		srv.ReadTimeout = d
		srv.WriteTimeout = d + writeGrace
	}
	return srv
}
