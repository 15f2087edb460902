package config

import (
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/yanizio/tradeagent/internal/metrics"
)

// result is the cached outcome of the one resolution a Holder performs.
// A failure is cached too, so later callers see the same error.
type result struct {
	settings *Settings
	err      error
}

// Holder resolves Settings on first use and hands out copies afterwards.
// Safe for concurrent use.  Zero value is invalid; use NewHolder.
type Holder struct {
	opts    Options
	resolve func(Options) (*Settings, error)

	sfg     singleflight.Group
	current atomic.Pointer[result]
}

// NewHolder returns a Holder that resolves with opts on first Get.
func NewHolder(opts Options) *Holder {
	return &Holder{opts: opts, resolve: Resolve}
}

// Get returns the resolved Settings, resolving exactly once.  Concurrent
// first callers share a single resolution.
func (h *Holder) Get() (Settings, error) {
	r := h.current.Load()
	if r == nil {
		out, _, _ := h.sfg.Do("settings", func() (any, error) {
			// Double-check after singleflight barrier.
			if r := h.current.Load(); r != nil {
				return r, nil
			}
			s, err := h.resolve(h.opts)
			r := &result{settings: s, err: err}
			if err == nil {
				publishCapabilities(s)
			}
			h.current.Store(r)
			return r, nil
		})
		r = out.(*result)
	}

	if r.err != nil {
		return Settings{}, r.err
	}
	return r.settings.clone(), nil
}

func publishCapabilities(s *Settings) {
	for name, on := range s.Capabilities() {
		val := 0.0
		if on {
			val = 1
		}
		metrics.CapabilityEnabled.WithLabelValues(name).Set(val)
	}
}

/*──────────────────────────── process-wide ────────────────────────────────*/

var std = NewHolder(Options{})

// Get returns the process-wide Settings, resolving them on first call.
func Get() (Settings, error) { return std.Get() }

// MustGet is Get for callers that cannot run without configuration.
func MustGet() Settings {
	s, err := std.Get()
	if err != nil {
		panic(err)
	}
	return s
}
