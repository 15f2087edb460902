package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"
)

// countingHolder wraps resolve so tests can observe how often it runs.
func countingHolder(opts Options, resolve func(Options) (*Settings, error)) (*Holder, *atomic.Int32) {
	var calls atomic.Int32
	h := NewHolder(opts)
	h.resolve = func(o Options) (*Settings, error) {
		calls.Add(1)
		return resolve(o)
	}
	return h, &calls
}

func TestHolder_ResolvesOnceUnderConcurrency(t *testing.T) {
	root, opts := setup(t)
	t.Setenv("GROK_API_KEY", "k1")

	h, calls := countingHolder(opts, Resolve)

	const callers = 64
	results := make([]Settings, callers)
	var g errgroup.Group
	for i := 0; i < callers; i++ {
		g.Go(func() error {
			s, err := h.Get()
			results[i] = s
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if n := calls.Load(); n != 1 {
		t.Fatalf("resolve ran %d times, want 1", n)
	}
	for i := 1; i < callers; i++ {
		if !reflect.DeepEqual(results[0], results[i]) {
			t.Fatalf("caller %d saw a different value", i)
		}
	}
	if _, err := os.Stat(filepath.Join(root, "logs")); err != nil {
		t.Fatalf("logs dir missing: %v", err)
	}
}

func TestHolder_RepeatedGetIsStable(t *testing.T) {
	_, opts := setup(t)
	t.Setenv("GROK_API_KEY", "k1")

	h, calls := countingHolder(opts, Resolve)
	first, err := h.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	// Changing the environment after first use has no effect.
	t.Setenv("LOG_LEVEL", "ERROR")
	for i := 0; i < 5; i++ {
		s, err := h.Get()
		if err != nil {
			t.Fatalf("Get #%d: %v", i, err)
		}
		if !reflect.DeepEqual(first, s) {
			t.Fatalf("Get #%d = %+v, want %+v", i, s, first)
		}
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("resolve ran %d times, want 1", n)
	}
}

func TestHolder_CachesFailure(t *testing.T) {
	_, opts := setup(t)

	h, calls := countingHolder(opts, Resolve)
	_, first := h.Get()
	if first == nil {
		t.Fatal("Get succeeded without grok_api_key")
	}

	// A later fix to the environment must not silently succeed.
	t.Setenv("GROK_API_KEY", "k1")
	_, second := h.Get()
	if second != first {
		t.Fatalf("second error = %v, want identical %v", second, first)
	}
	var mf *MissingFieldError
	if !errors.As(second, &mf) {
		t.Fatalf("err = %v, want *MissingFieldError", second)
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("resolve ran %d times, want 1", n)
	}
}

func TestHolder_ReturnsCopies(t *testing.T) {
	key := "tw"
	h, _ := countingHolder(Options{}, func(Options) (*Settings, error) {
		return &Settings{
			GrokAPIKey:         "k1",
			NewsSources:        []string{"a", "b"},
			TwitterBearerToken: &key,
		}, nil
	})

	s1, err := h.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	s1.NewsSources[0] = "mutated"
	*s1.TwitterBearerToken = "mutated"
	s1.GrokAPIKey = "mutated"

	s2, _ := h.Get()
	if s2.NewsSources[0] != "a" || *s2.TwitterBearerToken != "tw" || s2.GrokAPIKey != "k1" {
		t.Fatalf("cached value was mutated through a copy: %+v", s2)
	}
}

// useStd swaps the process-wide holder for the duration of the test.
func useStd(t *testing.T, h *Holder) {
	t.Helper()
	prev := std
	std = h
	t.Cleanup(func() { std = prev })
}

func TestProcessWide_Get(t *testing.T) {
	_, opts := setup(t)
	t.Setenv("GROK_API_KEY", "k1")
	h, calls := countingHolder(opts, Resolve)
	useStd(t, h)

	first, err := Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := MustGet(); !reflect.DeepEqual(first, got) {
		t.Fatalf("MustGet = %+v, want %+v", got, first)
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("resolve ran %d times, want 1", n)
	}
}

func TestProcessWide_MustGetPanicsOnFailure(t *testing.T) {
	_, opts := setup(t)
	h, _ := countingHolder(opts, Resolve)
	useStd(t, h)

	_, want := Get()
	if want == nil {
		t.Fatal("Get succeeded without grok_api_key")
	}
	defer func() {
		r := recover()
		if err, ok := r.(error); !ok || err != want {
			t.Fatalf("recovered %v, want %v", r, want)
		}
	}()
	MustGet()
	t.Fatal("MustGet returned")
}
