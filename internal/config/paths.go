package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/yanizio/tradeagent/internal/metrics"
)

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootMarkers identify a project root when climbing from the working
// directory.
var rootMarkers = []string{"go.mod", ".env"}

// discoverRoot climbs the cwd tree until a root marker is found.  Falls
// back to the executable heuristic for the production layout (<root>/bin),
// then to the working directory itself.
func discoverRoot() string {
	wd, _ := os.Getwd()
	dir := wd
	for {
		for _, m := range rootMarkers {
			if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}

	if exe, err := os.Executable(); err == nil && filepath.Base(filepath.Dir(exe)) == "bin" {
		return filepath.Dir(filepath.Dir(exe))
	}
	return wd
}

/*──────────────────────────── derived paths ────────────────────────────────*/

// finalizePaths makes ProjectRoot absolute and derives LogsDir.  A relative
// LogsDir override is taken relative to ProjectRoot.
func finalizePaths(s *Settings) error {
	root, err := filepath.Abs(s.ProjectRoot)
	if err != nil {
		return &ValidationError{Field: "project_root", Value: s.ProjectRoot, Reason: err.Error()}
	}
	s.ProjectRoot = root

	switch {
	case s.LogsDir == "":
		s.LogsDir = filepath.Join(root, "logs")
	case !filepath.IsAbs(s.LogsDir):
		s.LogsDir = filepath.Join(root, s.LogsDir)
	default:
		s.LogsDir = filepath.Clean(s.LogsDir)
	}
	return nil
}

// ensureDir creates dir and its parents when missing.  An existing
// directory is success; an existing non-directory is not.
func ensureDir(dir string) error {
	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return &DirectoryError{Path: dir, Err: fmt.Errorf("exists and is not a directory")}
		}
		zap.S().Debugw("logs dir present", "path", dir)
		return nil
	}

	// Anything else (missing, or a parent that is a file) is MkdirAll's call.
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &DirectoryError{Path: dir, Err: err}
	}
	metrics.LogsDirCreatedTotal.Inc()
	zap.S().Infow("logs dir created", "path", dir)
	return nil
}
