// internal/config/loader.go
//
// Configuration resolver.
//
/*
Context
--------
`Resolve()` builds one `Settings` value from three layers (highest
precedence last):

  1. Schema defaults (`schema.go`).
  2. Optional `.env` file, parsed by godotenv through a koanf file provider.
  3. Process environment variables, matched case-insensitively against the
     schema keys (e.g., `LOG_LEVEL → log_level`).

Keys the schema does not declare are dropped in both sources.  The merged
raw strings are coerced field by field, loaded into a second koanf tree,
unmarshalled into `Settings`, validated, and finally the logs directory is
ensured on disk.  Any failure aborts the whole resolution; no partial
`Settings` escapes.

Instrumentation
---------------
  • DEBUG spans - env file presence, env overlay, logs dir state.
  • ERROR span  - the joined resolution error.
  • INFO  span  - final “config resolved” with non-secret highlights.
  • Logs use the global *sugared* logger (`zap.S()`).  Binaries install
    `logger.Bootstrap()` first so failures surface on stderr before the
    file logger exists.

Notes
-----
  • Real environment beats the `.env` file; the file only fills gaps.
  • The directory side effect happens only after every other check passed.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/yanizio/tradeagent/internal/metrics"
)

// DefaultEnvFile is read from the working directory when Options.EnvFile
// is empty.
const DefaultEnvFile = ".env"

// Options tunes a single resolution.  The zero value is ready to use.
type Options struct {
	EnvFile string
}

func (o Options) envFile() string {
	if o.EnvFile == "" {
		return DefaultEnvFile
	}
	return o.EnvFile
}

/*─────────────────────────────── resolver ─────────────────────────────────*/

// Resolve reads every layer, validates, ensures the logs directory, and
// returns the result.  It never caches; use Get for the shared instance.
func Resolve(opts Options) (*Settings, error) {
	s, err := resolve(opts)
	if err != nil {
		recordFailure(err)
		zap.S().Errorw("config resolution failed", "err", err)
		return nil, err
	}

	metrics.ConfigResolutionsTotal.WithLabelValues("ok").Inc()
	zap.S().Infow("config resolved",
		"log_level", s.LogLevel,
		"risk_profile", s.DefaultRiskProfile,
		"news_sources", len(s.NewsSources),
		"root", s.ProjectRoot,
		"logs_dir", s.LogsDir,
		"capabilities", s.Capabilities(),
	)
	return s, nil
}

func resolve(opts Options) (*Settings, error) {
	raw := koanf.New(".")

	if err := loadEnvFile(raw, opts.envFile()); err != nil {
		return nil, err
	}

	if err := raw.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: env overlay: %w", err)
	}
	zap.S().Debugw("config env overlay loaded", "keys", len(raw.Keys()))

	// Walk the schema once; collect every field error before giving up.
	typed := koanf.New(".")
	var errs []error
	for _, f := range Schema {
		val, err := fieldValue(raw, f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if val == nil {
			continue // absent optional
		}
		if err := typed.Set(f.Name, val); err != nil {
			errs = append(errs, fmt.Errorf("config: set %s: %w", f.Name, err))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	var s Settings
	if err := typed.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := finalizePaths(&s); err != nil {
		errs = append(errs, err)
	}
	if err := validateSettings(&s); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if err := ensureDir(s.LogsDir); err != nil {
		return nil, err
	}
	return &s, nil
}

// fieldValue returns the coerced input, the default, or nil for an absent
// optional key.
func fieldValue(k *koanf.Koanf, f Field) (any, error) {
	if !k.Exists(f.Name) {
		if f.Required {
			return nil, &MissingFieldError{Field: f.Name}
		}
		return f.defaultValue(), nil
	}
	return coerce(f, k.String(f.Name))
}

/*──────────────────────────── sources ─────────────────────────────────────*/

// envKey maps an environment variable name to its schema key.  Returning
// "" tells the koanf env provider to skip the variable.
func envKey(name string) string {
	f, ok := lookupField(name)
	if !ok {
		return ""
	}
	return f.Name
}

// loadEnvFile merges the dotenv file beneath the process environment.  A
// missing file is fine.
func loadEnvFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			zap.S().Debugw("config env file absent", "file", path)
			return nil
		}
		return &EnvFileError{Path: path, Err: err}
	}

	if err := k.Load(file.Provider(path), dotenvParser{}); err != nil {
		return &EnvFileError{Path: path, Err: err}
	}
	zap.S().Debugw("config env file loaded", "file", path)
	return nil
}

// dotenvParser adapts godotenv to koanf.Parser.  Keys are folded to schema
// names; unknown keys are dropped.
type dotenvParser struct{}

func (dotenvParser) Unmarshal(b []byte) (map[string]any, error) {
	vals, err := godotenv.UnmarshalBytes(b)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(vals))
	for key, val := range vals {
		if name := envKey(key); name != "" {
			out[name] = val
		}
	}
	return out, nil
}

func (dotenvParser) Marshal(m map[string]any) ([]byte, error) {
	vals := make(map[string]string, len(m))
	for key, val := range m {
		vals[strings.ToUpper(key)] = fmt.Sprint(val)
	}
	s, err := godotenv.Marshal(vals)
	return []byte(s), err
}

/*──────────────────────────── metrics ─────────────────────────────────────*/

func recordFailure(err error) {
	metrics.ConfigResolutionsTotal.WithLabelValues("error").Inc()

	var leaves []error
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range j.Unwrap() {
			// validateSettings joins its own errors one level deeper.
			if jj, ok := e.(interface{ Unwrap() []error }); ok {
				leaves = append(leaves, jj.Unwrap()...)
				continue
			}
			leaves = append(leaves, e)
		}
	} else {
		leaves = []error{err}
	}
	for _, e := range leaves {
		metrics.ConfigResolutionErrorsTotal.WithLabelValues(errorKind(e)).Inc()
	}
}
