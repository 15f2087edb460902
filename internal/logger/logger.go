// internal/logger/logger.go
//
// Structured JSON logger (Zap + Lumberjack).
//
// Context
// -------
// The agents write lifecycle and error events to one JSON log per day under
// `<logs_dir>/YYYY-MM-DD.log`, where `logs_dir` comes from the resolved
// configuration and already exists on disk.  When running in an
// interactive TTY we tee the same events to stdout.  Rotation,
// compression, and retention are handled by Lumberjack.
//
// Usage
// -----
//
//	logger.Bootstrap()
//	cfg := config.MustGet()
//	log, err := logger.New(cfg.LogsDir, cfg.LogLevel, runningInTTY())
//	if err != nil { … }
//	log.Infow("agent online", "chain", cfg.DefaultChain)
//
// Notes
// -----
// • Zap core uses ISO-8601 timestamps and lowercase levels.
// • The configured level names follow the DEBUG…CRITICAL scale; CRITICAL
//   maps to zap's DPanic level, which only panics in development builds.
package logger

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelFor maps a configured level name to a zap level.  Unknown names
// fall back to info.
func LevelFor(name string) zapcore.Level {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return zap.DebugLevel
	case "WARNING":
		return zap.WarnLevel
	case "ERROR":
		return zap.ErrorLevel
	case "CRITICAL":
		return zap.DPanicLevel
	}
	return zap.InfoLevel
}

// Bootstrap installs a console logger as the process-wide default so
// start-up events (configuration resolution included) are visible before
// the logs directory is known.  New replaces it once configuration is
// resolved.
func Bootstrap() *zap.SugaredLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	z := zap.New(
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), zap.InfoLevel),
		zap.AddCaller(),
	)
	zap.ReplaceGlobals(z)
	return z.Sugar()
}

// New returns a *zap.SugaredLogger that writes JSON to
// <logsDir>/YYYY-MM-DD.log at the given level.  When tee == true, a
// console core is also attached.  The logger is installed as the
// process-wide default via zap.ReplaceGlobals.
func New(logsDir, level string, tee bool) (*zap.SugaredLogger, error) {
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, err
	}

	fileName := time.Now().Format("2006-01-02") + ".log"
	fileSink := &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, fileName),
		MaxSize:    50, // MB
		MaxBackups: 7,
		MaxAge:     14, // days
		Compress:   true,
	}

	lvl := zap.NewAtomicLevelAt(LevelFor(level))

	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(fileSink), lvl),
	}

	if tee {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.AddSync(os.Stdout),
			lvl,
		))
	}

	z := zap.New(
		zapcore.NewTee(cores...),
		zap.ErrorOutput(zapcore.AddSync(fileSink)),
		zap.AddCaller(),
	).Sugar()

	zap.ReplaceGlobals(z.Desugar())

	z.Infow("logger online", "level", lvl.String(), "dir", logsDir, "tee", tee)
	return z, nil
}
