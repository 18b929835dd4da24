// Package logging configures the process-wide slog logger. In dev it writes
// human-readable text to stdout; in prod it routes slog records through a
// sampled zap JSON core.
package logging

import (
	"log/slog"
	"os"
	"time"

	slogzap "github.com/samber/slog-zap/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Backend selects the slog handler implementation.
type Backend string

const (
	BackendStd Backend = "std" // text handler, default for dev
	BackendZap Backend = "zap" // zap JSON core, default elsewhere
)

// Config carries logger metadata and output controls.
type Config struct {
	Service string
	Env     string // dev|prod
	Backend Backend
	Debug   bool
}

// Init installs the configured handler as the slog default.
func Init(cfg Config) {
	if cfg.Service == "" {
		cfg.Service = "app"
	}
	if cfg.Backend == "" {
		if cfg.Env == "dev" {
			cfg.Backend = BackendStd
		} else {
			cfg.Backend = BackendZap
		}
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	var h slog.Handler
	switch cfg.Backend {
	case BackendZap:
		h = newZapHandler(level)
	default:
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	h = h.WithAttrs([]slog.Attr{
		slog.String("service", cfg.Service),
		slog.String("env", cfg.Env),
	})

	slog.SetDefault(slog.New(h))
}

func newZapHandler(level slog.Level) slog.Handler {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	enc := zapcore.NewJSONEncoder(encCfg)

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), toZapLevel(level))
	// Sampling caps log volume during bursts.
	core = zapcore.NewSamplerWithOptions(core, time.Second, 100, 10)

	z := zap.New(core)
	return slogzap.Option{Logger: z}.NewZapHandler()
}

func toZapLevel(lvl slog.Level) zapcore.Level {
	switch {
	case lvl <= slog.LevelDebug:
		return zapcore.DebugLevel
	case lvl == slog.LevelInfo:
		return zapcore.InfoLevel
	case lvl == slog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
