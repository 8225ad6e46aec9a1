// Package logging builds the structured logger shared by the CLI.
//
// Loggers are [logr.Logger] values backed by zap. Verbosity levels map onto
// zap levels: V(0) is info, V(1) is debug.
package logging

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options configures [New].
type Options struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string
	// Format is FormatConsole or FormatJSON.
	Format string
	// OutputPaths overrides the log sinks. Defaults to stderr.
	OutputPaths []string
}

// New returns a logger configured by opts.
func New(opts Options) (logr.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return logr.Discard(), fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	var cfg zap.Config
	switch opts.Format {
	case "", FormatConsole:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.DisableStacktrace = true
	case FormatJSON:
		cfg = zap.NewProductionConfig()
	default:
		return logr.Discard(), fmt.Errorf("invalid log format %q: must be %s or %s", opts.Format, FormatConsole, FormatJSON)
	}

	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Development = false
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if len(opts.OutputPaths) > 0 {
		cfg.OutputPaths = opts.OutputPaths
	}

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("failed to build logger: %w", err)
	}

	return zapr.NewLogger(zl), nil
}

// IntoContext returns a copy of ctx carrying logger.
func IntoContext(ctx context.Context, logger logr.Logger) context.Context {
	return logr.NewContext(ctx, logger)
}

// FromContext returns the logger carried by ctx, or a discarding logger.
func FromContext(ctx context.Context) logr.Logger {
	return logr.FromContextOrDiscard(ctx)
}
