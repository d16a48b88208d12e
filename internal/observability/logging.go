// Package observability builds the structured logger shared by every component.
package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/adventure/internal/config"
)

// LoggerName is the root name attached to every log entry.
const LoggerName = "adventure"

// NewLogger creates a structured logger from the given logging configuration.
// Game text owns stdout, so entries go to stderr unless OutputPaths says otherwise.
//
// Precondition: cfg.Level must be one of "debug", "info", "warn", "error".
// Precondition: cfg.Format must be "json" or "console".
// Postcondition: Returns a configured zap.Logger or a non-nil error.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	encoder, err := newEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}

	paths := cfg.OutputPaths
	if len(paths) == 0 {
		paths = []string{"stderr"}
	}
	out, _, err := zap.Open(paths...)
	if err != nil {
		return nil, fmt.Errorf("opening log outputs %v: %w", paths, err)
	}
	errOut, _, err := zap.Open("stderr")
	if err != nil {
		return nil, fmt.Errorf("opening error output: %w", err)
	}

	core := zapcore.NewCore(encoder, out, zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.ErrorOutput(errOut), zap.AddCaller()).Named(LoggerName), nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	switch format {
	case "json":
		enc := zap.NewProductionEncoderConfig()
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(enc), nil
	case "console":
		enc := zap.NewDevelopmentEncoderConfig()
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewConsoleEncoder(enc), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
