package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

// Logger is the process-wide logger, shared by both binaries
var Logger zerolog.Logger

// Init configures the global logger. A development environment gets a
// human-readable console writer; everything else logs JSON to stdout.
// An unknown level name falls back to info.
func Init(service, environment, level string) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var output io.Writer = os.Stdout
	if environment == "development" {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	Logger = zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Logger()

	log.Logger = Logger
}

// WithContext returns the logger enriched with trace_id/span_id when the
// context carries an active span
func WithContext(ctx context.Context) *zerolog.Logger {
	l := Logger
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		l = l.With().
			Str("trace_id", sc.TraceID().String()).
			Str("span_id", sc.SpanID().String()).
			Logger()
	}
	return &l
}

// Debug starts a debug-level event carrying trace info from ctx
func Debug(ctx context.Context) *zerolog.Event {
	return WithContext(ctx).Debug()
}

// Info starts an info-level event carrying trace info from ctx
func Info(ctx context.Context) *zerolog.Event {
	return WithContext(ctx).Info()
}

// Warn starts a warn-level event carrying trace info from ctx
func Warn(ctx context.Context) *zerolog.Event {
	return WithContext(ctx).Warn()
}

// Error starts an error-level event carrying trace info from ctx
func Error(ctx context.Context) *zerolog.Event {
	return WithContext(ctx).Error()
}
