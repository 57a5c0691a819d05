// Package logger provides a global, Sugared Zap logger with optional
// OpenTelemetry integration. Loggers can be derived into a context so that
// request-scoped fields (stream id, signer, batch id) follow a call chain, and
// every entry carries the trace and span ids of the active span.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/gabapcia/streamkit/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ctxKeyType is the private type used to store a derived logger in a context.
type ctxKeyType struct{}

// ctxKey is the context key holding a *zap.SugaredLogger.
var ctxKey = ctxKeyType{}

var (
	// baseLogger is the global SugaredLogger instance. It is initialized once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once
)

// Init configures the global logger at the given level ("debug", "info",
// "warn", "error", "panic", "fatal"). It logs JSON to stderr, leaving stdout
// to command output, and when a telemetry LoggerProvider is registered it also
// forwards entries through the OTEL bridge. Calling Init more than once has no effect after the first
// successful call.
//
// Returns an error if parsing the log level fails.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stderr),
				lvl,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore("github.com/gabapcia/streamkit", otelzap.WithLoggerProvider(lp)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return baseLogger.Sync()
}

// Base returns the global logger, for libraries that accept an injected
// *zap.SugaredLogger instead of logging through this package.
func Base() *zap.SugaredLogger {
	if baseLogger == nil {
		return zap.NewNop().Sugar()
	}
	return baseLogger
}

// deriveFromCtx returns the logger stored in ctx (or the base logger) enriched
// with the given key/value pairs and the ids of the span active in ctx.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok || l == nil {
		l = Base()
	}

	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		keysAndValues = append(keysAndValues,
			"trace_id", spanCtx.TraceID().String(),
			"span_id", spanCtx.SpanID().String(),
		)
	}

	if len(keysAndValues) == 0 {
		return l
	}
	return l.With(keysAndValues...)
}

// Derive returns a child context carrying a logger with the given key/value
// pairs attached. Every log call made with the returned context includes them.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok || l == nil {
		l = Base()
	}
	return context.WithValue(ctx, ctxKey, l.With(keysAndValues...))
}

func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs a panic-level message (and then panics) with optional key/value context.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Panicw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Fatalw(msg, keysAndValues...)
}
