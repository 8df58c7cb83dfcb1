package logger

import (
	"context"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey int

const loggerKey ctxKey = iota

var defaultLogger = zap.NewNop().Sugar()

// Run builds the process-wide logger with the given level
// ("debug", "info", ...; falls back to "info" on garbage).
func Run(level string) *zap.SugaredLogger {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl.SetLevel(zapcore.InfoLevel)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		log.Fatalf("can't initialize logger: %v", err)
	}

	defaultLogger = zl.Sugar()
	return defaultLogger
}

// WithLogger puts a request-scoped logger into the context.
func WithLogger(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Log returns the logger carried by ctx, or the process-wide one.
func Log(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(loggerKey).(*zap.SugaredLogger); ok {
		return l
	}
	return defaultLogger
}
