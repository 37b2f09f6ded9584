package logger

import (
	"context"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey string

const loggerKey ctxKey = "logger"

var fallback = zap.NewNop().Sugar()

// Run builds the root sugared logger for the given level
// ("debug", "info", "warn", "error", "fatal").
func Run(level string) *zap.SugaredLogger {
	lvl := zapcore.InfoLevel
	if err := lvl.Set(level); err != nil {
		log.Printf("logger: unknown level %q, using info", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	zl, err := cfg.Build()
	if err != nil {
		log.Fatalln("logger: can't build zap logger:", err)
	}
	return zl.Sugar()
}

// ToContext puts a request-scoped logger into the context.
func ToContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Log returns the request-scoped logger, or a no-op logger when the
// context has none (tests, startup code).
func Log(ctx context.Context) *zap.SugaredLogger {
	l, ok := ctx.Value(loggerKey).(*zap.SugaredLogger)
	if !ok || l == nil {
		return fallback
	}
	return l
}
