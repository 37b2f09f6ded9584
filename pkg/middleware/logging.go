package middleware

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"ratemypg/pkg/common"
	"ratemypg/pkg/logger"
)

type traceKey string

const traceIdKey traceKey = "traceId"

type Logging struct {
	logger *zap.SugaredLogger
}

func NewLoggingMiddleware(l *zap.SugaredLogger) *Logging {
	return &Logging{logger: l}
}

// SetupTracing assigns every request a random trace id, echoed back in
// the Trace-Id response header.
func (lm *Logging) SetupTracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceId := r.Header.Get("Trace-Id")
		if traceId == "" {
			traceId = common.RandStringRunes(12)
		}
		w.Header().Set("Trace-Id", traceId)
		ctx := context.WithValue(r.Context(), traceIdKey, traceId)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SetupLogging puts a logger annotated with the trace id into the
// request context so handlers can call logger.Log(ctx).
func (lm *Logging) SetupLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := lm.logger
		if traceId, ok := r.Context().Value(traceIdKey).(string); ok {
			l = l.With("traceId", traceId)
		}
		ctx := logger.ToContext(r.Context(), l)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AccessLog logs every request with its duration.
func (lm *Logging) AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Log(r.Context()).Infow("request handled",
			"method", r.Method,
			"url", r.URL.Path,
			"remote", r.RemoteAddr,
			"took", time.Since(start),
		)
	})
}
