package middleware

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ordertotal/order-total-service/pkg/common"
	"github.com/ordertotal/order-total-service/pkg/logger"
)

type ctxKey int

const requestIDKey ctxKey = iota

type Logging struct {
	logger *zap.SugaredLogger
}

func NewLoggingMiddleware(l *zap.SugaredLogger) *Logging {
	return &Logging{
		logger: l,
	}
}

// SetupTracing puts a request id into the context, taking the client's
// X-Request-ID if present.
func (lm *Logging) SetupTracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = common.RandStringRunes(16)
		}
		ctx := context.WithValue(r.Context(), requestIDKey, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SetupLogging puts a request-scoped logger into the context so handlers
// can use logger.Log(ctx).
func (lm *Logging) SetupLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger := lm.logger.With("request_id", RequestID(r.Context()))
		ctx := logger.WithLogger(r.Context(), reqLogger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (lm *Logging) AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Log(r.Context()).Infow("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration", time.Since(start),
		)
	})
}

// RequestID returns the request id put into ctx by SetupTracing.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
