package middleware

import (
	"log/slog"
	"net/http"

	"github.com/placez/placez-api/internal/api/shared"
	"github.com/placez/placez-api/internal/platform/logger"
)

// Trace adds a trace ID to the request context and a request-scoped
// logger carrying it. Applied early so every downstream handler and
// service log line can be correlated.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
