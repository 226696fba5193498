package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
)

type loggerKey struct{}

// requestLogger attaches a logger carrying the request method, path, and
// remote address to the request context.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			reqLogger := logger.With(
				"method", req.Method,
				"path", req.URL.Path,
				"remote_ip", req.RemoteAddr,
			)
			ctx := context.WithValue(req.Context(), loggerKey{}, reqLogger)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

// loggerFrom returns the request-scoped logger, or fallback outside a request.
func loggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return fallback
}
