package server

import (
	"log/slog"
	"net/http"
	"time"

	"directory-server/logger"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const TRACE_ID_HEADER = "X-Trace-ID"

// LoggingMiddleware logs every request with a trace id. A valid incoming
// X-Trace-ID is kept, otherwise a new one is generated and echoed back.
func LoggingMiddleware(log *slog.Logger) mux.MiddlewareFunc {
	log = logger.Component(log, "HTTP")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(TRACE_ID_HEADER)
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = uuid.New().String()
			}
			w.Header().Set(TRACE_ID_HEADER, traceID)

			reqLog := log.With(
				slog.String("trace_id", traceID),
				slog.String("http_method", r.Method),
				slog.String("http_path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr),
			)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			reqLog.Info("request finished",
				slog.Int("status_code", ww.Status()),
				slog.Int("bytes_written", ww.BytesWritten()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
		})
	}
}

// RecoverMiddleware turns handler panics into 500 responses.
func RecoverMiddleware(next http.Handler) http.Handler {
	return middleware.Recoverer(next)
}
