package middleware

import (
	"net/http"
	"time"

	"pet-care-scheduler/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger loguea cada request al terminar, con el request id de chi.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				fields := map[string]any{
					"method":      r.Method,
					"path":        r.URL.Path,
					"status":      ww.Status(),
					"bytes":       ww.BytesWritten(),
					"duration_ms": time.Since(start).Milliseconds(),
					"request_id":  chimw.GetReqID(r.Context()),
				}
				if sid, ok := GetSessionID(r.Context()); ok {
					fields["session_id"] = sid
				}

				switch {
				case ww.Status() >= http.StatusInternalServerError:
					log.Error("http request", fields)
				case r.URL.Path == "/health" || r.URL.Path == "/metrics":
					log.Debug("http request", fields)
				default:
					log.Info("http request", fields)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
