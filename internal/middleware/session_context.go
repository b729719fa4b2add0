package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const sessionKey ctxKey = "session_id"

// SessionHeader identifica la pestaña/sesión del cliente. Todas las keys
// guardadas quedan bajo este id.
const SessionHeader = "X-Session-ID"

// SessionContext:
// - Si viene X-Session-ID no vacío => lo guarda en el contexto.
// - Si no, el request sigue igual; los handlers decidirán si exigen sesión.
func SessionContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := strings.TrimSpace(r.Header.Get(SessionHeader))
		if sid == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := WithSessionID(r.Context(), sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey, sessionID)
}

func GetSessionID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(sessionKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
