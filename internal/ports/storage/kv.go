package storage

import "context"

// KV es un mapa string->string por sesión (equivalente a sessionStorage de una pestaña).
// Get devuelve ok=false si la key no existe; eso no es un error.
type KV interface {
	Get(ctx context.Context, sessionID, key string) (string, bool, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Remove(ctx context.Context, sessionID, key string) error

	// Clear borra todas las keys de la sesión (fin de la pestaña).
	Clear(ctx context.Context, sessionID string) error
}
