package reservations

import "context"

// Repository guarda las reservas de cada sesión. Replace y Remove devuelven
// false (sin error) cuando el id no existe.
type Repository interface {
	List(ctx context.Context, sessionID string) ([]Reservation, error)
	Get(ctx context.Context, sessionID string, id int64) (Reservation, bool, error)
	Add(ctx context.Context, sessionID string, r Reservation) error
	Replace(ctx context.Context, sessionID string, id int64, r Reservation) (bool, error)
	Remove(ctx context.Context, sessionID string, id int64) (bool, error)
}
