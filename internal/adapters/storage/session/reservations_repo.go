// Package session implementa los repositorios de dominio sobre las colecciones
// JSON guardadas por sesión (sessionstore).
package session

import (
	"context"

	"pet-care-scheduler/internal/domain/reservations"
	"pet-care-scheduler/internal/platform/logger"
	"pet-care-scheduler/internal/platform/sessionstore"
	"pet-care-scheduler/internal/ports/storage"
)

type reservationRepo struct {
	store sessionstore.Store[reservations.Reservation]
}

func NewReservationRepo(kv storage.KV, log logger.Logger) reservations.Repository {
	return NewReservationRepoWithStore(
		sessionstore.NewCollection[reservations.Reservation](kv, sessionstore.KeyReservations, log),
	)
}

func NewReservationRepoWithStore(store sessionstore.Store[reservations.Reservation]) reservations.Repository {
	return &reservationRepo{store: store}
}

func (r *reservationRepo) List(ctx context.Context, sessionID string) ([]reservations.Reservation, error) {
	return r.store.Load(ctx, sessionID)
}

func (r *reservationRepo) Get(ctx context.Context, sessionID string, id int64) (reservations.Reservation, bool, error) {
	items, err := r.store.Load(ctx, sessionID)
	if err != nil {
		return reservations.Reservation{}, false, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, true, nil
		}
	}
	return reservations.Reservation{}, false, nil
}

func (r *reservationRepo) Add(ctx context.Context, sessionID string, res reservations.Reservation) error {
	items, err := r.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, sessionID, append(items, res))
}

// Replace reemplaza la reserva con ese id. Si no existe no escribe nada.
func (r *reservationRepo) Replace(ctx context.Context, sessionID string, id int64, res reservations.Reservation) (bool, error) {
	items, err := r.store.Load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	for i := range items {
		if items[i].ID == id {
			items[i] = res
			return true, r.store.Save(ctx, sessionID, items)
		}
	}
	return false, nil
}

// Remove borra la reserva con ese id. Si no existe no escribe nada.
func (r *reservationRepo) Remove(ctx context.Context, sessionID string, id int64) (bool, error) {
	items, err := r.store.Load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	for i := range items {
		if items[i].ID == id {
			out := make([]reservations.Reservation, 0, len(items)-1)
			out = append(out, items[:i]...)
			out = append(out, items[i+1:]...)
			return true, r.store.Save(ctx, sessionID, out)
		}
	}
	return false, nil
}
