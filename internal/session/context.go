// Package session maneja el estado de UI de una sesión (pestaña): la mascota
// seleccionada y la reserva que se está reprogramando.
package session

import (
	"context"
	"strconv"

	"pet-care-scheduler/internal/platform/logger"
	"pet-care-scheduler/internal/platform/sessionstore"
	"pet-care-scheduler/internal/ports/storage"
)

// Context es la vista explícita de la sesión.
type Context struct {
	ID           string  `json:"id"`
	CurrentPetID *string `json:"currentPetId"`
	RescheduleID *int64  `json:"rescheduleId"`
}

type Store struct {
	kv         storage.KV
	currentPet *sessionstore.Scalar
	reschedule *sessionstore.Scalar
	log        logger.Logger
}

func NewStore(kv storage.KV, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		kv:         kv,
		currentPet: sessionstore.NewScalar(kv, sessionstore.KeyCurrentPetID),
		reschedule: sessionstore.NewScalar(kv, sessionstore.KeyRescheduleID),
		log:        log,
	}
}

func (s *Store) Load(ctx context.Context, sessionID string) (Context, error) {
	out := Context{ID: sessionID}

	pet, err := s.CurrentPetID(ctx, sessionID)
	if err != nil {
		return Context{}, err
	}
	out.CurrentPetID = pet

	id, err := s.RescheduleID(ctx, sessionID)
	if err != nil {
		return Context{}, err
	}
	out.RescheduleID = id

	return out, nil
}

func (s *Store) CurrentPetID(ctx context.Context, sessionID string) (*string, error) {
	v, ok, err := s.currentPet.Get(ctx, sessionID)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}

func (s *Store) SetCurrentPet(ctx context.Context, sessionID, petID string) error {
	return s.currentPet.Set(ctx, sessionID, petID)
}

// RescheduleID devuelve la reserva en reprogramación. Un valor guardado que
// no es un entero se trata como ausente.
func (s *Store) RescheduleID(ctx context.Context, sessionID string) (*int64, error) {
	v, ok, err := s.reschedule.Get(ctx, sessionID)
	if err != nil || !ok {
		return nil, err
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		s.log.Warn("ignoring malformed reschedule marker", map[string]any{
			"session_id": sessionID,
			"value":      v,
		})
		return nil, nil
	}
	return &id, nil
}

func (s *Store) BeginReschedule(ctx context.Context, sessionID string, id int64) error {
	return s.reschedule.Set(ctx, sessionID, strconv.FormatInt(id, 10))
}

func (s *Store) ClearReschedule(ctx context.Context, sessionID string) error {
	return s.reschedule.Remove(ctx, sessionID)
}

// End borra todo lo guardado para la sesión (pestaña cerrada).
func (s *Store) End(ctx context.Context, sessionID string) error {
	return s.kv.Clear(ctx, sessionID)
}
