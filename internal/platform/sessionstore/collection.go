package sessionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"pet-care-scheduler/internal/platform/logger"
	"pet-care-scheduler/internal/ports/storage"
)

// Keys persistidas por sesión.
const (
	KeyPets         = "petcare_pets"
	KeyReservations = "petcare_reservations"
	KeyCurrentPetID = "petcare_current_pet_id"
	KeyRescheduleID = "petcare_reschedule_id"
)

// Store es el contrato tipado sobre una colección guardada bajo una key.
// Los repositorios dependen de esto (y no del KV) para poder usar fakes en tests.
type Store[T any] interface {
	Load(ctx context.Context, sessionID string) ([]T, error)
	Save(ctx context.Context, sessionID string, items []T) error
}

// Collection implementa Store serializando la colección completa como JSON array.
type Collection[T any] struct {
	kv  storage.KV
	key string
	log logger.Logger
}

func NewCollection[T any](kv storage.KV, key string, log logger.Logger) *Collection[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &Collection[T]{kv: kv, key: key, log: log}
}

// Load devuelve la colección. Key ausente o contenido que no parsea como
// array => colección vacía. Lo malformado se loguea, nunca se propaga.
// Solo un fallo del backend devuelve error.
func (c *Collection[T]) Load(ctx context.Context, sessionID string) ([]T, error) {
	raw, ok, err := c.kv.Get(ctx, sessionID, c.key)
	if err != nil {
		return nil, fmt.Errorf("sessionstore: load %s: %w", c.key, err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []T{}, nil
	}

	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		c.log.Warn("failed to parse stored collection", map[string]any{
			"key":        c.key,
			"session_id": sessionID,
			"error":      err,
		})
		return []T{}, nil
	}
	if out == nil {
		// "null" guardado
		return []T{}, nil
	}
	return out, nil
}

// Save reemplaza la colección completa.
func (c *Collection[T]) Save(ctx context.Context, sessionID string, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("sessionstore: encode %s: %w", c.key, err)
	}
	if err := c.kv.Set(ctx, sessionID, c.key, string(b)); err != nil {
		return fmt.Errorf("sessionstore: save %s: %w", c.key, err)
	}
	return nil
}
