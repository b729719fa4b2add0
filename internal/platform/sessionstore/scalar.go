package sessionstore

import (
	"context"
	"fmt"
	"strings"

	"pet-care-scheduler/internal/ports/storage"
)

// Scalar es una key de valor simple (ids de selección de UI).
type Scalar struct {
	kv  storage.KV
	key string
}

func NewScalar(kv storage.KV, key string) *Scalar {
	return &Scalar{kv: kv, key: key}
}

// Get devuelve "" , false si no está seteada o está vacía.
func (s *Scalar) Get(ctx context.Context, sessionID string) (string, bool, error) {
	v, ok, err := s.kv.Get(ctx, sessionID, s.key)
	if err != nil {
		return "", false, fmt.Errorf("sessionstore: get %s: %w", s.key, err)
	}
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return "", false, nil
	}
	return v, true, nil
}

func (s *Scalar) Set(ctx context.Context, sessionID, value string) error {
	if err := s.kv.Set(ctx, sessionID, s.key, value); err != nil {
		return fmt.Errorf("sessionstore: set %s: %w", s.key, err)
	}
	return nil
}

func (s *Scalar) Remove(ctx context.Context, sessionID string) error {
	if err := s.kv.Remove(ctx, sessionID, s.key); err != nil {
		return fmt.Errorf("sessionstore: remove %s: %w", s.key, err)
	}
	return nil
}
