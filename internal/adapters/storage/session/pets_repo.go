package session

import (
	"context"
	"errors"
	"strings"

	"pet-care-scheduler/internal/domain/pets"
	"pet-care-scheduler/internal/platform/logger"
	"pet-care-scheduler/internal/platform/sessionstore"
	"pet-care-scheduler/internal/ports/storage"
)

type petRepo struct {
	store sessionstore.Store[pets.Pet]
}

func NewPetRepo(kv storage.KV, log logger.Logger) pets.Repository {
	return &petRepo{
		store: sessionstore.NewCollection[pets.Pet](kv, sessionstore.KeyPets, log),
	}
}

func (r *petRepo) Create(ctx context.Context, sessionID string, p pets.Pet) error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}

	items, err := r.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ID == p.ID {
			return errors.New("pet already exists")
		}
	}
	return r.store.Save(ctx, sessionID, append(items, p))
}

func (r *petRepo) GetByID(ctx context.Context, sessionID, id string) (pets.Pet, error) {
	items, err := r.store.Load(ctx, sessionID)
	if err != nil {
		return pets.Pet{}, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return pets.Pet{}, pets.ErrNotFound
}

// List devuelve las mascotas en orden de alta.
func (r *petRepo) List(ctx context.Context, sessionID string) ([]pets.Pet, error) {
	return r.store.Load(ctx, sessionID)
}
