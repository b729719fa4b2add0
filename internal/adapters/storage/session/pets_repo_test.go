package session

import (
	"context"
	"testing"

	"pet-care-scheduler/internal/adapters/storage/memory"
	"pet-care-scheduler/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetRepo_CreateGetList(t *testing.T) {
	ctx := context.Background()
	repo := NewPetRepo(memory.NewKV(), nil)

	_, err := repo.GetByID(ctx, "tab-1", "nope")
	assert.ErrorIs(t, err, pets.ErrNotFound)

	require.NoError(t, repo.Create(ctx, "tab-1", pets.Pet{ID: "a", Name: "Milo"}))
	require.NoError(t, repo.Create(ctx, "tab-1", pets.Pet{ID: "b", Name: "Luna"}))
	assert.Error(t, repo.Create(ctx, "tab-1", pets.Pet{ID: "a", Name: "dup"}))
	assert.Error(t, repo.Create(ctx, "tab-1", pets.Pet{Name: "no id"}))

	p, err := repo.GetByID(ctx, "tab-1", "b")
	require.NoError(t, err)
	assert.Equal(t, "Luna", p.Name)

	items, err := repo.List(ctx, "tab-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)

	other, err := repo.List(ctx, "tab-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
