package session

import (
	"context"
	"errors"
	"testing"

	"pet-care-scheduler/internal/adapters/storage/memory"
	"pet-care-scheduler/internal/domain/reservations"
	"pet-care-scheduler/internal/platform/sessionstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationRepo_AddReplaceRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewReservationRepo(memory.NewKV(), nil)

	require.NoError(t, repo.Add(ctx, "tab-1", reservations.Reservation{ID: 1, Date: "2024-06-10", Time: "09:00"}))
	require.NoError(t, repo.Add(ctx, "tab-1", reservations.Reservation{ID: 2, Date: "2024-06-11", Time: "10:00"}))

	items, err := repo.List(ctx, "tab-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID, "insertion order is kept")

	found, err := repo.Replace(ctx, "tab-1", 2, reservations.Reservation{ID: 2, Date: "2024-06-12", Time: "11:00"})
	require.NoError(t, err)
	assert.True(t, found)

	got, ok, err := repo.Get(ctx, "tab-1", 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2024-06-12", got.Date)

	found, err = repo.Remove(ctx, "tab-1", 1)
	require.NoError(t, err)
	assert.True(t, found)

	items, _ = repo.List(ctx, "tab-1")
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ID)
}

func TestReservationRepo_UnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	repo := NewReservationRepo(kv, nil)

	require.NoError(t, repo.Add(ctx, "tab-1", reservations.Reservation{ID: 1, Date: "2024-06-10", Time: "09:00"}))
	before, _, _ := kv.Get(ctx, "tab-1", sessionstore.KeyReservations)

	found, err := repo.Replace(ctx, "tab-1", 99, reservations.Reservation{ID: 99})
	require.NoError(t, err)
	assert.False(t, found)

	found, err = repo.Remove(ctx, "tab-1", 99)
	require.NoError(t, err)
	assert.False(t, found)

	after, _, _ := kv.Get(ctx, "tab-1", sessionstore.KeyReservations)
	assert.Equal(t, before, after)

	_, ok, err := repo.Get(ctx, "tab-1", 99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReservationRepo_StoredShape(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	repo := NewReservationRepo(kv, nil)

	require.NoError(t, repo.Add(ctx, "tab-1", reservations.Reservation{
		ID: 1718000000000, PetID: "p1", PetName: "Milo", Service: "Grooming",
		Location: "Downtown", Date: "2024-06-10", Time: "09:00",
	}))

	raw, ok, err := kv.Get(ctx, "tab-1", sessionstore.KeyReservations)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":1718000000000,"petId":"p1","petName":"Milo","service":"Grooming","location":"Downtown","date":"2024-06-10","time":"09:00","notes":""}]`, raw)
}

func TestReservationRepo_MalformedStoredValueReadsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	require.NoError(t, kv.Set(ctx, "tab-1", sessionstore.KeyReservations, "{oops"))

	repo := NewReservationRepo(kv, nil)
	items, err := repo.List(ctx, "tab-1")
	require.NoError(t, err)
	assert.Empty(t, items)

	// la siguiente escritura reemplaza el contenido roto
	require.NoError(t, repo.Add(ctx, "tab-1", reservations.Reservation{ID: 1}))
	items, _ = repo.List(ctx, "tab-1")
	assert.Len(t, items, 1)
}

type failingStore struct{}

func (failingStore) Load(context.Context, string) ([]reservations.Reservation, error) {
	return nil, errors.New("backend down")
}

func (failingStore) Save(context.Context, string, []reservations.Reservation) error {
	return errors.New("backend down")
}

func TestReservationRepo_PropagatesBackendErrors(t *testing.T) {
	repo := NewReservationRepoWithStore(failingStore{})

	_, err := repo.List(context.Background(), "tab-1")
	assert.Error(t, err)
	_, err = repo.Remove(context.Background(), "tab-1", 1)
	assert.Error(t, err)
}
