package sessionstore_test

import (
	"bytes"
	"context"
	"testing"

	"pet-care-scheduler/internal/adapters/storage/memory"
	"pet-care-scheduler/internal/platform/logger"
	"pet-care-scheduler/internal/platform/sessionstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestCollection_LoadMissingKeyIsEmpty(t *testing.T) {
	c := sessionstore.NewCollection[item](memory.NewKV(), "things", nil)

	got, err := c.Load(context.Background(), "tab-1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollection_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	c := sessionstore.NewCollection[item](memory.NewKV(), "things", nil)

	require.NoError(t, c.Save(ctx, "tab-1", []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}))

	got, err := c.Load(ctx, "tab-1")
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, got)

	// otra pestaña no ve nada
	other, err := c.Load(ctx, "tab-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCollection_SaveNilStoresEmptyArray(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	c := sessionstore.NewCollection[item](kv, "things", nil)

	require.NoError(t, c.Save(ctx, "tab-1", nil))

	raw, ok, err := kv.Get(ctx, "tab-1", "things")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", raw)
}

func TestCollection_MalformedContentIsLoggedAndEmpty(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()

	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Warn, Format: logger.FormatJSON, Writer: &buf})
	c := sessionstore.NewCollection[item](kv, "things", log)

	for _, raw := range []string{`{not json`, `{"id":1}`, `"text"`, `null`} {
		buf.Reset()
		require.NoError(t, kv.Set(ctx, "tab-1", "things", raw))

		got, err := c.Load(ctx, "tab-1")
		require.NoError(t, err, "raw=%s", raw)
		assert.Empty(t, got, "raw=%s", raw)
		if raw != "null" {
			assert.Contains(t, buf.String(), "failed to parse stored collection", "raw=%s", raw)
		}
	}
}

func TestScalar_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	s := sessionstore.NewScalar(memory.NewKV(), sessionstore.KeyRescheduleID)

	_, ok, err := s.Get(ctx, "tab-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "tab-1", "1718000000000"))
	v, ok, err := s.Get(ctx, "tab-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1718000000000", v)

	require.NoError(t, s.Remove(ctx, "tab-1"))
	_, ok, _ = s.Get(ctx, "tab-1")
	assert.False(t, ok)
}
