package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetDelete(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	_, err := store.Get(ctx, "crops")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "crops", []byte(`[]`)))

	value, err := store.Get(ctx, "crops")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)

	require.NoError(t, store.Delete(ctx, "crops"))
	_, err = store.Get(ctx, "crops")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemory_DeleteAbsentKey(t *testing.T) {
	store := NewMemory()

	assert.NoError(t, store.Delete(context.Background(), "missing"))
}

func TestMemory_CopiesValues(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	written := []byte(`{"a":1}`)
	require.NoError(t, store.Set(ctx, "k", written))
	written[0] = 'X'

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), value)

	value[0] = 'Y'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), again)
}
