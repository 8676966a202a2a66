package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyspaceKeyFormat(t *testing.T) {
	keys := Keyspace{Namespace: "techstock", Version: "v2"}
	assert.Equal(t, "techstock_v2_products", keys.Key("products"))
	assert.Equal(t, "techstock_v2_logs", keys.Key("logs"))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Load("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save("k", []byte("v1")))
	got, err := store.Load("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	require.NoError(t, store.Save("k", []byte("v2")))
	got, err = store.Load("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	require.NoError(t, store.Delete("k"))
	_, err = store.Load("k")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing key is not an error
	assert.NoError(t, store.Delete("k"))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()

	value := []byte("original")
	require.NoError(t, store.Save("k", value))
	value[0] = 'X'

	got, err := store.Load("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got, "stored value is isolated from caller mutation")

	got[0] = 'Y'
	again, err := store.Load("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again, "loaded value is a copy")
}
