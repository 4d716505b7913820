package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatard/storefront/internal/storage"
)

func TestBoltStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.db")

	store, err := storage.NewBoltStore(path)
	require.NoError(t, err)

	// unknown key reads as absent, not as an error
	value, err := store.Get("chatard_cart")
	require.NoError(t, err)
	assert.Nil(t, value)

	payload := []byte(`[{"productId":"pieza-001","quantity":3}]`)
	require.NoError(t, store.Put("chatard_cart", payload))

	value, err = store.Get("chatard_cart")
	require.NoError(t, err)
	assert.Equal(t, payload, value)
	require.NoError(t, store.Close())

	// the slot survives a reopen
	reopened, err := storage.NewBoltStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err = reopened.Get("chatard_cart")
	require.NoError(t, err)
	assert.Equal(t, payload, value)
}

func TestMemoryStore(t *testing.T) {
	store := storage.NewMemoryStore()

	value, err := store.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, store.Put("k", []byte("v1")))
	require.NoError(t, store.Put("k", []byte("v2")))

	value, err = store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), value)
}
