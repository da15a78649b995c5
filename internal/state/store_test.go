package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return map[string]Store{
		"mem":    NewMemStore(),
		"sqlite": NewSQLStore(db),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get("missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set("k", "v1"))
			v, ok, err := s.Get("k")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "v1", v)

			// last write wins
			require.NoError(t, s.Set("k", "v2"))
			v, _, _ = s.Get("k")
			assert.Equal(t, "v2", v)

			require.NoError(t, s.Delete("k"))
			_, ok, _ = s.Get("k")
			assert.False(t, ok)
		})
	}
}

func TestStoreTTLExpiry(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.SetTTL("gone", "x", -time.Second))
			_, ok, err := s.Get("gone")
			require.NoError(t, err)
			assert.False(t, ok, "expired entry must read as absent")

			require.NoError(t, s.SetTTL("alive", "y", time.Hour))
			v, ok, err := s.Get("alive")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "y", v)
		})
	}
}

func TestSetClearsPreviousTTL(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.SetTTL("k", "short", time.Hour))
			require.NoError(t, s.Set("k", "forever"))
			v, ok, err := s.Get("k")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "forever", v)
		})
	}
}

func TestStoreClear(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set("a", "1"))
			require.NoError(t, s.Set("b", "2"))
			require.NoError(t, s.Clear())
			_, ok, _ := s.Get("a")
			assert.False(t, ok)
			_, ok, _ = s.Get("b")
			assert.False(t, ok)
		})
	}
}
