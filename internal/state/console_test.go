package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
)

func TestTokenLifecycle(t *testing.T) {
	c := NewConsole(NewMemStore())
	assert.Empty(t, c.Token())

	require.NoError(t, c.SetToken("jwt-abc"))
	assert.Equal(t, "jwt-abc", c.Token())

	require.NoError(t, c.ClearToken())
	assert.Empty(t, c.Token())
}

// Clearing the token must also drop the cached auth check, or a signed-out
// console would keep reporting the old identity.
func TestClearTokenDropsMeCache(t *testing.T) {
	c := NewConsole(NewMemStore())
	cache := MeCache{S: c.S}

	cache.Put(domain.Profile{ID: 1, Email: "admin@optyshop.test"})
	_, ok := cache.Get()
	require.True(t, ok)

	require.NoError(t, c.ClearToken())
	_, ok = cache.Get()
	assert.False(t, ok)
}

func TestPageStateRoundTrip(t *testing.T) {
	c := NewConsole(NewMemStore())

	_, ok := c.PageState("products")
	assert.False(t, ok)

	saved := PageState{
		Section:      "sunglasses",
		Search:       "aviator",
		Page:         3,
		TableVersion: 1,
	}
	require.NoError(t, c.SavePageState("products", saved))

	got, ok := c.PageState("products")
	require.True(t, ok)
	assert.Equal(t, saved, got)

	// screens do not bleed into each other
	_, ok = c.PageState("orders")
	assert.False(t, ok)
}

func TestPageStateIgnoresGarbage(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, s.Set("page.products", "{not json"))
	c := NewConsole(s)
	_, ok := c.PageState("products")
	assert.False(t, ok)
}

func TestMeCacheRoundTrip(t *testing.T) {
	cache := MeCache{S: NewMemStore()}
	_, ok := cache.Get()
	assert.False(t, ok)

	cache.Put(domain.Profile{ID: 2, Name: "Admin", Email: "admin@optyshop.test", Role: "admin"})
	p, ok := cache.Get()
	require.True(t, ok)
	assert.Equal(t, "Admin", p.Name)
	assert.Equal(t, "admin", p.Role)
}

func TestSessions(t *testing.T) {
	c := NewConsole(NewMemStore())

	sid, err := c.CreateSession(time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	assert.True(t, c.SessionValid(sid))
	assert.False(t, c.SessionValid(""))
	assert.False(t, c.SessionValid("nope"))

	require.NoError(t, c.DeleteSession(sid))
	assert.False(t, c.SessionValid(sid))
}

func TestExpiredSessionIsInvalid(t *testing.T) {
	c := NewConsole(NewMemStore())
	sid, err := c.CreateSession(-time.Minute)
	require.NoError(t, err)
	assert.False(t, c.SessionValid(sid))
}
