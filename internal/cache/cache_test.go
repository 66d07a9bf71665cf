package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGet(t *testing.T) {
	c, err := New(8, time.Minute)
	require.NoError(t, err)

	_, ok := c.Get("appointments:barber")
	assert.False(t, ok)

	c.Put("appointments:barber", []string{"a", "b"})

	v, ok := c.Get("appointments:barber")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, v)
}

func TestTTLExpiry(t *testing.T) {
	c, err := New(8, 30*time.Second)
	require.NoError(t, err)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	current := base
	c.now = func() time.Time { return current }

	c.Put("clients", 42)

	current = base.Add(29 * time.Second)
	_, ok := c.Get("clients")
	assert.True(t, ok)

	current = base.Add(31 * time.Second)
	_, ok = c.Get("clients")
	assert.False(t, ok, "entry past its TTL must not be served")
}

func TestInvalidate(t *testing.T) {
	c, err := New(8, time.Minute)
	require.NoError(t, err)

	c.Put("services:haircut", 1)
	c.Invalidate("services:haircut")

	_, ok := c.Get("services:haircut")
	assert.False(t, ok)
}

func TestInvalidatePrefix(t *testing.T) {
	c, err := New(8, time.Minute)
	require.NoError(t, err)

	c.Put("schedules:barber:b1", 1)
	c.Put("schedules:esthetician:e1", 2)
	c.Put("clients", 3)

	c.InvalidatePrefix("schedules:")

	_, ok := c.Get("schedules:barber:b1")
	assert.False(t, ok)
	_, ok = c.Get("schedules:esthetician:e1")
	assert.False(t, ok)

	_, ok = c.Get("clients")
	assert.True(t, ok, "keys outside the prefix must survive")
}

func TestZeroSizeFallsBack(t *testing.T) {
	c, err := New(0, time.Minute)
	require.NoError(t, err)

	c.Put("k", "v")
	_, ok := c.Get("k")
	assert.True(t, ok)
}
