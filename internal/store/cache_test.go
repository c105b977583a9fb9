package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheHitAndMiss(t *testing.T) {
	c := New[string](30 * time.Minute)

	_, ok := c.Get("tokyo")
	assert.False(t, ok)

	c.Put("tokyo", "226396")
	got, ok := c.Get("tokyo")
	require.True(t, ok)
	assert.Equal(t, "226396", got)
}

func TestCacheFreshnessBoundary(t *testing.T) {
	base := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	clock := base

	c := New[string](30 * time.Minute)
	c.now = func() time.Time { return clock }

	c.Put("tokyo", "226396")

	clock = base.Add(29 * time.Minute)
	_, ok := c.Get("tokyo")
	assert.True(t, ok, "entry younger than maxAge is fresh")

	clock = base.Add(31 * time.Minute)
	_, ok = c.Get("tokyo")
	assert.False(t, ok, "entry older than maxAge is a miss")
}

func TestCacheExactlyMaxAgeIsStale(t *testing.T) {
	base := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	clock := base

	c := New[string](30 * time.Minute)
	c.now = func() time.Time { return clock }

	c.Put("tokyo", "226396")

	clock = base.Add(30 * time.Minute)
	_, ok := c.Get("tokyo")
	assert.False(t, ok)
}

func TestCachePutOverwritesAndRefreshes(t *testing.T) {
	base := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	clock := base

	c := New[string](30 * time.Minute)
	c.now = func() time.Time { return clock }

	c.Put("tokyo", "old")
	clock = base.Add(29 * time.Minute)
	c.Put("tokyo", "new")

	clock = base.Add(45 * time.Minute)
	got, ok := c.Get("tokyo")
	require.True(t, ok)
	assert.Equal(t, "new", got)
	assert.Equal(t, 1, c.Len())
}

func TestCacheStaleEntryStaysStored(t *testing.T) {
	base := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	clock := base

	c := New[int](time.Minute)
	c.now = func() time.Time { return clock }

	c.Put("a", 1)
	clock = base.Add(2 * time.Minute)

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len(), "stale entries are ignored, not evicted")
}
