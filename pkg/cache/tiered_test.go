package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"registration-sheets-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

// brokenStore fails every operation, standing in for an unreachable shared
// tier.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}

func (brokenStore) Set(context.Context, string, string, time.Duration) error {
	return errors.New("connection refused")
}

func (brokenStore) Clear(context.Context) error {
	return errors.New("connection refused")
}

func TestTieredCacheSharedFirst(t *testing.T) {
	ctx := context.Background()
	shared := NewMemoryStore(time.Minute, time.Minute)
	local := NewMemoryStore(time.Minute, time.Minute)
	c := NewTieredCache(shared, local, logger.NewNopLogger())

	assert.NoError(t, c.Set(ctx, "k", "v1", time.Minute))

	// Another instance updates the shared tier; it must win over our stale
	// local copy.
	assert.NoError(t, shared.Set(ctx, "k", `"v2"`, time.Minute))

	var got string
	found, err := c.Get(ctx, "k", &got)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v2", got)
}

func TestTieredCacheFallsBackWhenSharedTierFails(t *testing.T) {
	ctx := context.Background()
	local := NewMemoryStore(time.Minute, time.Minute)
	c := NewTieredCache(brokenStore{}, local, logger.NewNopLogger())

	// Set succeeds through the local tier even though the shared write fails.
	assert.NoError(t, c.Set(ctx, "k", 7, time.Minute))

	var got int
	found, err := c.Get(ctx, "k", &got)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 7, got)
}

func TestTieredCacheWithoutSharedTier(t *testing.T) {
	ctx := context.Background()
	c := NewTieredCache(nil, NewMemoryStore(time.Minute, time.Minute), logger.NewNopLogger())

	assert.NoError(t, c.Set(ctx, "k", map[string]int{"a": 1}, time.Minute))

	var got map[string]int
	found, err := c.Get(ctx, "k", &got)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, map[string]int{"a": 1}, got)
}

func TestTieredCacheClear(t *testing.T) {
	ctx := context.Background()
	shared := NewMemoryStore(time.Minute, time.Minute)
	local := NewMemoryStore(time.Minute, time.Minute)
	c := NewTieredCache(shared, local, logger.NewNopLogger())

	assert.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	assert.NoError(t, c.Clear(ctx))

	var got string
	found, err := c.Get(ctx, "k", &got)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestTieredCacheMiss(t *testing.T) {
	ctx := context.Background()
	c := NewTieredCache(nil, NewMemoryStore(time.Minute, time.Minute), logger.NewNopLogger())

	var got string
	found, err := c.Get(ctx, "missing", &got)
	assert.NoError(t, err)
	assert.False(t, found)
}
