package cache

import (
	"context"
	"time"

	"registration-sheets-be/internal/pkg/logger"
)

// TieredCache consults the shared tier first and falls back to the local
// tier on miss or error. Writes always populate the local tier; a shared
// write failure is logged and swallowed so the local tier stays
// authoritative until the shared tier recovers.
type TieredCache struct {
	shared Store // may be nil when no shared tier is configured
	local  Store
	logger logger.ILogger
}

func NewTieredCache(shared Store, local Store, log logger.ILogger) *TieredCache {
	return &TieredCache{
		shared: shared,
		local:  local,
		logger: log,
	}
}

func (c *TieredCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c.shared != nil {
		raw, found, err := c.shared.Get(ctx, key)
		if err != nil {
			c.logger.Warn("cache", "shared tier read failed, falling back to local", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		} else if found {
			return true, unmarshal(raw, dest)
		}
	}

	raw, found, err := c.local.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	return true, unmarshal(raw, dest)
}

func (c *TieredCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := marshal(value)
	if err != nil {
		return err
	}

	// Local first: it is the safety net when the shared tier is down.
	if err := c.local.Set(ctx, key, raw, ttl); err != nil {
		return err
	}

	if c.shared != nil {
		if err := c.shared.Set(ctx, key, raw, ttl); err != nil {
			c.logger.Warn("cache", "shared tier write failed, local tier is authoritative", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}
	return nil
}

func (c *TieredCache) Clear(ctx context.Context) error {
	if err := c.local.Clear(ctx); err != nil {
		return err
	}
	if c.shared != nil {
		if err := c.shared.Clear(ctx); err != nil {
			c.logger.Warn("cache", "shared tier clear failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	return nil
}
