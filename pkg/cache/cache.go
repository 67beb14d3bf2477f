package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Store is one cache tier, string-valued.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Clear(ctx context.Context) error
}

// Cache is the typed facade the pipeline components depend on. Values are
// serialized as JSON so both tiers can hold them.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Clear(ctx context.Context) error
}

// GetOrCompute returns the cached value under key, computing and storing it
// on a miss. Cache read/write errors degrade to computing fresh; they never
// fail the caller.
func GetOrCompute[T any](ctx context.Context, c Cache, key string, ttl time.Duration, supplier func(context.Context) (T, error)) (T, error) {
	var cached T
	if found, err := c.Get(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	value, err := supplier(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	_ = c.Set(ctx, key, value, ttl)
	return value, nil
}

// BuildKey builds a deterministic cache key from a named prefix and the id
// sets involved. Each set is sorted before stringifying, so two semantically
// identical requests always produce the same key regardless of the caller's
// input order.
func BuildKey(prefix string, idSets ...[]int64) string {
	parts := make([]string, 0, len(idSets)+1)
	parts = append(parts, prefix)
	for _, ids := range idSets {
		sorted := make([]int64, len(ids))
		copy(sorted, ids)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		strs := make([]string, len(sorted))
		for i, id := range sorted {
			strs[i] = strconv.FormatInt(id, 10)
		}
		parts = append(parts, strings.Join(strs, ","))
	}
	return strings.Join(parts, ":")
}

func marshal(value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("cache marshal: %w", err)
	}
	return string(data), nil
}

func unmarshal(raw string, dest any) error {
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("cache unmarshal: %w", err)
	}
	return nil
}
