package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"registration-sheets-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestBuildKey(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		idSets [][]int64
		want   string
	}{
		{
			name:   "single set",
			prefix: "sheets:phases",
			idSets: [][]int64{{10}},
			want:   "sheets:phases:10",
		},
		{
			name:   "sorted regardless of input order",
			prefix: "sheets:fields",
			idSets: [][]int64{{3, 1, 2}},
			want:   "sheets:fields:1,2,3",
		},
		{
			name:   "multiple sets",
			prefix: "sheets:fields",
			idSets: [][]int64{{2, 1}, {55, 10}},
			want:   "sheets:fields:1,2:10,55",
		},
		{
			name:   "empty set",
			prefix: "sheets:phases",
			idSets: [][]int64{{}},
			want:   "sheets:phases:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildKey(tt.prefix, tt.idSets...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildKeyDoesNotMutateInput(t *testing.T) {
	ids := []int64{3, 1, 2}
	BuildKey("p", ids)
	assert.Equal(t, []int64{3, 1, 2}, ids)
}

func TestGetOrCompute(t *testing.T) {
	ctx := context.Background()
	c := NewTieredCache(nil, NewMemoryStore(time.Minute, time.Minute), logger.NewNopLogger())

	calls := 0
	supplier := func(context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	first, err := GetOrCompute(ctx, c, "k", time.Minute, supplier)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, first)
	assert.Equal(t, 1, calls)

	second, err := GetOrCompute(ctx, c, "k", time.Minute, supplier)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "second call must hit the cache")
}

func TestGetOrComputeSupplierError(t *testing.T) {
	ctx := context.Background()
	c := NewTieredCache(nil, NewMemoryStore(time.Minute, time.Minute), logger.NewNopLogger())

	wantErr := errors.New("boom")
	_, err := GetOrCompute(ctx, c, "k", time.Minute, func(context.Context) (int, error) {
		return 0, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	// The failure must not be cached.
	value, err := GetOrCompute(ctx, c, "k", time.Minute, func(context.Context) (int, error) {
		return 42, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 42, value)
}
