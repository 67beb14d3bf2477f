package phase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"registration-sheets-be/internal/entity"
	"registration-sheets-be/internal/pkg/logger"
	"registration-sheets-be/internal/repository/unitofwork"
	"registration-sheets-be/pkg/cache"
)

var (
	// ErrNoRelevantPhases means the parent opportunity does not exist.
	ErrNoRelevantPhases = errors.New("no relevant phases resolvable")

	// ErrNoApplicants means neither the children nor the parent phase hold a
	// single registration. Fatal for a run.
	ErrNoApplicants = errors.New("no applicants found in any phase")
)

const hierarchyCachePrefix = "sheets:phases"

// Resolver computes the ordered set of phases relevant to a parent
// opportunity. Hierarchy lookups are memoized through the cache since the
// phase tree changes rarely.
type Resolver struct {
	uowFactory unitofwork.RepositoryFactory
	cache      cache.Cache
	cacheTTL   time.Duration
	logger     logger.ILogger
}

func NewResolver(uowFactory unitofwork.RepositoryFactory, c cache.Cache, cacheTTL time.Duration, log logger.ILogger) *Resolver {
	return &Resolver{
		uowFactory: uowFactory,
		cache:      c,
		cacheTTL:   cacheTTL,
		logger:     log,
	}
}

// ResolveRelevantPhases returns [parent, children...] with children in
// ascending id order. The placeholder phase at parentId+1 (the schema's
// "final results" stage) is always excluded. A parent without children
// resolves to a singleton set.
func (r *Resolver) ResolveRelevantPhases(ctx context.Context, parentId int64) ([]*entity.Phase, error) {
	key := cache.BuildKey(hierarchyCachePrefix, []int64{parentId})
	return cache.GetOrCompute(ctx, r.cache, key, r.cacheTTL, func(ctx context.Context) ([]*entity.Phase, error) {
		return r.loadRelevantPhases(ctx, parentId)
	})
}

func (r *Resolver) loadRelevantPhases(ctx context.Context, parentId int64) ([]*entity.Phase, error) {
	uow := r.uowFactory.NewUnitOfWork(ctx)
	phases, err := uow.OpportunityRepository().FindHierarchy(ctx, parentId)
	if err != nil {
		return nil, fmt.Errorf("resolve phases of opportunity %d: %w", parentId, err)
	}

	var parent *entity.Phase
	var children []*entity.Phase
	for _, p := range phases {
		if p.Id == parentId {
			parent = p
			continue
		}
		if p.Id == parentId+1 {
			// Placeholder stage, never a participating phase.
			continue
		}
		children = append(children, p)
	}

	if parent == nil {
		return nil, fmt.Errorf("opportunity %d: %w", parentId, ErrNoRelevantPhases)
	}

	sort.Slice(children, func(i, j int) bool { return children[i].Id < children[j].Id })

	relevant := make([]*entity.Phase, 0, len(children)+1)
	relevant = append(relevant, parent)
	relevant = append(relevant, children...)

	r.logger.Debug("phase", "resolved relevant phases", map[string]interface{}{
		"parent_id": parentId,
		"count":     len(relevant),
	})
	return relevant, nil
}

// ChooseApplicantPool picks the phase whose registrations drive the run:
// the first child phase (ascending id) holding at least one registration,
// falling back to the parent phase. Operates on the already-batched
// registration map, so it costs no extra round trip.
func ChooseApplicantPool(phases []*entity.Phase, registrationsByPhase map[int64][]*entity.Registration, parentId int64) ([]*entity.Registration, error) {
	for _, p := range phases {
		if p.Id == parentId {
			continue
		}
		if pool := registrationsByPhase[p.Id]; len(pool) > 0 {
			return pool, nil
		}
	}

	if pool := registrationsByPhase[parentId]; len(pool) > 0 {
		return pool, nil
	}

	return nil, fmt.Errorf("opportunity %d: %w", parentId, ErrNoApplicants)
}
