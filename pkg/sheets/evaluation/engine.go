package evaluation

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"registration-sheets-be/internal/entity"
	"registration-sheets-be/internal/pkg/logger"
	"registration-sheets-be/internal/repository/unitofwork"
	"registration-sheets-be/pkg/cache"
)

const configCachePrefix = "sheets:evalconfig"

// Reserved payload keys. Everything else is treated as a criterion id.
const (
	keyParecer = "obs"
	keyStatus  = "status"
)

// Engine interprets a phase's evaluation configuration and an applicant's raw
// evaluation payload into a structured score report. Configurations are
// cached (they rarely change); computed results never are, so score edits are
// always visible on the next run.
type Engine struct {
	uowFactory unitofwork.RepositoryFactory
	cache      cache.Cache
	cacheTTL   time.Duration
	logger     logger.ILogger
}

func NewEngine(uowFactory unitofwork.RepositoryFactory, c cache.Cache, cacheTTL time.Duration, log logger.ILogger) *Engine {
	return &Engine{
		uowFactory: uowFactory,
		cache:      c,
		cacheTTL:   cacheTTL,
		logger:     log,
	}
}

// LoadConfig returns the phase's rubric, or nil when the phase has none.
func (e *Engine) LoadConfig(ctx context.Context, phaseId int64) (*entity.EvaluationConfig, error) {
	key := cache.BuildKey(configCachePrefix, []int64{phaseId})
	return cache.GetOrCompute(ctx, e.cache, key, e.cacheTTL, func(ctx context.Context) (*entity.EvaluationConfig, error) {
		uow := e.uowFactory.NewUnitOfWork(ctx)
		return uow.EvaluationRepository().FindConfigByPhaseId(ctx, phaseId)
	})
}

// ParsePayload turns a raw evaluation row into a tagged payload. The "obs"
// key is the free-text opinion, "status" is advisory, every remaining key is
// a criterion score. The kind is decided once here instead of branching on
// key shapes downstream.
func ParsePayload(row *entity.RawEvaluation) *entity.EvaluationPayload {
	payload := &entity.EvaluationPayload{
		Kind:   entity.PayloadUnevaluated,
		Scores: make(map[string]string),
	}
	if row == nil {
		return payload
	}

	if len(row.Data) > 0 {
		var fields map[string]any
		if err := json.Unmarshal(row.Data, &fields); err == nil {
			for k, v := range fields {
				switch k {
				case keyParecer:
					payload.Parecer = asString(v)
				case keyStatus:
					payload.Status = asString(v)
				default:
					payload.Scores[k] = asString(v)
				}
			}
		}
	}

	total, numeric := parseTotal(row.Result)

	switch {
	case len(payload.Scores) > 0:
		payload.Kind = entity.PayloadTechnical
		// The persisted aggregate is authoritative; criteria may have been
		// partially re-scored without re-deriving the rubric.
		payload.Total = total
	case numeric:
		payload.Kind = entity.PayloadSimplified
		payload.Total = total
	}

	return payload
}

// Evaluate builds the score report for one (registration, phase) pair.
// row may be nil (registration not evaluated in that phase).
func (e *Engine) Evaluate(row *entity.RawEvaluation, config *entity.EvaluationConfig) *entity.EvaluationResult {
	payload := ParsePayload(row)

	result := &entity.EvaluationResult{
		Parecer: payload.Parecer,
		Total:   payload.Total,
	}

	if payload.Kind == entity.PayloadSimplified {
		result.HasSimplified = true
		return result
	}
	if payload.Kind == entity.PayloadUnevaluated {
		return result
	}

	consumed := make(map[string]bool)
	if config != nil {
		for _, section := range config.Sections {
			scored := entity.ScoredSection{Title: section.Name}
			for _, criterion := range config.Criteria {
				if criterion.SectionId != section.Id {
					continue
				}
				score, ok := payload.Scores[criterion.Id]
				if !ok {
					continue
				}
				consumed[criterion.Id] = true
				scored.Criteria = append(scored.Criteria, entity.CriterionScore{
					Label: criterion.Title,
					Score: score,
				})
			}
			if len(scored.Criteria) > 0 {
				result.Sections = append(result.Sections, scored)
			}
		}
	}

	// Unmatched criterion ids are tolerated: emitted with the raw key as a
	// degraded label, never dropped.
	var orphans []entity.CriterionScore
	for _, id := range sortedKeys(payload.Scores) {
		if consumed[id] {
			continue
		}
		orphans = append(orphans, entity.CriterionScore{
			Label: id,
			Score: payload.Scores[id],
		})
	}
	if len(orphans) > 0 {
		result.Sections = append(result.Sections, entity.ScoredSection{Criteria: orphans})
	}

	result.HasTechnical = len(result.Sections) > 0
	return result
}

func parseTotal(result string) (float64, bool) {
	total, err := strconv.ParseFloat(result, 64)
	if err != nil {
		return 0, false
	}
	return total, true
}

func asString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		encoded, _ := json.Marshal(value)
		return string(encoded)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Map iteration order would make reruns non-deterministic.
	sort.Strings(keys)
	return keys
}
