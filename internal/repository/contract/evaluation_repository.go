package contract

import (
	"context"

	"registration-sheets-be/internal/entity"
)

type EvaluationRepository interface {
	// FindConfigByPhaseId loads and parses a phase's rubric configuration.
	// Returns nil when the phase has no evaluation method configured.
	FindConfigByPhaseId(ctx context.Context, phaseId int64) (*entity.EvaluationConfig, error)

	// FindAllByRegistrationAndPhaseIds fetches every stored evaluation for
	// the given registration and phase sets in one query.
	FindAllByRegistrationAndPhaseIds(ctx context.Context, registrationIds, phaseIds []int64) ([]*entity.RawEvaluation, error)
}
