package contract

import (
	"context"

	"registration-sheets-be/internal/entity"
	"registration-sheets-be/internal/repository/specification"
)

type RegistrationRepository interface {
	// FindAllByPhaseIds fetches every registration of every given phase in a
	// single set-keyed query.
	FindAllByPhaseIds(ctx context.Context, phaseIds []int64) ([]*entity.Registration, error)

	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Registration, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
