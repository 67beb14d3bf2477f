package contract

import (
	"context"

	"registration-sheets-be/internal/entity"
	"registration-sheets-be/internal/repository/specification"
)

type OpportunityRepository interface {
	// FindHierarchy returns the parent phase together with all its children
	// in one query, ordered by ascending id.
	FindHierarchy(ctx context.Context, parentId int64) ([]*entity.Phase, error)

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Phase, error)
}
