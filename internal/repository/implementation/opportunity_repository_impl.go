package implementation

import (
	"context"
	"errors"

	"registration-sheets-be/internal/entity"
	"registration-sheets-be/internal/mapper"
	"registration-sheets-be/internal/model"
	"registration-sheets-be/internal/repository/contract"
	"registration-sheets-be/internal/repository/specification"

	"gorm.io/gorm"
)

type OpportunityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PhaseMapper
}

func NewOpportunityRepository(db *gorm.DB) contract.OpportunityRepository {
	return &OpportunityRepositoryImpl{
		db:     db,
		mapper: mapper.NewPhaseMapper(),
	}
}

func (r *OpportunityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *OpportunityRepositoryImpl) FindHierarchy(ctx context.Context, parentId int64) ([]*entity.Phase, error) {
	var models []*model.Opportunity
	err := r.db.WithContext(ctx).
		Where("id = ? OR parent_id = ?", parentId, parentId).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *OpportunityRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Phase, error) {
	var m model.Opportunity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
