package implementation

import (
	"context"

	"registration-sheets-be/internal/entity"
	"registration-sheets-be/internal/mapper"
	"registration-sheets-be/internal/model"
	"registration-sheets-be/internal/repository/contract"
	"registration-sheets-be/internal/repository/specification"

	"gorm.io/gorm"
)

type RegistrationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RegistrationMapper
}

func NewRegistrationRepository(db *gorm.DB) contract.RegistrationRepository {
	return &RegistrationRepositoryImpl{
		db:     db,
		mapper: mapper.NewRegistrationMapper(),
	}
}

func (r *RegistrationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RegistrationRepositoryImpl) FindAllByPhaseIds(ctx context.Context, phaseIds []int64) ([]*entity.Registration, error) {
	var models []*model.Registration
	err := r.db.WithContext(ctx).
		Where("opportunity_id IN ?", phaseIds).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RegistrationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Registration, error) {
	var models []*model.Registration
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RegistrationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Registration{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
