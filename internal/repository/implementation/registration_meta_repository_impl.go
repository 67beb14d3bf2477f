package implementation

import (
	"context"

	"registration-sheets-be/internal/entity"
	"registration-sheets-be/internal/model"
	"registration-sheets-be/internal/repository/contract"
	"registration-sheets-be/internal/repository/specification"

	"gorm.io/gorm"
)

type RegistrationMetaRepositoryImpl struct {
	db *gorm.DB
}

func NewRegistrationMetaRepository(db *gorm.DB) contract.RegistrationMetaRepository {
	return &RegistrationMetaRepositoryImpl{db: db}
}

func (r *RegistrationMetaRepositoryImpl) FindAllByKey(ctx context.Context, key string, registrationIds []int64) ([]*entity.MetaValue, error) {
	var models []*model.RegistrationMeta
	query := r.db.WithContext(ctx)
	query = specification.ByMetaKey{Key: key}.Apply(query)
	query = specification.ByRegistrationIds{RegistrationIds: registrationIds}.Apply(query)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	values := make([]*entity.MetaValue, len(models))
	for i, m := range models {
		values[i] = &entity.MetaValue{
			RegistrationId: m.RegistrationId,
			Key:            m.Key,
			Value:          m.Value,
		}
	}
	return values, nil
}

// FindFieldValues resolves the field_<id> key convention at query time: meta
// rows are joined against their declaring field configuration so callers only
// ever see typed, labeled, ordered values.
func (r *RegistrationMetaRepositoryImpl) FindFieldValues(ctx context.Context, registrationIds, phaseIds []int64) ([]*entity.FieldValueRow, error) {
	var rows []*entity.FieldValueRow
	err := r.db.WithContext(ctx).
		Table("registration_meta AS rm").
		Select(`rm.registration_id AS registration_id,
			fc.opportunity_id AS phase_id,
			fc.title AS label,
			fc.display_order AS "order",
			rm.value AS raw_value`).
		Joins("JOIN registration_field_configurations fc ON rm.key = ? || fc.id", model.FieldMetaPrefix).
		Where("rm.registration_id IN ?", registrationIds).
		Where("fc.opportunity_id IN ?", phaseIds).
		Order("fc.opportunity_id ASC, fc.display_order ASC, fc.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
