package implementation

import (
	"context"

	"registration-sheets-be/internal/entity"
	"registration-sheets-be/internal/repository/contract"

	"gorm.io/gorm"
)

type RegistrationFileRepositoryImpl struct {
	db *gorm.DB
}

func NewRegistrationFileRepository(db *gorm.DB) contract.RegistrationFileRepository {
	return &RegistrationFileRepositoryImpl{db: db}
}

func (r *RegistrationFileRepositoryImpl) FindAllByRegistrationIds(ctx context.Context, registrationIds []int64) ([]*entity.AttachmentFile, error) {
	var rows []*entity.AttachmentFile
	err := r.db.WithContext(ctx).
		Table("registration_files AS rf").
		Select(`rf.id,
			rf.registration_id AS registration_id,
			reg.opportunity_id AS phase_id,
			rf.group_name AS group_name,
			rf.file_name AS file_name`).
		Joins("JOIN registrations reg ON reg.id = rf.registration_id").
		Where("rf.registration_id IN ?", registrationIds).
		Order("rf.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
