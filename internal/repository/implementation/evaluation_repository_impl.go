package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"registration-sheets-be/internal/entity"
	"registration-sheets-be/internal/model"
	"registration-sheets-be/internal/repository/contract"

	"gorm.io/gorm"
)

type EvaluationRepositoryImpl struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) contract.EvaluationRepository {
	return &EvaluationRepositoryImpl{db: db}
}

type sectionBlob struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type criterionBlob struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	SectionId string `json:"sid"`
}

func (r *EvaluationRepositoryImpl) FindConfigByPhaseId(ctx context.Context, phaseId int64) (*entity.EvaluationConfig, error) {
	var m model.EvaluationMethodConfiguration
	err := r.db.WithContext(ctx).
		Where("opportunity_id = ?", phaseId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	config := &entity.EvaluationConfig{PhaseId: phaseId}

	if len(m.Sections) > 0 {
		var sections []sectionBlob
		if err := json.Unmarshal(m.Sections, &sections); err != nil {
			return nil, fmt.Errorf("parse sections of phase %d: %w", phaseId, err)
		}
		for _, s := range sections {
			config.Sections = append(config.Sections, entity.EvaluationSection{Id: s.Id, Name: s.Name})
		}
	}

	if len(m.Criteria) > 0 {
		var criteria []criterionBlob
		if err := json.Unmarshal(m.Criteria, &criteria); err != nil {
			return nil, fmt.Errorf("parse criteria of phase %d: %w", phaseId, err)
		}
		for _, c := range criteria {
			config.Criteria = append(config.Criteria, entity.EvaluationCriterion{
				Id:        c.Id,
				Title:     c.Title,
				SectionId: c.SectionId,
			})
		}
	}

	return config, nil
}

func (r *EvaluationRepositoryImpl) FindAllByRegistrationAndPhaseIds(ctx context.Context, registrationIds, phaseIds []int64) ([]*entity.RawEvaluation, error) {
	var models []*model.RegistrationEvaluation
	err := r.db.WithContext(ctx).
		Where("registration_id IN ?", registrationIds).
		Where("opportunity_id IN ?", phaseIds).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	evaluations := make([]*entity.RawEvaluation, len(models))
	for i, m := range models {
		evaluations[i] = &entity.RawEvaluation{
			RegistrationId: m.RegistrationId,
			PhaseId:        m.OpportunityId,
			Result:         m.Result,
			Data:           json.RawMessage(m.EvaluationData),
		}
	}
	return evaluations, nil
}
