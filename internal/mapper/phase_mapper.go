package mapper

import (
	"registration-sheets-be/internal/entity"
	"registration-sheets-be/internal/model"
)

type PhaseMapper struct{}

func NewPhaseMapper() *PhaseMapper {
	return &PhaseMapper{}
}

func (m *PhaseMapper) ToEntity(o *model.Opportunity) *entity.Phase {
	if o == nil {
		return nil
	}
	return &entity.Phase{
		Id:       o.Id,
		Name:     o.Name,
		ParentId: o.ParentId,
	}
}

func (m *PhaseMapper) ToEntities(opportunities []*model.Opportunity) []*entity.Phase {
	phases := make([]*entity.Phase, len(opportunities))
	for i, o := range opportunities {
		phases[i] = m.ToEntity(o)
	}
	return phases
}
