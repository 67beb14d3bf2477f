package mapper

import (
	"registration-sheets-be/internal/entity"
	"registration-sheets-be/internal/model"
)

type RegistrationMapper struct{}

func NewRegistrationMapper() *RegistrationMapper {
	return &RegistrationMapper{}
}

func (m *RegistrationMapper) ToEntity(r *model.Registration) *entity.Registration {
	if r == nil {
		return nil
	}
	return &entity.Registration{
		Id:        r.Id,
		Number:    r.Number,
		AgentId:   r.AgentId,
		AgentName: r.AgentName,
		Status:    r.Status,
		PhaseId:   r.OpportunityId,
	}
}

func (m *RegistrationMapper) ToEntities(registrations []*model.Registration) []*entity.Registration {
	entities := make([]*entity.Registration, len(registrations))
	for i, r := range registrations {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
