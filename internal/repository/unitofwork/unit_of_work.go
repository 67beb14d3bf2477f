package unitofwork

import (
	"context"

	"registration-sheets-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	OpportunityRepository() contract.OpportunityRepository
	RegistrationRepository() contract.RegistrationRepository
	RegistrationMetaRepository() contract.RegistrationMetaRepository
	EvaluationRepository() contract.EvaluationRepository
	RegistrationFileRepository() contract.RegistrationFileRepository
}
