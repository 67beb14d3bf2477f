package contract

import (
	"context"

	"registration-sheets-be/internal/entity"
)

type RegistrationFileRepository interface {
	// FindAllByRegistrationIds fetches every upload of the given
	// registrations in one query, joined with the registration's phase.
	FindAllByRegistrationIds(ctx context.Context, registrationIds []int64) ([]*entity.AttachmentFile, error)
}
