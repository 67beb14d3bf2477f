package contract

import (
	"context"

	"registration-sheets-be/internal/entity"
)

type RegistrationMetaRepository interface {
	// FindAllByKey fetches one meta key for a whole registration id set.
	FindAllByKey(ctx context.Context, key string, registrationIds []int64) ([]*entity.MetaValue, error)

	// FindFieldValues projects the field_<id> answers of the given
	// registrations into typed rows, joined with their declaring field
	// configurations and ordered by display order. One query regardless of
	// set sizes.
	FindFieldValues(ctx context.Context, registrationIds, phaseIds []int64) ([]*entity.FieldValueRow, error)
}
