package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type generateRequest struct {
	OpportunityId int64 `validate:"required,gt=0"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(generateRequest{OpportunityId: 10}))
}

func TestValidateRequestFailure(t *testing.T) {
	err := ValidateRequest(generateRequest{})
	assert.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "OpportunityId", validationErr.Field)
	assert.Equal(t, "required", validationErr.Rule)
}
