package dto

import "registration-sheets-be/internal/entity"

type GenerateSheetsRequest struct {
	OpportunityId int64 `json:"opportunity_id" validate:"required,gt=0"`
}

// GeneratedSheet is one successfully produced document.
type GeneratedSheet struct {
	RegistrationId     int64                     `json:"registration_id"`
	RegistrationNumber string                    `json:"registration_number"`
	OutputPath         string                    `json:"output_path"`
	Document           *entity.ApplicantDocument `json:"-"`
}

// FailedSheet records a degraded applicant: the run continued without it.
type FailedSheet struct {
	RegistrationId     int64  `json:"registration_id"`
	RegistrationNumber string `json:"registration_number"`
	Reason             string `json:"reason"`
}

// SheetBatchResult summarizes one generation run.
type SheetBatchResult struct {
	RunId     string           `json:"run_id"`
	ParentId  int64            `json:"parent_id"`
	Generated []GeneratedSheet `json:"generated"`
	Failed    []FailedSheet    `json:"failed"`
}

// PhaseResponse is the inspection view of one resolved phase.
type PhaseResponse struct {
	Id       int64  `json:"id"`
	Name     string `json:"name"`
	ParentId *int64 `json:"parent_id,omitempty"`
}
