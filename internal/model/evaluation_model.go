package model

import "gorm.io/datatypes"

// EvaluationMethodConfiguration carries a phase's rubric as two JSON blobs: a
// list of sections and a list of criteria referencing section ids.
type EvaluationMethodConfiguration struct {
	Id            int64          `gorm:"primaryKey"`
	OpportunityId int64          `gorm:"not null;uniqueIndex"`
	Type          string         `gorm:"type:varchar(32)"`
	Sections      datatypes.JSON `gorm:"type:jsonb"`
	Criteria      datatypes.JSON `gorm:"type:jsonb"`
}

func (EvaluationMethodConfiguration) TableName() string {
	return "evaluation_method_configurations"
}

// RegistrationEvaluation is one evaluator's stored result for a registration.
// Result is the persisted aggregate score and stays authoritative even when
// individual criteria are re-scored.
type RegistrationEvaluation struct {
	Id             int64          `gorm:"primaryKey"`
	RegistrationId int64          `gorm:"not null;index:idx_registration_evaluation,priority:1"`
	OpportunityId  int64          `gorm:"not null;index:idx_registration_evaluation,priority:2"`
	Result         string         `gorm:"type:varchar(32)"`
	EvaluationData datatypes.JSON `gorm:"type:jsonb"`
	Status         int            `gorm:"not null;default:0"`
}

func (RegistrationEvaluation) TableName() string {
	return "registration_evaluations"
}
