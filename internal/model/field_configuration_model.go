package model

// RegistrationFieldConfiguration declares one dynamic form field of a phase,
// including the order it is displayed in.
type RegistrationFieldConfiguration struct {
	Id            int64  `gorm:"primaryKey"`
	OpportunityId int64  `gorm:"not null;index"`
	Title         string `gorm:"type:varchar(255);not null"`
	DisplayOrder  int    `gorm:"not null;default:0"`
	FieldType     string `gorm:"type:varchar(64)"`
}

func (RegistrationFieldConfiguration) TableName() string {
	return "registration_field_configurations"
}
