package model

// RegistrationMeta holds the dynamic answers of a registration. Field answers
// live under "field_<configId>" keys; the back-reference to the previous
// phase's registration lives under MetaKeyPreviousPhaseRegistration.
type RegistrationMeta struct {
	Id             int64  `gorm:"primaryKey"`
	RegistrationId int64  `gorm:"not null;index:idx_registration_meta_key,priority:1"`
	Key            string `gorm:"type:varchar(128);not null;index:idx_registration_meta_key,priority:2"`
	Value          string `gorm:"type:text"`
}

func (RegistrationMeta) TableName() string {
	return "registration_meta"
}

const (
	// MetaKeyPreviousPhaseRegistration is the explicit parent-registration
	// back-reference written by the front end when a phase is advanced.
	MetaKeyPreviousPhaseRegistration = "previousPhaseRegistrationId"

	// FieldMetaPrefix prefixes every dynamic field answer key.
	FieldMetaPrefix = "field_"
)
