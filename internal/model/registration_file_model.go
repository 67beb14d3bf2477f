package model

// RegistrationFile is one uploaded attachment. GroupName ties the upload to
// its declaring file field; re-uploads create new rows, so the highest id per
// (registration, group) is the current file.
type RegistrationFile struct {
	Id             int64  `gorm:"primaryKey"`
	RegistrationId int64  `gorm:"not null;index"`
	GroupName      string `gorm:"type:varchar(128);not null"`
	FileName       string `gorm:"type:varchar(255);not null"`
}

func (RegistrationFile) TableName() string {
	return "registration_files"
}
