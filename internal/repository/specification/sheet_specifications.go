package specification

import "gorm.io/gorm"

// ByRegistrationIds filters child rows by their registration.
type ByRegistrationIds struct {
	RegistrationIds []int64
}

func (s ByRegistrationIds) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("registration_id IN ?", s.RegistrationIds)
}

// ByOpportunityIds filters by a set of phase (opportunity) ids.
type ByOpportunityIds struct {
	OpportunityIds []int64
}

func (s ByOpportunityIds) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("opportunity_id IN ?", s.OpportunityIds)
}

// ByMetaKey filters registration_meta rows by key.
type ByMetaKey struct {
	Key string
}

func (s ByMetaKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("key = ?", s.Key)
}

// ByMetaKeyPrefix filters registration_meta rows whose key starts with a
// prefix (the field_<id> convention).
type ByMetaKeyPrefix struct {
	Prefix string
}

func (s ByMetaKeyPrefix) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("key LIKE ?", s.Prefix+"%")
}
