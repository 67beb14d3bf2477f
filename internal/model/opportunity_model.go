package model

// Opportunity is a phase node. Child phases carry the parent's id in
// parent_id; the row at parent_id+1 is the "final results" placeholder the
// importing system creates and is never a real phase.
type Opportunity struct {
	Id       int64  `gorm:"primaryKey"`
	Name     string `gorm:"type:varchar(255);not null"`
	ParentId *int64 `gorm:"index"`
}

func (Opportunity) TableName() string {
	return "opportunities"
}
