package model

import "time"

type Registration struct {
	Id            int64  `gorm:"primaryKey"`
	Number        string `gorm:"type:varchar(24);not null;index"`
	AgentId       int64  `gorm:"not null;index"`
	AgentName     string `gorm:"type:varchar(255)"`
	Status        int    `gorm:"not null;default:0"`
	OpportunityId int64  `gorm:"not null;index"`
	CreatedAt     time.Time
}

func (Registration) TableName() string {
	return "registrations"
}
