package models

import (
	"time"

	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
)

type AgentModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	Name           string
	Email          string `gorm:"uniqueIndex"`
	Phone          string
	ReferralCode   string `gorm:"uniqueIndex"`
	ParentAgentID  string `gorm:"index"`
	BaseCommission float64
	Status         domain.AgentStatus `gorm:"index"`

	TotalSales       int64
	TotalEarnings    float64
	AvailableBalance float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AgentModel) TableName() string {
	return "agents"
}
