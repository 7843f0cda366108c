package models

import (
	"time"

	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
)

type PayoutModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	AgentID       string `gorm:"index;not null"`
	Amount        float64
	PaymentMethod string
	AdminNotes    string
	Status        domain.PayoutStatus
	CreatedAt     time.Time `gorm:"index"`
}

func (PayoutModel) TableName() string {
	return "payouts"
}

// ExpenseModel is the operating-expense row posted alongside every
// payout, category agent_commission.
type ExpenseModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Category    string `gorm:"index"`
	Amount      float64
	Description string
	AgentID     string `gorm:"index"`
	PayoutID    string `gorm:"index"`
	CreatedAt   time.Time
}

func (ExpenseModel) TableName() string {
	return "expenses"
}
