package domain

import "time"

type PayoutStatus string

const (
	PayoutCompleted PayoutStatus = "completed"
)

const ExpenseCategoryAgentCommission = "agent_commission"

// Payout is an immutable ledger entry. It is never edited after
// creation; the balance decrement happens in the same transaction.
type Payout struct {
	ID            string
	AgentID       string
	Amount        float64
	PaymentMethod string
	AdminNotes    string
	Status        PayoutStatus
	CreatedAt     time.Time
}

// Expense is the operating-expense counterpart row posted with every
// payout for accounting.
type Expense struct {
	ID          string
	Category    string
	Amount      float64
	Description string
	AgentID     string
	PayoutID    string
	CreatedAt   time.Time
}

// CommissionLiability is a derived admin-reconciliation view, never
// stored.
type CommissionLiability struct {
	AgentID          string     `json:"agent_id"`
	AgentName        string     `json:"agent_name"`
	AvailableBalance float64    `json:"available_balance"`
	LastPayoutAt     *time.Time `json:"last_payout_at,omitempty"`
}

type PayoutRepository interface {
	// ExecutePayout performs the payout atomically: lock the agent row,
	// verify the balance, insert the payout, decrement the balance and
	// post the expense row. A balance shortfall returns
	// *InsufficientBalanceError and writes nothing.
	ExecutePayout(payout *Payout) error
	GetPayoutsByAgentID(agentID string, page, limit int64) ([]*Payout, int64, error)
	GetCommissionLiabilities() ([]*CommissionLiability, error)
}
