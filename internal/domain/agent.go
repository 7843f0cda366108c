package domain

import "time"

type AgentStatus string

const (
	AgentActive   AgentStatus = "active"
	AgentInactive AgentStatus = "inactive"
)

// Agent is a reselling participant. ParentAgentID points at the
// recruiter; the pointers form a forest, never a cycle. Balances:
// AvailableBalance <= TotalEarnings and AvailableBalance >= 0 always.
// TotalEarnings only grows (order credits); AvailableBalance grows with
// credits and shrinks only through payouts.
type Agent struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	ReferralCode   string
	ParentAgentID  string
	BaseCommission float64
	Status         AgentStatus

	TotalSales       int64
	TotalEarnings    float64
	AvailableBalance float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

type AgentRepository interface {
	CreateAgent(agent *Agent) error
	GetAgentByID(agentID string) (*Agent, error)
	GetAgentByReferralCode(code string) (*Agent, error)
	UpdateAgentStatus(agentID string, status AgentStatus) error
	AssignParent(agentID, parentAgentID string) error
	// CreditOrderEarnings posts one order's commissions in a single
	// transaction: baseAmount to the selling agent (total_earnings,
	// available_balance, total_sales) and, when parentAgentID is set,
	// overrideAmount to the parent (balances only). Either both credits
	// land or neither does.
	CreditOrderEarnings(agentID string, baseAmount float64, parentAgentID string, overrideAmount float64) error
}
