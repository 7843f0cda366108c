package httpdto

import "time"

type CreateAgentRequest struct {
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Phone          string  `json:"phone"`
	ParentAgentID  string  `json:"parent_agent_id"`
	BaseCommission float64 `json:"base_commission" binding:"gte=0"`
}

type AssignParentRequest struct {
	ParentAgentID string `json:"parent_agent_id" binding:"required"`
}

type SetAgentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AgentResponse struct {
	AgentID        string  `json:"agent_id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	ReferralCode   string  `json:"referral_code"`
	ParentAgentID  string  `json:"parent_agent_id,omitempty"`
	BaseCommission float64 `json:"base_commission"`
	Status         string  `json:"status"`

	TotalSales       int64   `json:"total_sales"`
	TotalEarnings    float64 `json:"total_earnings"`
	AvailableBalance float64 `json:"available_balance"`

	CreatedAt time.Time `json:"created_at"`
}
