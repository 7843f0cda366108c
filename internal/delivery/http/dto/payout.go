package httpdto

import "time"

type RequestPayoutRequest struct {
	AgentID       string  `json:"agent_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	AdminNotes    string  `json:"admin_notes"`
}

type PayoutResponse struct {
	PayoutID      string    `json:"payout_id"`
	AgentID       string    `json:"agent_id"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	AdminNotes    string    `json:"admin_notes,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type PayoutListResponse struct {
	Payouts []PayoutResponse `json:"payouts"`
	Total   int64            `json:"total"`
}
