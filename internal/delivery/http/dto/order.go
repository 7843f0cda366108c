package httpdto

import "time"

type SubmitOrderRequest struct {
	CardDesignID  string  `json:"card_design_id" binding:"required"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerEmail string  `json:"customer_email" binding:"required,email"`
	CustomerPhone string  `json:"customer_phone"`
	SalePrice     float64 `json:"sale_price" binding:"required,gt=0"`
	MSPAtOrder    float64 `json:"msp_at_order"`
	AgentID       string  `json:"agent_id"`
	ReferralCode  string  `json:"referral_code"`
	PaymentStatus string  `json:"payment_status"`
}

type SubmitOrderResponse struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

type TransitionOrderRequest struct {
	Status         string `json:"status" binding:"required"`
	TrackingNumber string `json:"tracking_number"`
	Reason         string `json:"reason"`
}

type RejectOrderRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type SetPaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

type ApproveOrderResponse struct {
	CustomerID   string `json:"customer_id"`
	Slug         string `json:"slug"`
	IsNewAccount bool   `json:"is_new_account"`
}

type OrderResponse struct {
	OrderID       string `json:"order_id"`
	OrderNumber   string `json:"order_number"`
	CardDesignID  string `json:"card_design_id"`
	AgentID       string `json:"agent_id,omitempty"`
	CustomerID    string `json:"customer_id,omitempty"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	PortfolioSlug string `json:"portfolio_slug,omitempty"`

	SalePrice          float64 `json:"sale_price"`
	MSPAtOrder         float64 `json:"msp_at_order"`
	CommissionAmount   float64 `json:"commission_amount"`
	OverrideCommission float64 `json:"override_commission"`
	IsDirectSale       bool    `json:"is_direct_sale"`
	IsBelowMSP         bool    `json:"is_below_msp"`

	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`
	TrackingNumber  string `json:"tracking_number,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`

	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	ShippedAt   *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
	Page   int64           `json:"page"`
	Limit  int64           `json:"limit"`
}
