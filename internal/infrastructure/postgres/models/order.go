package models

import (
	"time"

	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
)

type OrderModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	OrderNumber   int64  `gorm:"uniqueIndex;autoIncrement"`
	CardDesignID  string `gorm:"type:uuid"`
	AgentID       string `gorm:"index"`
	CustomerID    string
	CustomerName  string
	CustomerEmail string `gorm:"index"`
	CustomerPhone string
	PortfolioSlug string `gorm:"index"`

	SalePrice          float64
	MSPAtOrder         float64 `gorm:"column:msp_at_order"`
	CommissionAmount   float64
	OverrideCommission float64
	IsDirectSale       bool
	IsBelowMSP         bool `gorm:"column:is_below_msp"`

	Status          domain.OrderStatus `gorm:"index:idx_orders_status"`
	PaymentStatus   domain.PaymentStatus
	TrackingNumber  string
	RejectionReason string

	ApprovedAt  *time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	PaidAt      *time.Time
	CreatedAt   time.Time `gorm:"index:idx_orders_created_at"`
	UpdatedAt   time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
