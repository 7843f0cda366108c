package domain

import "time"

type OrderStatus string

const (
	StatusPendingApproval OrderStatus = "pending_approval"
	StatusApproved        OrderStatus = "approved"
	StatusPrinting        OrderStatus = "printing"
	StatusPrinted         OrderStatus = "printed"
	StatusReadyToShip     OrderStatus = "ready_to_ship"
	StatusShipped         OrderStatus = "shipped"
	StatusDelivered       OrderStatus = "delivered"
	StatusPaid            OrderStatus = "paid"
	StatusRejected        OrderStatus = "rejected"
	StatusCancelled       OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending     PaymentStatus = "pending"
	PaymentAdvancePaid PaymentStatus = "advance_paid"
	PaymentPaid        PaymentStatus = "paid"
	PaymentCOD         PaymentStatus = "cod"
)

// statusTransitions is the canonical fulfillment graph. Anything not
// listed is an illegal transition. Cancellation is reachable only
// before production starts; rejection additionally from approved, which
// is the admin-tool path.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPendingApproval: {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved:        {StatusPrinting, StatusRejected, StatusCancelled},
	StatusPrinting:        {StatusPrinted},
	StatusPrinted:         {StatusReadyToShip},
	StatusReadyToShip:     {StatusShipped},
	StatusShipped:         {StatusDelivered},
	StatusDelivered:       {StatusPaid},
	StatusPaid:            {},
	StatusRejected:        {},
	StatusCancelled:       {},
}

func CanTransition(from, to OrderStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func AllowedTransitions(from OrderStatus) []OrderStatus {
	next := statusTransitions[from]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}

func (s OrderStatus) IsTerminal() bool {
	next, ok := statusTransitions[s]
	return ok && len(next) == 0
}

func (s OrderStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanSetPaymentStatus validates the payment label lifecycle. It is
// independent of the fulfillment graph: an order can be marked cod
// while still printing. cod is settable any time before paid, covering
// an advance payment whose remainder is collected on delivery.
func CanSetPaymentStatus(from, to PaymentStatus) bool {
	switch from {
	case PaymentPending:
		return to == PaymentAdvancePaid || to == PaymentPaid || to == PaymentCOD
	case PaymentAdvancePaid:
		return to == PaymentPaid || to == PaymentCOD
	case PaymentCOD:
		return to == PaymentPaid
	default:
		return false
	}
}

type Order struct {
	ID            string
	OrderNumber   int64
	CardDesignID  string
	AgentID       string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PortfolioSlug string

	SalePrice          float64
	MSPAtOrder         float64
	CommissionAmount   float64
	OverrideCommission float64
	IsDirectSale       bool
	IsBelowMSP         bool

	Status          OrderStatus
	PaymentStatus   PaymentStatus
	TrackingNumber  string
	RejectionReason string

	ApprovedAt  *time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OrderFilters struct {
	Statuses []OrderStatus
	DateFrom time.Time
	DateTo   time.Time
}

// StatusChange is the payload of a single compare-and-swap status
// write. From is the expected current status; the repository stamps the
// milestone timestamp matching To in the same statement.
type StatusChange struct {
	From            OrderStatus
	To              OrderStatus
	TrackingNumber  string
	RejectionReason string
	CustomerID      string
	PortfolioSlug   string
}

type OrderRepository interface {
	CreateOrder(order *Order) error
	GetOrderByID(orderID string) (*Order, error)
	ApplyStatusChange(orderID string, change StatusChange) error
	SetPaymentStatus(orderID string, from, to PaymentStatus) error
	PortfolioSlugExists(slug string) (bool, error)
	GetOrdersByAgentID(agentID string, page, limit int64, sortBy, sortOrder string, filters OrderFilters) ([]*Order, int64, error)
	FindStalePendingOrders(olderThan time.Time) ([]*Order, error)
}
