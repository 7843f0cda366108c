package orderdto

type SubmitOrderInput struct {
	CardDesignID  string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	SalePrice     float64
	MSPAtOrder    float64
	AgentID       string
	ReferralCode  string
	PaymentStatus string
}

// TransitionExtra carries the optional per-target payload of a status
// transition: a tracking number for shipped, a reason for rejected.
type TransitionExtra struct {
	TrackingNumber string
	Reason         string
}
