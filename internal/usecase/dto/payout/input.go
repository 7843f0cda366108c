package payoutdto

type RequestPayoutInput struct {
	AgentID       string
	Amount        float64
	PaymentMethod string
	AdminNotes    string
}
