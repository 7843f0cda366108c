package kafka

// OrderEvent is the lifecycle event published to the order topic on
// every submit, approval and transition, keyed by order id.
type OrderEvent struct {
	EventType   string  `json:"event_type"`
	OrderID     string  `json:"order_id"`
	OrderNumber int64   `json:"order_number"`
	AgentID     string  `json:"agent_id,omitempty"`
	Status      string  `json:"status"`
	SalePrice   float64 `json:"sale_price"`
}

// CredentialEvent carries the "send credentials" notification for the
// transactional-email worker.
type CredentialEvent struct {
	TemplateID string            `json:"template_id"`
	Recipient  string            `json:"recipient"`
	Variables  map[string]string `json:"variables"`
}
