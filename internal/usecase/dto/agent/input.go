package agentdto

type CreateAgentInput struct {
	Name           string
	Email          string
	Phone          string
	ParentAgentID  string
	BaseCommission float64
}
