package commission

import (
	"math"

	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
)

// Result holds the amounts frozen onto an order at creation. They are
// never recomputed by later transitions.
type Result struct {
	CommissionAmount   float64
	OverrideCommission float64
	IsBelowMSP         bool
}

// Calculator computes agent commission and the one-level parent
// override. The hierarchy is flat two-tier: ancestry above the direct
// parent is never walked.
type Calculator struct {
	overrideRate float64
}

func NewCalculator(overrideRate float64) *Calculator {
	return &Calculator{overrideRate: overrideRate}
}

// Calculate freezes the commission for a sale. agent is nil for a
// direct sale, which carries zero commission. parent is the agent's
// recruiter (nil when none). The agent's BaseCommission is a flat
// per-card amount, independent of markup over MSP; a below-MSP sale
// keeps full commission, the flag only gates manual approval. The
// parent override is overrideRate of this order's sale price, per
// order, so the ledger stays auditable per transaction.
func (c *Calculator) Calculate(salePrice, mspAtOrder float64, agent, parent *domain.Agent) Result {
	if agent == nil {
		return Result{IsBelowMSP: salePrice < mspAtOrder}
	}

	result := Result{
		CommissionAmount: round2(agent.BaseCommission),
		IsBelowMSP:       salePrice < mspAtOrder,
	}

	if parent != nil {
		result.OverrideCommission = round2(c.overrideRate * salePrice)
	}

	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
