package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	payoutdto "github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/dto/payout"
	"github.com/stretchr/testify/require"
)

// fakeLedgerStore backs both repository interfaces with one locked map
// so payouts observe the same serialization guarantee the database
// row lock provides.
type fakeLedgerStore struct {
	mu      sync.Mutex
	agents  map[string]*domain.Agent
	payouts []*domain.Payout
	expense int

	// parentCreditErr fails the override leg of a posting; the whole
	// posting must roll back, matching the transactional contract.
	parentCreditErr error
}

func newFakeLedgerStore(agents ...*domain.Agent) *fakeLedgerStore {
	s := &fakeLedgerStore{agents: make(map[string]*domain.Agent)}
	for _, a := range agents {
		cp := *a
		s.agents[a.ID] = &cp
	}
	return s
}

func (s *fakeLedgerStore) CreateAgent(agent *domain.Agent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *agent
	s.agents[agent.ID] = &cp
	return nil
}

func (s *fakeLedgerStore) GetAgentByID(agentID string) (*domain.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.agents[agentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *fakeLedgerStore) GetAgentByReferralCode(code string) (*domain.Agent, error) {
	return nil, domain.ErrNotFound
}

func (s *fakeLedgerStore) UpdateAgentStatus(agentID string, status domain.AgentStatus) error {
	return nil
}

func (s *fakeLedgerStore) AssignParent(agentID, parentAgentID string) error {
	return nil
}

func (s *fakeLedgerStore) CreditOrderEarnings(agentID string, baseAmount float64, parentAgentID string, overrideAmount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.agents[agentID]
	if !ok {
		return domain.ErrNotFound
	}

	var p *domain.Agent
	if parentAgentID != "" {
		p, ok = s.agents[parentAgentID]
		if !ok {
			return domain.ErrNotFound
		}
		if s.parentCreditErr != nil {
			return s.parentCreditErr
		}
	}

	a.TotalEarnings += baseAmount
	a.AvailableBalance += baseAmount
	a.TotalSales++
	if p != nil {
		p.TotalEarnings += overrideAmount
		p.AvailableBalance += overrideAmount
	}
	return nil
}

func (s *fakeLedgerStore) ExecutePayout(payout *domain.Payout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.agents[payout.AgentID]
	if !ok {
		return domain.ErrNotFound
	}
	if a.AvailableBalance < payout.Amount {
		return &domain.InsufficientBalanceError{
			Requested: payout.Amount,
			Available: a.AvailableBalance,
		}
	}
	cp := *payout
	s.payouts = append(s.payouts, &cp)
	a.AvailableBalance -= payout.Amount
	s.expense++
	return nil
}

func (s *fakeLedgerStore) GetPayoutsByAgentID(agentID string, page, limit int64) ([]*domain.Payout, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Payout
	for _, p := range s.payouts {
		if p.AgentID == agentID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (s *fakeLedgerStore) GetCommissionLiabilities() ([]*domain.CommissionLiability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.CommissionLiability
	for _, a := range s.agents {
		liability := &domain.CommissionLiability{
			AgentID:          a.ID,
			AgentName:        a.Name,
			AvailableBalance: a.AvailableBalance,
		}
		for _, p := range s.payouts {
			if p.AgentID == a.ID && (liability.LastPayoutAt == nil || p.CreatedAt.After(*liability.LastPayoutAt)) {
				created := p.CreatedAt
				liability.LastPayoutAt = &created
			}
		}
		out = append(out, liability)
	}
	return out, nil
}

func newLedger(store *fakeLedgerStore) *DefaultLedgerUsecase {
	return NewDefaultLedgerUsecase(store, store, nil, time.Minute, nil)
}

func TestCreditOrderRoutesOverrideToParent(t *testing.T) {
	parent := &domain.Agent{ID: "p1", Name: "Parent"}
	seller := &domain.Agent{ID: "a1", Name: "Seller", ParentAgentID: "p1"}
	other := &domain.Agent{ID: "x1", Name: "Bystander"}
	store := newFakeLedgerStore(parent, seller, other)
	uc := newLedger(store)

	order := &domain.Order{
		ID:                 "o1",
		AgentID:            "a1",
		SalePrice:          999,
		CommissionAmount:   150,
		OverrideCommission: 19.98,
		Status:             domain.StatusDelivered,
	}
	require.NoError(t, uc.CreditOrder(order))

	a, _ := store.GetAgentByID("a1")
	require.Equal(t, 150.0, a.AvailableBalance)
	require.Equal(t, 150.0, a.TotalEarnings)
	require.Equal(t, int64(1), a.TotalSales)

	p, _ := store.GetAgentByID("p1")
	require.Equal(t, 19.98, p.AvailableBalance)
	require.Zero(t, p.TotalSales)

	x, _ := store.GetAgentByID("x1")
	require.Zero(t, x.AvailableBalance)
}

func TestCreditOrderFailedOverrideRollsBackBaseCredit(t *testing.T) {
	parent := &domain.Agent{ID: "p1", Name: "Parent"}
	seller := &domain.Agent{ID: "a1", Name: "Seller", ParentAgentID: "p1"}
	store := newFakeLedgerStore(parent, seller)
	store.parentCreditErr = errors.New("connection reset")
	uc := newLedger(store)

	order := &domain.Order{
		ID:                 "o1",
		AgentID:            "a1",
		CommissionAmount:   150,
		OverrideCommission: 19.98,
	}
	require.Error(t, uc.CreditOrder(order))

	// Nothing posted: the caller can retry the whole posting without
	// double-crediting the seller.
	a, _ := store.GetAgentByID("a1")
	require.Zero(t, a.AvailableBalance)
	require.Zero(t, a.TotalEarnings)
	require.Zero(t, a.TotalSales)
	p, _ := store.GetAgentByID("p1")
	require.Zero(t, p.AvailableBalance)

	store.parentCreditErr = nil
	require.NoError(t, uc.CreditOrder(order))
	a, _ = store.GetAgentByID("a1")
	require.Equal(t, 150.0, a.AvailableBalance)
	p, _ = store.GetAgentByID("p1")
	require.Equal(t, 19.98, p.AvailableBalance)
}

func TestCreditOrderDirectSaleIsNoop(t *testing.T) {
	store := newFakeLedgerStore(&domain.Agent{ID: "a1"})
	uc := newLedger(store)

	order := &domain.Order{ID: "o1", IsDirectSale: true}
	require.NoError(t, uc.CreditOrder(order))

	a, _ := store.GetAgentByID("a1")
	require.Zero(t, a.AvailableBalance)
}

func TestCreditOrderFrozenAmountsAreUsed(t *testing.T) {
	// The credit uses the amounts frozen on the order, even if the
	// agent's base commission changed since submission.
	seller := &domain.Agent{ID: "a1", BaseCommission: 500}
	store := newFakeLedgerStore(seller)
	uc := newLedger(store)

	order := &domain.Order{ID: "o1", AgentID: "a1", CommissionAmount: 150}
	require.NoError(t, uc.CreditOrder(order))

	a, _ := store.GetAgentByID("a1")
	require.Equal(t, 150.0, a.TotalEarnings)
}

func TestRequestPayoutInsufficientBalance(t *testing.T) {
	store := newFakeLedgerStore(&domain.Agent{ID: "a1", AvailableBalance: 2000, TotalEarnings: 2000})
	uc := newLedger(store)

	_, err := uc.RequestPayout(&payoutdto.RequestPayoutInput{
		AgentID:       "a1",
		Amount:        2300,
		PaymentMethod: "bank_transfer",
	})

	var balanceErr *domain.InsufficientBalanceError
	require.ErrorAs(t, err, &balanceErr)
	require.Equal(t, 300.0, balanceErr.Shortfall())

	a, _ := store.GetAgentByID("a1")
	require.Equal(t, 2000.0, a.AvailableBalance)
	require.Empty(t, store.payouts)
}

func TestRequestPayoutDebitsBalance(t *testing.T) {
	store := newFakeLedgerStore(&domain.Agent{ID: "a1", AvailableBalance: 2000, TotalEarnings: 5000})
	uc := newLedger(store)

	payout, err := uc.RequestPayout(&payoutdto.RequestPayoutInput{
		AgentID:       "a1",
		Amount:        1500,
		PaymentMethod: "upi",
		AdminNotes:    "july settlement",
	})
	require.NoError(t, err)
	require.NotEmpty(t, payout.ID)
	require.Equal(t, domain.PayoutCompleted, payout.Status)

	a, _ := store.GetAgentByID("a1")
	require.Equal(t, 500.0, a.AvailableBalance)
	// Lifetime earnings are untouched by payouts.
	require.Equal(t, 5000.0, a.TotalEarnings)
	require.Equal(t, 1, store.expense)
}

func TestRequestPayoutValidation(t *testing.T) {
	uc := newLedger(newFakeLedgerStore())
	var validationErr *domain.ValidationError

	_, err := uc.RequestPayout(&payoutdto.RequestPayoutInput{Amount: 10, PaymentMethod: "upi"})
	require.ErrorAs(t, err, &validationErr)

	_, err = uc.RequestPayout(&payoutdto.RequestPayoutInput{AgentID: "a1", Amount: 0, PaymentMethod: "upi"})
	require.ErrorAs(t, err, &validationErr)

	_, err = uc.RequestPayout(&payoutdto.RequestPayoutInput{AgentID: "a1", Amount: 10})
	require.ErrorAs(t, err, &validationErr)
}

func TestConcurrentPayoutsNeverOverdraw(t *testing.T) {
	store := newFakeLedgerStore(&domain.Agent{ID: "a1", AvailableBalance: 1000, TotalEarnings: 1000})
	uc := newLedger(store)

	// Two payouts of 600 race on a balance of 1000: at most one wins.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.RequestPayout(&payoutdto.RequestPayoutInput{
				AgentID:       "a1",
				Amount:        600,
				PaymentMethod: "upi",
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			var balanceErr *domain.InsufficientBalanceError
			require.ErrorAs(t, err, &balanceErr)
		}
	}
	require.Equal(t, 1, succeeded)

	a, _ := store.GetAgentByID("a1")
	require.Equal(t, 400.0, a.AvailableBalance)
	require.GreaterOrEqual(t, a.AvailableBalance, 0.0)
}

func TestCommissionLiabilitiesReport(t *testing.T) {
	store := newFakeLedgerStore(
		&domain.Agent{ID: "a1", Name: "A", AvailableBalance: 700, TotalEarnings: 900},
		&domain.Agent{ID: "a2", Name: "B"},
	)
	uc := newLedger(store)

	_, err := uc.RequestPayout(&payoutdto.RequestPayoutInput{
		AgentID:       "a1",
		Amount:        200,
		PaymentMethod: "upi",
	})
	require.NoError(t, err)

	liabilities, err := uc.GetCommissionLiabilities(context.Background())
	require.NoError(t, err)
	require.Len(t, liabilities, 2)

	byID := make(map[string]*domain.CommissionLiability)
	for _, l := range liabilities {
		byID[l.AgentID] = l
	}
	require.Equal(t, 500.0, byID["a1"].AvailableBalance)
	require.NotNil(t, byID["a1"].LastPayoutAt)
	require.Nil(t, byID["a2"].LastPayoutAt)
}
