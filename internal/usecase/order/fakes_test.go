package order

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	agentdto "github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/dto/agent"
	payoutdto "github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/dto/payout"
)

// fakeOrderRepo mimics the compare-and-swap contract of the postgres
// repository: a status write only lands when the stored status still
// matches the expected From.
type fakeOrderRepo struct {
	mu         sync.Mutex
	orders     map[string]*domain.Order
	slugs      map[string]bool
	nextNumber int64

	// conflictsLeft injects spurious CAS conflicts without touching
	// state, one per ApplyStatusChange call until exhausted.
	conflictsLeft int
	// beforeApply runs between the caller's read and the CAS write.
	beforeApply func()
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[string]*domain.Order),
		slugs:  make(map[string]bool),
	}
}

func (r *fakeOrderRepo) CreateOrder(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextNumber++
	order.OrderNumber = r.nextNumber
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) ApplyStatusChange(orderID string, change domain.StatusChange) error {
	if r.beforeApply != nil {
		r.beforeApply()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conflictsLeft > 0 {
		r.conflictsLeft--
		return domain.ErrConflict
	}

	o, ok := r.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if o.Status != change.From {
		return domain.ErrConflict
	}

	o.Status = change.To
	o.UpdatedAt = time.Now()
	now := time.Now()
	switch change.To {
	case domain.StatusApproved:
		o.ApprovedAt = &now
		o.CustomerID = change.CustomerID
		o.PortfolioSlug = change.PortfolioSlug
		r.slugs[change.PortfolioSlug] = true
	case domain.StatusShipped:
		o.ShippedAt = &now
		o.TrackingNumber = change.TrackingNumber
	case domain.StatusDelivered:
		o.DeliveredAt = &now
	case domain.StatusPaid:
		o.PaidAt = &now
	case domain.StatusRejected:
		o.RejectionReason = change.RejectionReason
	}
	return nil
}

func (r *fakeOrderRepo) SetPaymentStatus(orderID string, from, to domain.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if o.PaymentStatus != from {
		return domain.ErrConflict
	}
	// paid_at belongs to the fulfillment transition into paid; the
	// payment label never stamps it.
	o.PaymentStatus = to
	return nil
}

func (r *fakeOrderRepo) PortfolioSlugExists(slug string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slugs[slug], nil
}

func (r *fakeOrderRepo) GetOrdersByAgentID(agentID string, page, limit int64, sortBy, sortOrder string, filters domain.OrderFilters) ([]*domain.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Order
	for _, o := range r.orders {
		if o.AgentID == agentID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) FindStalePendingOrders(olderThan time.Time) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Order
	for _, o := range r.orders {
		if o.Status == domain.StatusPendingApproval && o.CreatedAt.Before(olderThan) {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeAgentDirectory struct {
	agents map[string]*domain.Agent
	byCode map[string]*domain.Agent
}

func newFakeAgentDirectory(agents ...*domain.Agent) *fakeAgentDirectory {
	d := &fakeAgentDirectory{
		agents: make(map[string]*domain.Agent),
		byCode: make(map[string]*domain.Agent),
	}
	for _, a := range agents {
		d.agents[a.ID] = a
		if a.ReferralCode != "" {
			d.byCode[a.ReferralCode] = a
		}
	}
	return d
}

func (d *fakeAgentDirectory) CreateAgent(input *agentdto.CreateAgentInput) (*domain.Agent, error) {
	return nil, errors.New("not supported")
}

func (d *fakeAgentDirectory) GetAgentByID(agentID string) (*domain.Agent, error) {
	a, ok := d.agents[agentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (d *fakeAgentDirectory) GetAgentByReferralCode(code string) (*domain.Agent, error) {
	a, ok := d.byCode[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (d *fakeAgentDirectory) ResolveParent(agentID string) (*domain.Agent, error) {
	a, err := d.GetAgentByID(agentID)
	if err != nil {
		return nil, err
	}
	if a.ParentAgentID == "" {
		return nil, nil
	}
	return d.GetAgentByID(a.ParentAgentID)
}

func (d *fakeAgentDirectory) AssignParent(agentID, parentAgentID string) error {
	return errors.New("not supported")
}

func (d *fakeAgentDirectory) SetAgentStatus(agentID string, status domain.AgentStatus) error {
	return errors.New("not supported")
}

type fakeLedger struct {
	mu       sync.Mutex
	credited []*domain.Order
	err      error
}

func (l *fakeLedger) CreditOrder(order *domain.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return l.err
	}
	cp := *order
	l.credited = append(l.credited, &cp)
	return nil
}

func (l *fakeLedger) RequestPayout(input *payoutdto.RequestPayoutInput) (*domain.Payout, error) {
	return nil, errors.New("not supported")
}

func (l *fakeLedger) GetPayoutsByAgentID(agentID string, page, limit int64) ([]*domain.Payout, int64, error) {
	return nil, 0, errors.New("not supported")
}

func (l *fakeLedger) GetCommissionLiabilities(ctx context.Context) ([]*domain.CommissionLiability, error) {
	return nil, errors.New("not supported")
}

type fakeProvisioner struct {
	calls    int
	fail     error
	accounts map[string]string
}

func newFakeProvisioner() *fakeProvisioner {
	return &fakeProvisioner{accounts: make(map[string]string)}
}

func (p *fakeProvisioner) CreateAccount(ctx context.Context, email string, profile domain.AccountProfile) (*domain.ProvisionedAccount, error) {
	p.calls++
	if p.fail != nil {
		return nil, p.fail
	}
	if id, ok := p.accounts[email]; ok {
		return &domain.ProvisionedAccount{AccountID: id, IsNew: false}, nil
	}
	id := "cust-" + email
	p.accounts[email] = id
	return &domain.ProvisionedAccount{AccountID: id, IsNew: true}, nil
}

type fakeNotifier struct {
	mu        sync.Mutex
	sent      []string
	variables []map[string]string
}

func (n *fakeNotifier) SendCredentials(recipient string, variables map[string]string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, recipient)
	n.variables = append(n.variables, variables)
}
