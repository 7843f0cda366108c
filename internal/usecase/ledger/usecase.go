package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/metrics"
	payoutdto "github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/dto/payout"
	"go.uber.org/zap"
)

const liabilityCacheKey = "commission:liabilities"

type LedgerUsecase interface {
	// CreditOrder posts the commission frozen on an order to the owning
	// agent's balance and routes the override to the recruiting parent.
	// Invoked exactly once per order, by the transition that the
	// service is configured to credit on.
	CreditOrder(order *domain.Order) error
	RequestPayout(input *payoutdto.RequestPayoutInput) (*domain.Payout, error)
	GetPayoutsByAgentID(agentID string, page, limit int64) ([]*domain.Payout, int64, error)
	GetCommissionLiabilities(ctx context.Context) ([]*domain.CommissionLiability, error)
}

type DefaultLedgerUsecase struct {
	AgentRepo  domain.AgentRepository
	PayoutRepo domain.PayoutRepository
	Cache      *redis.Client
	CacheTTL   time.Duration
	Metrics    *metrics.FulfillmentMetrics
}

func NewDefaultLedgerUsecase(
	agentRepo domain.AgentRepository,
	payoutRepo domain.PayoutRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
	ledgerMetrics *metrics.FulfillmentMetrics) *DefaultLedgerUsecase {

	return &DefaultLedgerUsecase{
		AgentRepo:  agentRepo,
		PayoutRepo: payoutRepo,
		Cache:      cache,
		CacheTTL:   cacheTTL,
		Metrics:    ledgerMetrics,
	}
}

func (uc *DefaultLedgerUsecase) CreditOrder(order *domain.Order) error {
	if order.IsDirectSale || order.AgentID == "" {
		return nil
	}

	parentAgentID := ""
	if order.OverrideCommission > 0 {
		agent, err := uc.AgentRepo.GetAgentByID(order.AgentID)
		if err != nil {
			return fmt.Errorf("resolving agent for override routing: %w", err)
		}
		if agent.ParentAgentID == "" {
			// Parent link was removed after the order froze an
			// override; the override has no payee and lapses.
			zap.L().Warn("override commission has no parent to route to",
				zap.String("order_id", order.ID),
				zap.String("agent_id", order.AgentID))
		} else {
			parentAgentID = agent.ParentAgentID
		}
	}

	// Both credits post in one transaction: a half-applied order would
	// double-credit the seller on retry and short the parent otherwise.
	if err := uc.AgentRepo.CreditOrderEarnings(order.AgentID, order.CommissionAmount, parentAgentID, order.OverrideCommission); err != nil {
		return fmt.Errorf("posting order commissions: %w", err)
	}
	uc.Metrics.RecordCommissionCredited("base", order.CommissionAmount)
	if parentAgentID != "" {
		uc.Metrics.RecordCommissionCredited("override", order.OverrideCommission)
	}

	uc.invalidateLiabilityCache()
	return nil
}

func (uc *DefaultLedgerUsecase) RequestPayout(input *payoutdto.RequestPayoutInput) (*domain.Payout, error) {
	if input.AgentID == "" {
		return nil, &domain.ValidationError{Field: "agent_id", Reason: "must not be empty"}
	}
	if input.Amount <= 0 {
		return nil, &domain.ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if input.PaymentMethod == "" {
		return nil, &domain.ValidationError{Field: "payment_method", Reason: "must not be empty"}
	}

	payout := &domain.Payout{
		ID:            uuid.New().String(),
		AgentID:       input.AgentID,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		AdminNotes:    input.AdminNotes,
		Status:        domain.PayoutCompleted,
		CreatedAt:     time.Now(),
	}

	if err := uc.PayoutRepo.ExecutePayout(payout); err != nil {
		var insufficient *domain.InsufficientBalanceError
		if errors.As(err, &insufficient) {
			uc.Metrics.RecordPayoutRejected(input.AgentID)
		}
		return nil, err
	}

	zap.L().Info("payout completed",
		zap.String("payout_id", payout.ID),
		zap.String("agent_id", payout.AgentID),
		zap.Float64("amount", payout.Amount),
		zap.String("payment_method", payout.PaymentMethod))

	uc.Metrics.RecordPayout(payout.PaymentMethod, payout.Amount)
	uc.invalidateLiabilityCache()
	return payout, nil
}

func (uc *DefaultLedgerUsecase) GetPayoutsByAgentID(agentID string, page, limit int64) ([]*domain.Payout, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.PayoutRepo.GetPayoutsByAgentID(agentID, page, limit)
}

// GetCommissionLiabilities serves the admin reconciliation report,
// cached in redis for a short TTL since the dashboard polls it.
func (uc *DefaultLedgerUsecase) GetCommissionLiabilities(ctx context.Context) ([]*domain.CommissionLiability, error) {
	if uc.Cache != nil {
		cached, err := uc.Cache.Get(ctx, liabilityCacheKey).Bytes()
		if err == nil {
			var liabilities []*domain.CommissionLiability
			if err := json.Unmarshal(cached, &liabilities); err == nil {
				return liabilities, nil
			}
		} else if err != redis.Nil {
			zap.L().Warn("liability cache read failed", zap.Error(err))
		}
	}

	liabilities, err := uc.PayoutRepo.GetCommissionLiabilities()
	if err != nil {
		return nil, err
	}

	if uc.Cache != nil {
		if encoded, err := json.Marshal(liabilities); err == nil {
			if err := uc.Cache.Set(ctx, liabilityCacheKey, encoded, uc.CacheTTL).Err(); err != nil {
				zap.L().Warn("liability cache write failed", zap.Error(err))
			}
		}
	}

	return liabilities, nil
}

func (uc *DefaultLedgerUsecase) invalidateLiabilityCache() {
	if uc.Cache == nil {
		return
	}
	if err := uc.Cache.Del(context.Background(), liabilityCacheKey).Err(); err != nil {
		zap.L().Warn("liability cache invalidation failed", zap.Error(err))
	}
}
