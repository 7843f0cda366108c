package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/postgres/mappers"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultPayoutRepository struct {
	DB *gorm.DB
}

func NewDefaultPayoutRepository(db *gorm.DB) *DefaultPayoutRepository {
	return &DefaultPayoutRepository{DB: db}
}

// ExecutePayout locks the agent row, verifies the balance and performs
// the three writes (payout row, balance decrement, expense row) in one
// transaction. Either all three land or none do.
func (r *DefaultPayoutRepository) ExecutePayout(payout *domain.Payout) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var agent models.AgentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&agent, "id = ?", payout.AgentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		if agent.AvailableBalance < payout.Amount {
			return &domain.InsufficientBalanceError{
				Requested: payout.Amount,
				Available: agent.AvailableBalance,
			}
		}

		if err := tx.Create(mappers.ToGORMPayout(payout)).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.AgentModel{}).
			Where("id = ?", agent.ID).
			Updates(map[string]interface{}{
				"available_balance": gorm.Expr("available_balance - ?", payout.Amount),
				"updated_at":        time.Now(),
			}).Error; err != nil {
			return err
		}

		expense := models.ExpenseModel{
			ID:          uuid.New().String(),
			Category:    domain.ExpenseCategoryAgentCommission,
			Amount:      payout.Amount,
			Description: fmt.Sprintf("agent commission payout %s", payout.ID),
			AgentID:     payout.AgentID,
			PayoutID:    payout.ID,
			CreatedAt:   payout.CreatedAt,
		}
		return tx.Create(&expense).Error
	})
}

func (r *DefaultPayoutRepository) GetPayoutsByAgentID(agentID string, page, limit int64) ([]*domain.Payout, int64, error) {
	var payoutModels []models.PayoutModel
	var total int64

	baseQuery := r.DB.Model(&models.PayoutModel{}).Where("agent_id = ?", agentID)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payouts: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&payoutModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find payouts: %w", err)
	}

	payouts := make([]*domain.Payout, len(payoutModels))
	for i := range payoutModels {
		payouts[i] = mappers.ToDomainPayout(&payoutModels[i])
	}
	return payouts, total, nil
}

func (r *DefaultPayoutRepository) GetCommissionLiabilities() ([]*domain.CommissionLiability, error) {
	var liabilities []*domain.CommissionLiability
	err := r.DB.Raw(`
		SELECT a.id AS agent_id,
		       a.name AS agent_name,
		       a.available_balance,
		       MAX(p.created_at) AS last_payout_at
		FROM agents a
		LEFT JOIN payouts p ON p.agent_id = a.id
		GROUP BY a.id, a.name, a.available_balance
		ORDER BY a.available_balance DESC
	`).Scan(&liabilities).Error
	if err != nil {
		return nil, err
	}
	return liabilities, nil
}
