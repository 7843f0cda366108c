package repository

import (
	"errors"
	"time"

	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/postgres/mappers"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAgentRepository struct {
	DB *gorm.DB
}

func NewDefaultAgentRepository(db *gorm.DB) *DefaultAgentRepository {
	return &DefaultAgentRepository{DB: db}
}

func (r *DefaultAgentRepository) CreateAgent(agent *domain.Agent) error {
	return r.DB.Create(mappers.ToGORMAgent(agent)).Error
}

func (r *DefaultAgentRepository) GetAgentByID(agentID string) (*domain.Agent, error) {
	var agent models.AgentModel
	if err := r.DB.First(&agent, "id = ?", agentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainAgent(&agent), nil
}

func (r *DefaultAgentRepository) GetAgentByReferralCode(code string) (*domain.Agent, error) {
	var agent models.AgentModel
	if err := r.DB.First(&agent, "referral_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainAgent(&agent), nil
}

func (r *DefaultAgentRepository) UpdateAgentStatus(agentID string, status domain.AgentStatus) error {
	result := r.DB.Model(&models.AgentModel{}).
		Where("id = ?", agentID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DefaultAgentRepository) AssignParent(agentID, parentAgentID string) error {
	result := r.DB.Model(&models.AgentModel{}).
		Where("id = ?", agentID).
		Updates(map[string]interface{}{
			"parent_agent_id": parentAgentID,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreditOrderEarnings posts both credits of one order inside a single
// transaction so a failed override credit rolls back the base credit
// and the posting can be retried without double-counting.
func (r *DefaultAgentRepository) CreditOrderEarnings(agentID string, baseAmount float64, parentAgentID string, overrideAmount float64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := creditAgent(tx, agentID, baseAmount, true); err != nil {
			return err
		}
		if parentAgentID != "" {
			return creditAgent(tx, parentAgentID, overrideAmount, false)
		}
		return nil
	})
}

// creditAgent bumps both balances in one UPDATE so concurrent credits
// against the same agent serialize inside the database.
func creditAgent(tx *gorm.DB, agentID string, amount float64, countSale bool) error {
	updates := map[string]interface{}{
		"total_earnings":    gorm.Expr("total_earnings + ?", amount),
		"available_balance": gorm.Expr("available_balance + ?", amount),
		"updated_at":        time.Now(),
	}
	if countSale {
		updates["total_sales"] = gorm.Expr("total_sales + 1")
	}

	result := tx.Model(&models.AgentModel{}).Where("id = ?", agentID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
