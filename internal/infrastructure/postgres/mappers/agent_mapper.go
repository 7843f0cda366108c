package mappers

import (
	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/postgres/models"
)

func ToGORMAgent(agent *domain.Agent) *models.AgentModel {
	return &models.AgentModel{
		ID:             agent.ID,
		Name:           agent.Name,
		Email:          agent.Email,
		Phone:          agent.Phone,
		ReferralCode:   agent.ReferralCode,
		ParentAgentID:  agent.ParentAgentID,
		BaseCommission: agent.BaseCommission,
		Status:         agent.Status,

		TotalSales:       agent.TotalSales,
		TotalEarnings:    agent.TotalEarnings,
		AvailableBalance: agent.AvailableBalance,

		CreatedAt: agent.CreatedAt,
		UpdatedAt: agent.UpdatedAt,
	}
}

func ToDomainAgent(model *models.AgentModel) *domain.Agent {
	return &domain.Agent{
		ID:             model.ID,
		Name:           model.Name,
		Email:          model.Email,
		Phone:          model.Phone,
		ReferralCode:   model.ReferralCode,
		ParentAgentID:  model.ParentAgentID,
		BaseCommission: model.BaseCommission,
		Status:         model.Status,

		TotalSales:       model.TotalSales,
		TotalEarnings:    model.TotalEarnings,
		AvailableBalance: model.AvailableBalance,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
