package mappers

import (
	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/postgres/models"
)

func ToGORMPayout(payout *domain.Payout) *models.PayoutModel {
	return &models.PayoutModel{
		ID:            payout.ID,
		AgentID:       payout.AgentID,
		Amount:        payout.Amount,
		PaymentMethod: payout.PaymentMethod,
		AdminNotes:    payout.AdminNotes,
		Status:        payout.Status,
		CreatedAt:     payout.CreatedAt,
	}
}

func ToDomainPayout(model *models.PayoutModel) *domain.Payout {
	return &domain.Payout{
		ID:            model.ID,
		AgentID:       model.AgentID,
		Amount:        model.Amount,
		PaymentMethod: model.PaymentMethod,
		AdminNotes:    model.AdminNotes,
		Status:        model.Status,
		CreatedAt:     model.CreatedAt,
	}
}
