package mappers

import (
	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/postgres/models"
)

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		CardDesignID:  order.CardDesignID,
		AgentID:       order.AgentID,
		CustomerID:    order.CustomerID,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		PortfolioSlug: order.PortfolioSlug,

		SalePrice:          order.SalePrice,
		MSPAtOrder:         order.MSPAtOrder,
		CommissionAmount:   order.CommissionAmount,
		OverrideCommission: order.OverrideCommission,
		IsDirectSale:       order.IsDirectSale,
		IsBelowMSP:         order.IsBelowMSP,

		Status:          order.Status,
		PaymentStatus:   order.PaymentStatus,
		TrackingNumber:  order.TrackingNumber,
		RejectionReason: order.RejectionReason,

		ApprovedAt:  order.ApprovedAt,
		ShippedAt:   order.ShippedAt,
		DeliveredAt: order.DeliveredAt,
		PaidAt:      order.PaidAt,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:            model.ID,
		OrderNumber:   model.OrderNumber,
		CardDesignID:  model.CardDesignID,
		AgentID:       model.AgentID,
		CustomerID:    model.CustomerID,
		CustomerName:  model.CustomerName,
		CustomerEmail: model.CustomerEmail,
		CustomerPhone: model.CustomerPhone,
		PortfolioSlug: model.PortfolioSlug,

		SalePrice:          model.SalePrice,
		MSPAtOrder:         model.MSPAtOrder,
		CommissionAmount:   model.CommissionAmount,
		OverrideCommission: model.OverrideCommission,
		IsDirectSale:       model.IsDirectSale,
		IsBelowMSP:         model.IsBelowMSP,

		Status:          model.Status,
		PaymentStatus:   model.PaymentStatus,
		TrackingNumber:  model.TrackingNumber,
		RejectionReason: model.RejectionReason,

		ApprovedAt:  model.ApprovedAt,
		ShippedAt:   model.ShippedAt,
		DeliveredAt: model.DeliveredAt,
		PaidAt:      model.PaidAt,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
