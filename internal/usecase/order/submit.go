package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	orderdto "github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/dto/order"
	"go.uber.org/zap"
)

// SubmitOrder validates the payload, freezes commission and override
// amounts onto the order and enters it into the fulfillment graph at
// pending_approval.
func (uc *DefaultOrderUsecase) SubmitOrder(input *orderdto.SubmitOrderInput) (*orderdto.SubmitOrderOutput, error) {
	if input.CardDesignID == "" {
		return nil, &domain.ValidationError{Field: "card_design_id", Reason: "must not be empty"}
	}
	if input.CustomerName == "" {
		return nil, &domain.ValidationError{Field: "customer_name", Reason: "must not be empty"}
	}
	if input.CustomerEmail == "" {
		return nil, &domain.ValidationError{Field: "customer_email", Reason: "must not be empty"}
	}
	if input.SalePrice <= 0 {
		return nil, &domain.ValidationError{Field: "sale_price", Reason: "must be positive"}
	}
	if input.MSPAtOrder < 0 {
		return nil, &domain.ValidationError{Field: "msp_at_order", Reason: "must not be negative"}
	}

	sellingAgent, err := uc.resolveSellingAgent(input)
	if err != nil {
		return nil, err
	}

	var parentAgent *domain.Agent
	if sellingAgent != nil && sellingAgent.ParentAgentID != "" {
		parentAgent, err = uc.AgentUsecase.GetAgentByID(sellingAgent.ParentAgentID)
		if err != nil {
			return nil, fmt.Errorf("resolving parent agent: %w", err)
		}
	}

	result := uc.Calculator.Calculate(input.SalePrice, input.MSPAtOrder, sellingAgent, parentAgent)

	paymentStatus, err := initialPaymentStatus(input.PaymentStatus)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &domain.Order{
		ID:            uuid.New().String(),
		CardDesignID:  input.CardDesignID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,

		SalePrice:          input.SalePrice,
		MSPAtOrder:         input.MSPAtOrder,
		CommissionAmount:   result.CommissionAmount,
		OverrideCommission: result.OverrideCommission,
		IsDirectSale:       sellingAgent == nil,
		IsBelowMSP:         result.IsBelowMSP,

		Status:        domain.StatusPendingApproval,
		PaymentStatus: paymentStatus,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if sellingAgent != nil {
		order.AgentID = sellingAgent.ID
	}

	if err := uc.OrderRepo.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	saleType := "agent"
	if order.IsDirectSale {
		saleType = "direct"
	}
	uc.Metrics.RecordSubmitted(saleType, order.SalePrice, order.IsBelowMSP, order.AgentID)

	zap.L().Info("order submitted",
		zap.String("order_id", order.ID),
		zap.Int64("order_number", order.OrderNumber),
		zap.String("agent_id", order.AgentID),
		zap.Float64("sale_price", order.SalePrice),
		zap.Bool("below_msp", order.IsBelowMSP))

	uc.publishOrderEvent("order.submitted", order)

	return &orderdto.SubmitOrderOutput{
		OrderID:     order.ID,
		OrderNumber: orderdto.FormatOrderNumber(order.OrderNumber),
	}, nil
}

func (uc *DefaultOrderUsecase) resolveSellingAgent(input *orderdto.SubmitOrderInput) (*domain.Agent, error) {
	var sellingAgent *domain.Agent
	var err error

	switch {
	case input.ReferralCode != "":
		sellingAgent, err = uc.AgentUsecase.GetAgentByReferralCode(input.ReferralCode)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.ValidationError{Field: "referral_code", Reason: "unknown referral code"}
		}
	case input.AgentID != "":
		sellingAgent, err = uc.AgentUsecase.GetAgentByID(input.AgentID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.ValidationError{Field: "agent_id", Reason: "unknown agent"}
		}
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if sellingAgent.Status != domain.AgentActive {
		return nil, domain.ErrAgentInactive
	}
	return sellingAgent, nil
}

func initialPaymentStatus(raw string) (domain.PaymentStatus, error) {
	switch domain.PaymentStatus(raw) {
	case "", domain.PaymentPending:
		return domain.PaymentPending, nil
	case domain.PaymentAdvancePaid:
		return domain.PaymentAdvancePaid, nil
	case domain.PaymentCOD:
		return domain.PaymentCOD, nil
	default:
		return "", &domain.ValidationError{Field: "payment_status", Reason: "must be pending, advance_paid or cod"}
	}
}
