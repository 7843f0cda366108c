package order

import (
	"errors"
	"fmt"

	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	orderdto "github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/dto/order"
	"go.uber.org/zap"
)

// TransitionOrder moves an order along the fulfillment graph. A
// conflict with a concurrent admin is retried once after a re-read; a
// second conflict is surfaced. Transitions into approved and rejected
// route through their dedicated workflows.
func (uc *DefaultOrderUsecase) TransitionOrder(orderID string, target domain.OrderStatus, extra orderdto.TransitionExtra) error {
	if !target.IsValid() {
		return &domain.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", target)}
	}

	switch target {
	case domain.StatusApproved:
		_, err := uc.ApproveOrder(orderID)
		return err
	case domain.StatusRejected:
		return uc.RejectOrder(orderID, extra.Reason)
	}

	for attempt := 0; attempt < 2; attempt++ {
		order, err := uc.OrderRepo.GetOrderByID(orderID)
		if err != nil {
			return err
		}

		if !domain.CanTransition(order.Status, target) {
			return &domain.InvalidTransitionError{From: order.Status, To: target}
		}

		change := domain.StatusChange{
			From:           order.Status,
			To:             target,
			TrackingNumber: extra.TrackingNumber,
		}

		err = uc.OrderRepo.ApplyStatusChange(orderID, change)
		if err == nil {
			from := order.Status
			order.Status = target
			uc.afterTransition(order, from)
			return nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return err
		}
	}

	return domain.ErrConflict
}

func (uc *DefaultOrderUsecase) afterTransition(order *domain.Order, from domain.OrderStatus) {
	uc.Metrics.RecordTransition(string(from), string(order.Status))

	zap.L().Info("order transitioned",
		zap.String("order_id", order.ID),
		zap.String("from", string(from)),
		zap.String("to", string(order.Status)))

	uc.publishOrderEvent("order."+string(order.Status), order)

	if order.Status == uc.CreditOn {
		if err := uc.Ledger.CreditOrder(order); err != nil {
			// The transition is committed; a failed posting is an
			// accounting gap the admin has to reconcile, so it is loud.
			zap.L().Error("commission credit failed after transition",
				zap.String("order_id", order.ID),
				zap.Error(err))
		}
	}
}

// CancelOrder withdraws an order before production starts. Legality is
// enforced by the transition table: only pending_approval and approved
// orders can be cancelled.
func (uc *DefaultOrderUsecase) CancelOrder(orderID string) error {
	return uc.TransitionOrder(orderID, domain.StatusCancelled, orderdto.TransitionExtra{})
}

// SetPaymentStatus updates the independent payment label. It never
// touches the fulfillment status.
func (uc *DefaultOrderUsecase) SetPaymentStatus(orderID string, target domain.PaymentStatus) error {
	for attempt := 0; attempt < 2; attempt++ {
		order, err := uc.OrderRepo.GetOrderByID(orderID)
		if err != nil {
			return err
		}

		if !domain.CanSetPaymentStatus(order.PaymentStatus, target) {
			return &domain.ValidationError{
				Field:  "payment_status",
				Reason: fmt.Sprintf("cannot move payment status from %q to %q", order.PaymentStatus, target),
			}
		}

		err = uc.OrderRepo.SetPaymentStatus(orderID, order.PaymentStatus, target)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return err
		}
	}

	return domain.ErrConflict
}
