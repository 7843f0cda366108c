package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	orderdto "github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/dto/order"
	"go.uber.org/zap"
)

const slugSuffixLength = 6

// ApproveOrder is the privileged workflow moving an order out of
// pending_approval. Account provisioning (idempotent by email) and the
// slug check run first; the status write is a single compare-and-swap
// carrying customer id and slug, so any failure or timeout up to that
// point leaves the order in pending_approval. The credentials
// notification is fire-and-forget.
func (uc *DefaultOrderUsecase) ApproveOrder(orderID string) (*orderdto.ApprovalOutput, error) {
	start := time.Now()

	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.StatusPendingApproval {
		return nil, domain.ErrAlreadyProcessed
	}

	account, err := uc.Provisioner.CreateAccount(context.Background(), order.CustomerEmail, domain.AccountProfile{
		Name:  order.CustomerName,
		Email: order.CustomerEmail,
		Phone: order.CustomerPhone,
	})
	if err != nil {
		uc.Metrics.RecordApprovalFailed(time.Since(start).Seconds())
		return nil, &domain.DependencyError{Dependency: "account-provisioning", Err: err}
	}

	slug, err := uc.generatePortfolioSlug(order.CustomerName)
	if err != nil {
		uc.Metrics.RecordApprovalFailed(time.Since(start).Seconds())
		return nil, err
	}

	change := domain.StatusChange{
		From:          domain.StatusPendingApproval,
		To:            domain.StatusApproved,
		CustomerID:    account.AccountID,
		PortfolioSlug: slug,
	}
	if err := uc.OrderRepo.ApplyStatusChange(orderID, change); err != nil {
		uc.Metrics.RecordApprovalFailed(time.Since(start).Seconds())
		if errors.Is(err, domain.ErrConflict) {
			// The CAS lost a race. A concurrent approval is the common
			// case; anything else is a genuine conflict.
			current, readErr := uc.OrderRepo.GetOrderByID(orderID)
			if readErr == nil && current.Status != domain.StatusPendingApproval {
				return nil, domain.ErrAlreadyProcessed
			}
		}
		return nil, err
	}

	order.Status = domain.StatusApproved
	order.CustomerID = account.AccountID
	order.PortfolioSlug = slug

	uc.Notifier.SendCredentials(order.CustomerEmail, map[string]string{
		"customer_id":    account.AccountID,
		"portfolio_slug": slug,
		"order_number":   orderdto.FormatOrderNumber(order.OrderNumber),
	})

	uc.Metrics.RecordApproved(account.IsNew, time.Since(start).Seconds())
	zap.L().Info("order approved",
		zap.String("order_id", order.ID),
		zap.String("customer_id", account.AccountID),
		zap.String("portfolio_slug", slug),
		zap.Bool("new_account", account.IsNew))

	uc.publishOrderEvent("order.approved", order)

	return &orderdto.ApprovalOutput{
		CustomerID:   account.AccountID,
		Slug:         slug,
		IsNewAccount: account.IsNew,
	}, nil
}

// RejectOrder requires a non-empty reason. The transition table allows
// rejection from pending_approval and from approved (the admin-tool
// path); a provisioned customer account survives rejection.
func (uc *DefaultOrderUsecase) RejectOrder(orderID string, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return &domain.ValidationError{Field: "reason", Reason: "must not be empty"}
	}

	for attempt := 0; attempt < 2; attempt++ {
		order, err := uc.OrderRepo.GetOrderByID(orderID)
		if err != nil {
			return err
		}

		if !domain.CanTransition(order.Status, domain.StatusRejected) {
			return &domain.InvalidTransitionError{From: order.Status, To: domain.StatusRejected}
		}

		change := domain.StatusChange{
			From:            order.Status,
			To:              domain.StatusRejected,
			RejectionReason: reason,
		}

		err = uc.OrderRepo.ApplyStatusChange(orderID, change)
		if err == nil {
			uc.Metrics.RecordRejected(string(order.Status))
			zap.L().Info("order rejected",
				zap.String("order_id", order.ID),
				zap.String("from", string(order.Status)),
				zap.String("reason", reason))
			order.Status = domain.StatusRejected
			order.RejectionReason = reason
			uc.publishOrderEvent("order.rejected", order)
			return nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return err
		}
	}

	return domain.ErrConflict
}

// generatePortfolioSlug derives a public-profile slug from the customer
// name and resolves collisions with a random suffix.
func (uc *DefaultOrderUsecase) generatePortfolioSlug(customerName string) (string, error) {
	base := slugify(customerName)
	if base == "" {
		base = "profile"
	}

	suffixGenerator, err := nanoid.CustomASCII("abcdefghijklmnopqrstuvwxyz0123456789", slugSuffixLength)
	if err != nil {
		return "", err
	}

	candidate := base
	for attempt := 0; attempt < 5; attempt++ {
		exists, err := uc.OrderRepo.PortfolioSlugExists(candidate)
		if err != nil {
			return "", fmt.Errorf("checking slug collision: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + "-" + suffixGenerator()
	}

	return "", fmt.Errorf("could not find a free slug for %q", base)
}

func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
