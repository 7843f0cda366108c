package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/postgres/mappers"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.Create(orderModel).Error; err != nil {
		return err
	}
	// The sequential order number is assigned by the database.
	order.OrderNumber = orderModel.OrderNumber
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&order), nil
}

// ApplyStatusChange is the atomicity primitive of the state machine: a
// single UPDATE guarded by the expected current status. Zero affected
// rows on an existing order means a concurrent writer won the race.
func (r *DefaultOrderRepository) ApplyStatusChange(orderID string, change domain.StatusChange) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":     change.To,
		"updated_at": now,
	}

	switch change.To {
	case domain.StatusApproved:
		updates["approved_at"] = now
		updates["customer_id"] = change.CustomerID
		updates["portfolio_slug"] = change.PortfolioSlug
	case domain.StatusShipped:
		updates["shipped_at"] = now
		if change.TrackingNumber != "" {
			updates["tracking_number"] = change.TrackingNumber
		}
	case domain.StatusDelivered:
		updates["delivered_at"] = now
	case domain.StatusPaid:
		updates["paid_at"] = now
	case domain.StatusRejected:
		updates["rejection_reason"] = change.RejectionReason
	}

	result := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, change.From).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.DB.Model(&models.OrderModel{}).Where("id = ?", orderID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

func (r *DefaultOrderRepository) SetPaymentStatus(orderID string, from, to domain.PaymentStatus) error {
	result := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND payment_status = ?", orderID, from).
		Updates(map[string]interface{}{
			"payment_status": to,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.DB.Model(&models.OrderModel{}).Where("id = ?", orderID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

func (r *DefaultOrderRepository) PortfolioSlugExists(slug string) (bool, error) {
	var count int64
	if err := r.DB.Model(&models.OrderModel{}).Where("portfolio_slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DefaultOrderRepository) GetOrdersByAgentID(
	agentID string,
	page, limit int64,
	sortBy, sortOrder string,
	filters domain.OrderFilters,
) ([]*domain.Order, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	safeSortBy := "created_at"
	switch sortBy {
	case "sale_price":
		safeSortBy = "sale_price"
	case "order_number":
		safeSortBy = "order_number"
	case "created_at":
		safeSortBy = "created_at"
	}

	safeSortOrder := "DESC"
	if strings.ToUpper(sortOrder) == "ASC" {
		safeSortOrder = "ASC"
	}

	baseQuery := r.DB.Model(&models.OrderModel{}).Where("agent_id = ?", agentID)

	if len(filters.Statuses) > 0 {
		baseQuery = baseQuery.Where("status IN (?)", filters.Statuses)
	}
	if !filters.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("created_at >= ?", filters.DateFrom)
	}
	if !filters.DateTo.IsZero() {
		baseQuery = baseQuery.Where("created_at <= ?", filters.DateTo)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order(fmt.Sprintf("%s %s", safeSortBy, safeSortOrder)).
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&orderModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}
	return orders, total, nil
}

func (r *DefaultOrderRepository) FindStalePendingOrders(olderThan time.Time) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	err := r.DB.
		Where("status = ? AND created_at < ?", domain.StatusPendingApproval, olderThan).
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}
	return orders, nil
}
