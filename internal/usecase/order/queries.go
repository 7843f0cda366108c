package order

import (
	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
)

func (uc *DefaultOrderUsecase) GetOrderByID(orderID string) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByID(orderID)
}

func (uc *DefaultOrderUsecase) GetOrdersByAgentID(
	agentID string,
	page, limit int64,
	sortBy, sortOrder string,
	filters domain.OrderFilters,
) ([]*domain.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.OrderRepo.GetOrdersByAgentID(agentID, page, limit, sortBy, sortOrder, filters)
}
