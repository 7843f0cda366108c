package order

import (
	"encoding/json"

	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/kafka"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/metrics"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/agent"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/commission"
	orderdto "github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/dto/order"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/ledger"
	"go.uber.org/zap"
)

type OrderUsecase interface {
	SubmitOrder(input *orderdto.SubmitOrderInput) (*orderdto.SubmitOrderOutput, error)
	TransitionOrder(orderID string, target domain.OrderStatus, extra orderdto.TransitionExtra) error
	ApproveOrder(orderID string) (*orderdto.ApprovalOutput, error)
	RejectOrder(orderID string, reason string) error
	CancelOrder(orderID string) error
	SetPaymentStatus(orderID string, target domain.PaymentStatus) error

	GetOrderByID(orderID string) (*domain.Order, error)
	GetOrdersByAgentID(agentID string, page, limit int64, sortBy, sortOrder string, filters domain.OrderFilters) ([]*domain.Order, int64, error)
}

type DefaultOrderUsecase struct {
	OrderRepo    domain.OrderRepository
	AgentUsecase agent.AgentUsecase
	Calculator   *commission.Calculator
	Ledger       ledger.LedgerUsecase
	Provisioner  domain.AccountProvisioner
	Notifier     domain.Notifier
	Publisher    domain.Publisher
	Metrics      *metrics.FulfillmentMetrics

	// CreditOn is the status whose transition posts ledger credits.
	CreditOn   domain.OrderStatus
	OrderTopic string
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	agentUsecase agent.AgentUsecase,
	calculator *commission.Calculator,
	ledgerUsecase ledger.LedgerUsecase,
	provisioner domain.AccountProvisioner,
	notifier domain.Notifier,
	kafkaPublisher domain.Publisher,
	orderMetrics *metrics.FulfillmentMetrics,
	creditOn domain.OrderStatus,
	orderTopic string) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		OrderRepo:    orderRepo,
		AgentUsecase: agentUsecase,
		Calculator:   calculator,
		Ledger:       ledgerUsecase,
		Provisioner:  provisioner,
		Notifier:     notifier,
		Publisher:    kafkaPublisher,
		Metrics:      orderMetrics,
		CreditOn:     creditOn,
		OrderTopic:   orderTopic,
	}
}

// publishOrderEvent emits a lifecycle event asynchronously. Event
// delivery is non-critical: failures are logged, never propagated.
func (uc *DefaultOrderUsecase) publishOrderEvent(eventType string, order *domain.Order) {
	if uc.Publisher == nil {
		return
	}

	event := kafka.OrderEvent{
		EventType:   eventType,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		AgentID:     order.AgentID,
		Status:      string(order.Status),
		SalePrice:   order.SalePrice,
	}
	value, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("failed to marshal order event", zap.Error(err))
		return
	}

	go func() {
		if err := uc.Publisher.Publish(uc.OrderTopic, domain.Message{Key: []byte(order.ID), Value: value}); err != nil {
			zap.L().Error("failed to publish order event",
				zap.String("order_id", order.ID),
				zap.String("event_type", eventType),
				zap.Error(err))
		}
	}()
}
