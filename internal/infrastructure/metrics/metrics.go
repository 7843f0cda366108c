package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FulfillmentMetrics holds every metric the fulfillment core exports.
// All recording methods are nil-safe so tests can run without a
// registry.
type FulfillmentMetrics struct {
	OrdersSubmittedTotal       prometheus.CounterVec
	OrdersSubmittedAmountTotal prometheus.CounterVec
	OrdersBelowMSPTotal        prometheus.CounterVec

	OrderTransitionsTotal prometheus.CounterVec
	OrdersApprovedTotal   prometheus.CounterVec
	OrdersRejectedTotal   prometheus.CounterVec

	CommissionCreditedTotal prometheus.CounterVec
	PayoutsTotal            prometheus.CounterVec
	PayoutsAmountTotal      prometheus.CounterVec
	PayoutsRejectedTotal    prometheus.CounterVec

	StalePendingOrders prometheus.GaugeVec

	ApprovalDuration prometheus.HistogramVec
}

func NewFulfillmentMetrics() *FulfillmentMetrics {
	return NewFulfillmentMetricsWith(prometheus.DefaultRegisterer)
}

// NewFulfillmentMetricsWith registers against the given registerer.
// Tests pass a fresh registry to avoid duplicate registration.
func NewFulfillmentMetricsWith(reg prometheus.Registerer) *FulfillmentMetrics {
	factory := promauto.With(reg)
	return &FulfillmentMetrics{
		OrdersSubmittedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_submitted_total",
				Help: "Total number of submitted orders",
			},
			[]string{"sale_type"},
		),

		OrdersSubmittedAmountTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_submitted_amount_total",
				Help: "Total sale amount of submitted orders",
			},
			[]string{"sale_type"},
		),

		OrdersBelowMSPTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_below_msp_total",
				Help: "Orders submitted below the minimum selling price",
			},
			[]string{"agent_id"},
		),

		OrderTransitionsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_transitions_total",
				Help: "Status transitions applied, by source and target status",
			},
			[]string{"from", "to"},
		),

		OrdersApprovedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_approved_total",
				Help: "Orders approved, by new-vs-existing customer account",
			},
			[]string{"account"},
		),

		OrdersRejectedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_rejected_total",
				Help: "Orders rejected",
			},
			[]string{"from"},
		),

		CommissionCreditedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_credited_total",
				Help: "Commission amounts credited to agent balances",
			},
			[]string{"kind"},
		),

		PayoutsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_total",
				Help: "Completed payouts",
			},
			[]string{"payment_method"},
		),

		PayoutsAmountTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_amount_total",
				Help: "Total amount paid out to agents",
			},
			[]string{"payment_method"},
		),

		PayoutsRejectedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_rejected_total",
				Help: "Payout requests rejected for insufficient balance",
			},
			[]string{"agent_id"},
		),

		StalePendingOrders: *factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stale_pending_orders",
				Help: "Orders sitting in pending_approval past the configured age",
			},
			[]string{},
		),

		ApprovalDuration: *factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "order_approval_duration_seconds",
				Help:    "End-to-end approval duration including provisioning",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"outcome"},
		),
	}
}

func (m *FulfillmentMetrics) RecordSubmitted(saleType string, amount float64, belowMSP bool, agentID string) {
	if m == nil {
		return
	}
	m.OrdersSubmittedTotal.WithLabelValues(saleType).Inc()
	m.OrdersSubmittedAmountTotal.WithLabelValues(saleType).Add(amount)
	if belowMSP {
		m.OrdersBelowMSPTotal.WithLabelValues(agentID).Inc()
	}
}

func (m *FulfillmentMetrics) RecordTransition(from, to string) {
	if m == nil {
		return
	}
	m.OrderTransitionsTotal.WithLabelValues(from, to).Inc()
}

func (m *FulfillmentMetrics) RecordApproved(newAccount bool, seconds float64) {
	if m == nil {
		return
	}
	account := "existing"
	if newAccount {
		account = "new"
	}
	m.OrdersApprovedTotal.WithLabelValues(account).Inc()
	m.ApprovalDuration.WithLabelValues("approved").Observe(seconds)
}

func (m *FulfillmentMetrics) RecordApprovalFailed(seconds float64) {
	if m == nil {
		return
	}
	m.ApprovalDuration.WithLabelValues("failed").Observe(seconds)
}

func (m *FulfillmentMetrics) RecordRejected(from string) {
	if m == nil {
		return
	}
	m.OrdersRejectedTotal.WithLabelValues(from).Inc()
}

func (m *FulfillmentMetrics) RecordCommissionCredited(kind string, amount float64) {
	if m == nil {
		return
	}
	m.CommissionCreditedTotal.WithLabelValues(kind).Add(amount)
}

func (m *FulfillmentMetrics) RecordPayout(method string, amount float64) {
	if m == nil {
		return
	}
	m.PayoutsTotal.WithLabelValues(method).Inc()
	m.PayoutsAmountTotal.WithLabelValues(method).Add(amount)
}

func (m *FulfillmentMetrics) RecordPayoutRejected(agentID string) {
	if m == nil {
		return
	}
	m.PayoutsRejectedTotal.WithLabelValues(agentID).Inc()
}

func (m *FulfillmentMetrics) SetStalePending(count float64) {
	if m == nil {
		return
	}
	m.StalePendingOrders.WithLabelValues().Set(count)
}
