package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	httpdto "github.com/rishabhvyas17/TapOnce-sub001/internal/delivery/http/dto"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	orderdto "github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/dto/order"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/order"
)

type OrderHandler struct {
	orderUsecase order.OrderUsecase
}

func NewOrderHandler(orderUsecase order.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var req httpdto.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.orderUsecase.SubmitOrder(&orderdto.SubmitOrderInput{
		CardDesignID:  req.CardDesignID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		SalePrice:     req.SalePrice,
		MSPAtOrder:    req.MSPAtOrder,
		AgentID:       req.AgentID,
		ReferralCode:  req.ReferralCode,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.SubmitOrderResponse{
		OrderID:     output.OrderID,
		OrderNumber: output.OrderNumber,
	})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.orderUsecase.GetOrderByID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(o))
}

func (h *OrderHandler) TransitionOrder(c *gin.Context) {
	var req httpdto.TransitionOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.orderUsecase.TransitionOrder(c.Param("id"), domain.OrderStatus(req.Status), orderdto.TransitionExtra{
		TrackingNumber: req.TrackingNumber,
		Reason:         req.Reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) ApproveOrder(c *gin.Context) {
	output, err := h.orderUsecase.ApproveOrder(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.ApproveOrderResponse{
		CustomerID:   output.CustomerID,
		Slug:         output.Slug,
		IsNewAccount: output.IsNewAccount,
	})
}

func (h *OrderHandler) RejectOrder(c *gin.Context) {
	var req httpdto.RejectOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.orderUsecase.RejectOrder(c.Param("id"), req.Reason); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	if err := h.orderUsecase.CancelOrder(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) SetPaymentStatus(c *gin.Context) {
	var req httpdto.SetPaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.orderUsecase.SetPaymentStatus(c.Param("id"), domain.PaymentStatus(req.PaymentStatus)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) GetAgentOrders(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	filters := domain.OrderFilters{}
	for _, s := range c.QueryArray("status") {
		filters.Statuses = append(filters.Statuses, domain.OrderStatus(s))
	}

	orders, total, err := h.orderUsecase.GetOrdersByAgentID(
		c.Param("id"), page, limit,
		c.DefaultQuery("sort_by", "created_at"),
		c.DefaultQuery("sort_order", "desc"),
		filters,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := httpdto.OrderListResponse{
		Orders: make([]httpdto.OrderResponse, len(orders)),
		Total:  total,
		Page:   page,
		Limit:  limit,
	}
	for i, o := range orders {
		resp.Orders[i] = toOrderResponse(o)
	}
	c.JSON(http.StatusOK, resp)
}

func toOrderResponse(o *domain.Order) httpdto.OrderResponse {
	return httpdto.OrderResponse{
		OrderID:       o.ID,
		OrderNumber:   orderdto.FormatOrderNumber(o.OrderNumber),
		CardDesignID:  o.CardDesignID,
		AgentID:       o.AgentID,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		PortfolioSlug: o.PortfolioSlug,

		SalePrice:          o.SalePrice,
		MSPAtOrder:         o.MSPAtOrder,
		CommissionAmount:   o.CommissionAmount,
		OverrideCommission: o.OverrideCommission,
		IsDirectSale:       o.IsDirectSale,
		IsBelowMSP:         o.IsBelowMSP,

		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		TrackingNumber:  o.TrackingNumber,
		RejectionReason: o.RejectionReason,

		ApprovedAt:  o.ApprovedAt,
		ShippedAt:   o.ShippedAt,
		DeliveredAt: o.DeliveredAt,
		PaidAt:      o.PaidAt,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
