package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	httpdto "github.com/rishabhvyas17/TapOnce-sub001/internal/delivery/http/dto"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	payoutdto "github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/dto/payout"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/ledger"
)

type PayoutHandler struct {
	ledgerUsecase ledger.LedgerUsecase
}

func NewPayoutHandler(ledgerUsecase ledger.LedgerUsecase) *PayoutHandler {
	return &PayoutHandler{ledgerUsecase: ledgerUsecase}
}

func (h *PayoutHandler) RequestPayout(c *gin.Context) {
	var req httpdto.RequestPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payout, err := h.ledgerUsecase.RequestPayout(&payoutdto.RequestPayoutInput{
		AgentID:       req.AgentID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		AdminNotes:    req.AdminNotes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPayoutResponse(payout))
}

func (h *PayoutHandler) GetAgentPayouts(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	payouts, total, err := h.ledgerUsecase.GetPayoutsByAgentID(c.Param("id"), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := httpdto.PayoutListResponse{
		Payouts: make([]httpdto.PayoutResponse, len(payouts)),
		Total:   total,
	}
	for i, p := range payouts {
		resp.Payouts[i] = toPayoutResponse(p)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PayoutHandler) GetCommissionLiabilities(c *gin.Context) {
	liabilities, err := h.ledgerUsecase.GetCommissionLiabilities(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liabilities": liabilities})
}

func toPayoutResponse(p *domain.Payout) httpdto.PayoutResponse {
	return httpdto.PayoutResponse{
		PayoutID:      p.ID,
		AgentID:       p.AgentID,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		AdminNotes:    p.AdminNotes,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
	}
}
