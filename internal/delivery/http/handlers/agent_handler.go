package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	httpdto "github.com/rishabhvyas17/TapOnce-sub001/internal/delivery/http/dto"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/agent"
	agentdto "github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/dto/agent"
)

type AgentHandler struct {
	agentUsecase agent.AgentUsecase
}

func NewAgentHandler(agentUsecase agent.AgentUsecase) *AgentHandler {
	return &AgentHandler{agentUsecase: agentUsecase}
}

func (h *AgentHandler) CreateAgent(c *gin.Context) {
	var req httpdto.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.agentUsecase.CreateAgent(&agentdto.CreateAgentInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		ParentAgentID:  req.ParentAgentID,
		BaseCommission: req.BaseCommission,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toAgentResponse(created))
}

func (h *AgentHandler) GetAgent(c *gin.Context) {
	found, err := h.agentUsecase.GetAgentByID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAgentResponse(found))
}

func (h *AgentHandler) AssignParent(c *gin.Context) {
	var req httpdto.AssignParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.agentUsecase.AssignParent(c.Param("id"), req.ParentAgentID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AgentHandler) SetAgentStatus(c *gin.Context) {
	var req httpdto.SetAgentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.agentUsecase.SetAgentStatus(c.Param("id"), domain.AgentStatus(req.Status)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toAgentResponse(a *domain.Agent) httpdto.AgentResponse {
	return httpdto.AgentResponse{
		AgentID:        a.ID,
		Name:           a.Name,
		Email:          a.Email,
		ReferralCode:   a.ReferralCode,
		ParentAgentID:  a.ParentAgentID,
		BaseCommission: a.BaseCommission,
		Status:         string(a.Status),

		TotalSales:       a.TotalSales,
		TotalEarnings:    a.TotalEarnings,
		AvailableBalance: a.AvailableBalance,

		CreatedAt: a.CreatedAt,
	}
}
