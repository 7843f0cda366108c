package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/delivery/http/handlers"
)

func NewRouter(
	orderHandler *handlers.OrderHandler,
	agentHandler *handlers.AgentHandler,
	payoutHandler *handlers.PayoutHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.SubmitOrder)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("/:id/transition", orderHandler.TransitionOrder)
			orders.POST("/:id/approve", orderHandler.ApproveOrder)
			orders.POST("/:id/reject", orderHandler.RejectOrder)
			orders.POST("/:id/cancel", orderHandler.CancelOrder)
			orders.PATCH("/:id/payment-status", orderHandler.SetPaymentStatus)
		}

		agents := api.Group("/agents")
		{
			agents.POST("", agentHandler.CreateAgent)
			agents.GET("/:id", agentHandler.GetAgent)
			agents.PUT("/:id/parent", agentHandler.AssignParent)
			agents.PATCH("/:id/status", agentHandler.SetAgentStatus)
			agents.GET("/:id/orders", orderHandler.GetAgentOrders)
			agents.GET("/:id/payouts", payoutHandler.GetAgentPayouts)
		}

		api.POST("/payouts", payoutHandler.RequestPayout)
		api.GET("/admin/commission-liabilities", payoutHandler.GetCommissionLiabilities)
	}

	return router
}
