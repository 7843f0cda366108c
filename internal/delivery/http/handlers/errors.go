package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
)

// writeError maps the domain error taxonomy onto HTTP. Validation and
// business-rule violations surface verbatim; dependency failures hide
// the collaborator's internals behind a 502.
func writeError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var transitionErr *domain.InvalidTransitionError
	var balanceErr *domain.InsufficientBalanceError
	var dependencyErr *domain.DependencyError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":            transitionErr.Error(),
			"current_status":   string(transitionErr.From),
			"attempted_status": string(transitionErr.To),
		})
	case errors.As(err, &balanceErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     balanceErr.Error(),
			"shortfall": balanceErr.Shortfall(),
		})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrAlreadyProcessed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAgentInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &dependencyErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": dependencyErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
