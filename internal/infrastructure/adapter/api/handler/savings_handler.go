package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/jpdelacruz/smart-expense/internal/domain/error"
	coreport "github.com/jpdelacruz/smart-expense/internal/domain/port/core"
	"github.com/jpdelacruz/smart-expense/internal/domain/port/usecase"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// SavingsHandler handles savings-goal and balance HTTP requests
type SavingsHandler struct {
	savingsUseCase usecase.SavingsUseCase
	logger         coreport.Logger
}

// NewSavingsHandler creates a new savings handler instance
func NewSavingsHandler(savingsUseCase usecase.SavingsUseCase, logger coreport.Logger) *SavingsHandler {
	return &SavingsHandler{
		savingsUseCase: savingsUseCase,
		logger:         logger,
	}
}

// GetSavingsGoal handles the GET /savings_goal/{user_id} endpoint.
// A user without a goal row gets zero-valued defaults, never an error.
func (h *SavingsHandler) GetSavingsGoal(c *gin.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}

	goal, err := h.savingsUseCase.GetSavingsGoal(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, "Error getting savings goal", userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.SavingsGoalResponse{
		Target:   goal.Target,
		Achieved: goal.Achieved,
	})
}

// SetBalance handles the POST /set_balance endpoint
func (h *SavingsHandler) SetBalance(c *gin.Context) {
	var req dto.SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == nil || req.Balance == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Missing fields",
		})
		return
	}

	if err := h.savingsUseCase.SetBalance(c.Request.Context(), *req.UserID, *req.Balance); err != nil {
		h.respondError(c, "Error setting balance", *req.UserID, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Total balance updated successfully",
	})
}

// SetSavingsGoal handles the POST /set_savings_goal endpoint
func (h *SavingsHandler) SetSavingsGoal(c *gin.Context) {
	var req dto.SetSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == nil || req.SavingsGoal == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Missing fields",
		})
		return
	}

	if err := h.savingsUseCase.SetSavingsGoal(c.Request.Context(), *req.UserID, *req.SavingsGoal); err != nil {
		h.respondError(c, "Error setting savings goal", *req.UserID, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Savings goal updated successfully",
	})
}

// GetBalanceAndGoal handles the GET /get_balance_goal/{user_id} endpoint.
// A user without a balance row gets zero-valued defaults, never an error.
func (h *SavingsHandler) GetBalanceAndGoal(c *gin.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}

	balance, err := h.savingsUseCase.GetBalanceAndGoal(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, "Error getting balance and goal", userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceGoalResponse{
		Balance:     balance.Balance,
		SavingsGoal: balance.Goal,
	})
}

// parseUserID extracts and validates the user ID path parameter
func (h *SavingsHandler) parseUserID(c *gin.Context) (uint64, bool) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Invalid user ID format",
		})
		return 0, false
	}
	return userID, true
}

// respondError maps domain errors to HTTP responses
func (h *SavingsHandler) respondError(c *gin.Context, logMessage string, userID uint64, err error) {
	if domainerr.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Invalid user ID format",
		})
		return
	}

	h.logger.Error(logMessage, map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Message: "Internal server error",
	})
}
