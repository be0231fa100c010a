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

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseUseCase usecase.ExpenseUseCase
	logger         coreport.Logger
}

// NewExpenseHandler creates a new expense handler instance
func NewExpenseHandler(expenseUseCase usecase.ExpenseUseCase, logger coreport.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseUseCase: expenseUseCase,
		logger:         logger,
	}
}

// AddExpense handles the POST /add_expense endpoint
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	var req dto.AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Missing fields",
		})
		return
	}

	// Amount and user_id may legitimately be zero-valued only when present;
	// nil pointers mean the field was absent
	if req.UserID == nil || req.Category == "" || req.Amount == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Missing fields",
		})
		return
	}

	err := h.expenseUseCase.AddExpense(c.Request.Context(), *req.UserID, req.Category, *req.Amount, req.Description)
	if err != nil {
		if domainerr.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "Missing fields",
			})
			return
		}

		h.logger.Error("Error adding expense", map[string]any{
			"user_id": *req.UserID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Message: "Failed to add expense",
		})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Expense added successfully",
	})
}

// ListExpenses handles the GET /expenses/{user_id} endpoint
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userIDParam := c.Param("userId")
	userID, err := strconv.ParseUint(userIDParam, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Invalid user ID format",
		})
		return
	}

	expenses, err := h.expenseUseCase.ListExpenses(c.Request.Context(), userID)
	if err != nil {
		if domainerr.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "Invalid user ID format",
			})
			return
		}

		h.logger.Error("Error listing expenses", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewExpenseListResponse(expenses))
}

// DeleteExpense handles the DELETE /delete_expense/{expense_id} endpoint
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	expenseIDParam := c.Param("expenseId")
	expenseID, err := strconv.ParseUint(expenseIDParam, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Invalid expense ID format",
		})
		return
	}

	if err := h.expenseUseCase.DeleteExpense(c.Request.Context(), expenseID); err != nil {
		if domainerr.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "Invalid expense ID format",
			})
			return
		}

		h.logger.Error("Error deleting expense", map[string]any{
			"expense_id": expenseID,
			"error":      err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Message: "Failed to delete expense",
		})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Expense deleted successfully",
	})
}
