package handler

import (
	"errors"
	"net/http"
	"strconv"

	domainerr "github.com/jpdelacruz/smart-expense/internal/domain/error"
	coreport "github.com/jpdelacruz/smart-expense/internal/domain/port/core"
	"github.com/jpdelacruz/smart-expense/internal/domain/port/usecase"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountUseCase usecase.AccountUseCase
	logger         coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accountUseCase usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// Register handles the POST /register endpoint
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Email and password required",
		})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Email and password required",
		})
		return
	}

	userID, err := h.accountUseCase.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domainerr.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "Email already registered",
			})
			return
		}

		h.logger.Error("Error registering user", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Message: "Database error: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.RegisterResponse{
		Message: "User registered successfully",
		ID:      userID,
	})
}

// Login handles the POST /login endpoint
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Email and password required",
		})
		return
	}

	user, err := h.accountUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainerr.ErrEmailNotFound):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "Email not registered",
			})
		case errors.Is(err, domainerr.ErrIncorrectPassword):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "Incorrect password",
			})
		default:
			h.logger.Error("Error logging in", map[string]any{
				"error": err.Error(),
			})
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Message: "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		ID:    user.ID,
		Email: user.Email,
	})
}

// DeleteUser handles the DELETE /delete_user/{user_id} endpoint
func (h *AccountHandler) DeleteUser(c *gin.Context) {
	userIDParam := c.Param("userId")
	userID, err := strconv.ParseUint(userIDParam, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Invalid user ID format",
		})
		return
	}

	if err := h.accountUseCase.DeleteUser(c.Request.Context(), userID); err != nil {
		if domainerr.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "Invalid user ID format",
			})
			return
		}

		h.logger.Error("Error deleting user", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Message: "Failed to delete user",
		})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "User deleted successfully",
	})
}
