package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	accountUseCase "github.com/jpdelacruz/smart-expense/internal/domain/usecase/account"
	expenseUseCase "github.com/jpdelacruz/smart-expense/internal/domain/usecase/expense"
	savingsUseCase "github.com/jpdelacruz/smart-expense/internal/domain/usecase/savings"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/api/handler"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/api/routes"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/database"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/hasher"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/logger"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/repository"
	timeProvider "github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/time"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newTestRouter wires the full API against an in-memory database
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := database.NewTestDB(t)
	appLogger := logger.NewNoopLogger()
	tp := timeProvider.NewRealTimeProvider()

	userRepo := repository.NewUserRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)
	savingsRepo := repository.NewSavingsRepository(db, tp, appLogger)
	uow := database.NewUnitOfWork(db, appLogger, tp)
	passwordHasher := hasher.NewBcryptHasherWithCost(bcrypt.MinCost)

	accountHandler := handler.NewAccountHandler(
		accountUseCase.NewAccountUseCase(uow, userRepo, expenseRepo, savingsRepo, passwordHasher, tp, appLogger),
		appLogger,
	)
	expenseHandler := handler.NewExpenseHandler(
		expenseUseCase.NewExpenseUseCase(expenseRepo, tp, appLogger),
		appLogger,
	)
	savingsHandler := handler.NewSavingsHandler(
		savingsUseCase.NewSavingsUseCase(savingsRepo, appLogger),
		appLogger,
	)

	router := gin.New()
	routes.SetupRoutes(router, accountHandler, expenseHandler, savingsHandler)
	return router
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func registerUser(t *testing.T, router *gin.Engine, email string) uint64 {
	t.Helper()

	w := performRequest(t, router, http.MethodPost, "/register", gin.H{
		"email":    email,
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	return uint64(body["id"].(float64))
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("Successful registration returns the new ID", func(t *testing.T) {
		router := newTestRouter(t)

		w := performRequest(t, router, http.MethodPost, "/register", gin.H{
			"email":    "ana@example.com",
			"password": "secret",
		})

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "User registered successfully", body["message"])
		assert.NotZero(t, body["id"])
	})

	t.Run("Duplicate email is rejected", func(t *testing.T) {
		router := newTestRouter(t)
		registerUser(t, router, "ana@example.com")

		w := performRequest(t, router, http.MethodPost, "/register", gin.H{
			"email":    "ana@example.com",
			"password": "other",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email already registered", decodeBody(t, w)["message"])
	})

	t.Run("Missing credentials are rejected", func(t *testing.T) {
		router := newTestRouter(t)

		for _, payload := range []gin.H{
			{},
			{"email": "ana@example.com"},
			{"password": "secret"},
			{"email": "", "password": ""},
		} {
			w := performRequest(t, router, http.MethodPost, "/register", payload)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Email and password required", decodeBody(t, w)["message"])
		}
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("Login returns the registered ID", func(t *testing.T) {
		router := newTestRouter(t)
		userID := registerUser(t, router, "ana@example.com")

		w := performRequest(t, router, http.MethodPost, "/login", gin.H{
			"email":    "ana@example.com",
			"password": "secret",
		})

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(userID), body["id"])
		assert.Equal(t, "ana@example.com", body["email"])
	})

	t.Run("Unknown email", func(t *testing.T) {
		router := newTestRouter(t)

		w := performRequest(t, router, http.MethodPost, "/login", gin.H{
			"email":    "ghost@example.com",
			"password": "secret",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email not registered", decodeBody(t, w)["message"])
	})

	t.Run("Wrong password", func(t *testing.T) {
		router := newTestRouter(t)
		registerUser(t, router, "ana@example.com")

		w := performRequest(t, router, http.MethodPost, "/login", gin.H{
			"email":    "ana@example.com",
			"password": "wrong",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Incorrect password", decodeBody(t, w)["message"])
	})
}

func TestExpenseEndpoints(t *testing.T) {
	t.Run("Add and list round trip, newest first", func(t *testing.T) {
		router := newTestRouter(t)
		userID := registerUser(t, router, "ana@example.com")

		for _, category := range []string{"groceries", "transport", "dining"} {
			w := performRequest(t, router, http.MethodPost, "/add_expense", gin.H{
				"user_id":  userID,
				"category": category,
				"amount":   45.50,
			})
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "Expense added successfully", decodeBody(t, w)["message"])
		}

		w := performRequest(t, router, http.MethodGet, "/expenses/1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var expenses []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &expenses))
		require.Len(t, expenses, 3)

		// Dates are non-increasing down the list
		for i := 1; i < len(expenses); i++ {
			assert.GreaterOrEqual(t, expenses[i-1]["date"].(string), expenses[i]["date"].(string))
		}

		categories := make([]string, 0, len(expenses))
		for _, exp := range expenses {
			categories = append(categories, exp["category"].(string))
		}
		assert.ElementsMatch(t, []string{"groceries", "transport", "dining"}, categories)
	})

	t.Run("Zero amount is a valid expense", func(t *testing.T) {
		router := newTestRouter(t)
		userID := registerUser(t, router, "ana@example.com")

		w := performRequest(t, router, http.MethodPost, "/add_expense", gin.H{
			"user_id":  userID,
			"category": "refund",
			"amount":   0,
		})

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Absent fields are rejected", func(t *testing.T) {
		router := newTestRouter(t)
		userID := registerUser(t, router, "ana@example.com")

		for _, payload := range []gin.H{
			{"category": "groceries", "amount": 45.50},
			{"user_id": userID, "amount": 45.50},
			{"user_id": userID, "category": "groceries"},
		} {
			w := performRequest(t, router, http.MethodPost, "/add_expense", payload)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Missing fields", decodeBody(t, w)["message"])
		}
	})

	t.Run("Empty list is a JSON array, not null", func(t *testing.T) {
		router := newTestRouter(t)
		registerUser(t, router, "ana@example.com")

		w := performRequest(t, router, http.MethodGet, "/expenses/1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		router := newTestRouter(t)
		userID := registerUser(t, router, "ana@example.com")

		w := performRequest(t, router, http.MethodPost, "/add_expense", gin.H{
			"user_id":  userID,
			"category": "groceries",
			"amount":   45.50,
		})
		require.Equal(t, http.StatusOK, w.Code)

		for i := 0; i < 2; i++ {
			w := performRequest(t, router, http.MethodDelete, "/delete_expense/1", nil)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "Expense deleted successfully", decodeBody(t, w)["message"])
		}
	})

	t.Run("Malformed user ID in path", func(t *testing.T) {
		router := newTestRouter(t)

		w := performRequest(t, router, http.MethodGet, "/expenses/abc", nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid user ID format", decodeBody(t, w)["message"])
	})
}

func TestSavingsEndpoints(t *testing.T) {
	t.Run("New user starts with zeroed goal and balance", func(t *testing.T) {
		router := newTestRouter(t)
		registerUser(t, router, "ana@example.com")

		w := performRequest(t, router, http.MethodGet, "/savings_goal/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(0), body["target"])
		assert.Equal(t, float64(0), body["achieved"])

		w = performRequest(t, router, http.MethodGet, "/get_balance_goal/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body = decodeBody(t, w)
		assert.Equal(t, float64(0), body["balance"])
		assert.Equal(t, float64(0), body["savings_goal"])
	})

	t.Run("Balance and goal updates do not clobber each other", func(t *testing.T) {
		router := newTestRouter(t)
		userID := registerUser(t, router, "ana@example.com")

		w := performRequest(t, router, http.MethodPost, "/set_balance", gin.H{
			"user_id": userID,
			"balance": 2500,
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Total balance updated successfully", decodeBody(t, w)["message"])

		w = performRequest(t, router, http.MethodPost, "/set_savings_goal", gin.H{
			"user_id":      userID,
			"savings_goal": 5000,
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Savings goal updated successfully", decodeBody(t, w)["message"])

		w = performRequest(t, router, http.MethodGet, "/get_balance_goal/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(2500), body["balance"])
		assert.Equal(t, float64(5000), body["savings_goal"])
	})

	t.Run("Explicit zero balance is accepted", func(t *testing.T) {
		router := newTestRouter(t)
		userID := registerUser(t, router, "ana@example.com")

		w := performRequest(t, router, http.MethodPost, "/set_balance", gin.H{
			"user_id": userID,
			"balance": 0,
		})

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Absent fields are rejected", func(t *testing.T) {
		router := newTestRouter(t)
		userID := registerUser(t, router, "ana@example.com")

		w := performRequest(t, router, http.MethodPost, "/set_balance", gin.H{
			"user_id": userID,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing fields", decodeBody(t, w)["message"])

		w = performRequest(t, router, http.MethodPost, "/set_savings_goal", gin.H{
			"savings_goal": 5000,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing fields", decodeBody(t, w)["message"])
	})

	t.Run("Querying a user without rows yields zero defaults", func(t *testing.T) {
		router := newTestRouter(t)

		w := performRequest(t, router, http.MethodGet, "/get_balance_goal/42", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(0), body["balance"])
		assert.Equal(t, float64(0), body["savings_goal"])
	})
}

func TestDeleteUserEndpoint(t *testing.T) {
	t.Run("Removes the account and everything attached to it", func(t *testing.T) {
		router := newTestRouter(t)
		userID := registerUser(t, router, "ana@example.com")

		w := performRequest(t, router, http.MethodPost, "/add_expense", gin.H{
			"user_id":  userID,
			"category": "groceries",
			"amount":   45.50,
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = performRequest(t, router, http.MethodDelete, "/delete_user/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "User deleted successfully", decodeBody(t, w)["message"])

		w = performRequest(t, router, http.MethodPost, "/login", gin.H{
			"email":    "ana@example.com",
			"password": "secret",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email not registered", decodeBody(t, w)["message"])

		w = performRequest(t, router, http.MethodGet, "/expenses/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("Deleting an unknown user still succeeds", func(t *testing.T) {
		router := newTestRouter(t)

		w := performRequest(t, router, http.MethodDelete, "/delete_user/9999", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "User deleted successfully", decodeBody(t, w)["message"])
	})

	t.Run("Malformed user ID in path", func(t *testing.T) {
		router := newTestRouter(t)

		w := performRequest(t, router, http.MethodDelete, "/delete_user/abc", nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid user ID format", decodeBody(t, w)["message"])
	})
}
