package routes

import (
	coreport "github.com/jpdelacruz/smart-expense/internal/domain/port/core"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/api/handler"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	accountHandler *handler.AccountHandler,
	expenseHandler *handler.ExpenseHandler,
	savingsHandler *handler.SavingsHandler,
) {
	// Account routes
	router.POST("/register", accountHandler.Register)
	router.POST("/login", accountHandler.Login)
	router.DELETE("/delete_user/:userId", accountHandler.DeleteUser)

	// Expense routes
	router.POST("/add_expense", expenseHandler.AddExpense)
	router.GET("/expenses/:userId", expenseHandler.ListExpenses)
	router.DELETE("/delete_expense/:expenseId", expenseHandler.DeleteExpense)

	// Savings and balance routes
	router.GET("/savings_goal/:userId", savingsHandler.GetSavingsGoal)
	router.POST("/set_balance", savingsHandler.SetBalance)
	router.POST("/set_savings_goal", savingsHandler.SetSavingsGoal)
	router.GET("/get_balance_goal/:userId", savingsHandler.GetBalanceAndGoal)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
