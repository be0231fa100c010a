package repository

import (
	"context"

	"github.com/jpdelacruz/smart-expense/internal/domain/entity"
	errs "github.com/jpdelacruz/smart-expense/internal/domain/error"
	coreport "github.com/jpdelacruz/smart-expense/internal/domain/port/core"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ExpenseRepository implements persistence.ExpenseRepository using GORM
type ExpenseRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewExpenseRepository creates a new ExpenseRepository instance
func NewExpenseRepository(db *gorm.DB, logger coreport.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *ExpenseRepository) handleDatabaseError(operation string, err error) error {
	if r.errorClassifier.IsBusyError(err) {
		r.logger.Warn("Storage busy during expense operation", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
		return errs.ErrStorageBusy
	}

	r.logger.Error("Database error on expense operation", map[string]any{
		"operation": operation,
		"error":     err.Error(),
	})
	return errs.NewStorageError(operation, err)
}

// Create inserts a new expense and assigns its ID. The user reference is not
// validated; orphaned expenses are tolerated by the schema.
func (r *ExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.Expense{
		UserID:      expense.UserID,
		Category:    expense.Category,
		Amount:      expense.Amount,
		Description: expense.Description,
		Date:        expense.Date,
	}

	result := r.db.WithContext(ctx).Create(&expenseModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating expense", result.Error)
	}

	expense.ID = expenseModel.ID
	return nil
}

// ListByUser returns all expenses for a user ordered by date descending
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID uint64) ([]entity.Expense, error) {
	var expenseModels []model.Expense
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&expenseModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing expenses", result.Error)
	}

	expenses := make([]entity.Expense, 0, len(expenseModels))
	for _, m := range expenseModels {
		expenses = append(expenses, entity.Expense{
			ID:          m.ID,
			UserID:      m.UserID,
			Category:    m.Category,
			Amount:      m.Amount,
			Description: m.Description,
			Date:        m.Date,
		})
	}

	return expenses, nil
}

// DeleteByID deletes a single expense. Zero rows affected is not an error.
func (r *ExpenseRepository) DeleteByID(ctx context.Context, expenseID uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Expense{}, expenseID)
	if result.Error != nil {
		return r.handleDatabaseError("deleting expense", result.Error)
	}

	r.logger.Debug("Expense row deleted", map[string]any{
		"expense_id":    expenseID,
		"rows_affected": result.RowsAffected,
	})
	return nil
}

// DeleteByUser deletes all expenses belonging to a user
func (r *ExpenseRepository) DeleteByUser(ctx context.Context, userID uint64) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Expense{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting user expenses", result.Error)
	}

	r.logger.Debug("User expenses deleted", map[string]any{
		"user_id":       userID,
		"rows_affected": result.RowsAffected,
	})
	return nil
}
