package repository

import (
	"context"
	"errors"

	"github.com/jpdelacruz/smart-expense/internal/domain/entity"
	errs "github.com/jpdelacruz/smart-expense/internal/domain/error"
	coreport "github.com/jpdelacruz/smart-expense/internal/domain/port/core"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SavingsRepository implements persistence.SavingsRepository using GORM.
// Both tables it manages hold at most one row per user; all writes are
// upserts keyed on user_id so concurrent writers are serialized by the
// engine, not the application.
type SavingsRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSavingsRepository creates a new SavingsRepository instance
func NewSavingsRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SavingsRepository {
	return &SavingsRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *SavingsRepository) handleDatabaseError(operation string, err error) error {
	if r.errorClassifier.IsBusyError(err) {
		r.logger.Warn("Storage busy during savings operation", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
		return errs.ErrStorageBusy
	}

	r.logger.Error("Database error on savings operation", map[string]any{
		"operation": operation,
		"error":     err.Error(),
	})
	return errs.NewStorageError(operation, err)
}

// InitGoal creates the savings-goal row for a new user with target 0. If a
// row for the user ID already exists, target and set_date are reset while the
// achieved flag is preserved.
func (r *SavingsRepository) InitGoal(ctx context.Context, userID uint64) error {
	goalModel := model.SavingsGoal{
		UserID:   userID,
		Target:   0,
		Achieved: 0,
		SetDate:  r.timeProvider.Now(),
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"target":   0,
			"set_date": goalModel.SetDate,
		}),
	}).Create(&goalModel)

	if result.Error != nil {
		return r.handleDatabaseError("initializing savings goal", result.Error)
	}
	return nil
}

// GetGoal retrieves the savings goal for a user, (nil, nil) when absent
func (r *SavingsRepository) GetGoal(ctx context.Context, userID uint64) (*entity.SavingsGoal, error) {
	var goalModel model.SavingsGoal
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&goalModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, r.handleDatabaseError("getting savings goal", result.Error)
	}

	return &entity.SavingsGoal{
		ID:       goalModel.ID,
		UserID:   goalModel.UserID,
		Target:   goalModel.Target,
		Achieved: goalModel.Achieved,
		SetDate:  goalModel.SetDate,
	}, nil
}

// DeleteGoalByUser deletes the savings-goal row for a user
func (r *SavingsRepository) DeleteGoalByUser(ctx context.Context, userID uint64) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.SavingsGoal{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting savings goal", result.Error)
	}
	return nil
}

// InitBalance creates the balance row for a new user with both fields 0,
// leaving any existing row untouched
func (r *SavingsRepository) InitBalance(ctx context.Context, userID uint64) error {
	balanceModel := model.TotalBalance{
		UserID:  userID,
		Balance: 0,
		Goal:    0,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&balanceModel)

	if result.Error != nil {
		return r.handleDatabaseError("initializing balance", result.Error)
	}
	return nil
}

// SetBalance upserts the balance field, leaving goal untouched on update and
// defaulting it to 0 on insert
func (r *SavingsRepository) SetBalance(ctx context.Context, userID uint64, balance float64) error {
	balanceModel := model.TotalBalance{
		UserID:  userID,
		Balance: balance,
		Goal:    0,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"balance"}),
	}).Create(&balanceModel)

	if result.Error != nil {
		return r.handleDatabaseError("setting balance", result.Error)
	}
	return nil
}

// SetGoalAmount upserts the goal field, leaving balance untouched on update
// and defaulting it to 0 on insert
func (r *SavingsRepository) SetGoalAmount(ctx context.Context, userID uint64, goal float64) error {
	balanceModel := model.TotalBalance{
		UserID:  userID,
		Balance: 0,
		Goal:    goal,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"goal"}),
	}).Create(&balanceModel)

	if result.Error != nil {
		return r.handleDatabaseError("setting savings goal amount", result.Error)
	}
	return nil
}

// GetBalance retrieves the balance row for a user, (nil, nil) when absent
func (r *SavingsRepository) GetBalance(ctx context.Context, userID uint64) (*entity.Balance, error) {
	var balanceModel model.TotalBalance
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&balanceModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, r.handleDatabaseError("getting balance", result.Error)
	}

	return &entity.Balance{
		UserID:  balanceModel.UserID,
		Balance: balanceModel.Balance,
		Goal:    balanceModel.Goal,
	}, nil
}

// DeleteBalanceByUser deletes the balance row for a user
func (r *SavingsRepository) DeleteBalanceByUser(ctx context.Context, userID uint64) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.TotalBalance{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting balance", result.Error)
	}
	return nil
}
