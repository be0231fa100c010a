package repository

import (
	"context"
	"errors"

	"github.com/jpdelacruz/smart-expense/internal/domain/entity"
	errs "github.com/jpdelacruz/smart-expense/internal/domain/error"
	coreport "github.com/jpdelacruz/smart-expense/internal/domain/port/core"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	user := &entity.User{
		ID:        userModel.ID,
		Email:     userModel.Email,
		CreatedAt: userModel.CreatedAt,
	}
	user.SetPasswordHash(userModel.PasswordHash)
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error) error {
	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate email on user insert", nil)
		return errs.ErrEmailTaken
	}

	if r.errorClassifier.IsBusyError(err) {
		r.logger.Warn("Storage busy during user operation", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
		return errs.ErrStorageBusy
	}

	r.logger.Error("Database error on user operation", map[string]any{
		"operation": operation,
		"error":     err.Error(),
	})
	return errs.NewStorageError(operation, err)
}

// Create inserts a new user and assigns its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Email:        user.Email,
		PasswordHash: user.PasswordHash(),
		CreatedAt:    user.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error)
	}

	user.ID = userModel.ID

	r.logger.Info("User row created", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrEmailNotFound
		}
		return nil, r.handleDatabaseError("getting user by email", result.Error)
	}

	return r.modelToEntity(&userModel), nil
}

// DeleteByID deletes a user row. Zero rows affected is not an error.
func (r *UserRepository) DeleteByID(ctx context.Context, userID uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.User{}, userID)
	if result.Error != nil {
		return r.handleDatabaseError("deleting user", result.Error)
	}

	r.logger.Debug("User row deleted", map[string]any{
		"user_id":       userID,
		"rows_affected": result.RowsAffected,
	})
	return nil
}
