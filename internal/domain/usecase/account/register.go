package account

import (
	"context"

	"github.com/jpdelacruz/smart-expense/internal/domain/entity"
	errs "github.com/jpdelacruz/smart-expense/internal/domain/error"
)

// Register creates a new user together with its savings-goal and balance rows.
// The three inserts run inside one transaction so a failure after the user
// insert rolls everything back.
func (u *AccountUseCase) Register(ctx context.Context, email, password string) (uint64, error) {
	if email == "" || password == "" {
		return 0, errs.ErrMissingFields
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return 0, errs.ErrInternalServer
	}

	user, err := entity.NewUser(email, hash, u.timeProvider)
	if err != nil {
		return 0, err
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return 0, errs.NewStorageError("register", err)
	}

	userRepo := u.uow.GetUserRepository(txCtx)
	savingsRepo := u.uow.GetSavingsRepository(txCtx)

	if err := userRepo.Create(txCtx, user); err != nil {
		_ = u.uow.Rollback(txCtx)
		return 0, err
	}

	if err := savingsRepo.InitGoal(txCtx, user.ID); err != nil {
		_ = u.uow.Rollback(txCtx)
		return 0, errs.NewRegistrationError(email, err)
	}

	if err := savingsRepo.InitBalance(txCtx, user.ID); err != nil {
		_ = u.uow.Rollback(txCtx)
		return 0, errs.NewRegistrationError(email, err)
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return 0, errs.NewStorageError("register", err)
	}

	u.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
	})

	return user.ID, nil
}
