package account

import (
	"context"

	"github.com/jpdelacruz/smart-expense/internal/domain/entity"
	errs "github.com/jpdelacruz/smart-expense/internal/domain/error"
)

// Login verifies credentials and returns the matching user.
// The returned entity keeps the hash private; it is never serialized.
func (u *AccountUseCase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !u.hasher.Verify(user.PasswordHash(), password) {
		u.logger.Warn("Login rejected", map[string]any{
			"user_id": user.ID,
		})
		return nil, errs.ErrIncorrectPassword
	}

	return user, nil
}
