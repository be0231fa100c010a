package account

import (
	"context"
	"testing"
	"time"

	"github.com/jpdelacruz/smart-expense/internal/domain/entity"
	errs "github.com/jpdelacruz/smart-expense/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	storedUser := &entity.User{
		ID:        7,
		Email:     "ana@example.com",
		CreatedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
	}
	storedUser.SetPasswordHash("hashed-secret")

	t.Run("Successful login", func(t *testing.T) {
		m := newRegisterMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ana@example.com").Return(storedUser, nil).Once()
		m.hasher.EXPECT().Verify("hashed-secret", "secret").Return(true).Once()

		user, err := m.useCase().Login(ctx, "ana@example.com", "secret")

		require.NoError(t, err)
		assert.Equal(t, uint64(7), user.ID)
		assert.Equal(t, "ana@example.com", user.Email)
	})

	t.Run("Unknown email", func(t *testing.T) {
		m := newRegisterMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, errs.ErrEmailNotFound).Once()

		user, err := m.useCase().Login(ctx, "ghost@example.com", "secret")

		assert.Nil(t, user)
		assert.Equal(t, errs.ErrEmailNotFound, err)
	})

	t.Run("Wrong password", func(t *testing.T) {
		m := newRegisterMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ana@example.com").Return(storedUser, nil).Once()
		m.hasher.EXPECT().Verify("hashed-secret", "wrong").Return(false).Once()
		m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		user, err := m.useCase().Login(ctx, "ana@example.com", "wrong")

		assert.Nil(t, user)
		assert.Equal(t, errs.ErrIncorrectPassword, err)
	})
}
