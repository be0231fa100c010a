package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jpdelacruz/smart-expense/internal/domain/entity"
	errs "github.com/jpdelacruz/smart-expense/internal/domain/error"
	coremocks "github.com/jpdelacruz/smart-expense/mocks/port/core"
	persistencemocks "github.com/jpdelacruz/smart-expense/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type registerMocks struct {
	uow         *persistencemocks.MockUnitOfWork
	userRepo    *persistencemocks.MockUserRepository
	expenseRepo *persistencemocks.MockExpenseRepository
	savingsRepo *persistencemocks.MockSavingsRepository
	hasher      *coremocks.MockPasswordHasher
	timeMock    *coremocks.MockTimeProvider
	logger      *coremocks.MockLogger
}

func newRegisterMocks(t *testing.T) registerMocks {
	return registerMocks{
		uow:         persistencemocks.NewMockUnitOfWork(t),
		userRepo:    persistencemocks.NewMockUserRepository(t),
		expenseRepo: persistencemocks.NewMockExpenseRepository(t),
		savingsRepo: persistencemocks.NewMockSavingsRepository(t),
		hasher:      coremocks.NewMockPasswordHasher(t),
		timeMock:    coremocks.NewMockTimeProvider(t),
		logger:      coremocks.NewMockLogger(t),
	}
}

func (m registerMocks) useCase() *AccountUseCase {
	return NewAccountUseCase(m.uow, m.userRepo, m.expenseRepo, m.savingsRepo, m.hasher, m.timeMock, m.logger)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	t.Run("Successful registration", func(t *testing.T) {
		m := newRegisterMocks(t)

		m.hasher.EXPECT().Hash("secret").Return("hashed-secret", nil).Once()
		m.timeMock.EXPECT().Now().Return(fixedTime).Maybe()

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Once()
		m.uow.EXPECT().GetSavingsRepository(mock.Anything).Return(m.savingsRepo).Once()

		m.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "ana@example.com" && user.PasswordHash() == "hashed-secret"
		})).Run(func(ctx context.Context, user *entity.User) {
			user.ID = 42
		}).Return(nil).Once()

		m.savingsRepo.EXPECT().InitGoal(mock.Anything, uint64(42)).Return(nil).Once()
		m.savingsRepo.EXPECT().InitBalance(mock.Anything, uint64(42)).Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		id, err := m.useCase().Register(ctx, "ana@example.com", "secret")

		require.NoError(t, err)
		assert.Equal(t, uint64(42), id)
	})

	t.Run("Missing email", func(t *testing.T) {
		m := newRegisterMocks(t)

		id, err := m.useCase().Register(ctx, "", "secret")

		assert.Equal(t, errs.ErrMissingFields, err)
		assert.Zero(t, id)
	})

	t.Run("Missing password", func(t *testing.T) {
		m := newRegisterMocks(t)

		id, err := m.useCase().Register(ctx, "ana@example.com", "")

		assert.Equal(t, errs.ErrMissingFields, err)
		assert.Zero(t, id)
	})

	t.Run("Duplicate email rolls back", func(t *testing.T) {
		m := newRegisterMocks(t)

		m.hasher.EXPECT().Hash("secret").Return("hashed-secret", nil).Once()
		m.timeMock.EXPECT().Now().Return(fixedTime).Maybe()

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Once()
		m.uow.EXPECT().GetSavingsRepository(mock.Anything).Return(m.savingsRepo).Once()

		m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrEmailTaken).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		id, err := m.useCase().Register(ctx, "ana@example.com", "secret")

		assert.Equal(t, errs.ErrEmailTaken, err)
		assert.Zero(t, id)
	})

	t.Run("Goal init failure rolls back", func(t *testing.T) {
		m := newRegisterMocks(t)

		m.hasher.EXPECT().Hash("secret").Return("hashed-secret", nil).Once()
		m.timeMock.EXPECT().Now().Return(fixedTime).Maybe()

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Once()
		m.uow.EXPECT().GetSavingsRepository(mock.Anything).Return(m.savingsRepo).Once()

		m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, user *entity.User) {
			user.ID = 42
		}).Return(nil).Once()

		storageErr := errors.New("disk I/O error")
		m.savingsRepo.EXPECT().InitGoal(mock.Anything, uint64(42)).Return(storageErr).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		id, err := m.useCase().Register(ctx, "ana@example.com", "secret")

		assert.Error(t, err)
		assert.Zero(t, id)
		assert.ErrorIs(t, err, storageErr)
	})

	t.Run("Hashing failure", func(t *testing.T) {
		m := newRegisterMocks(t)

		m.hasher.EXPECT().Hash("secret").Return("", errors.New("bcrypt failure")).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		id, err := m.useCase().Register(ctx, "ana@example.com", "secret")

		assert.Equal(t, errs.ErrInternalServer, err)
		assert.Zero(t, id)
	})

	t.Run("Commit failure", func(t *testing.T) {
		m := newRegisterMocks(t)

		m.hasher.EXPECT().Hash("secret").Return("hashed-secret", nil).Once()
		m.timeMock.EXPECT().Now().Return(fixedTime).Maybe()

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Once()
		m.uow.EXPECT().GetSavingsRepository(mock.Anything).Return(m.savingsRepo).Once()

		m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, user *entity.User) {
			user.ID = 42
		}).Return(nil).Once()
		m.savingsRepo.EXPECT().InitGoal(mock.Anything, uint64(42)).Return(nil).Once()
		m.savingsRepo.EXPECT().InitBalance(mock.Anything, uint64(42)).Return(nil).Once()

		m.uow.EXPECT().Commit(mock.Anything).Return(errors.New("commit failed")).Once()

		id, err := m.useCase().Register(ctx, "ana@example.com", "secret")

		assert.Error(t, err)
		assert.Zero(t, id)
		assert.True(t, errs.IsStorageError(err))
	})
}
