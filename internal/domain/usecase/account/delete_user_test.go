package account

import (
	"context"
	"errors"
	"testing"

	errs "github.com/jpdelacruz/smart-expense/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes user with expenses, goal and balance", func(t *testing.T) {
		m := newRegisterMocks(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Once()
		m.uow.EXPECT().GetExpenseRepository(mock.Anything).Return(m.expenseRepo).Once()
		m.uow.EXPECT().GetSavingsRepository(mock.Anything).Return(m.savingsRepo).Once()

		m.userRepo.EXPECT().DeleteByID(mock.Anything, uint64(7)).Return(nil).Once()
		m.expenseRepo.EXPECT().DeleteByUser(mock.Anything, uint64(7)).Return(nil).Once()
		m.savingsRepo.EXPECT().DeleteGoalByUser(mock.Anything, uint64(7)).Return(nil).Once()
		m.savingsRepo.EXPECT().DeleteBalanceByUser(mock.Anything, uint64(7)).Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		m.logger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		err := m.useCase().DeleteUser(ctx, 7)

		assert.NoError(t, err)
	})

	t.Run("Zero user ID rejected", func(t *testing.T) {
		m := newRegisterMocks(t)

		err := m.useCase().DeleteUser(ctx, 0)

		assert.Equal(t, errs.ErrInvalidUserID, err)
	})

	t.Run("Expense cleanup failure rolls everything back", func(t *testing.T) {
		m := newRegisterMocks(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Once()
		m.uow.EXPECT().GetExpenseRepository(mock.Anything).Return(m.expenseRepo).Once()
		m.uow.EXPECT().GetSavingsRepository(mock.Anything).Return(m.savingsRepo).Once()

		storageErr := errors.New("disk I/O error")
		m.userRepo.EXPECT().DeleteByID(mock.Anything, uint64(7)).Return(nil).Once()
		m.expenseRepo.EXPECT().DeleteByUser(mock.Anything, uint64(7)).Return(storageErr).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		err := m.useCase().DeleteUser(ctx, 7)

		assert.Equal(t, storageErr, err)
	})

	t.Run("Begin failure surfaces as storage error", func(t *testing.T) {
		m := newRegisterMocks(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(nil, errors.New("database is locked")).Once()

		err := m.useCase().DeleteUser(ctx, 7)

		assert.Error(t, err)
		assert.True(t, errs.IsStorageError(err))
	})
}
