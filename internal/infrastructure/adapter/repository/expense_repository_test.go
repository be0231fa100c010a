package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jpdelacruz/smart-expense/internal/domain/entity"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/database"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/logger"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createExpenseAt(t *testing.T, repo *repository.ExpenseRepository, userID uint64, category string, date time.Time) *entity.Expense {
	t.Helper()

	exp := &entity.Expense{
		UserID:   userID,
		Category: category,
		Amount:   10,
		Date:     date,
	}
	require.NoError(t, repo.Create(context.Background(), exp))
	return exp
}

func TestExpenseRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDB(t)
	repo := repository.NewExpenseRepository(db, logger.NewNoopLogger())

	t.Run("Assigns an ID on insert", func(t *testing.T) {
		exp := &entity.Expense{
			UserID:      7,
			Category:    "groceries",
			Amount:      45.50,
			Description: "weekly shop",
			Date:        time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		}

		err := repo.Create(ctx, exp)

		require.NoError(t, err)
		assert.NotZero(t, exp.ID)
	})

	t.Run("User reference is not validated", func(t *testing.T) {
		exp := &entity.Expense{
			UserID:   99999,
			Category: "groceries",
			Amount:   10,
			Date:     time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		}

		err := repo.Create(ctx, exp)

		assert.NoError(t, err)
	})
}

func TestExpenseRepositoryListByUser(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDB(t)
	repo := repository.NewExpenseRepository(db, logger.NewNoopLogger())

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	oldest := createExpenseAt(t, repo, 7, "groceries", base)
	newest := createExpenseAt(t, repo, 7, "transport", base.Add(48*time.Hour))
	middle := createExpenseAt(t, repo, 7, "dining", base.Add(24*time.Hour))
	createExpenseAt(t, repo, 8, "other-user", base)

	t.Run("Returns only the user's expenses, newest first", func(t *testing.T) {
		expenses, err := repo.ListByUser(ctx, 7)

		require.NoError(t, err)
		require.Len(t, expenses, 3)
		assert.Equal(t, newest.ID, expenses[0].ID)
		assert.Equal(t, middle.ID, expenses[1].ID)
		assert.Equal(t, oldest.ID, expenses[2].ID)
	})

	t.Run("User with no expenses yields empty slice", func(t *testing.T) {
		expenses, err := repo.ListByUser(ctx, 12345)

		require.NoError(t, err)
		assert.NotNil(t, expenses)
		assert.Empty(t, expenses)
	})
}

func TestExpenseRepositoryDeleteByID(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDB(t)
	repo := repository.NewExpenseRepository(db, logger.NewNoopLogger())

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	exp := createExpenseAt(t, repo, 7, "groceries", base)
	kept := createExpenseAt(t, repo, 7, "transport", base.Add(time.Hour))

	t.Run("Deletes only the targeted expense", func(t *testing.T) {
		err := repo.DeleteByID(ctx, exp.ID)

		require.NoError(t, err)

		expenses, err := repo.ListByUser(ctx, 7)
		require.NoError(t, err)
		require.Len(t, expenses, 1)
		assert.Equal(t, kept.ID, expenses[0].ID)
	})

	t.Run("Deleting a missing ID is not an error", func(t *testing.T) {
		err := repo.DeleteByID(ctx, 9999)

		assert.NoError(t, err)
	})

	t.Run("Deleting the same ID twice is not an error", func(t *testing.T) {
		err := repo.DeleteByID(ctx, exp.ID)

		assert.NoError(t, err)
	})
}

func TestExpenseRepositoryDeleteByUser(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDB(t)
	repo := repository.NewExpenseRepository(db, logger.NewNoopLogger())

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	createExpenseAt(t, repo, 7, "groceries", base)
	createExpenseAt(t, repo, 7, "transport", base.Add(time.Hour))
	other := createExpenseAt(t, repo, 8, "other-user", base)

	t.Run("Removes all expenses for the user", func(t *testing.T) {
		err := repo.DeleteByUser(ctx, 7)

		require.NoError(t, err)

		expenses, err := repo.ListByUser(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, expenses)
	})

	t.Run("Other users' expenses are untouched", func(t *testing.T) {
		expenses, err := repo.ListByUser(ctx, 8)

		require.NoError(t, err)
		require.Len(t, expenses, 1)
		assert.Equal(t, other.ID, expenses[0].ID)
	})
}
