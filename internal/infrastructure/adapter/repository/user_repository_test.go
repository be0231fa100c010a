package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jpdelacruz/smart-expense/internal/domain/entity"
	errs "github.com/jpdelacruz/smart-expense/internal/domain/error"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/database"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/logger"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/repository"
	timeProvider "github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, email string) *entity.User {
	t.Helper()

	user, err := entity.NewUser(email, "hashed-secret", timeProvider.NewRealTimeProvider())
	require.NoError(t, err)
	return user
}

func TestUserRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDB(t)
	repo := repository.NewUserRepository(db, logger.NewNoopLogger())

	t.Run("Assigns an ID on insert", func(t *testing.T) {
		user := newTestUser(t, "ana@example.com")

		err := repo.Create(ctx, user)

		require.NoError(t, err)
		assert.NotZero(t, user.ID)
	})

	t.Run("Duplicate email is rejected", func(t *testing.T) {
		duplicate := newTestUser(t, "ana@example.com")

		err := repo.Create(ctx, duplicate)

		assert.Equal(t, errs.ErrEmailTaken, err)
	})

	t.Run("Different emails get distinct IDs", func(t *testing.T) {
		first := newTestUser(t, "ben@example.com")
		second := newTestUser(t, "cara@example.com")

		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))

		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDB(t)
	repo := repository.NewUserRepository(db, logger.NewNoopLogger())

	stored := newTestUser(t, "ana@example.com")
	require.NoError(t, repo.Create(ctx, stored))

	t.Run("Returns stored user with hash", func(t *testing.T) {
		user, err := repo.GetByEmail(ctx, "ana@example.com")

		require.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)
		assert.Equal(t, "ana@example.com", user.Email)
		assert.Equal(t, "hashed-secret", user.PasswordHash())
		assert.WithinDuration(t, time.Now().UTC(), user.CreatedAt, time.Minute)
	})

	t.Run("Unknown email returns not found", func(t *testing.T) {
		user, err := repo.GetByEmail(ctx, "ghost@example.com")

		assert.Nil(t, user)
		assert.Equal(t, errs.ErrEmailNotFound, err)
	})
}

func TestUserRepositoryDeleteByID(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDB(t)
	repo := repository.NewUserRepository(db, logger.NewNoopLogger())

	stored := newTestUser(t, "ana@example.com")
	require.NoError(t, repo.Create(ctx, stored))

	t.Run("Deletes existing user", func(t *testing.T) {
		err := repo.DeleteByID(ctx, stored.ID)

		require.NoError(t, err)

		_, err = repo.GetByEmail(ctx, "ana@example.com")
		assert.Equal(t, errs.ErrEmailNotFound, err)
	})

	t.Run("Deleting a missing ID is not an error", func(t *testing.T) {
		err := repo.DeleteByID(ctx, 9999)

		assert.NoError(t, err)
	})

	t.Run("Email is reusable after deletion", func(t *testing.T) {
		recreated := newTestUser(t, "ana@example.com")

		err := repo.Create(ctx, recreated)

		require.NoError(t, err)
		assert.NotZero(t, recreated.ID)
	})
}
