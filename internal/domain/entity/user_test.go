package entity

import (
	"testing"
	"time"

	errs "github.com/jpdelacruz/smart-expense/internal/domain/error"
	coremocks "github.com/jpdelacruz/smart-expense/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	t.Run("Creates user with creation time", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("ana@example.com", "hashed-secret", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", user.Email)
		assert.Equal(t, "hashed-secret", user.PasswordHash())
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Zero(t, user.ID)
	})

	t.Run("Rejects empty email", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("", "hashed-secret", mockTime)

		assert.Nil(t, user)
		assert.Equal(t, errs.ErrMissingFields, err)
	})

	t.Run("Rejects empty hash", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("ana@example.com", "", mockTime)

		assert.Nil(t, user)
		assert.Equal(t, errs.ErrMissingFields, err)
	})
}

func TestUserPasswordHash(t *testing.T) {
	user := &User{ID: 1, Email: "ana@example.com"}

	user.SetPasswordHash("updated-hash")

	assert.Equal(t, "updated-hash", user.PasswordHash())
}
