package hasher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	t.Run("Hash verifies against original password", func(t *testing.T) {
		hash, err := hasher.Hash("secret")

		require.NoError(t, err)
		assert.NotEqual(t, "secret", hash)
		assert.True(t, hasher.Verify(hash, "secret"))
	})

	t.Run("Wrong password fails verification", func(t *testing.T) {
		hash, err := hasher.Hash("secret")

		require.NoError(t, err)
		assert.False(t, hasher.Verify(hash, "wrong"))
	})

	t.Run("Same password produces distinct hashes", func(t *testing.T) {
		first, err := hasher.Hash("secret")
		require.NoError(t, err)

		second, err := hasher.Hash("secret")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Garbage hash never verifies", func(t *testing.T) {
		assert.False(t, hasher.Verify("not-a-bcrypt-hash", "secret"))
	})

	t.Run("Over-long password is rejected by bcrypt", func(t *testing.T) {
		_, err := hasher.Hash(strings.Repeat("a", 100))

		assert.Error(t, err)
	})
}
