package hasher

import (
	"github.com/jpdelacruz/smart-expense/internal/domain/port/core"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements the PasswordHasher interface using bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the default bcrypt cost
func NewBcryptHasher() core.PasswordHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost.
// Tests use bcrypt.MinCost to keep hashing fast.
func NewBcryptHasherWithCost(cost int) core.PasswordHasher {
	return &BcryptHasher{cost: cost}
}

// Hash returns a salted one-way hash of the given password
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the password matches the stored hash
func (h *BcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
