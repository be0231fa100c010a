package core

// PasswordHasher abstracts the one-way password hashing primitive.
// Implementations must never expose or log the raw password.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of the given password
	Hash(password string) (string, error)
	// Verify reports whether the password matches the stored hash
	Verify(hash, password string) bool
}
