// Package service defines interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

// PasswordHasher abstracts the hashing and verification of customer passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength checks the password against the configured
	// minimum requirements before it is accepted at signup.
	ValidatePasswordStrength(password string) error
}
