// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	domainerrors "suq/internal/domain/errors"
	"suq/internal/domain/service"
)

// defaultMinPasswordLength matches the storefront's signup rule.
const defaultMinPasswordLength = 6

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher() service.PasswordHasher {
	return NewBcryptHasherWithCost(bcrypt.DefaultCost, defaultMinPasswordLength)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost factor and
// minimum password length. Values at or below zero fall back to defaults.
func NewBcryptHasherWithCost(cost, minLength int) service.PasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	if minLength <= 0 {
		minLength = defaultMinPasswordLength
	}

	return &bcryptHasher{cost: cost, minLength: minLength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	// err is nil if the password and hash match.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength enforces the signup minimum length.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.minLength {
		return domainerrors.ErrPasswordTooShort
	}

	return nil
}
