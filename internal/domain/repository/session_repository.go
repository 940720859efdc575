// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"suq/internal/domain/entity"
)

// Domain-specific errors for session persistence.
var (
	// ErrNoSession is returned when no customer is recorded as signed in.
	ErrNoSession = errors.New("no current session")
)

// SessionRepository holds the single pointer to the last signed-in customer.
// Request authentication itself is token-based; this region only records
// who signed in last, and is cleared explicitly on logout.
type SessionRepository interface {
	// Current returns the recorded customer.
	// Returns ErrNoSession when the region is empty or absent.
	Current(ctx context.Context) (*entity.User, error)

	// SetCurrent records the given customer as signed in.
	SetCurrent(ctx context.Context, user *entity.User) error

	// Clear removes the recorded customer. Clearing an empty region is a no-op.
	Clear(ctx context.Context) error
}
