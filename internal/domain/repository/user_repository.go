// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"suq/internal/domain/entity"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the operations on the registered-customer collection.
// New users are appended, so the stored order is registration order.
type UserRepository interface {
	// List returns all registered users in registration order.
	List(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a user by id.
	// Returns ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a user by email, compared case-insensitively.
	// Returns ErrUserNotFound if no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByPhone retrieves a user by phone number.
	// Returns ErrUserNotFound if no such user exists.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// Add appends a new user to the collection.
	Add(ctx context.Context, user *entity.User) error
}
