package usecase

import (
	"context"

	"suq/internal/domain/entity"
)

// RegisterInput defines the data required to sign up a new customer.
type RegisterInput struct {
	FullName string
	Email    string
	Phone    string
	Password string
}

// LoginInput defines the data required for a customer to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AdminLoginInput defines the operator credential pair.
type AdminLoginInput struct {
	Email    string
	Password string
}

// AuthOutput returns the signed-in customer and their access token.
type AuthOutput struct {
	User        *entity.User
	AccessToken string
}

// AdminAuthOutput returns the operator token.
type AdminAuthOutput struct {
	Token string
}

// AccountUsecase defines registration, login and session operations.
// Customer and admin authentication are parallel, disjoint mechanisms.
type AccountUsecase interface {
	// Register creates a new customer and logs them in. Duplicate email
	// (case-insensitive) or phone aborts without mutating the collection.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login authenticates a customer by email and password.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Logout clears the recorded customer session. The admin session is
	// independent and unaffected.
	Logout(ctx context.Context) error

	// Profile returns the customer for the given id.
	Profile(ctx context.Context, userID string) (*entity.User, error)

	// AdminLogin checks the fixed operator credential and issues an
	// operator token. It never consults the Users collection.
	AdminLogin(ctx context.Context, input *AdminLoginInput) (*AdminAuthOutput, error)
}
