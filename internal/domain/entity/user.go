// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a registered customer. Email is the login identifier and is
// treated as case-insensitively unique among users, phone likewise.
type User struct {
	ID           string    `json:"id"`        // Unique identifier, generated at signup.
	FullName     string    `json:"fullName"`  // The customer's display name.
	Email        string    `json:"email"`     // Login identifier.
	Phone        string    `json:"phone"`     // Contact phone number.
	PasswordHash string    `json:"-"`         // bcrypt hash of the password. Never serialized to clients.
	CreatedAt    time.Time `json:"createdAt"` // Timestamp of when the account was created.
}
