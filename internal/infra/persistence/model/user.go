// Package model contains the storage representations of domain entities.
// They exist so the stored JSON shape can diverge from what the API is
// willing to expose, most notably the password hash.
package model

import (
	"time"

	"suq/internal/domain/entity"
)

// User is the stored form of entity.User. Unlike the entity, it serializes
// the password hash, which must round-trip through the users region.
type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FromUserEntity converts a domain user into its stored form.
func FromUserEntity(user *entity.User) *User {
	return &User{
		ID:           user.ID,
		FullName:     user.FullName,
		Email:        user.Email,
		Phone:        user.Phone,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
}

// ToEntity converts a stored user back into the domain entity.
func (u *User) ToEntity() *entity.User {
	return &entity.User{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}
