// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"suq/internal/domain/entity"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the operations on the order collection.
// Stored order is most-recent-first; that ordering is a display contract,
// not an implementation detail.
type OrderRepository interface {
	// List returns all orders, most recent first.
	List(ctx context.Context) ([]*entity.Order, error)

	// ListByUser returns the orders placed by the given user,
	// preserving the most-recent-first order.
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)

	// FindByID retrieves an order by its id.
	// Returns ErrOrderNotFound if no such order exists.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// Add prepends a new order to the collection.
	Add(ctx context.Context, order *entity.Order) error

	// UpdateStatus sets the status of the order with the given id in place.
	// Returns ErrOrderNotFound if no such order exists.
	UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) error
}
