package usecase

import (
	"context"

	"suq/internal/domain/entity"
)

// PlaceOrderInput defines the data required to place an order. UserID comes
// from the authenticated session, never from the request body.
type PlaceOrderInput struct {
	UserID       string
	ProductID    string
	CustomerName string
	Phone        string
	Address      string
	Size         string
	Color        string
}

// ChangeStatusInput defines an admin decision on a pending order.
type ChangeStatusInput struct {
	OrderID string
	Target  entity.OrderStatus
}

// OrderUsecase manages the order lifecycle: creation, the single
// Pending -> Approved/Declined transition, and per-user listing.
type OrderUsecase interface {
	// PlaceOrder validates the selection, snapshots the product fields into
	// a new Pending order, persists it and dispatches the notification
	// without waiting for it.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)

	// ListOrders returns all orders, most recent first. Admin only.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// ListUserOrders returns the given user's orders, most recent first.
	ListUserOrders(ctx context.Context, userID string) ([]*entity.Order, error)

	// ChangeStatus applies an admin decision. Unknown order ids are a
	// silent no-op; transitions out of a terminal state are rejected.
	ChangeStatus(ctx context.Context, input *ChangeStatusInput) error
}
