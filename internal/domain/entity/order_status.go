// Package entity contains the core business objects of the project.
package entity

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial state of every order.
	OrderStatusPending OrderStatus = "Pending"
	// OrderStatusApproved is the terminal state of an accepted order.
	OrderStatusApproved OrderStatus = "Approved"
	// OrderStatusDeclined is the terminal state of a rejected order.
	OrderStatusDeclined OrderStatus = "Declined"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusDeclined:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may occur from s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusApproved || s == OrderStatusDeclined
}

// CanTransitionTo reports whether the transition s -> target is legal.
// The only legal transitions are Pending -> Approved and Pending -> Declined.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	return s == OrderStatusPending && target.IsTerminal()
}
