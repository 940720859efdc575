package service

import (
	"context"

	"suq/internal/domain/entity"
)

// OrderNotifier delivers a best-effort external notification for a newly
// placed order. It is invoked once per order, after the order has been
// persisted; its outcome is logged and never affects the order's fate.
type OrderNotifier interface {
	Notify(ctx context.Context, order *entity.Order) error
}
