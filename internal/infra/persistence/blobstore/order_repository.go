package blobstore

import (
	"context"
	"sync"

	"suq/internal/domain/entity"
	"suq/internal/domain/repository"
	"suq/internal/infra/kvstore"
)

// orderRepository implements repository.OrderRepository over the orders
// region. New orders are prepended so the stored order stays
// most-recent-first.
type orderRepository struct {
	store *kvstore.Store
	mu    sync.Mutex
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store *kvstore.Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.listLocked(ctx)
}

func (r *orderRepository) listLocked(ctx context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order
	if _, err := readRegion(ctx, r.store, ordersKey, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.UserID == userID {
			filtered = append(filtered, o)
		}
	}

	return filtered, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (r *orderRepository) Add(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.listLocked(ctx)
	if err != nil {
		return err
	}

	orders = append([]*entity.Order{order}, orders...)

	return writeRegion(ctx, r.store, ordersKey, orders)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.listLocked(ctx)
	if err != nil {
		return err
	}

	for _, o := range orders {
		if o.ID == orderID {
			o.Status = status

			return writeRegion(ctx, r.store, ordersKey, orders)
		}
	}

	return repository.ErrOrderNotFound
}
