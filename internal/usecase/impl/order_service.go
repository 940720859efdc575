package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"time"

	"suq/internal/domain/entity"
	domainerrors "suq/internal/domain/errors"
	"suq/internal/domain/repository"
	"suq/internal/domain/service"
	"suq/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notifyTimeout bounds the fire-and-forget notification call, which runs
// detached from the request that placed the order.
const notifyTimeout = 15 * time.Second

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	notifier    service.OrderNotifier
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Notifier    service.OrderNotifier
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		notifier:    params.Notifier,
		logger:      params.Logger,
	}
}

// PlaceOrder creates a Pending order from the customer's selection.
//
// The product name and price are copied into the order so that later edits
// or deletion of the product never change what was actually ordered. The
// order is considered placed once persisted; the notification is dispatched
// afterwards and its failure never rolls the order back.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if input.UserID == "" {
		// Creation without an authenticated user is a precondition
		// violation, not a silent default.
		return nil, domainerrors.ErrUnauthorized.WrapMessage("place order")
	}
	if input.CustomerName == "" || input.Phone == "" || input.Address == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("customer name, phone and address are required")
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("place order")
		}

		return nil, errors.Wrap(err, "failed to load product for order")
	}

	if !product.HasSize(input.Size) || !product.HasColor(input.Color) {
		return nil, domainerrors.ErrProductVariant.WrapMessage("place order")
	}

	order := &entity.Order{
		ID:           newOrderID(),
		UserID:       input.UserID,
		ProductID:    product.ID,
		ProductName:  product.Name,
		Price:        product.Price,
		CustomerName: input.CustomerName,
		Phone:        input.Phone,
		Address:      input.Address,
		Size:         input.Size,
		Color:        input.Color,
		Status:       entity.OrderStatusPending,
		CreatedAt:    time.Now(),
	}

	if err := srv.orderRepo.Add(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to persist order")
	}

	srv.logger.Info("Order placed",
		slog.String("orderID", order.ID),
		slog.String("userID", order.UserID),
		slog.String("productID", order.ProductID))

	go srv.dispatchNotification(order)

	return order, nil
}

// dispatchNotification delivers the best-effort external notification.
// It runs on its own context: the originating request may already be gone.
func (srv *orderService) dispatchNotification(order *entity.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := srv.notifier.Notify(ctx, order); err != nil {
		srv.logger.Warn("Order notification failed",
			slog.String("orderID", order.ID),
			slog.Any("error", err))

		return
	}

	srv.logger.Debug("Order notification sent", slog.String("orderID", order.ID))
}

func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) ListUserOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// ChangeStatus applies an admin decision to a pending order.
//
// A missing order id is absorbed as a no-op. An order that has already been
// decided is terminal: the transition is rejected rather than merely hidden
// in the UI.
func (srv *orderService) ChangeStatus(ctx context.Context, input *usecase.ChangeStatusInput) error {
	if !input.Target.IsTerminal() {
		return domainerrors.ErrIllegalStatus.WithDetails("target must be Approved or Declined")
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			srv.logger.Warn("Status change for unknown order ignored",
				slog.String("orderID", input.OrderID))

			return nil
		}

		return errors.Wrap(err, "failed to load order for status change")
	}

	if !order.Status.CanTransitionTo(input.Target) {
		return domainerrors.ErrOrderAlreadyDecided.WrapMessage("change status")
	}

	if err := srv.orderRepo.UpdateStatus(ctx, input.OrderID, input.Target); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to update order status")
	}

	srv.logger.Info("Order status changed",
		slog.String("orderID", input.OrderID),
		slog.String("status", input.Target.String()))

	return nil
}

const orderIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newOrderID returns a 9-character base36 token.
func newOrderID() string {
	id := make([]byte, 9)
	max := big.NewInt(int64(len(orderIDAlphabet)))
	for i := range id {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken.
			panic(err)
		}
		id[i] = orderIDAlphabet[n.Int64()]
	}

	return string(id)
}
