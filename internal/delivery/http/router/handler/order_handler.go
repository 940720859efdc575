package handler

import (
	"log/slog"
	"net/http"

	"suq/internal/delivery/http/middleware"
	"suq/internal/delivery/http/response"
	"suq/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for the customer-facing order handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// PlaceOrderRequest represents the request body for placing an order.
// The ordering user is taken from the token, never from the body.
type PlaceOrderRequest struct {
	ProductID    string `json:"productId" validate:"required"`
	CustomerName string `json:"customerName" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address" validate:"required"`
	Size         string `json:"size" validate:"required"`
	Color        string `json:"color" validate:"required"`
}

// PlaceOrder handles order creation for the authenticated customer.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(string)
	if !ok || userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		UserID:       userID,
		ProductID:    req.ProductID,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		Size:         req.Size,
		Color:        req.Color,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// ListMyOrders returns the authenticated customer's orders, most recent first.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(string)
	if !ok || userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.orderUC.ListUserOrders(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}
