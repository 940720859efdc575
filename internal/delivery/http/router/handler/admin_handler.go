package handler

import (
	"log/slog"
	"net/http"

	"suq/internal/delivery/http/response"
	"suq/internal/domain/entity"
	"suq/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	OrderUC   usecase.OrderUsecase
	Logger    *slog.Logger
}

// AdminHandler holds dependencies for the operator endpoints: the order
// queue and catalog management.
type AdminHandler struct {
	catalogUC usecase.CatalogUsecase
	orderUC   usecase.OrderUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		catalogUC: params.CatalogUC,
		orderUC:   params.OrderUC,
		logger:    params.Logger,
	}
}

// LocalizedTextPayload is the bilingual text pair as sent by the admin UI.
type LocalizedTextPayload struct {
	En string `json:"en" validate:"required"`
	Am string `json:"am" validate:"required"`
}

// ProductPayload represents the request body for creating or updating a
// catalog entry. On update the id comes from the path, never the body.
type ProductPayload struct {
	Name        LocalizedTextPayload `json:"name" validate:"required"`
	Description LocalizedTextPayload `json:"description"`
	Price       int                  `json:"price" validate:"required,gt=0"`
	Image       string               `json:"image"`
	Category    string               `json:"category" validate:"required"`
	Sizes       []string             `json:"sizes" validate:"required,min=1"`
	Colors      []string             `json:"colors"`
	IsFeatured  bool                 `json:"isFeatured"`
}

// ChangeStatusRequest represents the admin decision on a pending order.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Approved Declined"`
}

// ListOrders returns every order across all customers, most recent first.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// ChangeOrderStatus applies an approve/decline decision to an order.
func (h *AdminHandler) ChangeOrderStatus(c echo.Context) error {
	var req ChangeStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.orderUC.ChangeStatus(c.Request().Context(), &usecase.ChangeStatusInput{
		OrderID: c.Param("id"),
		Target:  entity.OrderStatus(req.Status),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Order status updated")
}

// CreateProduct adds a new catalog entry.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req ProductPayload
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:        entity.LocalizedText{En: req.Name.En, Am: req.Name.Am},
		Description: entity.LocalizedText{En: req.Description.En, Am: req.Description.Am},
		Price:       req.Price,
		Image:       req.Image,
		Category:    entity.Category(req.Category),
		Sizes:       req.Sizes,
		Colors:      req.Colors,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct edits an existing catalog entry in place.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	var req ProductPayload
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), &usecase.UpdateProductInput{
		ID:          c.Param("id"),
		Name:        entity.LocalizedText{En: req.Name.En, Am: req.Name.Am},
		Description: entity.LocalizedText{En: req.Description.En, Am: req.Description.Am},
		Price:       req.Price,
		Image:       req.Image,
		Category:    entity.Category(req.Category),
		Sizes:       req.Sizes,
		Colors:      req.Colors,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct removes a catalog entry. Deleting an unknown id succeeds.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	if err := h.catalogUC.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
