package handler

import (
	"log/slog"
	"net/http"

	"suq/internal/delivery/http/response"
	"suq/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for the public catalog endpoints.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProducts handles the catalog listing with optional filters.
// Query parameters: category, q (bilingual name search), featured=true.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	input := &usecase.ListProductsInput{
		Category:     c.QueryParam("category"),
		Query:        c.QueryParam("q"),
		FeaturedOnly: c.QueryParam("featured") == "true",
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// GetProduct handles retrieving a single product by id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}
