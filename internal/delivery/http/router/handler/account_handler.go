package handler

import (
	"log/slog"
	"net/http"

	"suq/internal/delivery/http/middleware"
	"suq/internal/delivery/http/response"
	"suq/internal/domain/entity"
	"suq/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler holds dependencies for registration, login and profile handlers.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// RegisterRequest represents the request body for customer signup
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents the request body for customer login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginRequest represents the request body for operator login
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the payload returned after signup or login.
type AuthResponse struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"accessToken"`
}

// AdminAuthResponse is the payload returned after operator login.
type AdminAuthResponse struct {
	Token string `json:"token"`
}

// Register handles customer signup
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.accountUC.Register(c.Request().Context(), &usecase.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, AuthResponse{
		User:        out.User,
		AccessToken: out.AccessToken,
	}, "Registration successful")
}

// Login handles customer login
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, AuthResponse{
		User:        out.User,
		AccessToken: out.AccessToken,
	}, "Login successful")
}

// Logout clears the recorded customer session.
func (h *AccountHandler) Logout(c echo.Context) error {
	if err := h.accountUC.Logout(c.Request().Context()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Profile returns the authenticated customer's account.
func (h *AccountHandler) Profile(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(string)
	if !ok || userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.accountUC.Profile(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// AdminLogin handles operator login against the fixed configured credential.
func (h *AccountHandler) AdminLogin(c echo.Context) error {
	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.accountUC.AdminLogin(c.Request().Context(), &usecase.AdminLoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, AdminAuthResponse{Token: out.Token}, "Admin login successful")
}
