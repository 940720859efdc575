package impl

import (
	"context"
	"testing"

	domainerrors "suq/internal/domain/errors"
	"suq/internal/infra/auth"
	"suq/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAccountService_RegisterCreatesAndSignsInCustomer(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	out := registerTestCustomer(t, fx, "almaz@example.com", "+251911000000")

	assert.NotEmpty(t, out.User.ID)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "almaz@example.com", out.User.Email)

	// The session region now carries the signed-in customer.
	current, err := fx.sessionRepo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, current.ID)
}

func TestAccountService_RegisterNeverStoresPlaintextPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	out := registerTestCustomer(t, fx, "almaz@example.com", "+251911000000")

	stored, err := fx.userRepo.FindByID(ctx, out.User.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
}

func TestAccountService_RegisterRejectsDuplicateEmailCaseInsensitive(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	registerTestCustomer(t, fx, "almaz@example.com", "+251911000000")

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName: "Other Person",
		Email:    "ALMAZ@Example.COM",
		Phone:    "+251922000000",
		Password: "secret123",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DUPLICATE_REGISTRATION", appErr.ErrorCode())

	// Nothing was appended.
	users, err := fx.userRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAccountService_RegisterRejectsDuplicatePhone(t *testing.T) {
	fx := createTestAccountService(t)

	registerTestCustomer(t, fx, "almaz@example.com", "+251911000000")

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		FullName: "Other Person",
		Email:    "other@example.com",
		Phone:    "+251911000000",
		Password: "secret123",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DUPLICATE_REGISTRATION", appErr.ErrorCode())
}

func TestAccountService_RegisterRejectsShortPassword(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		FullName: "Almaz Bekele",
		Email:    "almaz@example.com",
		Phone:    "+251911000000",
		Password: "12345",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PASSWORD_TOO_SHORT", appErr.ErrorCode())
}

func TestAccountService_LoginWithValidCredentials(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	registered := registerTestCustomer(t, fx, "almaz@example.com", "+251911000000")

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "almaz@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, out.User.ID)
	assert.NotEmpty(t, out.AccessToken)
}

func TestAccountService_LoginFailuresAreIndistinguishable(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	registerTestCustomer(t, fx, "almaz@example.com", "+251911000000")

	require.NoError(t, fx.service.Logout(ctx))

	for _, input := range []*usecase.LoginInput{
		{Email: "almaz@example.com", Password: "wrong-password"},
		{Email: "nobody@example.com", Password: "secret123"},
	} {
		_, err := fx.service.Login(ctx, input)
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
	}

	// A failed login never records a session.
	_, err := fx.sessionRepo.Current(ctx)
	assert.Error(t, err)
}

func TestAccountService_LogoutClearsSession(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	registerTestCustomer(t, fx, "almaz@example.com", "+251911000000")

	require.NoError(t, fx.service.Logout(ctx))

	_, err := fx.sessionRepo.Current(ctx)
	assert.Error(t, err)
}

func TestAccountService_Profile(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	out := registerTestCustomer(t, fx, "almaz@example.com", "+251911000000")

	user, err := fx.service.Profile(ctx, out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "almaz@example.com", user.Email)

	_, err = fx.service.Profile(ctx, "no-such-user")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USER_NOT_FOUND", appErr.ErrorCode())
}

func TestAccountService_AdminLoginWithConfiguredCredential(t *testing.T) {
	fx := createTestAccountService(t)

	out, err := fx.service.AdminLogin(context.Background(), &usecase.AdminLoginInput{
		Email:    "admin@habeshadesign.com",
		Password: "admin123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

func TestAccountService_AdminLoginRejectsWrongCredential(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	for _, input := range []*usecase.AdminLoginInput{
		{Email: "admin@habeshadesign.com", Password: "wrong"},
		{Email: "other@habeshadesign.com", Password: "admin123"},
	} {
		_, err := fx.service.AdminLogin(ctx, input)
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "ADMIN_INVALID_CREDENTIALS", appErr.ErrorCode())
	}
}

func TestAccountService_AdminLoginNeverMatchesCustomerAccounts(t *testing.T) {
	fx := createTestAccountService(t)

	// A registered customer with the operator's password is still not an operator.
	registerTestCustomer(t, fx, "customer@example.com", "+251911000000")

	_, err := fx.service.AdminLogin(context.Background(), &usecase.AdminLoginInput{
		Email:    "customer@example.com",
		Password: "secret123",
	})
	assert.Error(t, err)
}

func TestAccountService_AdminLoginFailsWithoutConfiguredCredential(t *testing.T) {
	fx := createTestAccountService(t)
	fx.cfg.Admin = nil

	service := NewAccountService(AccountServiceParams{
		UserRepo:     fx.userRepo,
		SessionRepo:  fx.sessionRepo,
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost, 6),
		TokenService: auth.NewJWTService(fx.cfg),
		Config:       fx.cfg,
		Logger:       newDiscardLogger(),
	})

	_, err := service.AdminLogin(context.Background(), &usecase.AdminLoginInput{
		Email:    "admin@habeshadesign.com",
		Password: "admin123",
	})
	assert.Error(t, err)
}
