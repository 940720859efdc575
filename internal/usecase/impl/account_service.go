package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"suq/config"
	"suq/internal/domain/entity"
	domainerrors "suq/internal/domain/errors"
	"suq/internal/domain/repository"
	"suq/internal/domain/service"
	"suq/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	adminEmail   string
	adminPass    string
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	adminEmail, adminPass := "", ""
	if params.Config.Admin != nil {
		adminEmail = params.Config.Admin.Email
		adminPass = params.Config.Admin.Password
	}

	return &accountService{
		userRepo:     params.UserRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		adminEmail:   adminEmail,
		adminPass:    adminPass,
		logger:       params.Logger,
	}
}

// Register signs up a new customer and logs them in.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Starting registration", slog.String("email", input.Email))

	if input.FullName == "" || input.Email == "" || input.Phone == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("full name, email and phone are required")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	if err := srv.checkDuplicate(ctx, input.Email, input.Phone); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := srv.userRepo.Add(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.logger.Debug("Registration completed", slog.String("userID", user.ID))

	return srv.openSession(ctx, user)
}

// checkDuplicate rejects a signup whose email (case-insensitive) or phone
// is already registered, before anything is written.
func (srv *accountService) checkDuplicate(ctx context.Context, email, phone string) error {
	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		return domainerrors.ErrDuplicateRegistration.WrapMessage("email already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email uniqueness")
	}

	if _, err := srv.userRepo.FindByPhone(ctx, phone); err == nil {
		return domainerrors.ErrDuplicateRegistration.WrapMessage("phone already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check phone uniqueness")
	}

	return nil
}

// Login authenticates a customer. Unknown email and wrong password are
// deliberately indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	srv.logger.Debug("User logged in", slog.String("userID", user.ID))

	return srv.openSession(ctx, user)
}

// openSession records the customer as signed in and issues their token.
func (srv *accountService) openSession(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	if err := srv.sessionRepo.SetCurrent(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to record session")
	}

	token, err := srv.tokenService.GenerateCustomerToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{User: user, AccessToken: token}, nil
}

// Logout clears the recorded customer session only; an operator session
// stays valid until its token expires.
func (srv *accountService) Logout(ctx context.Context) error {
	if err := srv.sessionRepo.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	srv.logger.Info("Customer logged out")

	return nil
}

func (srv *accountService) Profile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// AdminLogin checks the single fixed operator credential in constant time
// and issues a short-lived operator token.
func (srv *accountService) AdminLogin(_ context.Context, input *usecase.AdminLoginInput) (*usecase.AdminAuthOutput, error) {
	if srv.adminEmail == "" || srv.adminPass == "" {
		srv.logger.Error("Admin login attempted but no operator credential is configured")

		return nil, domainerrors.ErrAdminCredentials.WrapMessage("admin login")
	}

	emailOK := subtle.ConstantTimeCompare([]byte(input.Email), []byte(srv.adminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(input.Password), []byte(srv.adminPass)) == 1
	if !emailOK || !passOK {
		srv.logger.Warn("Admin login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrAdminCredentials.WrapMessage("admin login")
	}

	token, err := srv.tokenService.GenerateAdminToken(srv.adminEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate admin token")
	}

	srv.logger.Info("Admin logged in")

	return &usecase.AdminAuthOutput{Token: token}, nil
}
