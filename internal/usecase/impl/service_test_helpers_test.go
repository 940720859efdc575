package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"suq/config"
	"suq/internal/domain/entity"
	"suq/internal/domain/repository"
	"suq/internal/infra/auth"
	"suq/internal/infra/kvstore"
	"suq/internal/infra/persistence/blobstore"
	"suq/internal/usecase"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// The services are exercised against real repositories over an in-memory
// store rather than mocks: the persistence semantics (seeding, prepend
// order, silent no-ops) are part of what the tests pin down.

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubNotifier records notified orders on a channel so tests can wait for
// the detached notification goroutine.
type stubNotifier struct {
	notified chan *entity.Order
	err      error
}

func newStubNotifier() *stubNotifier {
	return &stubNotifier{notified: make(chan *entity.Order, 8)}
}

func (s *stubNotifier) Notify(_ context.Context, order *entity.Order) error {
	if s.notified != nil {
		s.notified <- order
	}

	return s.err
}

type catalogFixtures struct {
	service     usecase.CatalogUsecase
	productRepo repository.ProductRepository
}

func createTestCatalogService(t *testing.T) catalogFixtures {
	t.Helper()

	store := kvstore.NewMemStore()
	productRepo := blobstore.NewProductRepository(store)
	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return catalogFixtures{service: service, productRepo: productRepo}
}

type orderFixtures struct {
	service     usecase.OrderUsecase
	catalog     usecase.CatalogUsecase
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	notifier    *stubNotifier
}

func createTestOrderService(t *testing.T) orderFixtures {
	t.Helper()

	store := kvstore.NewMemStore()
	productRepo := blobstore.NewProductRepository(store)
	orderRepo := blobstore.NewOrderRepository(store)
	notifier := newStubNotifier()
	logger := newDiscardLogger()

	service := NewOrderService(OrderServiceParams{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		Notifier:    notifier,
		Logger:      logger,
	})
	catalog := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Logger:      logger,
	})

	return orderFixtures{
		service:     service,
		catalog:     catalog,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		notifier:    notifier,
	}
}

type accountFixtures struct {
	service     usecase.AccountUsecase
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func createTestAccountService(t *testing.T) accountFixtures {
	t.Helper()

	store := kvstore.NewMemStore()
	userRepo := blobstore.NewUserRepository(store)
	sessionRepo := blobstore.NewSessionRepository(store)

	cfg := &config.Config{}
	cfg.SecretKey.Access = "customer-secret-for-tests"
	cfg.SecretKey.Admin = "admin-secret-for-tests"
	cfg.Admin = &config.AdminConfig{
		Email:    "admin@habeshadesign.com",
		Password: "admin123",
	}

	service := NewAccountService(AccountServiceParams{
		UserRepo:     userRepo,
		SessionRepo:  sessionRepo,
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost, 6),
		TokenService: auth.NewJWTService(cfg),
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return accountFixtures{
		service:     service,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

func registerTestCustomer(t *testing.T, fx accountFixtures, email, phone string) *usecase.AuthOutput {
	t.Helper()

	out, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		FullName: "Almaz Bekele",
		Email:    email,
		Phone:    phone,
		Password: "secret123",
	})
	require.NoError(t, err)

	return out
}
