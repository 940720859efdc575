package blobstore

import (
	"context"
	"strings"
	"sync"

	"suq/internal/domain/entity"
	"suq/internal/domain/repository"
	"suq/internal/infra/kvstore"
	"suq/internal/infra/persistence/model"
)

// userRepository implements repository.UserRepository over the users region.
// New users are appended, preserving registration order.
type userRepository struct {
	store *kvstore.Store
	mu    sync.Mutex
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store *kvstore.Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.listLocked(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, 0, len(stored))
	for _, u := range stored {
		users = append(users, u.ToEntity())
	}

	return users, nil
}

func (r *userRepository) listLocked(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	if _, err := readRegion(ctx, r.store, usersKey, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.find(ctx, func(u *model.User) bool { return u.ID == id })
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.find(ctx, func(u *model.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return r.find(ctx, func(u *model.User) bool { return u.Phone == phone })
}

func (r *userRepository) find(ctx context.Context, match func(*model.User) bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.listLocked(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if match(u) {
			return u.ToEntity(), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *userRepository) Add(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.listLocked(ctx)
	if err != nil {
		return err
	}

	users = append(users, model.FromUserEntity(user))

	return writeRegion(ctx, r.store, usersKey, users)
}
