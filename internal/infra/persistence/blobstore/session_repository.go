package blobstore

import (
	"context"
	"sync"

	"suq/internal/domain/entity"
	"suq/internal/domain/repository"
	"suq/internal/infra/kvstore"
	"suq/internal/infra/persistence/model"
)

// sessionRepository implements repository.SessionRepository over the
// session region, a single JSON-encoded user pointer.
type sessionRepository struct {
	store *kvstore.Store
	mu    sync.Mutex
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(store *kvstore.Store) repository.SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Current(ctx context.Context) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var user *model.User
	ok, err := readRegion(ctx, r.store, sessionKey, &user)
	if err != nil {
		return nil, err
	}
	if !ok || user == nil {
		return nil, repository.ErrNoSession
	}

	return user.ToEntity(), nil
}

func (r *sessionRepository) SetCurrent(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return writeRegion(ctx, r.store, sessionKey, model.FromUserEntity(user))
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Remove(ctx, sessionKey)
}
