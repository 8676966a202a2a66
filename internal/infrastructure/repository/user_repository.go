package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
	domainRepo "github.com/techstock/techstock-api/internal/domain/repository"
	"github.com/techstock/techstock-api/internal/infrastructure/storage"
)

type userRepository struct {
	state *State
}

// NewUserRepository creates a new user repository
func NewUserRepository(state *State) domainRepo.UserRepository {
	return &userRepository{state: state}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	d := r.state.view(ctx)
	return findWhere(d.Users, func(u *entity.User) bool { return u.ID == id }), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	d := r.state.view(ctx)
	return findWhere(d.Users, func(u *entity.User) bool {
		return strings.EqualFold(u.Email, email)
	}), nil
}

func (r *userRepository) List(ctx context.Context) ([]entity.User, error) {
	return r.state.view(ctx).Users, nil
}

// sessionRepository stores the serialized logged-in identity as a single
// record under the versioned namespace.
type sessionRepository struct {
	store storage.Store
	keys  storage.Keyspace
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(store storage.Store, keys storage.Keyspace) domainRepo.SessionRepository {
	return &sessionRepository{store: store, keys: keys}
}

func (r *sessionRepository) Get(ctx context.Context) (*entity.User, error) {
	raw, err := r.store.Load(r.keys.Key(colSession))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, nil
	}
	return &user, nil
}

func (r *sessionRepository) Put(ctx context.Context, user *entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.store.Save(r.keys.Key(colSession), raw)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(r.keys.Key(colSession))
}
