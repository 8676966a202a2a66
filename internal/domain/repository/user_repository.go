package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
)

// UserRepository defines the interface for local user accounts
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
}

// SessionRepository holds the single currently-logged-in identity.
// Presence means authenticated, absence means unauthenticated.
type SessionRepository interface {
	Get(ctx context.Context) (*entity.User, error)
	Put(ctx context.Context, user *entity.User) error
	Clear(ctx context.Context) error
}
