package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/domain/repository"
	"github.com/techstock/techstock-api/pkg/apperror"
	"github.com/techstock/techstock-api/pkg/utils"
)

// LoginResult carries the signed token and the authenticated user
type LoginResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// AuthService authenticates local accounts and tracks the active session
type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtManager  *utils.JWTManager
	audit       *AuditService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	jwtManager *utils.JWTManager,
	audit *AuditService,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtManager:  jwtManager,
		audit:       audit,
	}
}

// Login verifies credentials and issues an access token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	permissions := make([]string, 0, len(user.Permissions))
	for _, p := range user.Permissions {
		permissions = append(permissions, string(p))
	}
	token, err := s.jwtManager.GenerateAccessToken(user.ID, user.Name, user.Email, string(user.Role), permissions)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Put(ctx, user); err != nil {
		return nil, err
	}

	actor := entity.Actor{Name: user.Name, Role: string(user.Role)}
	s.audit.Record(ctx, actor, "Login", "Auth",
		fmt.Sprintf("Successful login for %s", user.Email))

	return &LoginResult{Token: token, User: user}, nil
}

// Logout clears the active session
func (s *AuthService) Logout(ctx context.Context, actor entity.Actor) error {
	if err := s.sessionRepo.Clear(ctx); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, "Logout", "Auth", "Session closed")
	return nil
}

// Profile returns the account behind an authenticated request
func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}
