package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/auth"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/repository"
	"github.com/google/uuid"
)

// MaxUsernameLen bounds usernames.
const MaxUsernameLen = 150

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Issue(userID, username string, isAdmin bool) (string, time.Time, error)
}

type authService struct {
	users    repository.UserRepo
	tokens   TokenIssuer
	observer UseCaseObserver
}

func NewAuthService(users repository.UserRepo, tokens TokenIssuer, observers ...UseCaseObserver) AuthService {
	return &authService{users: users, tokens: tokens, observer: useCaseObserverOrNoop(observers)}
}

// Register creates an account and signs a token for it. The first account
// ever registered is an administrator.
func (s *authService) Register(ctx context.Context, username, email, password string) (result *AuthResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"username": username}
	defer observe(ctx, s.observer, "register", startedAt, fields, &err)

	username = strings.TrimSpace(username)
	if username == "" || len(username) > MaxUsernameLen {
		return nil, fmt.Errorf("%w: username must be 1-%d characters", ErrInvalidInput, MaxUsernameLen)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		if errors.Is(err, auth.ErrWeakPassword) {
			return nil, invalid(err)
		}
		return nil, err
	}

	existing, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     strings.TrimSpace(email),
		PassHash:  hash,
		IsAdmin:   len(existing) == 0,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return s.issue(u)
}

func (s *authService) Login(ctx context.Context, username, password string) (result *AuthResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"username": username}
	defer observe(ctx, s.observer, "login", startedAt, fields, &err)

	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(u.PassHash, password) {
		return nil, ErrUnauthorized
	}
	return s.issue(u)
}

func (s *authService) issue(u *domain.User) (*AuthResult, error) {
	token, expires, err := s.tokens.Issue(u.ID, u.Username, u.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	return &AuthResult{Token: token, ExpiresAt: expires, User: u}, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *authService) EnsureLocalUser(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	u = &domain.User{
		ID:        uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authService) ListUsers(ctx context.Context, actingUserID string) ([]*domain.User, error) {
	acting, err := s.users.GetByID(ctx, actingUserID)
	if err != nil {
		return nil, err
	}
	if !acting.IsAdmin {
		return nil, ErrForbidden
	}
	return s.users.List(ctx)
}
