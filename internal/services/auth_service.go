package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bughunt-platform.com/bughunt-platform/internal/constants"
	apperrors "bughunt-platform.com/bughunt-platform/internal/errors"
	model "bughunt-platform.com/bughunt-platform/internal/models"
	repository "bughunt-platform.com/bughunt-platform/internal/repositories"
)

type AuthService struct {
	users    *repository.UserRepository
	tokens   *repository.TokenRepository
	tokenTTL time.Duration
}

func NewAuthService(
	users *repository.UserRepository,
	tokens *repository.TokenRepository,
	tokenTTL time.Duration,
) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		tokenTTL: tokenTTL,
	}
}

// Identity is the decoded acting user attached to authenticated requests.
type Identity struct {
	Username string         `json:"username"`
	Role     constants.Role `json:"role"`
}

type LoginResult struct {
	Token    string         `json:"token"`
	Username string         `json:"username"`
	Role     constants.Role `json:"role"`
}

// Register creates a hunter or coach account in the pending state. Admins
// are seeded out of band and cannot be self-registered.
func (s *AuthService) Register(
	ctx context.Context,
	username, email, password string,
	role constants.Role,
) (*model.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, apperrors.ErrMissingFields
	}
	if !constants.IsRegisterableRole(role) {
		return nil, apperrors.ErrInvalidRole
	}

	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Approved:     false,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials for an approved account and issues an opaque
// bearer token with an expiry.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.Approved {
		return nil, apperrors.ErrAccountPending
	}

	now := time.Now().UTC()
	token := &model.AuthToken{
		Token:     uuid.NewString(),
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenTTL),
	}

	if err := s.tokens.Create(ctx, token); err != nil {
		return nil, err
	}

	// Opportunistic cleanup; stale tokens are harmless if this fails.
	if err := s.tokens.DeleteExpired(ctx, now); err != nil {
		log.Printf("failed to purge expired tokens: %v", err)
	}

	return &LoginResult{
		Token:    token.Token,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

// Authenticate resolves a bearer token to the acting identity.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, apperrors.ErrAuthRequired
	}

	t, err := s.tokens.Find(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}

	if time.Now().UTC().After(t.ExpiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.users.FindByUsername(ctx, t.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}

	return &Identity{Username: user.Username, Role: user.Role}, nil
}

func (s *AuthService) PendingUsers(ctx context.Context) ([]model.User, error) {
	return s.users.ListPending(ctx)
}

func (s *AuthService) ApproveUser(ctx context.Context, username string) error {
	if err := s.users.SetApproved(ctx, username); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return nil
}

// RejectUser removes a pending registration outright.
func (s *AuthService) RejectUser(ctx context.Context, username string) error {
	if err := s.users.Delete(ctx, username); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return nil
}
