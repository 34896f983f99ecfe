// Package services holds the application services behind the REST surface:
// account management plus CRUD for the two record collections.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/ctibook/internal/models"
	"github.com/dmitrijs2005/ctibook/internal/server/auth"
	servermodels "github.com/dmitrijs2005/ctibook/internal/server/models"
	"github.com/dmitrijs2005/ctibook/internal/server/repositories/users"
	"github.com/dmitrijs2005/ctibook/internal/shared"
)

// UserService manages accounts and issues the tokens the API hands out on
// login and register.
type UserService struct {
	repo          users.Repository
	secretKey     []byte
	tokenValidity time.Duration
}

// NewUserService binds a UserService to its repository and token settings.
func NewUserService(repo users.Repository, secretKey []byte, tokenValidity time.Duration) *UserService {
	return &UserService{repo: repo, secretKey: secretKey, tokenValidity: tokenValidity}
}

// Register creates an account and returns it together with a fresh token.
// A duplicate username fails with shared.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, reg models.Registration) (models.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user := &servermodels.StoredUser{
		ID:           uuid.NewString(),
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return models.User{}, "", err
	}

	token, err := auth.GenerateToken(user.ID, s.secretKey, s.tokenValidity)
	if err != nil {
		return models.User{}, "", fmt.Errorf("issue token: %w", err)
	}
	return user.Public(), token, nil
}

// Login verifies credentials and returns the account with a fresh token.
// Unknown usernames and wrong passwords both fail with
// shared.ErrInvalidCredentials; the caller cannot tell which it was.
func (s *UserService) Login(ctx context.Context, creds models.Credentials) (models.User, string, error) {
	user, err := s.repo.GetByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return models.User{}, "", shared.ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(creds.Password)) != nil {
		return models.User{}, "", shared.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.secretKey, s.tokenValidity)
	if err != nil {
		return models.User{}, "", fmt.Errorf("issue token: %w", err)
	}
	return user.Public(), token, nil
}

// UserByID resolves the account behind a validated token, for /me.
func (s *UserService) UserByID(ctx context.Context, id string) (models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	return user.Public(), nil
}
