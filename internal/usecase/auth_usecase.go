package usecase

import (
	"context"
	"errors"
	"fmt"

	"tailoring_app/internal/domain/entities"
	"tailoring_app/internal/infrastructure/auth"
	"tailoring_app/internal/usecase/interfaces"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type LoginResult struct {
	Token    string
	Username string
	Role     string
}

type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	EnsureAdmin(ctx context.Context, username, password string) error
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	tokens *auth.TokenManager
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, tokens *auth.TokenManager) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Enabled {
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	token, err := u.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}
	return &LoginResult{Token: token, Username: user.Username, Role: user.Role}, nil
}

// EnsureAdmin seeds the administrator account on startup. It is a no-op
// when the user already exists.
func (u *AuthUseCase) EnsureAdmin(ctx context.Context, username, password string) error {
	existing, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	admin, err := entities.NewUser(username, hash, entities.RoleAdmin)
	if err != nil {
		return err
	}
	return u.users.Create(ctx, admin)
}
