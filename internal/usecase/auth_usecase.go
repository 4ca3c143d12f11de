// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"agency/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// TokenOutput carries a freshly issued access token.
type TokenOutput struct {
	AccessToken string
	TokenType   string
}

// AuthUsecase defines registration, login and bearer-token resolution.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*TokenOutput, error)
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// CurrentUser resolves a bearer token to the stored user. Every failure is ErrUnauthenticated.
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}
