package usecase

import (
	"context"
	"errors"

	"github.com/diazeddy/dataset-api/internal/domain"
	"github.com/diazeddy/dataset-api/internal/infrastructure"
)

var (
	// ErrUserAlreadyExists is returned when signing up with a taken email.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so callers cannot tell which factor failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserRepository is the persistence the auth flow needs. FindByEmail must
// return domain.ErrUserNotFound when no user matches.
type UserRepository interface {
	Exists(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, email, passwordHash string) error
}

// AuthUsecase orchestrates sign-up and sign-in.
type AuthUsecase struct {
	repo   UserRepository
	tokens *infrastructure.JWTService
}

func NewAuthUsecase(repo UserRepository, tokens *infrastructure.JWTService) *AuthUsecase {
	return &AuthUsecase{repo: repo, tokens: tokens}
}

// SignUp registers a new user and returns a session token for them.
func (uc *AuthUsecase) SignUp(ctx context.Context, email, password string) (string, error) {
	exists, err := uc.repo.Exists(ctx, email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrUserAlreadyExists
	}

	hash, err := infrastructure.HashPassword(password)
	if err != nil {
		return "", err
	}

	if err := uc.repo.Insert(ctx, email, hash); err != nil {
		return "", err
	}

	return uc.tokens.GenerateToken(email)
}

// SignIn authenticates an existing user and returns a session token.
func (uc *AuthUsecase) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !infrastructure.CheckPassword(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return uc.tokens.GenerateToken(email)
}
