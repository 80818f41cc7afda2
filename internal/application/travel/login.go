package travel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
)

type TokenIssuer interface {
	Issue(userID uuid.UUID) (token string, expiresAt time.Time, err error)
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
}

type Login interface {
	Execute(ctx context.Context, in LoginInput) (LoginOutput, error)
}

type userByEmailFinder interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type login struct {
	users  userByEmailFinder
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewLogin(users userByEmailFinder, hasher PasswordHasher, tokens TokenIssuer) Login {
	return &login{users: users, hasher: hasher, tokens: tokens}
}

func (uc *login) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return LoginOutput{}, ErrInvalidCredentials
	}

	u, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return LoginOutput{}, ErrInvalidCredentials
		}
		return LoginOutput{}, fmt.Errorf("%w: %v", ErrUserStorage, err)
	}

	if !u.HasPassword() {
		return LoginOutput{}, ErrInvalidCredentials
	}
	if err := uc.hasher.Compare(u.PasswordHash, in.Password); err != nil {
		return LoginOutput{}, ErrInvalidCredentials
	}

	token, expiresAt, err := uc.tokens.Issue(u.ID)
	if err != nil {
		return LoginOutput{}, fmt.Errorf("%w: %v", ErrIssueToken, err)
	}

	return LoginOutput{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		UserID:      u.ID.String(),
	}, nil
}
