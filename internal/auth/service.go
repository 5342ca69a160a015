package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"bookstore/internal/apperr"
	"bookstore/internal/platform/crypto"
	"bookstore/internal/user"
)

// Users is the lookup the login flow needs.
type Users interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
}

// Revoker records revoked token ids until they expire.
type Revoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

type Service struct {
	secret  string
	ttl     time.Duration
	users   Users
	revoker Revoker
}

func NewService(secret string, ttl time.Duration, users Users, revoker Revoker) *Service {
	return &Service{secret: secret, ttl: ttl, users: users, revoker: revoker}
}

type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresIn int         `json:"expiresIn"`
	User      user.Public `json:"user"`
}

// Login checks the password and issues a signed token. An unknown email is
// not found, a wrong password is unauthorized.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return LoginResult{}, apperr.Validation("please enter your email and password")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return LoginResult{}, apperr.NotFound("user not found", user.ErrNotFound)
		}
		return LoginResult{}, apperr.Unexpected(err)
	}
	if !crypto.VerifyPassword(u.PasswordHash, password) {
		return LoginResult{}, apperr.Unauthorized("the password does not match")
	}

	token, _, err := crypto.GenerateToken(s.secret, u.ID, u.Email, s.ttl)
	if err != nil {
		return LoginResult{}, apperr.Unexpected(err)
	}
	return LoginResult{Token: token, ExpiresIn: int(s.ttl.Seconds()), User: u.Public()}, nil
}

// Logout revokes token for the rest of its lifetime.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := crypto.ParseToken(s.secret, token)
	if err != nil {
		return apperr.Unauthorized("invalid token")
	}

	ttl := s.ttl
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	if err := s.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		return apperr.Unexpected(err)
	}
	return nil
}
