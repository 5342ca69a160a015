package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookstore/internal/apperr"
	"bookstore/internal/httpx"
	"bookstore/internal/platform/crypto"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" ||
		strings.TrimSpace(in.PhoneNumber) == "" || in.Email == "" || in.Password == "" {
		return User{}, apperr.Validation("please fill in all fields")
	}
	if !httpx.IsValidEmail(in.Email) {
		return User{}, apperr.Validation("please provide a valid email address")
	}
	if err := crypto.ValidatePassword(in.Password); err != nil {
		return User{}, apperr.Validation(err.Error())
	}

	_, err := s.repo.GetByEmail(ctx, in.Email)
	if err == nil {
		return User{}, apperr.Conflict("email already exists")
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, apperr.Unexpected(err)
	}

	hash, err := crypto.HashPassword(in.Password)
	if err != nil {
		return User{}, apperr.Unexpected(err)
	}

	u := &User{
		ID:           uuid.NewString(),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return User{}, apperr.Conflict("email already exists")
		}
		return User{}, apperr.Unexpected(err)
	}
	return *u, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.GetByEmail(ctx, strings.TrimSpace(email))
}
