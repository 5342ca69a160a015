package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/apperr"
	"bookstore/internal/platform/crypto"
)

type memoryRepo struct {
	byEmail   map[string]User
	createErr error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byEmail: map[string]User{}}
}

func (m *memoryRepo) Create(_ context.Context, u *User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.byEmail[u.Email] = *u
	return nil
}

func (m *memoryRepo) GetByEmail(_ context.Context, email string) (User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func validRegistration() RegisterInput {
	return RegisterInput{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		PhoneNumber: "+44 20 0000 0000",
		Email:       "ada@example.com",
		Password:    "engine",
	}
}

func TestService_Register(t *testing.T) {
	repo := newMemoryRepo()
	service := NewService(repo)

	u, err := service.Register(context.Background(), validRegistration())
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "engine", u.PasswordHash)
	assert.True(t, crypto.VerifyPassword(u.PasswordHash, "engine"))

	_, err = service.Register(context.Background(), validRegistration())
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestService_Register_Validation(t *testing.T) {
	service := NewService(newMemoryRepo())

	tests := map[string]func(*RegisterInput){
		"missing first name": func(in *RegisterInput) { in.FirstName = "" },
		"missing phone":      func(in *RegisterInput) { in.PhoneNumber = " " },
		"bad email":          func(in *RegisterInput) { in.Email = "ada@example" },
		"email with space":   func(in *RegisterInput) { in.Email = "a da@example.com" },
		"short password":     func(in *RegisterInput) { in.Password = "12345" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			in := validRegistration()
			mutate(&in)
			_, err := service.Register(context.Background(), in)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestService_Register_RaceOnUniqueEmail(t *testing.T) {
	repo := newMemoryRepo()
	repo.createErr = ErrAlreadyExists

	_, err := NewService(repo).Register(context.Background(), validRegistration())
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestService_Register_StoreFailure(t *testing.T) {
	repo := newMemoryRepo()
	repo.createErr = errors.New("disk full")

	_, err := NewService(repo).Register(context.Background(), validRegistration())
	assert.ErrorIs(t, err, apperr.ErrUnexpected)
}
