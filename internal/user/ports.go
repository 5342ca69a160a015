package user

import (
	"context"
)

type Repository interface {
	// Create returns ErrAlreadyExists when the email is taken.
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}
