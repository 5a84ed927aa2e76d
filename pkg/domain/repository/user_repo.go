package repository

import (
	"context"

	"github.com/officinaverde/blog-api/pkg/domain/model"
)

// UserRepository is the persistence abstraction for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// Update persists mutable account fields (nickname, password hash,
	// admin flag, last login).
	Update(ctx context.Context, user *model.User) error
	Count(ctx context.Context) (int, error)
}
