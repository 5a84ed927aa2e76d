package ent

import (
	"context"
	"fmt"

	"github.com/officinaverde/blog-api/ent"
	"github.com/officinaverde/blog-api/ent/user"
	"github.com/officinaverde/blog-api/pkg/constant"
	"github.com/officinaverde/blog-api/pkg/domain/model"
	"github.com/officinaverde/blog-api/pkg/domain/repository"
)

type userRepo struct {
	db *ent.Client
}

// NewUserRepo is the constructor for userRepo.
func NewUserRepo(db *ent.Client) repository.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) toModel(u *ent.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		ID:           u.ID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Nickname:     u.Nickname,
		IsAdmin:      u.IsAdmin,
		LastLoginAt:  u.LastLoginAt,
	}
}

func (r *userRepo) Create(ctx context.Context, m *model.User) (*model.User, error) {
	created, err := r.db.User.Create().
		SetEmail(m.Email).
		SetPasswordHash(m.PasswordHash).
		SetNickname(m.Nickname).
		SetIsAdmin(m.IsAdmin).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, constant.ErrConflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return r.toModel(created), nil
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	entity, err := r.db.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	entity, err := r.db.User.Query().
		Where(user.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

// Update persists the mutable account fields from the model.
func (r *userRepo) Update(ctx context.Context, m *model.User) error {
	builder := r.db.User.UpdateOneID(m.ID).
		SetPasswordHash(m.PasswordHash).
		SetNickname(m.Nickname).
		SetIsAdmin(m.IsAdmin)
	if m.LastLoginAt != nil {
		builder.SetLastLoginAt(*m.LastLoginAt)
	}
	if _, err := builder.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *userRepo) Count(ctx context.Context) (int, error) {
	return r.db.User.Query().Count(ctx)
}
