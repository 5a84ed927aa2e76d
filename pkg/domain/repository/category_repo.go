package repository

import (
	"context"

	"github.com/officinaverde/blog-api/pkg/domain/model"
)

// CategoryRepository is the persistence abstraction for categories.
type CategoryRepository interface {
	Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error)
	Update(ctx context.Context, publicID string, req *model.UpdateCategoryRequest) (*model.Category, error)
	// Delete removes the category; its articles keep existing without one.
	Delete(ctx context.Context, publicID string) error
	List(ctx context.Context) ([]*model.Category, error)
	GetByID(ctx context.Context, publicID string) (*model.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
