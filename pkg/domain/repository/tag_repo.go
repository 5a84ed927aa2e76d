package repository

import (
	"context"

	"github.com/officinaverde/blog-api/pkg/domain/model"
)

// TagRepository is the persistence abstraction for tags.
type TagRepository interface {
	Create(ctx context.Context, req *model.CreateTagRequest) (*model.Tag, error)
	Update(ctx context.Context, publicID string, req *model.UpdateTagRequest) (*model.Tag, error)
	Delete(ctx context.Context, publicID string) error
	List(ctx context.Context) ([]*model.Tag, error)
	GetByID(ctx context.Context, publicID string) (*model.Tag, error)
	// ResolveDBIDs decodes and verifies a set of public tag IDs, returning the
	// matching database IDs. Unknown IDs fail the whole batch.
	ResolveDBIDs(ctx context.Context, publicIDs []string) ([]uint, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
