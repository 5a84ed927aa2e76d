package repository

import (
	"context"

	"github.com/officinaverde/blog-api/pkg/domain/model"
)

// ArticleRepository is the persistence abstraction for articles. All methods
// speak domain models and parameter objects, keeping the service layer
// decoupled from the ORM. The repository performs no authorization: callers
// gate the mutating operations.
type ArticleRepository interface {
	// List returns one page of articles plus the total row count matched by
	// the backend-side filters. The TagID filter is NOT applied here; it is a
	// post-filter the service evaluates in memory, so the returned total
	// reflects the pre-tag-filter count.
	List(ctx context.Context, options *model.ListArticlesOptions) ([]*model.Article, int, error)

	// GetBySlug resolves a PUBLISHED article by slug. Draft articles are never
	// resolvable through this path; they report not-found.
	GetBySlug(ctx context.Context, slug string) (*model.Article, error)

	// GetByID resolves an article by public ID regardless of status. Used by
	// the editing path.
	GetByID(ctx context.Context, publicID string) (*model.Article, error)

	// Create persists the article row only and returns the created model.
	// Tag associations are attached afterwards via ReplaceTags.
	Create(ctx context.Context, params *model.CreateArticleParams) (*model.Article, error)

	// Update applies a partial update and returns the updated model.
	Update(ctx context.Context, publicID string, params *model.UpdateArticleParams) (*model.Article, error)

	// ReplaceTags converges the article's association set to exactly the given
	// tag IDs: destructive replace, not diff-and-patch. An empty set removes
	// every association. Idempotent.
	ReplaceTags(ctx context.Context, publicID string, tagDBIDs []uint) error

	// Delete removes an article. Tag associations disappear through the
	// storage layer's cascade, not through application-level deletes.
	Delete(ctx context.Context, publicID string) error

	// ExistsBySlug reports whether the slug is taken by an article other than
	// excludePublicID (empty string checks all articles).
	ExistsBySlug(ctx context.Context, slug string, excludePublicID string) (bool, error)

	// GetViewCount and SetViewCount are the two halves of the public detail
	// path's read-then-write view increment. Deliberately not atomic.
	GetViewCount(ctx context.Context, publicID string) (int, error)
	SetViewCount(ctx context.Context, publicID string, count int) error

	// GetArchiveSummary returns published article counts grouped by month.
	GetArchiveSummary(ctx context.Context) ([]*model.ArchiveItem, error)
}
