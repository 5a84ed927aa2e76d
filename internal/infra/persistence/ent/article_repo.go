package ent

import (
	"context"
	"fmt"
	"log"

	"github.com/officinaverde/blog-api/ent"
	"github.com/officinaverde/blog-api/ent/article"
	"github.com/officinaverde/blog-api/pkg/constant"
	"github.com/officinaverde/blog-api/pkg/domain/model"
	"github.com/officinaverde/blog-api/pkg/domain/repository"
	"github.com/officinaverde/blog-api/pkg/idgen"

	"entgo.io/ent/dialect/sql"
)

type articleRepo struct {
	db     *ent.Client
	dbType string
}

// NewArticleRepo is the constructor for articleRepo.
func NewArticleRepo(db *ent.Client, dbType string) repository.ArticleRepository {
	return &articleRepo{db: db, dbType: dbType}
}

// === Private Helpers ===

// decodeArticleID resolves a public article ID to its database ID, rejecting
// IDs minted for another entity type.
func decodeArticleID(publicID string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeArticle {
		return 0, constant.ErrNotFound
	}
	return dbID, nil
}

// toModel converts an ent.Article entity into the model.Article domain model.
func (r *articleRepo) toModel(a *ent.Article) *model.Article {
	if a == nil {
		return nil
	}
	publicID, err := idgen.GeneratePublicID(a.ID, idgen.EntityTypeArticle)
	if err != nil {
		log.Printf("[FATAL] failed to generate article public ID: dbID=%d, error=%v", a.ID, err)
		panic(fmt.Sprintf("failed to generate article public ID: dbID=%d, error=%v", a.ID, err))
	}

	var tags []*model.Tag
	if a.Edges.Tags != nil {
		tags = make([]*model.Tag, len(a.Edges.Tags))
		for i, t := range a.Edges.Tags {
			tagPublicID, _ := idgen.GeneratePublicID(t.ID, idgen.EntityTypeTag)
			tags[i] = &model.Tag{ID: tagPublicID, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt, Name: t.Name, Slug: t.Slug}
		}
	}

	var category *model.Category
	if c := a.Edges.Category; c != nil {
		categoryPublicID, _ := idgen.GeneratePublicID(c.ID, idgen.EntityTypeCategory)
		category = &model.Category{ID: categoryPublicID, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt, Name: c.Name, Slug: c.Slug}
	}

	var author *model.AuthorInfo
	if u := a.Edges.Author; u != nil {
		authorPublicID, _ := idgen.GeneratePublicID(u.ID, idgen.EntityTypeUser)
		author = &model.AuthorInfo{ID: authorPublicID, Nickname: u.Nickname, Email: u.Email}
	}

	return &model.Article{
		ID:          publicID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		Title:       a.Title,
		Subtitle:    a.Subtitle,
		Slug:        a.Slug,
		ContentMd:   a.ContentMd,
		ContentHTML: a.ContentHTML,
		CoverURL:    a.CoverURL,
		Status:      string(a.Status),
		ViewCount:   a.ViewCount,
		Author:      author,
		Category:    category,
		Tags:        tags,
		PublishedAt: a.PublishedAt,
	}
}

// toModelSlice converts a slice of ent.Article entities into domain models.
func (r *articleRepo) toModelSlice(entities []*ent.Article) []*model.Article {
	models := make([]*model.Article, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
	}
	return models
}

// sortField maps the API sort key onto the generated column name.
func sortField(sortBy string) string {
	switch sortBy {
	case model.SortByPublishedAt:
		return article.FieldPublishedAt
	case model.SortByTitle:
		return article.FieldTitle
	case model.SortByViewCount:
		return article.FieldViewCount
	default:
		return article.FieldCreatedAt
	}
}

// === Public Methods Implementation ===

// List returns one page of articles plus the pre-tag-filter total. The TagID
// option is deliberately ignored here; the service filters the page in memory.
func (r *articleRepo) List(ctx context.Context, options *model.ListArticlesOptions) ([]*model.Article, int, error) {
	query := r.db.Article.Query().Where(article.DeletedAtIsNil())

	if options.Status != "" {
		query = query.Where(article.StatusEQ(article.Status(options.Status)))
	}
	if options.CategoryID != "" {
		dbID, entityType, err := idgen.DecodePublicID(options.CategoryID)
		if err != nil || entityType != idgen.EntityTypeCategory {
			return nil, 0, constant.ErrNotFound
		}
		query = query.Where(article.CategoryIDEQ(dbID))
	}
	if options.AuthorID != "" {
		dbID, entityType, err := idgen.DecodePublicID(options.AuthorID)
		if err != nil || entityType != idgen.EntityTypeUser {
			return nil, 0, constant.ErrNotFound
		}
		query = query.Where(article.AuthorIDEQ(dbID))
	}
	if options.Search != "" {
		query = query.Where(article.Or(
			article.TitleContainsFold(options.Search),
			article.ContentMdContainsFold(options.Search),
		))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	field := sortField(options.SortBy)
	if options.SortOrder == model.SortAsc {
		query = query.Order(ent.Asc(field), ent.Asc(article.FieldID))
	} else {
		query = query.Order(ent.Desc(field), ent.Desc(article.FieldID))
	}

	entities, err := query.
		Offset((options.Page - 1) * options.PageSize).
		Limit(options.PageSize).
		WithTags().
		WithCategory().
		WithAuthor().
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	return r.toModelSlice(entities), total, nil
}

// GetBySlug resolves a published article by slug. Drafts report not-found.
func (r *articleRepo) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	entity, err := r.db.Article.Query().
		Where(
			article.SlugEQ(slug),
			article.StatusEQ(article.StatusPUBLISHED),
			article.DeletedAtIsNil(),
		).
		WithTags().
		WithCategory().
		WithAuthor().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

// GetByID resolves an article by public ID regardless of status.
func (r *articleRepo) GetByID(ctx context.Context, publicID string) (*model.Article, error) {
	dbID, err := decodeArticleID(publicID)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.Article.Query().
		Where(article.ID(dbID), article.DeletedAtIsNil()).
		WithTags().
		WithCategory().
		WithAuthor().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

// Create persists the article row only. Tag associations are a separate step.
func (r *articleRepo) Create(ctx context.Context, params *model.CreateArticleParams) (*model.Article, error) {
	builder := r.db.Article.Create().
		SetTitle(params.Title).
		SetSubtitle(params.Subtitle).
		SetSlug(params.Slug).
		SetContentMd(params.ContentMd).
		SetContentHTML(params.ContentHTML).
		SetCoverURL(params.CoverURL).
		SetStatus(article.Status(params.Status)).
		SetAuthorID(params.AuthorID).
		SetNillableCategoryID(params.CategoryID).
		SetNillablePublishedAt(params.PublishedAt)

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, constant.ErrConflict
		}
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	// Refetch with edges so the caller gets a fully resolved model.
	return r.GetByID(ctx, mustPublicID(created.ID, idgen.EntityTypeArticle))
}

// Update applies a partial update and returns the refreshed model.
func (r *articleRepo) Update(ctx context.Context, publicID string, params *model.UpdateArticleParams) (*model.Article, error) {
	dbID, err := decodeArticleID(publicID)
	if err != nil {
		return nil, err
	}

	builder := r.db.Article.UpdateOneID(dbID).
		SetNillableTitle(params.Title).
		SetNillableSubtitle(params.Subtitle).
		SetNillableSlug(params.Slug).
		SetNillableContentMd(params.ContentMd).
		SetNillableContentHTML(params.ContentHTML).
		SetNillableCoverURL(params.CoverURL).
		SetNillablePublishedAt(params.PublishedAt)

	if params.Status != nil {
		builder.SetStatus(article.Status(*params.Status))
	}
	if params.ClearCategory {
		builder.ClearCategoryID()
	} else if params.CategoryID != nil {
		builder.SetCategoryID(*params.CategoryID)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, constant.ErrConflict
		}
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	return r.GetByID(ctx, publicID)
}

// ReplaceTags converges the association set to exactly the given tag IDs.
func (r *articleRepo) ReplaceTags(ctx context.Context, publicID string, tagDBIDs []uint) error {
	dbID, err := decodeArticleID(publicID)
	if err != nil {
		return err
	}
	_, err = r.db.Article.UpdateOneID(dbID).
		ClearTags().
		AddTagIDs(tagDBIDs...).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("failed to replace article tags: %w", err)
	}
	return nil
}

// Delete removes an article. The tag join rows go with it through the
// storage layer's cascade.
func (r *articleRepo) Delete(ctx context.Context, publicID string) error {
	dbID, err := decodeArticleID(publicID)
	if err != nil {
		return err
	}
	if err := r.db.Article.DeleteOneID(dbID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("failed to delete article: %w", err)
	}
	return nil
}

// ExistsBySlug reports whether another article already holds the slug.
func (r *articleRepo) ExistsBySlug(ctx context.Context, slug string, excludePublicID string) (bool, error) {
	query := r.db.Article.Query().Where(
		article.SlugEQ(slug),
		article.DeletedAtIsNil(),
	)
	if excludePublicID != "" {
		dbID, err := decodeArticleID(excludePublicID)
		if err != nil {
			return false, err
		}
		query = query.Where(article.IDNEQ(dbID))
	}
	return query.Exist(ctx)
}

// GetViewCount reads the current view counter for the read-then-write path.
func (r *articleRepo) GetViewCount(ctx context.Context, publicID string) (int, error) {
	dbID, err := decodeArticleID(publicID)
	if err != nil {
		return 0, err
	}
	entity, err := r.db.Article.Query().
		Where(article.ID(dbID), article.DeletedAtIsNil()).
		Select(article.FieldViewCount).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, constant.ErrNotFound
		}
		return 0, err
	}
	return entity.ViewCount, nil
}

// SetViewCount writes back the view counter computed by the caller.
func (r *articleRepo) SetViewCount(ctx context.Context, publicID string, count int) error {
	dbID, err := decodeArticleID(publicID)
	if err != nil {
		return err
	}
	if _, err := r.db.Article.UpdateOneID(dbID).SetViewCount(count).Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("failed to set article view count: %w", err)
	}
	return nil
}

// GetArchiveSummary returns published article counts grouped by month of the
// publish timestamp.
func (r *articleRepo) GetArchiveSummary(ctx context.Context) ([]*model.ArchiveItem, error) {
	var items []*model.ArchiveItem
	err := r.db.Article.Query().
		Where(
			article.StatusEQ(article.StatusPUBLISHED),
			article.PublishedAtNotNil(),
			article.DeletedAtIsNil(),
		).
		Modify(func(s *sql.Selector) {
			var yearExprStr, monthExprStr string

			switch r.dbType {
			case "sqlite", "sqlite3":
				yearExprStr = fmt.Sprintf("CAST(strftime('%%Y', %s) AS INTEGER)", s.C(article.FieldPublishedAt))
				monthExprStr = fmt.Sprintf("CAST(strftime('%%m', %s) AS INTEGER)", s.C(article.FieldPublishedAt))
			case "mysql":
				yearExprStr = fmt.Sprintf("YEAR(%s)", s.C(article.FieldPublishedAt))
				monthExprStr = fmt.Sprintf("MONTH(%s)", s.C(article.FieldPublishedAt))
			default:
				yearExprStr = fmt.Sprintf("EXTRACT(YEAR FROM %s)", s.C(article.FieldPublishedAt))
				monthExprStr = fmt.Sprintf("EXTRACT(MONTH FROM %s)", s.C(article.FieldPublishedAt))
			}

			s.Select(
				sql.As(yearExprStr, "year"),
				sql.As(monthExprStr, "month"),
				sql.As(sql.Count("*"), "count"),
			).
				GroupBy("year", "month").
				OrderBy(sql.Desc("year"), sql.Desc("month"))
		}).
		Scan(ctx, &items)
	if err != nil {
		return nil, fmt.Errorf("failed to build archive summary: %w", err)
	}
	return items, nil
}

// mustPublicID encodes a database ID, panicking on encoder failure. Used only
// on IDs that just came out of the database.
func mustPublicID(dbID uint, entityType uint64) string {
	publicID, err := idgen.GeneratePublicID(dbID, entityType)
	if err != nil {
		panic(fmt.Sprintf("failed to generate public ID: dbID=%d, error=%v", dbID, err))
	}
	return publicID
}
