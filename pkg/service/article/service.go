package article

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/officinaverde/blog-api/internal/pkg/strutil"
	"github.com/officinaverde/blog-api/pkg/constant"
	"github.com/officinaverde/blog-api/pkg/domain/model"
	"github.com/officinaverde/blog-api/pkg/domain/repository"
	"github.com/officinaverde/blog-api/pkg/idgen"
	appParser "github.com/officinaverde/blog-api/pkg/service/parser"
	"github.com/officinaverde/blog-api/pkg/service/utility"
)

const (
	maxTitleLen    = 200
	maxSubtitleLen = 300
	excerptLen     = 200

	archiveCacheKey = "blog:archive:summary"
	archiveCacheTTL = 10 * time.Minute
)

type Service interface {
	Create(ctx context.Context, authorID uint, req *model.CreateArticleRequest) (*model.ArticleResponse, error)
	Get(ctx context.Context, publicID string) (*model.ArticleResponse, error)
	Update(ctx context.Context, publicID string, req *model.UpdateArticleRequest) (*model.ArticleResponse, error)
	Delete(ctx context.Context, publicID string) error
	// List serves the admin listing: any status, tag filter applied in memory.
	List(ctx context.Context, options *model.ListArticlesOptions) (*model.ArticleListResponse, error)
	// ListPublic serves the public feed. Status is forced to PUBLISHED.
	ListPublic(ctx context.Context, options *model.ListArticlesOptions) (*model.ArticleListResponse, error)
	// GetPublicBySlug resolves a published article and bumps its view counter.
	GetPublicBySlug(ctx context.Context, slug string) (*model.ArticleResponse, error)
	ListArchives(ctx context.Context) (*model.ArchiveSummaryResponse, error)
}

type serviceImpl struct {
	repo         repository.ArticleRepository
	tagRepo      repository.TagRepository
	categoryRepo repository.CategoryRepository
	parserSvc    *appParser.Service
	cacheSvc     utility.CacheService
}

func NewService(
	repo repository.ArticleRepository,
	tagRepo repository.TagRepository,
	categoryRepo repository.CategoryRepository,
	parserSvc *appParser.Service,
	cacheSvc utility.CacheService,
) Service {
	return &serviceImpl{
		repo:         repo,
		tagRepo:      tagRepo,
		categoryRepo: categoryRepo,
		parserSvc:    parserSvc,
		cacheSvc:     cacheSvc,
	}
}

// === Validation helpers ===

func validateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: title must not be empty", constant.ErrValidation)
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return fmt.Errorf("%w: title exceeds %d characters", constant.ErrValidation, maxTitleLen)
	}
	return nil
}

func validateSubtitle(subtitle string) error {
	if utf8.RuneCountInString(subtitle) > maxSubtitleLen {
		return fmt.Errorf("%w: subtitle exceeds %d characters", constant.ErrValidation, maxSubtitleLen)
	}
	return nil
}

func validateStatus(status string) error {
	switch status {
	case model.StatusDraft, model.StatusPublished:
		return nil
	default:
		return fmt.Errorf("%w: invalid status %q", constant.ErrValidation, status)
	}
}

func validateCoverURL(coverURL string) error {
	if coverURL == "" {
		return nil
	}
	u, err := url.Parse(coverURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: cover URL must be an absolute http(s) URL", constant.ErrValidation)
	}
	return nil
}

// resolveSlug derives the final slug from an explicit value or the title and
// rejects collisions before anything is persisted. excludePublicID is empty on
// create.
func (s *serviceImpl) resolveSlug(ctx context.Context, explicit, title, excludePublicID string) (string, error) {
	source := explicit
	if source == "" {
		source = title
	}
	slug := strutil.GenerateSlug(source)
	if slug == "" {
		return "", fmt.Errorf("%w: cannot derive a slug from %q", constant.ErrValidation, source)
	}
	taken, err := s.repo.ExistsBySlug(ctx, slug, excludePublicID)
	if err != nil {
		return "", fmt.Errorf("failed to check slug availability: %w", err)
	}
	if taken {
		return "", fmt.Errorf("%w: %q", constant.ErrSlugTaken, slug)
	}
	return slug, nil
}

// resolveCategoryID turns a public category ID into a verified database ID.
func (s *serviceImpl) resolveCategoryID(ctx context.Context, publicID string) (*uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeCategory {
		return nil, fmt.Errorf("%w: unknown category %q", constant.ErrValidation, publicID)
	}
	if _, err := s.categoryRepo.GetByID(ctx, publicID); err != nil {
		return nil, fmt.Errorf("%w: unknown category %q", constant.ErrValidation, publicID)
	}
	return &dbID, nil
}

// replaceTags resolves the public tag IDs and converges the association set.
// A failure here is a partial state, not a rollback: the article row stands
// and the caller reports the pending tags.
func (s *serviceImpl) replaceTags(ctx context.Context, articleID string, tagIDs []string) error {
	dbIDs, err := s.tagRepo.ResolveDBIDs(ctx, tagIDs)
	if err != nil {
		return err
	}
	return s.repo.ReplaceTags(ctx, articleID, dbIDs)
}

// === Write paths ===

func (s *serviceImpl) Create(ctx context.Context, authorID uint, req *model.CreateArticleRequest) (*model.ArticleResponse, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	if err := validateSubtitle(req.Subtitle); err != nil {
		return nil, err
	}
	if req.ContentMd == "" {
		return nil, fmt.Errorf("%w: content must not be empty", constant.ErrValidation)
	}
	if err := validateCoverURL(req.CoverURL); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = model.StatusDraft
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	slug, err := s.resolveSlug(ctx, req.Slug, req.Title, "")
	if err != nil {
		return nil, err
	}

	var categoryID *uint
	if req.CategoryID != "" {
		categoryID, err = s.resolveCategoryID(ctx, req.CategoryID)
		if err != nil {
			return nil, err
		}
	}

	contentHTML, err := s.parserSvc.ToHTML(ctx, req.ContentMd)
	if err != nil {
		return nil, fmt.Errorf("failed to render article content: %w", err)
	}

	params := &model.CreateArticleParams{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Slug:        slug,
		ContentMd:   req.ContentMd,
		ContentHTML: contentHTML,
		CoverURL:    req.CoverURL,
		Status:      status,
		AuthorID:    authorID,
		CategoryID:  categoryID,
	}
	if status == model.StatusPublished {
		now := time.Now()
		params.PublishedAt = &now
	}

	created, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(created, true)

	// Tags are attached after the row exists. On failure the article stays
	// persisted and the caller can retry the replace, which is idempotent.
	if len(req.TagIDs) > 0 {
		if err := s.replaceTags(ctx, created.ID, req.TagIDs); err != nil {
			log.Printf("[article] article %s saved but tag update failed: %v", created.ID, err)
			resp.TagsPending = true
		} else {
			refreshed, err := s.repo.GetByID(ctx, created.ID)
			if err == nil {
				resp = s.toResponse(refreshed, true)
			}
		}
	}

	s.invalidateArchiveCache(ctx)
	return resp, nil
}

func (s *serviceImpl) Update(ctx context.Context, publicID string, req *model.UpdateArticleRequest) (*model.ArticleResponse, error) {
	current, err := s.repo.GetByID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	params := &model.UpdateArticleParams{
		Subtitle:      req.Subtitle,
		CoverURL:      req.CoverURL,
		ClearCategory: req.ClearCategory,
	}

	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return nil, err
		}
		params.Title = req.Title
	}
	if req.Subtitle != nil {
		if err := validateSubtitle(*req.Subtitle); err != nil {
			return nil, err
		}
	}
	if req.CoverURL != nil {
		if err := validateCoverURL(*req.CoverURL); err != nil {
			return nil, err
		}
	}
	if req.ContentMd != nil {
		if *req.ContentMd == "" {
			return nil, fmt.Errorf("%w: content must not be empty", constant.ErrValidation)
		}
		contentHTML, err := s.parserSvc.ToHTML(ctx, *req.ContentMd)
		if err != nil {
			return nil, fmt.Errorf("failed to render article content: %w", err)
		}
		params.ContentMd = req.ContentMd
		params.ContentHTML = &contentHTML
	}
	if req.Slug != nil {
		slug, err := s.resolveSlug(ctx, *req.Slug, current.Title, publicID)
		if err != nil {
			return nil, err
		}
		params.Slug = &slug
	}
	if req.Status != nil {
		if err := validateStatus(*req.Status); err != nil {
			return nil, err
		}
		params.Status = req.Status
		// The publish timestamp is set on the first transition to PUBLISHED
		// and kept forever after.
		if *req.Status == model.StatusPublished && current.PublishedAt == nil {
			now := time.Now()
			params.PublishedAt = &now
		}
	}
	if !req.ClearCategory && req.CategoryID != nil {
		categoryID, err := s.resolveCategoryID(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		params.CategoryID = categoryID
	}

	updated, err := s.repo.Update(ctx, publicID, params)
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(updated, true)

	// nil leaves the association set alone; a non-nil value, including an
	// empty list, replaces it entirely.
	if req.TagIDs != nil {
		if err := s.replaceTags(ctx, publicID, req.TagIDs); err != nil {
			log.Printf("[article] article %s saved but tag update failed: %v", publicID, err)
			resp.TagsPending = true
		} else {
			refreshed, err := s.repo.GetByID(ctx, publicID)
			if err == nil {
				resp = s.toResponse(refreshed, true)
			}
		}
	}

	s.invalidateArchiveCache(ctx)
	return resp, nil
}

func (s *serviceImpl) Delete(ctx context.Context, publicID string) error {
	if err := s.repo.Delete(ctx, publicID); err != nil {
		return err
	}
	s.invalidateArchiveCache(ctx)
	return nil
}

// === Read paths ===

func (s *serviceImpl) Get(ctx context.Context, publicID string) (*model.ArticleResponse, error) {
	article, err := s.repo.GetByID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(article, true), nil
}

func (s *serviceImpl) GetPublicBySlug(ctx context.Context, slug string) (*model.ArticleResponse, error) {
	article, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// View bump is read-then-write on purpose: a lost increment under
	// concurrent reads is tolerated, a failed bump never fails the request.
	count, err := s.repo.GetViewCount(ctx, article.ID)
	if err != nil {
		log.Printf("[article] failed to read view count for %s: %v", article.ID, err)
		return s.toResponse(article, true), nil
	}
	if err := s.repo.SetViewCount(ctx, article.ID, count+1); err != nil {
		log.Printf("[article] failed to bump view count for %s: %v", article.ID, err)
		return s.toResponse(article, true), nil
	}
	article.ViewCount = count + 1

	return s.toResponse(article, true), nil
}

func (s *serviceImpl) List(ctx context.Context, options *model.ListArticlesOptions) (*model.ArticleListResponse, error) {
	return s.list(ctx, options)
}

func (s *serviceImpl) ListPublic(ctx context.Context, options *model.ListArticlesOptions) (*model.ArticleListResponse, error) {
	options.Status = model.StatusPublished
	if options.SortBy == "" {
		options.SortBy = model.SortByPublishedAt
	}
	return s.list(ctx, options)
}

func (s *serviceImpl) list(ctx context.Context, options *model.ListArticlesOptions) (*model.ArticleListResponse, error) {
	normalizeListOptions(options)

	articles, total, err := s.repo.List(ctx, options)
	if err != nil {
		return nil, err
	}

	// The tag filter runs in memory against the already-fetched page. The
	// total stays at the pre-filter count; the frontend tolerates the
	// mismatch and this keeps the listing a single backend round trip.
	if options.TagID != "" {
		articles = filterByTag(articles, options.TagID)
	}

	list := make([]*model.ArticleResponse, len(articles))
	for i, a := range articles {
		list[i] = s.toResponse(a, false)
	}

	return &model.ArticleListResponse{
		List:     list,
		Total:    total,
		Page:     options.Page,
		PageSize: options.PageSize,
	}, nil
}

func (s *serviceImpl) ListArchives(ctx context.Context) (*model.ArchiveSummaryResponse, error) {
	if cached, err := s.cacheSvc.Get(ctx, archiveCacheKey); err == nil && cached != "" {
		var resp model.ArchiveSummaryResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
	}

	items, err := s.repo.GetArchiveSummary(ctx)
	if err != nil {
		return nil, err
	}
	resp := &model.ArchiveSummaryResponse{List: items}

	if payload, err := json.Marshal(resp); err == nil {
		if err := s.cacheSvc.Set(ctx, archiveCacheKey, string(payload), archiveCacheTTL); err != nil {
			log.Printf("[article] failed to cache archive summary: %v", err)
		}
	}

	return resp, nil
}

// === Helpers ===

func normalizeListOptions(options *model.ListArticlesOptions) {
	if options.Page < 1 {
		options.Page = 1
	}
	if options.PageSize < 1 {
		options.PageSize = 10
	}
	if options.PageSize > 100 {
		options.PageSize = 100
	}
	if options.SortBy == "" {
		options.SortBy = model.SortByCreatedAt
	}
	if options.SortOrder != model.SortAsc {
		options.SortOrder = model.SortDesc
	}
}

func filterByTag(articles []*model.Article, tagID string) []*model.Article {
	filtered := make([]*model.Article, 0, len(articles))
	for _, a := range articles {
		for _, t := range a.Tags {
			if t.ID == tagID {
				filtered = append(filtered, a)
				break
			}
		}
	}
	return filtered
}

func (s *serviceImpl) invalidateArchiveCache(ctx context.Context) {
	if err := s.cacheSvc.Delete(ctx, archiveCacheKey); err != nil {
		log.Printf("[article] failed to invalidate archive cache: %v", err)
	}
}

// toResponse maps the domain model to the API shape. Content is omitted from
// listing rows and carried on detail responses.
func (s *serviceImpl) toResponse(a *model.Article, includeContent bool) *model.ArticleResponse {
	resp := &model.ArticleResponse{
		ID:          a.ID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		Title:       a.Title,
		Subtitle:    a.Subtitle,
		Slug:        a.Slug,
		CoverURL:    a.CoverURL,
		Status:      a.Status,
		ViewCount:   a.ViewCount,
		Author:      a.Author,
		PublishedAt: a.PublishedAt,
		Tags:        make([]*model.TagResponse, len(a.Tags)),
	}
	if includeContent {
		resp.ContentMd = a.ContentMd
		resp.ContentHTML = a.ContentHTML
	} else {
		resp.Excerpt = strutil.Truncate(s.parserSvc.PlainText(a.ContentHTML), excerptLen)
	}
	if a.Category != nil {
		resp.Category = &model.CategoryResponse{
			ID:        a.Category.ID,
			CreatedAt: a.Category.CreatedAt,
			Name:      a.Category.Name,
			Slug:      a.Category.Slug,
		}
	}
	for i, t := range a.Tags {
		resp.Tags[i] = &model.TagResponse{
			ID:        t.ID,
			CreatedAt: t.CreatedAt,
			Name:      t.Name,
			Slug:      t.Slug,
		}
	}
	return resp
}
