package model

import "time"

// Article lifecycle states.
const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
)

// Sort keys accepted by article listing.
const (
	SortByCreatedAt   = "created_at"
	SortByPublishedAt = "published_at"
	SortByTitle       = "title"
	SortByViewCount   = "view_count"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// --- Domain Object ---

// Article is the core article domain model the service layer works with.
// It is denormalized: author identity, category and tags are resolved.
type Article struct {
	ID          string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string
	Subtitle    string
	Slug        string
	ContentMd   string
	ContentHTML string
	CoverURL    string
	Status      string
	ViewCount   int
	Author      *AuthorInfo
	Category    *Category
	Tags        []*Tag
	PublishedAt *time.Time
}

// AuthorInfo is the public identity of an article's author.
type AuthorInfo struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
}

// --- Data Transfer Objects ---

// CreateArticleRequest is the request body for creating an article.
// When Slug is empty it is derived from the title.
type CreateArticleRequest struct {
	Title      string   `json:"title" binding:"required"`
	Subtitle   string   `json:"subtitle"`
	Slug       string   `json:"slug"`
	ContentMd  string   `json:"content_md" binding:"required"`
	CoverURL   string   `json:"cover_url"`
	Status     string   `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
	CategoryID string   `json:"category_id"`
	TagIDs     []string `json:"tag_ids"`
}

// UpdateArticleRequest is the request body for updating an article.
// Nil fields are left untouched. TagIDs follows the same rule: nil leaves the
// association set alone, while a non-nil value (including an empty list) fully
// replaces it.
type UpdateArticleRequest struct {
	Title         *string  `json:"title"`
	Subtitle      *string  `json:"subtitle"`
	Slug          *string  `json:"slug"`
	ContentMd     *string  `json:"content_md"`
	CoverURL      *string  `json:"cover_url"`
	Status        *string  `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
	CategoryID    *string  `json:"category_id"`
	ClearCategory bool     `json:"clear_category"`
	TagIDs        []string `json:"tag_ids"`
}

// ArticleResponse is the standard API shape of an article.
type ArticleResponse struct {
	ID          string              `json:"id"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Title       string              `json:"title"`
	Subtitle    string              `json:"subtitle,omitempty"`
	Slug        string              `json:"slug"`
	ContentMd   string              `json:"content_md,omitempty"`
	ContentHTML string              `json:"content_html,omitempty"`
	Excerpt     string              `json:"excerpt,omitempty"`
	CoverURL    string              `json:"cover_url,omitempty"`
	Status      string              `json:"status"`
	ViewCount   int                 `json:"view_count"`
	Author      *AuthorInfo         `json:"author,omitempty"`
	Category    *CategoryResponse   `json:"category,omitempty"`
	Tags        []*TagResponse      `json:"tags"`
	PublishedAt *time.Time          `json:"published_at,omitempty"`
	TagsPending bool                `json:"tags_pending,omitempty"`
}

// ArticleListResponse is the paginated listing shape. Total reflects the count
// before any in-memory tag filtering (see ListArticlesOptions.TagID).
type ArticleListResponse struct {
	List     []*ArticleResponse `json:"list"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"pageSize"`
}

// ListArticlesOptions describes a page of the article listing.
//
// TagID is applied in memory after the page query returns, because the backend
// cannot filter on the nested many-to-many in a single pass. The reported
// total therefore reflects the pre-tag-filter count; callers must tolerate or
// compensate for the mismatch.
type ListArticlesOptions struct {
	Page       int
	PageSize   int
	Status     string
	CategoryID string
	AuthorID   string
	TagID      string
	Search     string
	SortBy     string
	SortOrder  string
}

// --- Persistence parameter objects ---

// CreateArticleParams carries the validated data the repository persists on
// create. Tag associations are attached in a separate step.
type CreateArticleParams struct {
	Title       string
	Subtitle    string
	Slug        string
	ContentMd   string
	ContentHTML string
	CoverURL    string
	Status      string
	AuthorID    uint
	CategoryID  *uint
	PublishedAt *time.Time
}

// UpdateArticleParams carries the validated field changes for an update. Nil
// pointers leave the column untouched. PublishedAt is only ever set, never
// cleared: once an article has a publish timestamp it keeps it.
type UpdateArticleParams struct {
	Title         *string
	Subtitle      *string
	Slug          *string
	ContentMd     *string
	ContentHTML   *string
	CoverURL      *string
	Status        *string
	CategoryID    *uint
	ClearCategory bool
	PublishedAt   *time.Time
}

// ArchiveItem is one archive month with its article count.
type ArchiveItem struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

// ArchiveSummaryResponse wraps the archive listing.
type ArchiveSummaryResponse struct {
	List []*ArchiveItem `json:"list"`
}
