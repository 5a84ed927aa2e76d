package article

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/officinaverde/blog-api/internal/pkg/auth"
	"github.com/officinaverde/blog-api/pkg/domain/model"
	"github.com/officinaverde/blog-api/pkg/idgen"
	"github.com/officinaverde/blog-api/pkg/response"
	article_service "github.com/officinaverde/blog-api/pkg/service/article"
)

// Handler bundles the article HTTP handlers, public and admin.
type Handler struct {
	svc article_service.Service
}

// NewHandler is the constructor for Handler.
func NewHandler(svc article_service.Service) *Handler {
	return &Handler{svc: svc}
}

// listOptionsFromQuery collects the shared listing query parameters.
func listOptionsFromQuery(c *gin.Context) *model.ListArticlesOptions {
	var q struct {
		Page      int    `form:"page"`
		PageSize  int    `form:"pageSize"`
		Category  string `form:"category"`
		Tag       string `form:"tag"`
		Search    string `form:"search"`
		SortBy    string `form:"sortBy"`
		SortOrder string `form:"sortOrder"`
	}
	_ = c.ShouldBindQuery(&q)
	return &model.ListArticlesOptions{
		Page:       q.Page,
		PageSize:   q.PageSize,
		CategoryID: q.Category,
		TagID:      q.Tag,
		Search:     q.Search,
		SortBy:     q.SortBy,
		SortOrder:  q.SortOrder,
	}
}

// ListPublic serves the public feed: published articles only.
func (h *Handler) ListPublic(c *gin.Context) {
	options := listOptionsFromQuery(c)
	result, err := h.svc.ListPublic(c.Request.Context(), options)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "ok")
}

// GetPublicBySlug serves the public detail page and bumps the view counter.
func (h *Handler) GetPublicBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.Fail(c, http.StatusBadRequest, "missing article slug")
		return
	}
	result, err := h.svc.GetPublicBySlug(c.Request.Context(), slug)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "ok")
}

// Archive serves the published-per-month summary.
func (h *Handler) Archive(c *gin.Context) {
	result, err := h.svc.ListArchives(c.Request.Context())
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "ok")
}

// List serves the admin listing, unrestricted by status.
func (h *Handler) List(c *gin.Context) {
	options := listOptionsFromQuery(c)
	options.Status = c.Query("status")
	options.AuthorID = c.Query("author")
	result, err := h.svc.List(c.Request.Context(), options)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "ok")
}

// Get serves a single article by public ID, any status.
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, "missing article ID")
		return
	}
	result, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "ok")
}

// Create creates an article owned by the authenticated user.
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	authorID, ok := authorIDFromContext(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	result, err := h.svc.Create(c.Request.Context(), authorID, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, result, "article created")
}

// Update applies a partial update to an article.
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, "missing article ID")
		return
	}
	var req model.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "article updated")
}

// Delete removes an article.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, "missing article ID")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "article deleted")
}

// authorIDFromContext resolves the database user ID from the JWT claims the
// auth middleware stored on the context.
func authorIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get(auth.ClaimsKey)
	if !exists {
		return 0, false
	}
	claims, ok := value.(*auth.CustomClaims)
	if !ok {
		return 0, false
	}
	dbID, entityType, err := idgen.DecodePublicID(claims.UserID)
	if err != nil || entityType != idgen.EntityTypeUser {
		return 0, false
	}
	return dbID, true
}
