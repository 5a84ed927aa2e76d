package category

import (
	"context"
	"fmt"

	"github.com/officinaverde/blog-api/internal/pkg/strutil"
	"github.com/officinaverde/blog-api/pkg/constant"
	"github.com/officinaverde/blog-api/pkg/domain/model"
	"github.com/officinaverde/blog-api/pkg/domain/repository"
)

type Service interface {
	List(ctx context.Context) ([]*model.CategoryResponse, error)
	Get(ctx context.Context, publicID string) (*model.CategoryResponse, error)
	Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.CategoryResponse, error)
	Update(ctx context.Context, publicID string, req *model.UpdateCategoryRequest) (*model.CategoryResponse, error)
	// Delete removes the category; its articles keep existing without one.
	Delete(ctx context.Context, publicID string) error
}

type serviceImpl struct {
	repo repository.CategoryRepository
}

func NewService(repo repository.CategoryRepository) Service {
	return &serviceImpl{repo: repo}
}

func (s *serviceImpl) List(ctx context.Context) ([]*model.CategoryResponse, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*model.CategoryResponse, len(categories))
	for i, c := range categories {
		list[i] = toResponse(c)
	}
	return list, nil
}

func (s *serviceImpl) Get(ctx context.Context, publicID string) (*model.CategoryResponse, error) {
	c, err := s.repo.GetByID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

func (s *serviceImpl) Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.CategoryResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: category name must not be empty", constant.ErrValidation)
	}
	taken, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: category %q already exists", constant.ErrConflict, req.Name)
	}

	slug, err := s.resolveSlug(ctx, req.Slug, req.Name)
	if err != nil {
		return nil, err
	}
	req.Slug = slug

	c, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

func (s *serviceImpl) Update(ctx context.Context, publicID string, req *model.UpdateCategoryRequest) (*model.CategoryResponse, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, fmt.Errorf("%w: category name must not be empty", constant.ErrValidation)
	}
	if req.Slug != nil {
		slug := strutil.GenerateSlug(*req.Slug)
		if slug == "" {
			return nil, fmt.Errorf("%w: cannot derive a slug from %q", constant.ErrValidation, *req.Slug)
		}
		req.Slug = &slug
	}
	c, err := s.repo.Update(ctx, publicID, req)
	if err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

func (s *serviceImpl) Delete(ctx context.Context, publicID string) error {
	return s.repo.Delete(ctx, publicID)
}

func (s *serviceImpl) resolveSlug(ctx context.Context, explicit, name string) (string, error) {
	source := explicit
	if source == "" {
		source = name
	}
	slug := strutil.GenerateSlug(source)
	if slug == "" {
		return "", fmt.Errorf("%w: cannot derive a slug from %q", constant.ErrValidation, source)
	}
	taken, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return "", fmt.Errorf("failed to check category slug: %w", err)
	}
	if taken {
		return "", fmt.Errorf("%w: %q", constant.ErrSlugTaken, slug)
	}
	return slug, nil
}

func toResponse(c *model.Category) *model.CategoryResponse {
	return &model.CategoryResponse{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		Name:      c.Name,
		Slug:      c.Slug,
	}
}
