package tag

import (
	"context"
	"fmt"

	"github.com/officinaverde/blog-api/internal/pkg/strutil"
	"github.com/officinaverde/blog-api/pkg/constant"
	"github.com/officinaverde/blog-api/pkg/domain/model"
	"github.com/officinaverde/blog-api/pkg/domain/repository"
)

type Service interface {
	List(ctx context.Context) ([]*model.TagResponse, error)
	Get(ctx context.Context, publicID string) (*model.TagResponse, error)
	Create(ctx context.Context, req *model.CreateTagRequest) (*model.TagResponse, error)
	Update(ctx context.Context, publicID string, req *model.UpdateTagRequest) (*model.TagResponse, error)
	// Delete removes the tag; its article associations disappear with it.
	Delete(ctx context.Context, publicID string) error
}

type serviceImpl struct {
	repo repository.TagRepository
}

func NewService(repo repository.TagRepository) Service {
	return &serviceImpl{repo: repo}
}

func (s *serviceImpl) List(ctx context.Context) ([]*model.TagResponse, error) {
	tags, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*model.TagResponse, len(tags))
	for i, t := range tags {
		list[i] = toResponse(t)
	}
	return list, nil
}

func (s *serviceImpl) Get(ctx context.Context, publicID string) (*model.TagResponse, error) {
	t, err := s.repo.GetByID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return toResponse(t), nil
}

func (s *serviceImpl) Create(ctx context.Context, req *model.CreateTagRequest) (*model.TagResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: tag name must not be empty", constant.ErrValidation)
	}
	taken, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check tag name: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: tag %q already exists", constant.ErrConflict, req.Name)
	}

	slug, err := s.resolveSlug(ctx, req.Slug, req.Name)
	if err != nil {
		return nil, err
	}
	req.Slug = slug

	t, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return toResponse(t), nil
}

func (s *serviceImpl) Update(ctx context.Context, publicID string, req *model.UpdateTagRequest) (*model.TagResponse, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, fmt.Errorf("%w: tag name must not be empty", constant.ErrValidation)
	}
	if req.Slug != nil {
		slug := strutil.GenerateSlug(*req.Slug)
		if slug == "" {
			return nil, fmt.Errorf("%w: cannot derive a slug from %q", constant.ErrValidation, *req.Slug)
		}
		req.Slug = &slug
	}
	t, err := s.repo.Update(ctx, publicID, req)
	if err != nil {
		return nil, err
	}
	return toResponse(t), nil
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
		return "", fmt.Errorf("failed to check tag slug: %w", err)
	}
	if taken {
		return "", fmt.Errorf("%w: %q", constant.ErrSlugTaken, slug)
	}
	return slug, nil
}

func toResponse(t *model.Tag) *model.TagResponse {
	return &model.TagResponse{
		ID:        t.ID,
		CreatedAt: t.CreatedAt,
		Name:      t.Name,
		Slug:      t.Slug,
	}
}
