package ent

import (
	"context"
	"fmt"

	"github.com/officinaverde/blog-api/ent"
	"github.com/officinaverde/blog-api/ent/category"
	"github.com/officinaverde/blog-api/pkg/constant"
	"github.com/officinaverde/blog-api/pkg/domain/model"
	"github.com/officinaverde/blog-api/pkg/domain/repository"
	"github.com/officinaverde/blog-api/pkg/idgen"
)

type categoryRepo struct {
	db *ent.Client
}

// NewCategoryRepo is the constructor for categoryRepo.
func NewCategoryRepo(db *ent.Client) repository.CategoryRepository {
	return &categoryRepo{db: db}
}

func decodeCategoryID(publicID string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeCategory {
		return 0, constant.ErrNotFound
	}
	return dbID, nil
}

func (r *categoryRepo) toModel(c *ent.Category) *model.Category {
	if c == nil {
		return nil
	}
	publicID := mustPublicID(c.ID, idgen.EntityTypeCategory)
	return &model.Category{
		ID:        publicID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Name:      c.Name,
		Slug:      c.Slug,
	}
}

func (r *categoryRepo) Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error) {
	created, err := r.db.Category.Create().
		SetName(req.Name).
		SetSlug(req.Slug).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, constant.ErrConflict
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return r.toModel(created), nil
}

func (r *categoryRepo) Update(ctx context.Context, publicID string, req *model.UpdateCategoryRequest) (*model.Category, error) {
	dbID, err := decodeCategoryID(publicID)
	if err != nil {
		return nil, err
	}
	updated, err := r.db.Category.UpdateOneID(dbID).
		SetNillableName(req.Name).
		SetNillableSlug(req.Slug).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, constant.ErrConflict
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return r.toModel(updated), nil
}

// Delete removes the category. Articles that referenced it keep existing with
// a cleared category column.
func (r *categoryRepo) Delete(ctx context.Context, publicID string) error {
	dbID, err := decodeCategoryID(publicID)
	if err != nil {
		return err
	}
	if err := r.db.Category.DeleteOneID(dbID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func (r *categoryRepo) List(ctx context.Context) ([]*model.Category, error) {
	entities, err := r.db.Category.Query().
		Where(category.DeletedAtIsNil()).
		Order(ent.Asc(category.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	models := make([]*model.Category, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
	}
	return models, nil
}

func (r *categoryRepo) GetByID(ctx context.Context, publicID string) (*model.Category, error) {
	dbID, err := decodeCategoryID(publicID)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.Category.Query().
		Where(category.ID(dbID), category.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *categoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.db.Category.Query().
		Where(category.NameEQ(name), category.DeletedAtIsNil()).
		Exist(ctx)
}

func (r *categoryRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	return r.db.Category.Query().
		Where(category.SlugEQ(slug), category.DeletedAtIsNil()).
		Exist(ctx)
}
