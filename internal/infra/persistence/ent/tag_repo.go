package ent

import (
	"context"
	"fmt"

	"github.com/officinaverde/blog-api/ent"
	"github.com/officinaverde/blog-api/ent/tag"
	"github.com/officinaverde/blog-api/pkg/constant"
	"github.com/officinaverde/blog-api/pkg/domain/model"
	"github.com/officinaverde/blog-api/pkg/domain/repository"
	"github.com/officinaverde/blog-api/pkg/idgen"
)

type tagRepo struct {
	db *ent.Client
}

// NewTagRepo is the constructor for tagRepo.
func NewTagRepo(db *ent.Client) repository.TagRepository {
	return &tagRepo{db: db}
}

func decodeTagID(publicID string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeTag {
		return 0, constant.ErrNotFound
	}
	return dbID, nil
}

func (r *tagRepo) toModel(t *ent.Tag) *model.Tag {
	if t == nil {
		return nil
	}
	publicID := mustPublicID(t.ID, idgen.EntityTypeTag)
	return &model.Tag{
		ID:        publicID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		Name:      t.Name,
		Slug:      t.Slug,
	}
}

func (r *tagRepo) Create(ctx context.Context, req *model.CreateTagRequest) (*model.Tag, error) {
	created, err := r.db.Tag.Create().
		SetName(req.Name).
		SetSlug(req.Slug).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, constant.ErrConflict
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return r.toModel(created), nil
}

func (r *tagRepo) Update(ctx context.Context, publicID string, req *model.UpdateTagRequest) (*model.Tag, error) {
	dbID, err := decodeTagID(publicID)
	if err != nil {
		return nil, err
	}
	updated, err := r.db.Tag.UpdateOneID(dbID).
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
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return r.toModel(updated), nil
}

func (r *tagRepo) Delete(ctx context.Context, publicID string) error {
	dbID, err := decodeTagID(publicID)
	if err != nil {
		return err
	}
	if err := r.db.Tag.DeleteOneID(dbID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}

func (r *tagRepo) List(ctx context.Context) ([]*model.Tag, error) {
	entities, err := r.db.Tag.Query().
		Where(tag.DeletedAtIsNil()).
		Order(ent.Asc(tag.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	models := make([]*model.Tag, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
	}
	return models, nil
}

func (r *tagRepo) GetByID(ctx context.Context, publicID string) (*model.Tag, error) {
	dbID, err := decodeTagID(publicID)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.Tag.Query().
		Where(tag.ID(dbID), tag.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

// ResolveDBIDs decodes a batch of public tag IDs and verifies every one of
// them exists. Any unknown or foreign-typed ID fails the whole batch.
func (r *tagRepo) ResolveDBIDs(ctx context.Context, publicIDs []string) ([]uint, error) {
	if len(publicIDs) == 0 {
		return nil, nil
	}
	dbIDs := make([]uint, 0, len(publicIDs))
	seen := make(map[uint]struct{}, len(publicIDs))
	for _, publicID := range publicIDs {
		dbID, err := decodeTagID(publicID)
		if err != nil {
			return nil, fmt.Errorf("unknown tag %q: %w", publicID, constant.ErrNotFound)
		}
		if _, dup := seen[dbID]; dup {
			continue
		}
		seen[dbID] = struct{}{}
		dbIDs = append(dbIDs, dbID)
	}

	count, err := r.db.Tag.Query().
		Where(tag.IDIn(dbIDs...), tag.DeletedAtIsNil()).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to verify tags: %w", err)
	}
	if count != len(dbIDs) {
		return nil, fmt.Errorf("one or more tags do not exist: %w", constant.ErrNotFound)
	}
	return dbIDs, nil
}

func (r *tagRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.db.Tag.Query().
		Where(tag.NameEQ(name), tag.DeletedAtIsNil()).
		Exist(ctx)
}

func (r *tagRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	return r.db.Tag.Query().
		Where(tag.SlugEQ(slug), tag.DeletedAtIsNil()).
		Exist(ctx)
}
