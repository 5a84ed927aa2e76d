package tag

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/officinaverde/blog-api/pkg/constant"
	"github.com/officinaverde/blog-api/pkg/domain/model"
)

// fakeTagRepo is an in-memory TagRepository keyed by public ID.
type fakeTagRepo struct {
	tags   map[string]*model.Tag
	nextID int
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[string]*model.Tag), nextID: 1}
}

func (r *fakeTagRepo) Create(_ context.Context, req *model.CreateTagRequest) (*model.Tag, error) {
	t := &model.Tag{
		ID:   fmt.Sprintf("tag-%d", r.nextID),
		Name: req.Name,
		Slug: req.Slug,
	}
	r.nextID++
	r.tags[t.ID] = t
	return t, nil
}

func (r *fakeTagRepo) Update(_ context.Context, publicID string, req *model.UpdateTagRequest) (*model.Tag, error) {
	t, ok := r.tags[publicID]
	if !ok {
		return nil, constant.ErrNotFound
	}
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Slug != nil {
		t.Slug = *req.Slug
	}
	return t, nil
}

func (r *fakeTagRepo) Delete(_ context.Context, publicID string) error {
	if _, ok := r.tags[publicID]; !ok {
		return constant.ErrNotFound
	}
	delete(r.tags, publicID)
	return nil
}

func (r *fakeTagRepo) List(_ context.Context) ([]*model.Tag, error) {
	list := make([]*model.Tag, 0, len(r.tags))
	for _, t := range r.tags {
		list = append(list, t)
	}
	return list, nil
}

func (r *fakeTagRepo) GetByID(_ context.Context, publicID string) (*model.Tag, error) {
	t, ok := r.tags[publicID]
	if !ok {
		return nil, constant.ErrNotFound
	}
	return t, nil
}

func (r *fakeTagRepo) ResolveDBIDs(_ context.Context, publicIDs []string) ([]uint, error) {
	return nil, errors.New("not used in these tests")
}

func (r *fakeTagRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, t := range r.tags {
		if t.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTagRepo) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	for _, t := range r.tags {
		if t.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateGeneratesSlugFromName(t *testing.T) {
	svc := NewService(newFakeTagRepo())

	created, err := svc.Create(context.Background(), &model.CreateTagRequest{Name: "Economia Circolare"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Slug != "economia-circolare" {
		t.Errorf("Slug = %q, want %q", created.Slug, "economia-circolare")
	}
}

func TestCreateRejectsDuplicates(t *testing.T) {
	repo := newFakeTagRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &model.CreateTagRequest{Name: "Energia"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tests := []struct {
		name    string
		req     *model.CreateTagRequest
		wantErr error
	}{
		{"duplicate name", &model.CreateTagRequest{Name: "Energia"}, constant.ErrConflict},
		{"duplicate slug", &model.CreateTagRequest{Name: "ENERGIA!"}, constant.ErrSlugTaken},
		{"empty name", &model.CreateTagRequest{Name: ""}, constant.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateNormalizesSlug(t *testing.T) {
	repo := newFakeTagRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.CreateTagRequest{Name: "Riciclo"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	rawSlug := "Riciclo Creativo "
	updated, err := svc.Update(ctx, created.ID, &model.UpdateTagRequest{Slug: &rawSlug})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Slug != "riciclo-creativo" {
		t.Errorf("Slug = %q, want %q", updated.Slug, "riciclo-creativo")
	}

	empty := ""
	if _, err := svc.Update(ctx, created.ID, &model.UpdateTagRequest{Name: &empty}); !errors.Is(err, constant.ErrValidation) {
		t.Errorf("Update() with empty name error = %v, want %v", err, constant.ErrValidation)
	}
}
