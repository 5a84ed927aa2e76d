package article

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/officinaverde/blog-api/pkg/constant"
	"github.com/officinaverde/blog-api/pkg/domain/model"
	appParser "github.com/officinaverde/blog-api/pkg/service/parser"
	"github.com/officinaverde/blog-api/pkg/service/utility"
)

// === Fakes ===

type fakeArticleRepo struct {
	seq      uint
	articles map[string]*model.Article
	order    []string
	tagTable map[uint]*model.Tag

	replaceTagsErr error
	replaceCalls   int
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{
		articles: make(map[string]*model.Article),
		tagTable: make(map[uint]*model.Tag),
	}
}

func (r *fakeArticleRepo) List(_ context.Context, options *model.ListArticlesOptions) ([]*model.Article, int, error) {
	var matched []*model.Article
	for _, id := range r.order {
		a := r.articles[id]
		if options.Status != "" && a.Status != options.Status {
			continue
		}
		matched = append(matched, a)
	}
	total := len(matched)
	start := (options.Page - 1) * options.PageSize
	if start > total {
		start = total
	}
	end := start + options.PageSize
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (r *fakeArticleRepo) GetBySlug(_ context.Context, slug string) (*model.Article, error) {
	for _, a := range r.articles {
		if a.Slug == slug && a.Status == model.StatusPublished {
			return a, nil
		}
	}
	return nil, constant.ErrNotFound
}

func (r *fakeArticleRepo) GetByID(_ context.Context, publicID string) (*model.Article, error) {
	a, ok := r.articles[publicID]
	if !ok {
		return nil, constant.ErrNotFound
	}
	return a, nil
}

func (r *fakeArticleRepo) Create(_ context.Context, params *model.CreateArticleParams) (*model.Article, error) {
	r.seq++
	a := &model.Article{
		ID:          fmt.Sprintf("art-%d", r.seq),
		Title:       params.Title,
		Subtitle:    params.Subtitle,
		Slug:        params.Slug,
		ContentMd:   params.ContentMd,
		ContentHTML: params.ContentHTML,
		CoverURL:    params.CoverURL,
		Status:      params.Status,
		PublishedAt: params.PublishedAt,
	}
	r.articles[a.ID] = a
	r.order = append(r.order, a.ID)
	return a, nil
}

func (r *fakeArticleRepo) Update(_ context.Context, publicID string, params *model.UpdateArticleParams) (*model.Article, error) {
	a, ok := r.articles[publicID]
	if !ok {
		return nil, constant.ErrNotFound
	}
	if params.Title != nil {
		a.Title = *params.Title
	}
	if params.Subtitle != nil {
		a.Subtitle = *params.Subtitle
	}
	if params.Slug != nil {
		a.Slug = *params.Slug
	}
	if params.ContentMd != nil {
		a.ContentMd = *params.ContentMd
	}
	if params.ContentHTML != nil {
		a.ContentHTML = *params.ContentHTML
	}
	if params.Status != nil {
		a.Status = *params.Status
	}
	if params.PublishedAt != nil {
		a.PublishedAt = params.PublishedAt
	}
	return a, nil
}

func (r *fakeArticleRepo) ReplaceTags(_ context.Context, publicID string, tagDBIDs []uint) error {
	r.replaceCalls++
	if r.replaceTagsErr != nil {
		return r.replaceTagsErr
	}
	a, ok := r.articles[publicID]
	if !ok {
		return constant.ErrNotFound
	}
	tags := make([]*model.Tag, 0, len(tagDBIDs))
	for _, dbID := range tagDBIDs {
		if t, ok := r.tagTable[dbID]; ok {
			tags = append(tags, t)
		}
	}
	a.Tags = tags
	return nil
}

func (r *fakeArticleRepo) Delete(_ context.Context, publicID string) error {
	if _, ok := r.articles[publicID]; !ok {
		return constant.ErrNotFound
	}
	delete(r.articles, publicID)
	for i, id := range r.order {
		if id == publicID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeArticleRepo) ExistsBySlug(_ context.Context, slug string, excludePublicID string) (bool, error) {
	for id, a := range r.articles {
		if a.Slug == slug && id != excludePublicID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeArticleRepo) GetViewCount(_ context.Context, publicID string) (int, error) {
	a, ok := r.articles[publicID]
	if !ok {
		return 0, constant.ErrNotFound
	}
	return a.ViewCount, nil
}

func (r *fakeArticleRepo) SetViewCount(_ context.Context, publicID string, count int) error {
	a, ok := r.articles[publicID]
	if !ok {
		return constant.ErrNotFound
	}
	a.ViewCount = count
	return nil
}

func (r *fakeArticleRepo) GetArchiveSummary(_ context.Context) ([]*model.ArchiveItem, error) {
	return []*model.ArchiveItem{{Year: 2025, Month: 3, Count: 2}}, nil
}

type fakeTagRepo struct {
	ids        map[string]uint
	resolveErr error
}

func (r *fakeTagRepo) Create(context.Context, *model.CreateTagRequest) (*model.Tag, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeTagRepo) Update(context.Context, string, *model.UpdateTagRequest) (*model.Tag, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeTagRepo) Delete(context.Context, string) error  { return errors.New("not implemented") }
func (r *fakeTagRepo) List(context.Context) ([]*model.Tag, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeTagRepo) GetByID(context.Context, string) (*model.Tag, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeTagRepo) ExistsByName(context.Context, string) (bool, error) { return false, nil }
func (r *fakeTagRepo) ExistsBySlug(context.Context, string) (bool, error) { return false, nil }

func (r *fakeTagRepo) ResolveDBIDs(_ context.Context, publicIDs []string) ([]uint, error) {
	if r.resolveErr != nil {
		return nil, r.resolveErr
	}
	if publicIDs == nil {
		return nil, nil
	}
	dbIDs := make([]uint, 0, len(publicIDs))
	for _, id := range publicIDs {
		dbID, ok := r.ids[id]
		if !ok {
			return nil, constant.ErrNotFound
		}
		dbIDs = append(dbIDs, dbID)
	}
	return dbIDs, nil
}

type fakeCategoryRepo struct{}

func (r *fakeCategoryRepo) Create(context.Context, *model.CreateCategoryRequest) (*model.Category, error) {
	return nil, constant.ErrNotFound
}
func (r *fakeCategoryRepo) Update(context.Context, string, *model.UpdateCategoryRequest) (*model.Category, error) {
	return nil, constant.ErrNotFound
}
func (r *fakeCategoryRepo) Delete(context.Context, string) error { return constant.ErrNotFound }
func (r *fakeCategoryRepo) List(context.Context) ([]*model.Category, error) {
	return nil, nil
}
func (r *fakeCategoryRepo) GetByID(context.Context, string) (*model.Category, error) {
	return nil, constant.ErrNotFound
}
func (r *fakeCategoryRepo) ExistsByName(context.Context, string) (bool, error) { return false, nil }
func (r *fakeCategoryRepo) ExistsBySlug(context.Context, string) (bool, error) { return false, nil }

func newTestService(repo *fakeArticleRepo, tagRepo *fakeTagRepo) Service {
	if tagRepo == nil {
		tagRepo = &fakeTagRepo{ids: map[string]uint{}}
	}
	return NewService(repo, tagRepo, &fakeCategoryRepo{}, appParser.NewService(), utility.NewMemoryCacheService())
}

func seedArticle(repo *fakeArticleRepo, title, slug, status string, tags ...*model.Tag) *model.Article {
	repo.seq++
	a := &model.Article{
		ID:     fmt.Sprintf("art-%d", repo.seq),
		Title:  title,
		Slug:   slug,
		Status: status,
		Tags:   tags,
	}
	repo.articles[a.ID] = a
	repo.order = append(repo.order, a.ID)
	return a
}

// === Tests ===

func TestListPublicExcludesDrafts(t *testing.T) {
	repo := newFakeArticleRepo()
	seedArticle(repo, "Pubblicato", "pubblicato", model.StatusPublished)
	seedArticle(repo, "Bozza", "bozza", model.StatusDraft)
	seedArticle(repo, "Altro pubblicato", "altro-pubblicato", model.StatusPublished)

	svc := newTestService(repo, nil)
	resp, err := svc.ListPublic(context.Background(), &model.ListArticlesOptions{})
	if err != nil {
		t.Fatalf("ListPublic() error = %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("Total = %d, want 2", resp.Total)
	}
	for _, item := range resp.List {
		if item.Status != model.StatusPublished {
			t.Errorf("public listing returned status %q", item.Status)
		}
	}
}

func TestListTagFilterKeepsPreFilterTotal(t *testing.T) {
	goTag := &model.Tag{ID: "t-go", Name: "Go"}
	repo := newFakeArticleRepo()
	seedArticle(repo, "Con tag", "con-tag", model.StatusPublished, goTag)
	seedArticle(repo, "Senza tag", "senza-tag", model.StatusPublished)
	seedArticle(repo, "Anche con tag", "anche-con-tag", model.StatusPublished, goTag)

	svc := newTestService(repo, nil)
	resp, err := svc.ListPublic(context.Background(), &model.ListArticlesOptions{TagID: "t-go"})
	if err != nil {
		t.Fatalf("ListPublic() error = %v", err)
	}
	if len(resp.List) != 2 {
		t.Errorf("len(List) = %d, want 2", len(resp.List))
	}
	// The total is counted before the in-memory tag filter runs.
	if resp.Total != 3 {
		t.Errorf("Total = %d, want pre-filter count 3", resp.Total)
	}
	for _, item := range resp.List {
		found := false
		for _, tag := range item.Tags {
			if tag.ID == "t-go" {
				found = true
			}
		}
		if !found {
			t.Errorf("article %s returned without requested tag", item.ID)
		}
	}
}

func TestUpdateTagSemantics(t *testing.T) {
	t.Run("nil leaves associations untouched", func(t *testing.T) {
		goTag := &model.Tag{ID: "t-go", Name: "Go"}
		repo := newFakeArticleRepo()
		a := seedArticle(repo, "Articolo", "articolo", model.StatusPublished, goTag)

		svc := newTestService(repo, nil)
		newTitle := "Nuovo titolo"
		resp, err := svc.Update(context.Background(), a.ID, &model.UpdateArticleRequest{Title: &newTitle})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if len(resp.Tags) != 1 {
			t.Errorf("len(Tags) = %d, want 1", len(resp.Tags))
		}
		if repo.replaceCalls != 0 {
			t.Errorf("ReplaceTags called %d times, want 0", repo.replaceCalls)
		}
	})

	t.Run("empty list removes every association", func(t *testing.T) {
		goTag := &model.Tag{ID: "t-go", Name: "Go"}
		repo := newFakeArticleRepo()
		a := seedArticle(repo, "Articolo", "articolo", model.StatusPublished, goTag)

		svc := newTestService(repo, nil)
		resp, err := svc.Update(context.Background(), a.ID, &model.UpdateArticleRequest{TagIDs: []string{}})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if len(resp.Tags) != 0 {
			t.Errorf("len(Tags) = %d, want 0", len(resp.Tags))
		}
	})

	t.Run("replace is idempotent", func(t *testing.T) {
		repo := newFakeArticleRepo()
		repo.tagTable[1] = &model.Tag{ID: "t-go", Name: "Go"}
		a := seedArticle(repo, "Articolo", "articolo", model.StatusPublished)
		tagRepo := &fakeTagRepo{ids: map[string]uint{"t-go": 1}}

		svc := newTestService(repo, tagRepo)
		for i := 0; i < 2; i++ {
			resp, err := svc.Update(context.Background(), a.ID, &model.UpdateArticleRequest{TagIDs: []string{"t-go"}})
			if err != nil {
				t.Fatalf("Update() #%d error = %v", i+1, err)
			}
			if len(resp.Tags) != 1 {
				t.Errorf("Update() #%d: len(Tags) = %d, want 1", i+1, len(resp.Tags))
			}
		}
	})
}

func TestViewCountIncrementsSequentially(t *testing.T) {
	repo := newFakeArticleRepo()
	a := seedArticle(repo, "Popolare", "popolare", model.StatusPublished)
	a.ViewCount = 7

	svc := newTestService(repo, nil)
	for i := 0; i < 2; i++ {
		if _, err := svc.GetPublicBySlug(context.Background(), "popolare"); err != nil {
			t.Fatalf("GetPublicBySlug() #%d error = %v", i+1, err)
		}
	}
	if a.ViewCount != 9 {
		t.Errorf("ViewCount = %d, want 9", a.ViewCount)
	}
}

func TestDraftVisibility(t *testing.T) {
	repo := newFakeArticleRepo()
	draft := seedArticle(repo, "Bozza", "bozza", model.StatusDraft)

	svc := newTestService(repo, nil)

	if _, err := svc.GetPublicBySlug(context.Background(), "bozza"); !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("GetPublicBySlug(draft) error = %v, want ErrNotFound", err)
	}
	resp, err := svc.Get(context.Background(), draft.ID)
	if err != nil {
		t.Fatalf("Get(draft) error = %v", err)
	}
	if resp.Status != model.StatusDraft {
		t.Errorf("Status = %q, want DRAFT", resp.Status)
	}
}

func TestCreateRejectsSlugCollision(t *testing.T) {
	repo := newFakeArticleRepo()
	seedArticle(repo, "Esistente", "nuovo-progetto", model.StatusPublished)

	svc := newTestService(repo, nil)
	_, err := svc.Create(context.Background(), 1, &model.CreateArticleRequest{
		Title:     "Nuovo Progetto",
		ContentMd: "# Contenuto",
	})
	if !errors.Is(err, constant.ErrSlugTaken) {
		t.Fatalf("Create() error = %v, want ErrSlugTaken", err)
	}
	if len(repo.articles) != 1 {
		t.Errorf("article count = %d, collision must be rejected before persistence", len(repo.articles))
	}
}

func TestCreateGeneratesSlugFromTitle(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newTestService(repo, nil)

	resp, err := svc.Create(context.Background(), 1, &model.CreateArticleRequest{
		Title:     "Città Nuova: Progetto É!",
		ContentMd: "Testo",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if resp.Slug != "citta-nuova-progetto-e" {
		t.Errorf("Slug = %q, want %q", resp.Slug, "citta-nuova-progetto-e")
	}
	if resp.Status != model.StatusDraft {
		t.Errorf("Status = %q, want default DRAFT", resp.Status)
	}
}

func TestCreateTagFailureIsPartial(t *testing.T) {
	repo := newFakeArticleRepo()
	repo.replaceTagsErr = errors.New("association backend down")
	tagRepo := &fakeTagRepo{ids: map[string]uint{"t-go": 1}}

	svc := newTestService(repo, tagRepo)
	resp, err := svc.Create(context.Background(), 1, &model.CreateArticleRequest{
		Title:     "Articolo con tag",
		ContentMd: "Testo",
		TagIDs:    []string{"t-go"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v, tag failure must not fail the create", err)
	}
	if !resp.TagsPending {
		t.Error("TagsPending = false, want true after tag failure")
	}
	if len(repo.articles) != 1 {
		t.Errorf("article count = %d, want 1 (article stands)", len(repo.articles))
	}
}

func TestPublishSetsTimestampOnce(t *testing.T) {
	repo := newFakeArticleRepo()
	a := seedArticle(repo, "Bozza", "bozza", model.StatusDraft)

	svc := newTestService(repo, nil)
	published := model.StatusPublished

	resp, err := svc.Update(context.Background(), a.ID, &model.UpdateArticleRequest{Status: &published})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if resp.PublishedAt == nil {
		t.Fatal("PublishedAt = nil after publishing")
	}
	first := *resp.PublishedAt

	resp, err = svc.Update(context.Background(), a.ID, &model.UpdateArticleRequest{Status: &published})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if resp.PublishedAt == nil || !resp.PublishedAt.Equal(first) {
		t.Errorf("PublishedAt changed on re-publish: %v, want %v", resp.PublishedAt, first)
	}
}

func TestContentIsRenderedAndSanitized(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newTestService(repo, nil)

	resp, err := svc.Create(context.Background(), 1, &model.CreateArticleRequest{
		Title:     "Sicurezza",
		ContentMd: "# Titolo\n\n<script>alert(1)</script>",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if resp.ContentHTML == "" {
		t.Fatal("ContentHTML is empty")
	}
	if strings.Contains(resp.ContentHTML, "<script") {
		t.Errorf("ContentHTML contains script tag: %q", resp.ContentHTML)
	}
	if !strings.Contains(resp.ContentHTML, "<h1") {
		t.Errorf("ContentHTML missing rendered heading: %q", resp.ContentHTML)
	}
}
