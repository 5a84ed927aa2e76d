// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/officinaverde/blog-api/ent/article"
	"github.com/officinaverde/blog-api/ent/category"
	"github.com/officinaverde/blog-api/ent/predicate"
	"github.com/officinaverde/blog-api/ent/tag"
)

// ArticleUpdate is the builder for updating Article entities.
type ArticleUpdate struct {
	config
	hooks     []Hook
	mutation  *ArticleMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the ArticleUpdate builder.
func (au *ArticleUpdate) Where(ps ...predicate.Article) *ArticleUpdate {
	au.mutation.Where(ps...)
	return au
}

// SetDeletedAt sets the "deleted_at" field.
func (au *ArticleUpdate) SetDeletedAt(t time.Time) *ArticleUpdate {
	au.mutation.SetDeletedAt(t)
	return au
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (au *ArticleUpdate) SetNillableDeletedAt(t *time.Time) *ArticleUpdate {
	if t != nil {
		au.SetDeletedAt(*t)
	}
	return au
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (au *ArticleUpdate) ClearDeletedAt() *ArticleUpdate {
	au.mutation.ClearDeletedAt()
	return au
}

// SetUpdatedAt sets the "updated_at" field.
func (au *ArticleUpdate) SetUpdatedAt(t time.Time) *ArticleUpdate {
	au.mutation.SetUpdatedAt(t)
	return au
}

// SetTitle sets the "title" field.
func (au *ArticleUpdate) SetTitle(s string) *ArticleUpdate {
	au.mutation.SetTitle(s)
	return au
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (au *ArticleUpdate) SetNillableTitle(s *string) *ArticleUpdate {
	if s != nil {
		au.SetTitle(*s)
	}
	return au
}

// SetSubtitle sets the "subtitle" field.
func (au *ArticleUpdate) SetSubtitle(s string) *ArticleUpdate {
	au.mutation.SetSubtitle(s)
	return au
}

// SetNillableSubtitle sets the "subtitle" field if the given value is not nil.
func (au *ArticleUpdate) SetNillableSubtitle(s *string) *ArticleUpdate {
	if s != nil {
		au.SetSubtitle(*s)
	}
	return au
}

// ClearSubtitle clears the value of the "subtitle" field.
func (au *ArticleUpdate) ClearSubtitle() *ArticleUpdate {
	au.mutation.ClearSubtitle()
	return au
}

// SetSlug sets the "slug" field.
func (au *ArticleUpdate) SetSlug(s string) *ArticleUpdate {
	au.mutation.SetSlug(s)
	return au
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (au *ArticleUpdate) SetNillableSlug(s *string) *ArticleUpdate {
	if s != nil {
		au.SetSlug(*s)
	}
	return au
}

// SetContentMd sets the "content_md" field.
func (au *ArticleUpdate) SetContentMd(s string) *ArticleUpdate {
	au.mutation.SetContentMd(s)
	return au
}

// SetNillableContentMd sets the "content_md" field if the given value is not nil.
func (au *ArticleUpdate) SetNillableContentMd(s *string) *ArticleUpdate {
	if s != nil {
		au.SetContentMd(*s)
	}
	return au
}

// SetContentHTML sets the "content_html" field.
func (au *ArticleUpdate) SetContentHTML(s string) *ArticleUpdate {
	au.mutation.SetContentHTML(s)
	return au
}

// SetNillableContentHTML sets the "content_html" field if the given value is not nil.
func (au *ArticleUpdate) SetNillableContentHTML(s *string) *ArticleUpdate {
	if s != nil {
		au.SetContentHTML(*s)
	}
	return au
}

// ClearContentHTML clears the value of the "content_html" field.
func (au *ArticleUpdate) ClearContentHTML() *ArticleUpdate {
	au.mutation.ClearContentHTML()
	return au
}

// SetCoverURL sets the "cover_url" field.
func (au *ArticleUpdate) SetCoverURL(s string) *ArticleUpdate {
	au.mutation.SetCoverURL(s)
	return au
}

// SetNillableCoverURL sets the "cover_url" field if the given value is not nil.
func (au *ArticleUpdate) SetNillableCoverURL(s *string) *ArticleUpdate {
	if s != nil {
		au.SetCoverURL(*s)
	}
	return au
}

// ClearCoverURL clears the value of the "cover_url" field.
func (au *ArticleUpdate) ClearCoverURL() *ArticleUpdate {
	au.mutation.ClearCoverURL()
	return au
}

// SetStatus sets the "status" field.
func (au *ArticleUpdate) SetStatus(a article.Status) *ArticleUpdate {
	au.mutation.SetStatus(a)
	return au
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (au *ArticleUpdate) SetNillableStatus(a *article.Status) *ArticleUpdate {
	if a != nil {
		au.SetStatus(*a)
	}
	return au
}

// SetCategoryID sets the "category_id" field.
func (au *ArticleUpdate) SetCategoryID(u uint) *ArticleUpdate {
	au.mutation.SetCategoryID(u)
	return au
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (au *ArticleUpdate) SetNillableCategoryID(u *uint) *ArticleUpdate {
	if u != nil {
		au.SetCategoryID(*u)
	}
	return au
}

// ClearCategoryID clears the value of the "category_id" field.
func (au *ArticleUpdate) ClearCategoryID() *ArticleUpdate {
	au.mutation.ClearCategoryID()
	return au
}

// SetViewCount sets the "view_count" field.
func (au *ArticleUpdate) SetViewCount(i int) *ArticleUpdate {
	au.mutation.ResetViewCount()
	au.mutation.SetViewCount(i)
	return au
}

// SetNillableViewCount sets the "view_count" field if the given value is not nil.
func (au *ArticleUpdate) SetNillableViewCount(i *int) *ArticleUpdate {
	if i != nil {
		au.SetViewCount(*i)
	}
	return au
}

// AddViewCount adds i to the "view_count" field.
func (au *ArticleUpdate) AddViewCount(i int) *ArticleUpdate {
	au.mutation.AddViewCount(i)
	return au
}

// SetPublishedAt sets the "published_at" field.
func (au *ArticleUpdate) SetPublishedAt(t time.Time) *ArticleUpdate {
	au.mutation.SetPublishedAt(t)
	return au
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (au *ArticleUpdate) SetNillablePublishedAt(t *time.Time) *ArticleUpdate {
	if t != nil {
		au.SetPublishedAt(*t)
	}
	return au
}

// ClearPublishedAt clears the value of the "published_at" field.
func (au *ArticleUpdate) ClearPublishedAt() *ArticleUpdate {
	au.mutation.ClearPublishedAt()
	return au
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (au *ArticleUpdate) AddTagIDs(ids ...uint) *ArticleUpdate {
	au.mutation.AddTagIDs(ids...)
	return au
}

// AddTags adds the "tags" edges to the Tag entity.
func (au *ArticleUpdate) AddTags(t ...*Tag) *ArticleUpdate {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return au.AddTagIDs(ids...)
}

// SetCategory sets the "category" edge to the Category entity.
func (au *ArticleUpdate) SetCategory(c *Category) *ArticleUpdate {
	return au.SetCategoryID(c.ID)
}

// Mutation returns the ArticleMutation object of the builder.
func (au *ArticleUpdate) Mutation() *ArticleMutation {
	return au.mutation
}

// ClearTags clears all "tags" edges to the Tag entity.
func (au *ArticleUpdate) ClearTags() *ArticleUpdate {
	au.mutation.ClearTags()
	return au
}

// RemoveTagIDs removes the "tags" edge to Tag entities by IDs.
func (au *ArticleUpdate) RemoveTagIDs(ids ...uint) *ArticleUpdate {
	au.mutation.RemoveTagIDs(ids...)
	return au
}

// RemoveTags removes "tags" edges to Tag entities.
func (au *ArticleUpdate) RemoveTags(t ...*Tag) *ArticleUpdate {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return au.RemoveTagIDs(ids...)
}

// ClearCategory clears the "category" edge to the Category entity.
func (au *ArticleUpdate) ClearCategory() *ArticleUpdate {
	au.mutation.ClearCategory()
	return au
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (au *ArticleUpdate) Save(ctx context.Context) (int, error) {
	if err := au.defaults(); err != nil {
		return 0, err
	}
	return withHooks(ctx, au.sqlSave, au.mutation, au.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (au *ArticleUpdate) SaveX(ctx context.Context) int {
	affected, err := au.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (au *ArticleUpdate) Exec(ctx context.Context) error {
	_, err := au.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (au *ArticleUpdate) ExecX(ctx context.Context) {
	if err := au.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (au *ArticleUpdate) defaults() error {
	if _, ok := au.mutation.UpdatedAt(); !ok {
		if article.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized article.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := article.UpdateDefaultUpdatedAt()
		au.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (au *ArticleUpdate) check() error {
	if v, ok := au.mutation.Title(); ok {
		if err := article.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Article.title": %w`, err)}
		}
	}
	if v, ok := au.mutation.Subtitle(); ok {
		if err := article.SubtitleValidator(v); err != nil {
			return &ValidationError{Name: "subtitle", err: fmt.Errorf(`ent: validator failed for field "Article.subtitle": %w`, err)}
		}
	}
	if v, ok := au.mutation.Slug(); ok {
		if err := article.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Article.slug": %w`, err)}
		}
	}
	if v, ok := au.mutation.ContentMd(); ok {
		if err := article.ContentMdValidator(v); err != nil {
			return &ValidationError{Name: "content_md", err: fmt.Errorf(`ent: validator failed for field "Article.content_md": %w`, err)}
		}
	}
	if v, ok := au.mutation.Status(); ok {
		if err := article.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Article.status": %w`, err)}
		}
	}
	if v, ok := au.mutation.ViewCount(); ok {
		if err := article.ViewCountValidator(v); err != nil {
			return &ValidationError{Name: "view_count", err: fmt.Errorf(`ent: validator failed for field "Article.view_count": %w`, err)}
		}
	}
	if au.mutation.AuthorCleared() && len(au.mutation.AuthorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Article.author"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (au *ArticleUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ArticleUpdate {
	au.modifiers = append(au.modifiers, modifiers...)
	return au
}

func (au *ArticleUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := au.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(article.Table, article.Columns, sqlgraph.NewFieldSpec(article.FieldID, field.TypeUint))
	if ps := au.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := au.mutation.DeletedAt(); ok {
		_spec.SetField(article.FieldDeletedAt, field.TypeTime, value)
	}
	if au.mutation.DeletedAtCleared() {
		_spec.ClearField(article.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := au.mutation.UpdatedAt(); ok {
		_spec.SetField(article.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := au.mutation.Title(); ok {
		_spec.SetField(article.FieldTitle, field.TypeString, value)
	}
	if value, ok := au.mutation.Subtitle(); ok {
		_spec.SetField(article.FieldSubtitle, field.TypeString, value)
	}
	if au.mutation.SubtitleCleared() {
		_spec.ClearField(article.FieldSubtitle, field.TypeString)
	}
	if value, ok := au.mutation.Slug(); ok {
		_spec.SetField(article.FieldSlug, field.TypeString, value)
	}
	if value, ok := au.mutation.ContentMd(); ok {
		_spec.SetField(article.FieldContentMd, field.TypeString, value)
	}
	if value, ok := au.mutation.ContentHTML(); ok {
		_spec.SetField(article.FieldContentHTML, field.TypeString, value)
	}
	if au.mutation.ContentHTMLCleared() {
		_spec.ClearField(article.FieldContentHTML, field.TypeString)
	}
	if value, ok := au.mutation.CoverURL(); ok {
		_spec.SetField(article.FieldCoverURL, field.TypeString, value)
	}
	if au.mutation.CoverURLCleared() {
		_spec.ClearField(article.FieldCoverURL, field.TypeString)
	}
	if value, ok := au.mutation.Status(); ok {
		_spec.SetField(article.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := au.mutation.ViewCount(); ok {
		_spec.SetField(article.FieldViewCount, field.TypeInt, value)
	}
	if value, ok := au.mutation.AddedViewCount(); ok {
		_spec.AddField(article.FieldViewCount, field.TypeInt, value)
	}
	if value, ok := au.mutation.PublishedAt(); ok {
		_spec.SetField(article.FieldPublishedAt, field.TypeTime, value)
	}
	if au.mutation.PublishedAtCleared() {
		_spec.ClearField(article.FieldPublishedAt, field.TypeTime)
	}
	if au.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   article.TagsTable,
			Columns: article.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.RemovedTagsIDs(); len(nodes) > 0 && !au.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   article.TagsTable,
			Columns: article.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.TagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   article.TagsTable,
			Columns: article.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if au.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   article.CategoryTable,
			Columns: []string{article.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   article.CategoryTable,
			Columns: []string{article.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(au.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, au.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{article.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	au.mutation.done = true
	return n, nil
}

// ArticleUpdateOne is the builder for updating a single Article entity.
type ArticleUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *ArticleMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetDeletedAt sets the "deleted_at" field.
func (auo *ArticleUpdateOne) SetDeletedAt(t time.Time) *ArticleUpdateOne {
	auo.mutation.SetDeletedAt(t)
	return auo
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (auo *ArticleUpdateOne) SetNillableDeletedAt(t *time.Time) *ArticleUpdateOne {
	if t != nil {
		auo.SetDeletedAt(*t)
	}
	return auo
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (auo *ArticleUpdateOne) ClearDeletedAt() *ArticleUpdateOne {
	auo.mutation.ClearDeletedAt()
	return auo
}

// SetUpdatedAt sets the "updated_at" field.
func (auo *ArticleUpdateOne) SetUpdatedAt(t time.Time) *ArticleUpdateOne {
	auo.mutation.SetUpdatedAt(t)
	return auo
}

// SetTitle sets the "title" field.
func (auo *ArticleUpdateOne) SetTitle(s string) *ArticleUpdateOne {
	auo.mutation.SetTitle(s)
	return auo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (auo *ArticleUpdateOne) SetNillableTitle(s *string) *ArticleUpdateOne {
	if s != nil {
		auo.SetTitle(*s)
	}
	return auo
}

// SetSubtitle sets the "subtitle" field.
func (auo *ArticleUpdateOne) SetSubtitle(s string) *ArticleUpdateOne {
	auo.mutation.SetSubtitle(s)
	return auo
}

// SetNillableSubtitle sets the "subtitle" field if the given value is not nil.
func (auo *ArticleUpdateOne) SetNillableSubtitle(s *string) *ArticleUpdateOne {
	if s != nil {
		auo.SetSubtitle(*s)
	}
	return auo
}

// ClearSubtitle clears the value of the "subtitle" field.
func (auo *ArticleUpdateOne) ClearSubtitle() *ArticleUpdateOne {
	auo.mutation.ClearSubtitle()
	return auo
}

// SetSlug sets the "slug" field.
func (auo *ArticleUpdateOne) SetSlug(s string) *ArticleUpdateOne {
	auo.mutation.SetSlug(s)
	return auo
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (auo *ArticleUpdateOne) SetNillableSlug(s *string) *ArticleUpdateOne {
	if s != nil {
		auo.SetSlug(*s)
	}
	return auo
}

// SetContentMd sets the "content_md" field.
func (auo *ArticleUpdateOne) SetContentMd(s string) *ArticleUpdateOne {
	auo.mutation.SetContentMd(s)
	return auo
}

// SetNillableContentMd sets the "content_md" field if the given value is not nil.
func (auo *ArticleUpdateOne) SetNillableContentMd(s *string) *ArticleUpdateOne {
	if s != nil {
		auo.SetContentMd(*s)
	}
	return auo
}

// SetContentHTML sets the "content_html" field.
func (auo *ArticleUpdateOne) SetContentHTML(s string) *ArticleUpdateOne {
	auo.mutation.SetContentHTML(s)
	return auo
}

// SetNillableContentHTML sets the "content_html" field if the given value is not nil.
func (auo *ArticleUpdateOne) SetNillableContentHTML(s *string) *ArticleUpdateOne {
	if s != nil {
		auo.SetContentHTML(*s)
	}
	return auo
}

// ClearContentHTML clears the value of the "content_html" field.
func (auo *ArticleUpdateOne) ClearContentHTML() *ArticleUpdateOne {
	auo.mutation.ClearContentHTML()
	return auo
}

// SetCoverURL sets the "cover_url" field.
func (auo *ArticleUpdateOne) SetCoverURL(s string) *ArticleUpdateOne {
	auo.mutation.SetCoverURL(s)
	return auo
}

// SetNillableCoverURL sets the "cover_url" field if the given value is not nil.
func (auo *ArticleUpdateOne) SetNillableCoverURL(s *string) *ArticleUpdateOne {
	if s != nil {
		auo.SetCoverURL(*s)
	}
	return auo
}

// ClearCoverURL clears the value of the "cover_url" field.
func (auo *ArticleUpdateOne) ClearCoverURL() *ArticleUpdateOne {
	auo.mutation.ClearCoverURL()
	return auo
}

// SetStatus sets the "status" field.
func (auo *ArticleUpdateOne) SetStatus(a article.Status) *ArticleUpdateOne {
	auo.mutation.SetStatus(a)
	return auo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (auo *ArticleUpdateOne) SetNillableStatus(a *article.Status) *ArticleUpdateOne {
	if a != nil {
		auo.SetStatus(*a)
	}
	return auo
}

// SetCategoryID sets the "category_id" field.
func (auo *ArticleUpdateOne) SetCategoryID(u uint) *ArticleUpdateOne {
	auo.mutation.SetCategoryID(u)
	return auo
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (auo *ArticleUpdateOne) SetNillableCategoryID(u *uint) *ArticleUpdateOne {
	if u != nil {
		auo.SetCategoryID(*u)
	}
	return auo
}

// ClearCategoryID clears the value of the "category_id" field.
func (auo *ArticleUpdateOne) ClearCategoryID() *ArticleUpdateOne {
	auo.mutation.ClearCategoryID()
	return auo
}

// SetViewCount sets the "view_count" field.
func (auo *ArticleUpdateOne) SetViewCount(i int) *ArticleUpdateOne {
	auo.mutation.ResetViewCount()
	auo.mutation.SetViewCount(i)
	return auo
}

// SetNillableViewCount sets the "view_count" field if the given value is not nil.
func (auo *ArticleUpdateOne) SetNillableViewCount(i *int) *ArticleUpdateOne {
	if i != nil {
		auo.SetViewCount(*i)
	}
	return auo
}

// AddViewCount adds i to the "view_count" field.
func (auo *ArticleUpdateOne) AddViewCount(i int) *ArticleUpdateOne {
	auo.mutation.AddViewCount(i)
	return auo
}

// SetPublishedAt sets the "published_at" field.
func (auo *ArticleUpdateOne) SetPublishedAt(t time.Time) *ArticleUpdateOne {
	auo.mutation.SetPublishedAt(t)
	return auo
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (auo *ArticleUpdateOne) SetNillablePublishedAt(t *time.Time) *ArticleUpdateOne {
	if t != nil {
		auo.SetPublishedAt(*t)
	}
	return auo
}

// ClearPublishedAt clears the value of the "published_at" field.
func (auo *ArticleUpdateOne) ClearPublishedAt() *ArticleUpdateOne {
	auo.mutation.ClearPublishedAt()
	return auo
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (auo *ArticleUpdateOne) AddTagIDs(ids ...uint) *ArticleUpdateOne {
	auo.mutation.AddTagIDs(ids...)
	return auo
}

// AddTags adds the "tags" edges to the Tag entity.
func (auo *ArticleUpdateOne) AddTags(t ...*Tag) *ArticleUpdateOne {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return auo.AddTagIDs(ids...)
}

// SetCategory sets the "category" edge to the Category entity.
func (auo *ArticleUpdateOne) SetCategory(c *Category) *ArticleUpdateOne {
	return auo.SetCategoryID(c.ID)
}

// Mutation returns the ArticleMutation object of the builder.
func (auo *ArticleUpdateOne) Mutation() *ArticleMutation {
	return auo.mutation
}

// ClearTags clears all "tags" edges to the Tag entity.
func (auo *ArticleUpdateOne) ClearTags() *ArticleUpdateOne {
	auo.mutation.ClearTags()
	return auo
}

// RemoveTagIDs removes the "tags" edge to Tag entities by IDs.
func (auo *ArticleUpdateOne) RemoveTagIDs(ids ...uint) *ArticleUpdateOne {
	auo.mutation.RemoveTagIDs(ids...)
	return auo
}

// RemoveTags removes "tags" edges to Tag entities.
func (auo *ArticleUpdateOne) RemoveTags(t ...*Tag) *ArticleUpdateOne {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return auo.RemoveTagIDs(ids...)
}

// ClearCategory clears the "category" edge to the Category entity.
func (auo *ArticleUpdateOne) ClearCategory() *ArticleUpdateOne {
	auo.mutation.ClearCategory()
	return auo
}

// Where appends a list predicates to the ArticleUpdate builder.
func (auo *ArticleUpdateOne) Where(ps ...predicate.Article) *ArticleUpdateOne {
	auo.mutation.Where(ps...)
	return auo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (auo *ArticleUpdateOne) Select(field string, fields ...string) *ArticleUpdateOne {
	auo.fields = append([]string{field}, fields...)
	return auo
}

// Save executes the query and returns the updated Article entity.
func (auo *ArticleUpdateOne) Save(ctx context.Context) (*Article, error) {
	if err := auo.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, auo.sqlSave, auo.mutation, auo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (auo *ArticleUpdateOne) SaveX(ctx context.Context) *Article {
	node, err := auo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (auo *ArticleUpdateOne) Exec(ctx context.Context) error {
	_, err := auo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (auo *ArticleUpdateOne) ExecX(ctx context.Context) {
	if err := auo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (auo *ArticleUpdateOne) defaults() error {
	if _, ok := auo.mutation.UpdatedAt(); !ok {
		if article.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized article.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := article.UpdateDefaultUpdatedAt()
		auo.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (auo *ArticleUpdateOne) check() error {
	if v, ok := auo.mutation.Title(); ok {
		if err := article.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Article.title": %w`, err)}
		}
	}
	if v, ok := auo.mutation.Subtitle(); ok {
		if err := article.SubtitleValidator(v); err != nil {
			return &ValidationError{Name: "subtitle", err: fmt.Errorf(`ent: validator failed for field "Article.subtitle": %w`, err)}
		}
	}
	if v, ok := auo.mutation.Slug(); ok {
		if err := article.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Article.slug": %w`, err)}
		}
	}
	if v, ok := auo.mutation.ContentMd(); ok {
		if err := article.ContentMdValidator(v); err != nil {
			return &ValidationError{Name: "content_md", err: fmt.Errorf(`ent: validator failed for field "Article.content_md": %w`, err)}
		}
	}
	if v, ok := auo.mutation.Status(); ok {
		if err := article.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Article.status": %w`, err)}
		}
	}
	if v, ok := auo.mutation.ViewCount(); ok {
		if err := article.ViewCountValidator(v); err != nil {
			return &ValidationError{Name: "view_count", err: fmt.Errorf(`ent: validator failed for field "Article.view_count": %w`, err)}
		}
	}
	if auo.mutation.AuthorCleared() && len(auo.mutation.AuthorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Article.author"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (auo *ArticleUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ArticleUpdateOne {
	auo.modifiers = append(auo.modifiers, modifiers...)
	return auo
}

func (auo *ArticleUpdateOne) sqlSave(ctx context.Context) (_node *Article, err error) {
	if err := auo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(article.Table, article.Columns, sqlgraph.NewFieldSpec(article.FieldID, field.TypeUint))
	id, ok := auo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Article.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := auo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, article.FieldID)
		for _, f := range fields {
			if !article.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != article.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := auo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := auo.mutation.DeletedAt(); ok {
		_spec.SetField(article.FieldDeletedAt, field.TypeTime, value)
	}
	if auo.mutation.DeletedAtCleared() {
		_spec.ClearField(article.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := auo.mutation.UpdatedAt(); ok {
		_spec.SetField(article.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := auo.mutation.Title(); ok {
		_spec.SetField(article.FieldTitle, field.TypeString, value)
	}
	if value, ok := auo.mutation.Subtitle(); ok {
		_spec.SetField(article.FieldSubtitle, field.TypeString, value)
	}
	if auo.mutation.SubtitleCleared() {
		_spec.ClearField(article.FieldSubtitle, field.TypeString)
	}
	if value, ok := auo.mutation.Slug(); ok {
		_spec.SetField(article.FieldSlug, field.TypeString, value)
	}
	if value, ok := auo.mutation.ContentMd(); ok {
		_spec.SetField(article.FieldContentMd, field.TypeString, value)
	}
	if value, ok := auo.mutation.ContentHTML(); ok {
		_spec.SetField(article.FieldContentHTML, field.TypeString, value)
	}
	if auo.mutation.ContentHTMLCleared() {
		_spec.ClearField(article.FieldContentHTML, field.TypeString)
	}
	if value, ok := auo.mutation.CoverURL(); ok {
		_spec.SetField(article.FieldCoverURL, field.TypeString, value)
	}
	if auo.mutation.CoverURLCleared() {
		_spec.ClearField(article.FieldCoverURL, field.TypeString)
	}
	if value, ok := auo.mutation.Status(); ok {
		_spec.SetField(article.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := auo.mutation.ViewCount(); ok {
		_spec.SetField(article.FieldViewCount, field.TypeInt, value)
	}
	if value, ok := auo.mutation.AddedViewCount(); ok {
		_spec.AddField(article.FieldViewCount, field.TypeInt, value)
	}
	if value, ok := auo.mutation.PublishedAt(); ok {
		_spec.SetField(article.FieldPublishedAt, field.TypeTime, value)
	}
	if auo.mutation.PublishedAtCleared() {
		_spec.ClearField(article.FieldPublishedAt, field.TypeTime)
	}
	if auo.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   article.TagsTable,
			Columns: article.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.RemovedTagsIDs(); len(nodes) > 0 && !auo.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   article.TagsTable,
			Columns: article.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.TagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   article.TagsTable,
			Columns: article.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if auo.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   article.CategoryTable,
			Columns: []string{article.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   article.CategoryTable,
			Columns: []string{article.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(auo.modifiers...)
	_node = &Article{config: auo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, auo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{article.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	auo.mutation.done = true
	return _node, nil
}
