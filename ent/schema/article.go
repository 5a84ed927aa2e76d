package schema

import (
	"time"

	"github.com/officinaverde/blog-api/ent/schema/mixin"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Article holds the schema definition for the Article entity.
type Article struct {
	ent.Schema
}

// Annotations of the Article.
func (Article) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("Blog articles"),
	}
}

// Mixin of the Article.
func (Article) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.SoftDeleteMixin{},
	}
}

// Fields of the Article.
func (Article) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("title").
			Comment("Article title").
			NotEmpty().
			MaxLen(200),
		field.String("subtitle").
			Comment("Optional subtitle shown under the title").
			Optional().
			MaxLen(300),
		field.String("slug").
			Comment("URL-safe identifier derived from the title, unique across all articles").
			NotEmpty().
			MaxLen(200).
			Unique(),
		field.Text("content_md").
			Comment("Raw article markup as written in the editor").
			NotEmpty(),
		field.Text("content_html").
			Comment("Sanitized HTML rendered from content_md").
			Optional(),
		field.String("cover_url").
			Comment("Cover image URL").
			Optional(),
		field.Enum("status").
			Values("DRAFT", "PUBLISHED").
			Default("DRAFT"),
		field.Uint("author_id").
			Comment("Owner of the article, set at creation and never reassigned").
			Immutable(),
		field.Uint("category_id").
			Comment("Optional category, at most one per article").
			Optional().
			Nillable(),
		field.Int("view_count").
			Comment("Public detail-page views").
			Default(0).
			NonNegative(),
		field.Time("published_at").
			Comment("Set the first time the article transitions to PUBLISHED, never cleared afterwards").
			Optional().
			Nillable(),
	}
}

// Edges of the Article.
func (Article) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tags", Tag.Type),
		edge.From("category", Category.Type).
			Ref("articles").
			Field("category_id").
			Unique(),
		edge.From("author", User.Type).
			Ref("articles").
			Field("author_id").
			Unique().
			Immutable().
			Required(),
	}
}
