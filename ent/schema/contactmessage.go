package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// ContactMessage holds the schema definition for the ContactMessage entity.
type ContactMessage struct {
	ent.Schema
}

// Annotations of the ContactMessage.
func (ContactMessage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("Messages submitted through the public contact page"),
	}
}

// Fields of the ContactMessage.
func (ContactMessage) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("email").
			NotEmpty(),
		field.String("subject").
			Optional(),
		field.Text("message").
			NotEmpty(),
	}
}
