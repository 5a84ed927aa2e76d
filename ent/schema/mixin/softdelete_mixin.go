package mixin

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

type SoftDeleteMutator interface {
	SetOp(ent.Op)
	SetDeletedAt(time.Time)
}

// SoftDeleteMixin converts delete operations into updates of deleted_at.
type SoftDeleteMixin struct {
	mixin.Schema
}

// Fields defines the deleted_at field.
func (SoftDeleteMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Hooks intercepts DELETE operations and rewrites them as updates.
func (SoftDeleteMixin) Hooks() []ent.Hook {
	return []ent.Hook{
		func(next ent.Mutator) ent.Mutator {
			return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
				if !m.Op().Is(ent.OpDelete | ent.OpDeleteOne) {
					return next.Mutate(ctx, m)
				}
				mx, ok := m.(SoftDeleteMutator)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				mx.SetOp(ent.OpUpdate)
				mx.SetDeletedAt(time.Now())
				return next.Mutate(ctx, m)
			})
		},
	}
}
