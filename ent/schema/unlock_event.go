package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UnlockEvent records an item leaving the locked state.
type UnlockEvent struct {
	ent.Schema
}

func (UnlockEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (UnlockEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").NotEmpty(),
		field.String("trigger").NotEmpty().
			Comment("What caused the unlock: session or manual"),
	}
}

func (UnlockEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
	}
}
