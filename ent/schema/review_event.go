package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records one graded review answer for audit and stats.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").NotEmpty(),
		field.String("track").Default("").
			Comment("Sub-track (meaning/reading) for dual-track items, empty otherwise"),
		field.String("difficulty").Default(""),
		field.Int("quality").Default(0),
		field.Bool("correct"),
		field.Int("from_stage"),
		field.Int("to_stage"),
		field.Time("next_review_at").Optional().Nillable(),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
	}
}
