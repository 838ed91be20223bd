package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Item is a learnable item: static content plus the full scheduling state
// the engine reads and writes. One row per item; review history lives in
// the event tables.
type Item struct {
	ent.Schema
}

func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Stable opaque identifier (UUID), assigned at creation"),
		field.String("kind").NotEmpty().
			Comment("Content kind: vocabulary, cloze, or character"),
		field.String("prompt").NotEmpty(),
		field.String("meaning").Default(""),
		field.String("reading").Default(""),
		field.Int("level").Min(1).Default(1),
		field.JSON("prerequisites", []string{}).
			Optional().
			Comment("Item IDs that must be unlocked before this item can unlock"),

		field.String("status").Default("locked"),
		field.Int("stage").Default(0),
		field.Int("correct_count").Default(0),
		field.Int("wrong_count").Default(0),
		field.Int("streak").Default(0),
		field.Time("last_reviewed_at").Optional().Nillable(),
		field.Time("next_review_at").Optional().Nillable(),

		field.Int("mastery").Default(0),
		field.Float("ease_factor").Default(0),
		field.Int("repetition").Default(0),
		field.Int("interval_days").Default(0),
		field.Int("meaning_correct").Default(0),
		field.Int("reading_correct").Default(0),
	}
}

func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
		index.Fields("status"),
		index.Fields("level"),
		index.Fields("next_review_at"),
	}
}
