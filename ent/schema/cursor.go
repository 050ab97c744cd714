package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Cursor stores a topic's practice position within its sequence.
type Cursor struct {
	ent.Schema
}

func (Cursor) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			NotEmpty().
			Unique().
			Comment("Topic identifier this cursor belongs to"),
		field.Int("position").
			Default(0).
			NonNegative().
			Comment("Current position in the topic's sequence"),
	}
}

func (Cursor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
	}
}
