package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Sequence stores the once-generated question ordering for a topic.
// A row is written the first time a topic is visited and is read-only
// afterwards; regeneration is not part of the normal flow.
type Sequence struct {
	ent.Schema
}

func (Sequence) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			NotEmpty().
			Unique().
			Comment("Topic identifier this permutation belongs to"),
		field.Text("order").
			Comment("Permutation of 1..N as a JSON array; decoded by the repository so a corrupt value reads as absent"),
	}
}

func (Sequence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
	}
}
