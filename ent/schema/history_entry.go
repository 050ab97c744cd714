package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HistoryEntry records one graded answer. The table is an append-only
// log; insertion order (the row id) drives eviction, not the timestamp.
type HistoryEntry struct {
	ent.Schema
}

func (HistoryEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Comment("Stable question identifier"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the question belongs to"),
		field.Bool("correct").
			Comment("Whether the selected option was correct"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("When the answer was graded"),
	}
}

func (HistoryEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("timestamp"),
	}
}
