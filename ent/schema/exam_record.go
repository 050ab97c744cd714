package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamRecord is the terminal fact of one finished exam, retained on the
// leaderboard. Rows are never updated; the row id is the insertion order.
type ExamRecord struct {
	ent.Schema
}

func (ExamRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("record_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned when the exam finished"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the exam covered"),
		field.Int("score").
			NonNegative().
			Comment("Correct answers achieved"),
		field.Int("total").
			Positive().
			Comment("Maximum possible score"),
		field.Bool("passed").
			Comment("score >= pass mark"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("When the exam finished"),
	}
}

func (ExamRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("passed"),
	}
}
