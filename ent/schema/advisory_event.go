package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdvisoryEvent records one request to the advisory provider, for
// inspection via `feprep advisor --history`.
type AdvisoryEvent struct {
	ent.Schema
}

func (AdvisoryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty().
			Comment("Provider/model identifier that served the request"),
		field.String("purpose").
			NotEmpty().
			Comment("tip or analysis"),
		field.String("question_id").
			Optional().
			Comment("Question the request was issued for, if any"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.String("error_message").
			Optional(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (AdvisoryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("purpose"),
		index.Fields("timestamp"),
	}
}
