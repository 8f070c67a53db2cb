package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromptUsage holds the schema definition for one recorded template
// invocation.
type PromptUsage struct {
	ent.Schema
}

// Annotations of the PromptUsage.
func (PromptUsage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "prompt_usage"},
	}
}

// Fields of the PromptUsage.
func (PromptUsage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			NotEmpty(),

		field.String("template_id").
			NotEmpty(),

		field.String("ai_model").
			Optional(),

		field.Int("response_time_ms").
			Default(0),

		field.Bool("success").
			Default(true),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Indexes of the PromptUsage.
func (PromptUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("template_id"),
	}
}
