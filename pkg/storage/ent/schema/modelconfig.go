package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// ModelConfig holds the schema definition for a stored AI model
// configuration.
type ModelConfig struct {
	ent.Schema
}

// Annotations of the ModelConfig.
func (ModelConfig) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ai_configurations"},
	}
}

// Fields of the ModelConfig.
func (ModelConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			NotEmpty(),

		field.String("model_name").
			NotEmpty(),

		field.String("provider").
			NotEmpty(),

		field.String("api_base_url").
			Optional(),

		field.Int("max_tokens").
			Default(4000),

		field.Float("temperature").
			Default(0.7),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}
