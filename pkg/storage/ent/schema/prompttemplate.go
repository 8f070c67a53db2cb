package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromptTemplate holds the schema definition for a named prompt template.
type PromptTemplate struct {
	ent.Schema
}

// Annotations of the PromptTemplate.
func (PromptTemplate) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "prompt_templates"},
	}
}

// Fields of the PromptTemplate.
func (PromptTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			NotEmpty(),

		field.String("name").
			Unique().
			NotEmpty(),

		field.String("description").
			Optional(),

		field.String("category").
			Default("general"),

		// template_content carries the {{variable}} placeholders
		field.Text("template_content").
			NotEmpty(),

		field.JSON("variables", []string{}).
			Optional(),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the PromptTemplate.
func (PromptTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
	}
}
