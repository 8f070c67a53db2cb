package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContextRelationship holds the schema definition for a directed, weighted
// edge between two memory entries.
//
// The endpoint columns are plain strings rather than foreign-key edges.
// Entry deletion cascades to touching edges in application code; readers
// skip edges whose endpoint is gone in the window before the cascade lands.
type ContextRelationship struct {
	ent.Schema
}

// Annotations of the ContextRelationship.
func (ContextRelationship) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "context_relationships"},
	}
}

// Fields of the ContextRelationship.
func (ContextRelationship) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			NotEmpty(),

		// source_memory_id is the origin of the directed edge
		field.String("source_memory_id").
			NotEmpty(),

		// target_memory_id is the destination of the directed edge
		field.String("target_memory_id").
			NotEmpty(),

		// relationship_type is free-form ("leads_to", "references", ...)
		field.String("relationship_type").
			NotEmpty(),

		// strength weights the edge, in [0,1]
		field.Float("strength").
			Default(1.0),

		field.JSON("metadata", map[string]any{}).
			Optional(),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Indexes of the ContextRelationship.
func (ContextRelationship) Indexes() []ent.Index {
	return []ent.Index{
		// Outgoing traversal
		index.Fields("source_memory_id"),

		// Bidirectional lookup and cascade deletes
		index.Fields("target_memory_id"),
	}
}
