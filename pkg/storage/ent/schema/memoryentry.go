package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MemoryEntry holds the schema definition for a stored memory entry.
type MemoryEntry struct {
	ent.Schema
}

// Annotations of the MemoryEntry.
func (MemoryEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "enhanced_memory_entries"},
	}
}

// Fields of the MemoryEntry.
func (MemoryEntry) Fields() []ent.Field {
	return []ent.Field{
		// id is a caller-generated UUID string
		field.String("id").
			Unique().
			Immutable().
			NotEmpty(),

		// conversation_id groups entries into a logical thread
		field.String("conversation_id").
			NotEmpty(),

		// session_id sub-groups entries within a conversation
		field.String("session_id").
			Default("default"),

		// role is who produced the entry ("user", "assistant", "system")
		field.String("role").
			Optional(),

		// content is the text payload
		field.Text("content").
			NotEmpty(),

		// context_type classifies the entry's semantic role
		field.String("context_type"),

		// importance_score drives ranking and retention, in [0,1]
		field.Float("importance_score").
			Default(0.5),

		// tags are free-form strings for categorical search
		field.JSON("tags", []string{}).
			Optional(),

		// metadata is an open key-value bag
		field.JSON("metadata", map[string]any{}).
			Optional(),

		// ttl_seconds is the entry's own time-to-live from creation
		field.Int("ttl_seconds").
			Default(3600),

		// timestamp is the creation time, set server-side
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Indexes of the MemoryEntry.
func (MemoryEntry) Indexes() []ent.Index {
	return []ent.Index{
		// Conversation scans are the hot query path
		index.Fields("conversation_id"),

		// Composite index for typed retrieval within a conversation
		index.Fields("conversation_id", "context_type"),

		index.Fields("context_type"),

		// The expiry sweep scans by creation time
		index.Fields("timestamp"),
	}
}
