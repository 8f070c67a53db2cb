// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContextRelationshipsColumns holds the columns for the "context_relationships" table.
	ContextRelationshipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "source_memory_id", Type: field.TypeString},
		{Name: "target_memory_id", Type: field.TypeString},
		{Name: "relationship_type", Type: field.TypeString},
		{Name: "strength", Type: field.TypeFloat64, Default: 1},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
	}
	// ContextRelationshipsTable holds the schema information for the "context_relationships" table.
	ContextRelationshipsTable = &schema.Table{
		Name:       "context_relationships",
		Columns:    ContextRelationshipsColumns,
		PrimaryKey: []*schema.Column{ContextRelationshipsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contextrelationship_source_memory_id",
				Unique:  false,
				Columns: []*schema.Column{ContextRelationshipsColumns[1]},
			},
			{
				Name:    "contextrelationship_target_memory_id",
				Unique:  false,
				Columns: []*schema.Column{ContextRelationshipsColumns[2]},
			},
		},
	}
	// EnhancedMemoryEntriesColumns holds the columns for the "enhanced_memory_entries" table.
	EnhancedMemoryEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Default: "default"},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "context_type", Type: field.TypeString},
		{Name: "importance_score", Type: field.TypeFloat64, Default: 0.5},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "ttl_seconds", Type: field.TypeInt, Default: 3600},
		{Name: "timestamp", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
	}
	// EnhancedMemoryEntriesTable holds the schema information for the "enhanced_memory_entries" table.
	EnhancedMemoryEntriesTable = &schema.Table{
		Name:       "enhanced_memory_entries",
		Columns:    EnhancedMemoryEntriesColumns,
		PrimaryKey: []*schema.Column{EnhancedMemoryEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "memoryentry_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{EnhancedMemoryEntriesColumns[1]},
			},
			{
				Name:    "memoryentry_conversation_id_context_type",
				Unique:  false,
				Columns: []*schema.Column{EnhancedMemoryEntriesColumns[1], EnhancedMemoryEntriesColumns[5]},
			},
			{
				Name:    "memoryentry_context_type",
				Unique:  false,
				Columns: []*schema.Column{EnhancedMemoryEntriesColumns[5]},
			},
			{
				Name:    "memoryentry_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EnhancedMemoryEntriesColumns[10]},
			},
		},
	}
	// AiConfigurationsColumns holds the columns for the "ai_configurations" table.
	AiConfigurationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "model_name", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "api_base_url", Type: field.TypeString, Nullable: true},
		{Name: "max_tokens", Type: field.TypeInt, Default: 4000},
		{Name: "temperature", Type: field.TypeFloat64, Default: 0.7},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
	}
	// AiConfigurationsTable holds the schema information for the "ai_configurations" table.
	AiConfigurationsTable = &schema.Table{
		Name:       "ai_configurations",
		Columns:    AiConfigurationsColumns,
		PrimaryKey: []*schema.Column{AiConfigurationsColumns[0]},
	}
	// PromptTemplatesColumns holds the columns for the "prompt_templates" table.
	PromptTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString, Default: "general"},
		{Name: "template_content", Type: field.TypeString, Size: 2147483647},
		{Name: "variables", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PromptTemplatesTable holds the schema information for the "prompt_templates" table.
	PromptTemplatesTable = &schema.Table{
		Name:       "prompt_templates",
		Columns:    PromptTemplatesColumns,
		PrimaryKey: []*schema.Column{PromptTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prompttemplate_category",
				Unique:  false,
				Columns: []*schema.Column{PromptTemplatesColumns[3]},
			},
		},
	}
	// PromptUsageColumns holds the columns for the "prompt_usage" table.
	PromptUsageColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "template_id", Type: field.TypeString},
		{Name: "ai_model", Type: field.TypeString, Nullable: true},
		{Name: "response_time_ms", Type: field.TypeInt, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
	}
	// PromptUsageTable holds the schema information for the "prompt_usage" table.
	PromptUsageTable = &schema.Table{
		Name:       "prompt_usage",
		Columns:    PromptUsageColumns,
		PrimaryKey: []*schema.Column{PromptUsageColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "promptusage_template_id",
				Unique:  false,
				Columns: []*schema.Column{PromptUsageColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContextRelationshipsTable,
		EnhancedMemoryEntriesTable,
		AiConfigurationsTable,
		PromptTemplatesTable,
		PromptUsageTable,
	}
)

func init() {
	ContextRelationshipsTable.Annotation = &entsql.Annotation{
		Table: "context_relationships",
	}
	EnhancedMemoryEntriesTable.Annotation = &entsql.Annotation{
		Table: "enhanced_memory_entries",
	}
	AiConfigurationsTable.Annotation = &entsql.Annotation{
		Table: "ai_configurations",
	}
	PromptTemplatesTable.Annotation = &entsql.Annotation{
		Table: "prompt_templates",
	}
	PromptUsageTable.Annotation = &entsql.Annotation{
		Table: "prompt_usage",
	}
}
