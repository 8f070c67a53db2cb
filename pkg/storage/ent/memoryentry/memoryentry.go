// Code generated by ent, DO NOT EDIT.

package memoryentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the memoryentry type in the database.
	Label = "memory_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldContextType holds the string denoting the context_type field in the database.
	FieldContextType = "context_type"
	// FieldImportanceScore holds the string denoting the importance_score field in the database.
	FieldImportanceScore = "importance_score"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldTTLSeconds holds the string denoting the ttl_seconds field in the database.
	FieldTTLSeconds = "ttl_seconds"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// Table holds the table name of the memoryentry in the database.
	Table = "enhanced_memory_entries"
)

// Columns holds all SQL columns for memoryentry fields.
var Columns = []string{
	FieldID,
	FieldConversationID,
	FieldSessionID,
	FieldRole,
	FieldContent,
	FieldContextType,
	FieldImportanceScore,
	FieldTags,
	FieldMetadata,
	FieldTTLSeconds,
	FieldTimestamp,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ConversationIDValidator is a validator for the "conversation_id" field. It is called by the builders before save.
	ConversationIDValidator func(string) error
	// DefaultSessionID holds the default value on creation for the "session_id" field.
	DefaultSessionID string
	// ContentValidator is a validator for the "content" field. It is called by the builders before save.
	ContentValidator func(string) error
	// DefaultImportanceScore holds the default value on creation for the "importance_score" field.
	DefaultImportanceScore float64
	// DefaultTTLSeconds holds the default value on creation for the "ttl_seconds" field.
	DefaultTTLSeconds int
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the MemoryEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByContextType orders the results by the context_type field.
func ByContextType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextType, opts...).ToFunc()
}

// ByImportanceScore orders the results by the importance_score field.
func ByImportanceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportanceScore, opts...).ToFunc()
}

// ByTTLSeconds orders the results by the ttl_seconds field.
func ByTTLSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTTLSeconds, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}
