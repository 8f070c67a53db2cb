// Code generated by ent, DO NOT EDIT.

package contextrelationship

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the contextrelationship type in the database.
	Label = "context_relationship"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceMemoryID holds the string denoting the source_memory_id field in the database.
	FieldSourceMemoryID = "source_memory_id"
	// FieldTargetMemoryID holds the string denoting the target_memory_id field in the database.
	FieldTargetMemoryID = "target_memory_id"
	// FieldRelationshipType holds the string denoting the relationship_type field in the database.
	FieldRelationshipType = "relationship_type"
	// FieldStrength holds the string denoting the strength field in the database.
	FieldStrength = "strength"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the contextrelationship in the database.
	Table = "context_relationships"
)

// Columns holds all SQL columns for contextrelationship fields.
var Columns = []string{
	FieldID,
	FieldSourceMemoryID,
	FieldTargetMemoryID,
	FieldRelationshipType,
	FieldStrength,
	FieldMetadata,
	FieldCreatedAt,
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
	// SourceMemoryIDValidator is a validator for the "source_memory_id" field. It is called by the builders before save.
	SourceMemoryIDValidator func(string) error
	// TargetMemoryIDValidator is a validator for the "target_memory_id" field. It is called by the builders before save.
	TargetMemoryIDValidator func(string) error
	// RelationshipTypeValidator is a validator for the "relationship_type" field. It is called by the builders before save.
	RelationshipTypeValidator func(string) error
	// DefaultStrength holds the default value on creation for the "strength" field.
	DefaultStrength float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the ContextRelationship queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceMemoryID orders the results by the source_memory_id field.
func BySourceMemoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceMemoryID, opts...).ToFunc()
}

// ByTargetMemoryID orders the results by the target_memory_id field.
func ByTargetMemoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetMemoryID, opts...).ToFunc()
}

// ByRelationshipType orders the results by the relationship_type field.
func ByRelationshipType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationshipType, opts...).ToFunc()
}

// ByStrength orders the results by the strength field.
func ByStrength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrength, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
