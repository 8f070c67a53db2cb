// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recallhq/recall/pkg/storage/ent/contextrelationship"
)

// ContextRelationship is the model entity for the ContextRelationship schema.
type ContextRelationship struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SourceMemoryID holds the value of the "source_memory_id" field.
	SourceMemoryID string `json:"source_memory_id,omitempty"`
	// TargetMemoryID holds the value of the "target_memory_id" field.
	TargetMemoryID string `json:"target_memory_id,omitempty"`
	// RelationshipType holds the value of the "relationship_type" field.
	RelationshipType string `json:"relationship_type,omitempty"`
	// Strength holds the value of the "strength" field.
	Strength float64 `json:"strength,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContextRelationship) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contextrelationship.FieldMetadata:
			values[i] = new([]byte)
		case contextrelationship.FieldStrength:
			values[i] = new(sql.NullFloat64)
		case contextrelationship.FieldID, contextrelationship.FieldSourceMemoryID, contextrelationship.FieldTargetMemoryID, contextrelationship.FieldRelationshipType:
			values[i] = new(sql.NullString)
		case contextrelationship.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContextRelationship fields.
func (_m *ContextRelationship) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contextrelationship.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case contextrelationship.FieldSourceMemoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_memory_id", values[i])
			} else if value.Valid {
				_m.SourceMemoryID = value.String
			}
		case contextrelationship.FieldTargetMemoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_memory_id", values[i])
			} else if value.Valid {
				_m.TargetMemoryID = value.String
			}
		case contextrelationship.FieldRelationshipType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relationship_type", values[i])
			} else if value.Valid {
				_m.RelationshipType = value.String
			}
		case contextrelationship.FieldStrength:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field strength", values[i])
			} else if value.Valid {
				_m.Strength = value.Float64
			}
		case contextrelationship.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case contextrelationship.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContextRelationship.
// This includes values selected through modifiers, order, etc.
func (_m *ContextRelationship) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ContextRelationship.
// Note that you need to call ContextRelationship.Unwrap() before calling this method if this ContextRelationship
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContextRelationship) Update() *ContextRelationshipUpdateOne {
	return NewContextRelationshipClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContextRelationship entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContextRelationship) Unwrap() *ContextRelationship {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContextRelationship is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContextRelationship) String() string {
	var builder strings.Builder
	builder.WriteString("ContextRelationship(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_memory_id=")
	builder.WriteString(_m.SourceMemoryID)
	builder.WriteString(", ")
	builder.WriteString("target_memory_id=")
	builder.WriteString(_m.TargetMemoryID)
	builder.WriteString(", ")
	builder.WriteString("relationship_type=")
	builder.WriteString(_m.RelationshipType)
	builder.WriteString(", ")
	builder.WriteString("strength=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strength))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContextRelationships is a parsable slice of ContextRelationship.
type ContextRelationships []*ContextRelationship
