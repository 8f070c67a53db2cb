// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recallhq/recall/pkg/storage/ent/memoryentry"
)

// MemoryEntryCreate is the builder for creating a MemoryEntry entity.
type MemoryEntryCreate struct {
	config
	mutation *MemoryEntryMutation
	hooks    []Hook
}

// SetConversationID sets the "conversation_id" field.
func (_c *MemoryEntryCreate) SetConversationID(v string) *MemoryEntryCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *MemoryEntryCreate) SetSessionID(v string) *MemoryEntryCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *MemoryEntryCreate) SetNillableSessionID(v *string) *MemoryEntryCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *MemoryEntryCreate) SetRole(v string) *MemoryEntryCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *MemoryEntryCreate) SetNillableRole(v *string) *MemoryEntryCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *MemoryEntryCreate) SetContent(v string) *MemoryEntryCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetContextType sets the "context_type" field.
func (_c *MemoryEntryCreate) SetContextType(v string) *MemoryEntryCreate {
	_c.mutation.SetContextType(v)
	return _c
}

// SetImportanceScore sets the "importance_score" field.
func (_c *MemoryEntryCreate) SetImportanceScore(v float64) *MemoryEntryCreate {
	_c.mutation.SetImportanceScore(v)
	return _c
}

// SetNillableImportanceScore sets the "importance_score" field if the given value is not nil.
func (_c *MemoryEntryCreate) SetNillableImportanceScore(v *float64) *MemoryEntryCreate {
	if v != nil {
		_c.SetImportanceScore(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *MemoryEntryCreate) SetTags(v []string) *MemoryEntryCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *MemoryEntryCreate) SetMetadata(v map[string]interface{}) *MemoryEntryCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetTTLSeconds sets the "ttl_seconds" field.
func (_c *MemoryEntryCreate) SetTTLSeconds(v int) *MemoryEntryCreate {
	_c.mutation.SetTTLSeconds(v)
	return _c
}

// SetNillableTTLSeconds sets the "ttl_seconds" field if the given value is not nil.
func (_c *MemoryEntryCreate) SetNillableTTLSeconds(v *int) *MemoryEntryCreate {
	if v != nil {
		_c.SetTTLSeconds(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MemoryEntryCreate) SetTimestamp(v time.Time) *MemoryEntryCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MemoryEntryCreate) SetNillableTimestamp(v *time.Time) *MemoryEntryCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MemoryEntryCreate) SetID(v string) *MemoryEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MemoryEntryMutation object of the builder.
func (_c *MemoryEntryCreate) Mutation() *MemoryEntryMutation {
	return _c.mutation
}

// Save creates the MemoryEntry in the database.
func (_c *MemoryEntryCreate) Save(ctx context.Context) (*MemoryEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemoryEntryCreate) SaveX(ctx context.Context) *MemoryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemoryEntryCreate) defaults() {
	if _, ok := _c.mutation.SessionID(); !ok {
		v := memoryentry.DefaultSessionID
		_c.mutation.SetSessionID(v)
	}
	if _, ok := _c.mutation.ImportanceScore(); !ok {
		v := memoryentry.DefaultImportanceScore
		_c.mutation.SetImportanceScore(v)
	}
	if _, ok := _c.mutation.TTLSeconds(); !ok {
		v := memoryentry.DefaultTTLSeconds
		_c.mutation.SetTTLSeconds(v)
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := memoryentry.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemoryEntryCreate) check() error {
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "MemoryEntry.conversation_id"`)}
	}
	if v, ok := _c.mutation.ConversationID(); ok {
		if err := memoryentry.ConversationIDValidator(v); err != nil {
			return &ValidationError{Name: "conversation_id", err: fmt.Errorf(`ent: validator failed for field "MemoryEntry.conversation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "MemoryEntry.session_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "MemoryEntry.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := memoryentry.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "MemoryEntry.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContextType(); !ok {
		return &ValidationError{Name: "context_type", err: errors.New(`ent: missing required field "MemoryEntry.context_type"`)}
	}
	if _, ok := _c.mutation.ImportanceScore(); !ok {
		return &ValidationError{Name: "importance_score", err: errors.New(`ent: missing required field "MemoryEntry.importance_score"`)}
	}
	if _, ok := _c.mutation.TTLSeconds(); !ok {
		return &ValidationError{Name: "ttl_seconds", err: errors.New(`ent: missing required field "MemoryEntry.ttl_seconds"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MemoryEntry.timestamp"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := memoryentry.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "MemoryEntry.id": %w`, err)}
		}
	}
	return nil
}

func (_c *MemoryEntryCreate) sqlSave(ctx context.Context) (*MemoryEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected MemoryEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MemoryEntryCreate) createSpec() (*MemoryEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &MemoryEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(memoryentry.Table, sqlgraph.NewFieldSpec(memoryentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(memoryentry.FieldConversationID, field.TypeString, value)
		_node.ConversationID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(memoryentry.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(memoryentry.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(memoryentry.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.ContextType(); ok {
		_spec.SetField(memoryentry.FieldContextType, field.TypeString, value)
		_node.ContextType = value
	}
	if value, ok := _c.mutation.ImportanceScore(); ok {
		_spec.SetField(memoryentry.FieldImportanceScore, field.TypeFloat64, value)
		_node.ImportanceScore = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(memoryentry.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(memoryentry.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.TTLSeconds(); ok {
		_spec.SetField(memoryentry.FieldTTLSeconds, field.TypeInt, value)
		_node.TTLSeconds = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(memoryentry.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// MemoryEntryCreateBulk is the builder for creating many MemoryEntry entities in bulk.
type MemoryEntryCreateBulk struct {
	config
	err      error
	builders []*MemoryEntryCreate
}

// Save creates the MemoryEntry entities in the database.
func (_c *MemoryEntryCreateBulk) Save(ctx context.Context) ([]*MemoryEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MemoryEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemoryEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MemoryEntryCreateBulk) SaveX(ctx context.Context) []*MemoryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
