// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recallhq/recall/pkg/storage/ent/contextrelationship"
)

// ContextRelationshipCreate is the builder for creating a ContextRelationship entity.
type ContextRelationshipCreate struct {
	config
	mutation *ContextRelationshipMutation
	hooks    []Hook
}

// SetSourceMemoryID sets the "source_memory_id" field.
func (_c *ContextRelationshipCreate) SetSourceMemoryID(v string) *ContextRelationshipCreate {
	_c.mutation.SetSourceMemoryID(v)
	return _c
}

// SetTargetMemoryID sets the "target_memory_id" field.
func (_c *ContextRelationshipCreate) SetTargetMemoryID(v string) *ContextRelationshipCreate {
	_c.mutation.SetTargetMemoryID(v)
	return _c
}

// SetRelationshipType sets the "relationship_type" field.
func (_c *ContextRelationshipCreate) SetRelationshipType(v string) *ContextRelationshipCreate {
	_c.mutation.SetRelationshipType(v)
	return _c
}

// SetStrength sets the "strength" field.
func (_c *ContextRelationshipCreate) SetStrength(v float64) *ContextRelationshipCreate {
	_c.mutation.SetStrength(v)
	return _c
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_c *ContextRelationshipCreate) SetNillableStrength(v *float64) *ContextRelationshipCreate {
	if v != nil {
		_c.SetStrength(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ContextRelationshipCreate) SetMetadata(v map[string]interface{}) *ContextRelationshipCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContextRelationshipCreate) SetCreatedAt(v time.Time) *ContextRelationshipCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContextRelationshipCreate) SetNillableCreatedAt(v *time.Time) *ContextRelationshipCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContextRelationshipCreate) SetID(v string) *ContextRelationshipCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ContextRelationshipMutation object of the builder.
func (_c *ContextRelationshipCreate) Mutation() *ContextRelationshipMutation {
	return _c.mutation
}

// Save creates the ContextRelationship in the database.
func (_c *ContextRelationshipCreate) Save(ctx context.Context) (*ContextRelationship, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContextRelationshipCreate) SaveX(ctx context.Context) *ContextRelationship {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextRelationshipCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextRelationshipCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContextRelationshipCreate) defaults() {
	if _, ok := _c.mutation.Strength(); !ok {
		v := contextrelationship.DefaultStrength
		_c.mutation.SetStrength(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contextrelationship.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContextRelationshipCreate) check() error {
	if _, ok := _c.mutation.SourceMemoryID(); !ok {
		return &ValidationError{Name: "source_memory_id", err: errors.New(`ent: missing required field "ContextRelationship.source_memory_id"`)}
	}
	if v, ok := _c.mutation.SourceMemoryID(); ok {
		if err := contextrelationship.SourceMemoryIDValidator(v); err != nil {
			return &ValidationError{Name: "source_memory_id", err: fmt.Errorf(`ent: validator failed for field "ContextRelationship.source_memory_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetMemoryID(); !ok {
		return &ValidationError{Name: "target_memory_id", err: errors.New(`ent: missing required field "ContextRelationship.target_memory_id"`)}
	}
	if v, ok := _c.mutation.TargetMemoryID(); ok {
		if err := contextrelationship.TargetMemoryIDValidator(v); err != nil {
			return &ValidationError{Name: "target_memory_id", err: fmt.Errorf(`ent: validator failed for field "ContextRelationship.target_memory_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RelationshipType(); !ok {
		return &ValidationError{Name: "relationship_type", err: errors.New(`ent: missing required field "ContextRelationship.relationship_type"`)}
	}
	if v, ok := _c.mutation.RelationshipType(); ok {
		if err := contextrelationship.RelationshipTypeValidator(v); err != nil {
			return &ValidationError{Name: "relationship_type", err: fmt.Errorf(`ent: validator failed for field "ContextRelationship.relationship_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Strength(); !ok {
		return &ValidationError{Name: "strength", err: errors.New(`ent: missing required field "ContextRelationship.strength"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContextRelationship.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := contextrelationship.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "ContextRelationship.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ContextRelationshipCreate) sqlSave(ctx context.Context) (*ContextRelationship, error) {
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
			return nil, fmt.Errorf("unexpected ContextRelationship.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContextRelationshipCreate) createSpec() (*ContextRelationship, *sqlgraph.CreateSpec) {
	var (
		_node = &ContextRelationship{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contextrelationship.Table, sqlgraph.NewFieldSpec(contextrelationship.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SourceMemoryID(); ok {
		_spec.SetField(contextrelationship.FieldSourceMemoryID, field.TypeString, value)
		_node.SourceMemoryID = value
	}
	if value, ok := _c.mutation.TargetMemoryID(); ok {
		_spec.SetField(contextrelationship.FieldTargetMemoryID, field.TypeString, value)
		_node.TargetMemoryID = value
	}
	if value, ok := _c.mutation.RelationshipType(); ok {
		_spec.SetField(contextrelationship.FieldRelationshipType, field.TypeString, value)
		_node.RelationshipType = value
	}
	if value, ok := _c.mutation.Strength(); ok {
		_spec.SetField(contextrelationship.FieldStrength, field.TypeFloat64, value)
		_node.Strength = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(contextrelationship.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contextrelationship.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ContextRelationshipCreateBulk is the builder for creating many ContextRelationship entities in bulk.
type ContextRelationshipCreateBulk struct {
	config
	err      error
	builders []*ContextRelationshipCreate
}

// Save creates the ContextRelationship entities in the database.
func (_c *ContextRelationshipCreateBulk) Save(ctx context.Context) ([]*ContextRelationship, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContextRelationship, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContextRelationshipMutation)
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
func (_c *ContextRelationshipCreateBulk) SaveX(ctx context.Context) []*ContextRelationship {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextRelationshipCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextRelationshipCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
