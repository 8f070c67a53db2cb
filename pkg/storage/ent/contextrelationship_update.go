// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recallhq/recall/pkg/storage/ent/contextrelationship"
	"github.com/recallhq/recall/pkg/storage/ent/predicate"
)

// ContextRelationshipUpdate is the builder for updating ContextRelationship entities.
type ContextRelationshipUpdate struct {
	config
	hooks    []Hook
	mutation *ContextRelationshipMutation
}

// Where appends a list predicates to the ContextRelationshipUpdate builder.
func (_u *ContextRelationshipUpdate) Where(ps ...predicate.ContextRelationship) *ContextRelationshipUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceMemoryID sets the "source_memory_id" field.
func (_u *ContextRelationshipUpdate) SetSourceMemoryID(v string) *ContextRelationshipUpdate {
	_u.mutation.SetSourceMemoryID(v)
	return _u
}

// SetNillableSourceMemoryID sets the "source_memory_id" field if the given value is not nil.
func (_u *ContextRelationshipUpdate) SetNillableSourceMemoryID(v *string) *ContextRelationshipUpdate {
	if v != nil {
		_u.SetSourceMemoryID(*v)
	}
	return _u
}

// SetTargetMemoryID sets the "target_memory_id" field.
func (_u *ContextRelationshipUpdate) SetTargetMemoryID(v string) *ContextRelationshipUpdate {
	_u.mutation.SetTargetMemoryID(v)
	return _u
}

// SetNillableTargetMemoryID sets the "target_memory_id" field if the given value is not nil.
func (_u *ContextRelationshipUpdate) SetNillableTargetMemoryID(v *string) *ContextRelationshipUpdate {
	if v != nil {
		_u.SetTargetMemoryID(*v)
	}
	return _u
}

// SetRelationshipType sets the "relationship_type" field.
func (_u *ContextRelationshipUpdate) SetRelationshipType(v string) *ContextRelationshipUpdate {
	_u.mutation.SetRelationshipType(v)
	return _u
}

// SetNillableRelationshipType sets the "relationship_type" field if the given value is not nil.
func (_u *ContextRelationshipUpdate) SetNillableRelationshipType(v *string) *ContextRelationshipUpdate {
	if v != nil {
		_u.SetRelationshipType(*v)
	}
	return _u
}

// SetStrength sets the "strength" field.
func (_u *ContextRelationshipUpdate) SetStrength(v float64) *ContextRelationshipUpdate {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *ContextRelationshipUpdate) SetNillableStrength(v *float64) *ContextRelationshipUpdate {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *ContextRelationshipUpdate) AddStrength(v float64) *ContextRelationshipUpdate {
	_u.mutation.AddStrength(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ContextRelationshipUpdate) SetMetadata(v map[string]interface{}) *ContextRelationshipUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ContextRelationshipUpdate) ClearMetadata() *ContextRelationshipUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ContextRelationshipMutation object of the builder.
func (_u *ContextRelationshipUpdate) Mutation() *ContextRelationshipMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContextRelationshipUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextRelationshipUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContextRelationshipUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextRelationshipUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContextRelationshipUpdate) check() error {
	if v, ok := _u.mutation.SourceMemoryID(); ok {
		if err := contextrelationship.SourceMemoryIDValidator(v); err != nil {
			return &ValidationError{Name: "source_memory_id", err: fmt.Errorf(`ent: validator failed for field "ContextRelationship.source_memory_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetMemoryID(); ok {
		if err := contextrelationship.TargetMemoryIDValidator(v); err != nil {
			return &ValidationError{Name: "target_memory_id", err: fmt.Errorf(`ent: validator failed for field "ContextRelationship.target_memory_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RelationshipType(); ok {
		if err := contextrelationship.RelationshipTypeValidator(v); err != nil {
			return &ValidationError{Name: "relationship_type", err: fmt.Errorf(`ent: validator failed for field "ContextRelationship.relationship_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ContextRelationshipUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contextrelationship.Table, contextrelationship.Columns, sqlgraph.NewFieldSpec(contextrelationship.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceMemoryID(); ok {
		_spec.SetField(contextrelationship.FieldSourceMemoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetMemoryID(); ok {
		_spec.SetField(contextrelationship.FieldTargetMemoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RelationshipType(); ok {
		_spec.SetField(contextrelationship.FieldRelationshipType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(contextrelationship.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(contextrelationship.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(contextrelationship.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(contextrelationship.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextrelationship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContextRelationshipUpdateOne is the builder for updating a single ContextRelationship entity.
type ContextRelationshipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContextRelationshipMutation
}

// SetSourceMemoryID sets the "source_memory_id" field.
func (_u *ContextRelationshipUpdateOne) SetSourceMemoryID(v string) *ContextRelationshipUpdateOne {
	_u.mutation.SetSourceMemoryID(v)
	return _u
}

// SetNillableSourceMemoryID sets the "source_memory_id" field if the given value is not nil.
func (_u *ContextRelationshipUpdateOne) SetNillableSourceMemoryID(v *string) *ContextRelationshipUpdateOne {
	if v != nil {
		_u.SetSourceMemoryID(*v)
	}
	return _u
}

// SetTargetMemoryID sets the "target_memory_id" field.
func (_u *ContextRelationshipUpdateOne) SetTargetMemoryID(v string) *ContextRelationshipUpdateOne {
	_u.mutation.SetTargetMemoryID(v)
	return _u
}

// SetNillableTargetMemoryID sets the "target_memory_id" field if the given value is not nil.
func (_u *ContextRelationshipUpdateOne) SetNillableTargetMemoryID(v *string) *ContextRelationshipUpdateOne {
	if v != nil {
		_u.SetTargetMemoryID(*v)
	}
	return _u
}

// SetRelationshipType sets the "relationship_type" field.
func (_u *ContextRelationshipUpdateOne) SetRelationshipType(v string) *ContextRelationshipUpdateOne {
	_u.mutation.SetRelationshipType(v)
	return _u
}

// SetNillableRelationshipType sets the "relationship_type" field if the given value is not nil.
func (_u *ContextRelationshipUpdateOne) SetNillableRelationshipType(v *string) *ContextRelationshipUpdateOne {
	if v != nil {
		_u.SetRelationshipType(*v)
	}
	return _u
}

// SetStrength sets the "strength" field.
func (_u *ContextRelationshipUpdateOne) SetStrength(v float64) *ContextRelationshipUpdateOne {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *ContextRelationshipUpdateOne) SetNillableStrength(v *float64) *ContextRelationshipUpdateOne {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *ContextRelationshipUpdateOne) AddStrength(v float64) *ContextRelationshipUpdateOne {
	_u.mutation.AddStrength(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ContextRelationshipUpdateOne) SetMetadata(v map[string]interface{}) *ContextRelationshipUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ContextRelationshipUpdateOne) ClearMetadata() *ContextRelationshipUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ContextRelationshipMutation object of the builder.
func (_u *ContextRelationshipUpdateOne) Mutation() *ContextRelationshipMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContextRelationshipUpdate builder.
func (_u *ContextRelationshipUpdateOne) Where(ps ...predicate.ContextRelationship) *ContextRelationshipUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContextRelationshipUpdateOne) Select(field string, fields ...string) *ContextRelationshipUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContextRelationship entity.
func (_u *ContextRelationshipUpdateOne) Save(ctx context.Context) (*ContextRelationship, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextRelationshipUpdateOne) SaveX(ctx context.Context) *ContextRelationship {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContextRelationshipUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextRelationshipUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContextRelationshipUpdateOne) check() error {
	if v, ok := _u.mutation.SourceMemoryID(); ok {
		if err := contextrelationship.SourceMemoryIDValidator(v); err != nil {
			return &ValidationError{Name: "source_memory_id", err: fmt.Errorf(`ent: validator failed for field "ContextRelationship.source_memory_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetMemoryID(); ok {
		if err := contextrelationship.TargetMemoryIDValidator(v); err != nil {
			return &ValidationError{Name: "target_memory_id", err: fmt.Errorf(`ent: validator failed for field "ContextRelationship.target_memory_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RelationshipType(); ok {
		if err := contextrelationship.RelationshipTypeValidator(v); err != nil {
			return &ValidationError{Name: "relationship_type", err: fmt.Errorf(`ent: validator failed for field "ContextRelationship.relationship_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ContextRelationshipUpdateOne) sqlSave(ctx context.Context) (_node *ContextRelationship, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contextrelationship.Table, contextrelationship.Columns, sqlgraph.NewFieldSpec(contextrelationship.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContextRelationship.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contextrelationship.FieldID)
		for _, f := range fields {
			if !contextrelationship.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contextrelationship.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceMemoryID(); ok {
		_spec.SetField(contextrelationship.FieldSourceMemoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetMemoryID(); ok {
		_spec.SetField(contextrelationship.FieldTargetMemoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RelationshipType(); ok {
		_spec.SetField(contextrelationship.FieldRelationshipType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(contextrelationship.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(contextrelationship.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(contextrelationship.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(contextrelationship.FieldMetadata, field.TypeJSON)
	}
	_node = &ContextRelationship{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextrelationship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
