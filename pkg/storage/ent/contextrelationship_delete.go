// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recallhq/recall/pkg/storage/ent/contextrelationship"
	"github.com/recallhq/recall/pkg/storage/ent/predicate"
)

// ContextRelationshipDelete is the builder for deleting a ContextRelationship entity.
type ContextRelationshipDelete struct {
	config
	hooks    []Hook
	mutation *ContextRelationshipMutation
}

// Where appends a list predicates to the ContextRelationshipDelete builder.
func (_d *ContextRelationshipDelete) Where(ps ...predicate.ContextRelationship) *ContextRelationshipDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ContextRelationshipDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ContextRelationshipDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ContextRelationshipDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(contextrelationship.Table, sqlgraph.NewFieldSpec(contextrelationship.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ContextRelationshipDeleteOne is the builder for deleting a single ContextRelationship entity.
type ContextRelationshipDeleteOne struct {
	_d *ContextRelationshipDelete
}

// Where appends a list predicates to the ContextRelationshipDelete builder.
func (_d *ContextRelationshipDeleteOne) Where(ps ...predicate.ContextRelationship) *ContextRelationshipDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ContextRelationshipDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{contextrelationship.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ContextRelationshipDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
