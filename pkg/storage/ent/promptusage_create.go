// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recallhq/recall/pkg/storage/ent/promptusage"
)

// PromptUsageCreate is the builder for creating a PromptUsage entity.
type PromptUsageCreate struct {
	config
	mutation *PromptUsageMutation
	hooks    []Hook
}

// SetTemplateID sets the "template_id" field.
func (_c *PromptUsageCreate) SetTemplateID(v string) *PromptUsageCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetAiModel sets the "ai_model" field.
func (_c *PromptUsageCreate) SetAiModel(v string) *PromptUsageCreate {
	_c.mutation.SetAiModel(v)
	return _c
}

// SetNillableAiModel sets the "ai_model" field if the given value is not nil.
func (_c *PromptUsageCreate) SetNillableAiModel(v *string) *PromptUsageCreate {
	if v != nil {
		_c.SetAiModel(*v)
	}
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *PromptUsageCreate) SetResponseTimeMs(v int) *PromptUsageCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_c *PromptUsageCreate) SetNillableResponseTimeMs(v *int) *PromptUsageCreate {
	if v != nil {
		_c.SetResponseTimeMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *PromptUsageCreate) SetSuccess(v bool) *PromptUsageCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *PromptUsageCreate) SetNillableSuccess(v *bool) *PromptUsageCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptUsageCreate) SetCreatedAt(v time.Time) *PromptUsageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromptUsageCreate) SetNillableCreatedAt(v *time.Time) *PromptUsageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromptUsageCreate) SetID(v string) *PromptUsageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PromptUsageMutation object of the builder.
func (_c *PromptUsageCreate) Mutation() *PromptUsageMutation {
	return _c.mutation
}

// Save creates the PromptUsage in the database.
func (_c *PromptUsageCreate) Save(ctx context.Context) (*PromptUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptUsageCreate) SaveX(ctx context.Context) *PromptUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptUsageCreate) defaults() {
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		v := promptusage.DefaultResponseTimeMs
		_c.mutation.SetResponseTimeMs(v)
	}
	if _, ok := _c.mutation.Success(); !ok {
		v := promptusage.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := promptusage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptUsageCreate) check() error {
	if _, ok := _c.mutation.TemplateID(); !ok {
		return &ValidationError{Name: "template_id", err: errors.New(`ent: missing required field "PromptUsage.template_id"`)}
	}
	if v, ok := _c.mutation.TemplateID(); ok {
		if err := promptusage.TemplateIDValidator(v); err != nil {
			return &ValidationError{Name: "template_id", err: fmt.Errorf(`ent: validator failed for field "PromptUsage.template_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "PromptUsage.response_time_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "PromptUsage.success"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PromptUsage.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := promptusage.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "PromptUsage.id": %w`, err)}
		}
	}
	return nil
}

func (_c *PromptUsageCreate) sqlSave(ctx context.Context) (*PromptUsage, error) {
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
			return nil, fmt.Errorf("unexpected PromptUsage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PromptUsageCreate) createSpec() (*PromptUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(promptusage.Table, sqlgraph.NewFieldSpec(promptusage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TemplateID(); ok {
		_spec.SetField(promptusage.FieldTemplateID, field.TypeString, value)
		_node.TemplateID = value
	}
	if value, ok := _c.mutation.AiModel(); ok {
		_spec.SetField(promptusage.FieldAiModel, field.TypeString, value)
		_node.AiModel = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(promptusage.FieldResponseTimeMs, field.TypeInt, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(promptusage.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(promptusage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PromptUsageCreateBulk is the builder for creating many PromptUsage entities in bulk.
type PromptUsageCreateBulk struct {
	config
	err      error
	builders []*PromptUsageCreate
}

// Save creates the PromptUsage entities in the database.
func (_c *PromptUsageCreateBulk) Save(ctx context.Context) ([]*PromptUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptUsageMutation)
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
func (_c *PromptUsageCreateBulk) SaveX(ctx context.Context) []*PromptUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
