// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recallhq/recall/pkg/storage/ent/modelconfig"
)

// ModelConfigCreate is the builder for creating a ModelConfig entity.
type ModelConfigCreate struct {
	config
	mutation *ModelConfigMutation
	hooks    []Hook
}

// SetModelName sets the "model_name" field.
func (_c *ModelConfigCreate) SetModelName(v string) *ModelConfigCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ModelConfigCreate) SetProvider(v string) *ModelConfigCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetAPIBaseURL sets the "api_base_url" field.
func (_c *ModelConfigCreate) SetAPIBaseURL(v string) *ModelConfigCreate {
	_c.mutation.SetAPIBaseURL(v)
	return _c
}

// SetNillableAPIBaseURL sets the "api_base_url" field if the given value is not nil.
func (_c *ModelConfigCreate) SetNillableAPIBaseURL(v *string) *ModelConfigCreate {
	if v != nil {
		_c.SetAPIBaseURL(*v)
	}
	return _c
}

// SetMaxTokens sets the "max_tokens" field.
func (_c *ModelConfigCreate) SetMaxTokens(v int) *ModelConfigCreate {
	_c.mutation.SetMaxTokens(v)
	return _c
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_c *ModelConfigCreate) SetNillableMaxTokens(v *int) *ModelConfigCreate {
	if v != nil {
		_c.SetMaxTokens(*v)
	}
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *ModelConfigCreate) SetTemperature(v float64) *ModelConfigCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *ModelConfigCreate) SetNillableTemperature(v *float64) *ModelConfigCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModelConfigCreate) SetCreatedAt(v time.Time) *ModelConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModelConfigCreate) SetNillableCreatedAt(v *time.Time) *ModelConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModelConfigCreate) SetID(v string) *ModelConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ModelConfigMutation object of the builder.
func (_c *ModelConfigCreate) Mutation() *ModelConfigMutation {
	return _c.mutation
}

// Save creates the ModelConfig in the database.
func (_c *ModelConfigCreate) Save(ctx context.Context) (*ModelConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelConfigCreate) SaveX(ctx context.Context) *ModelConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelConfigCreate) defaults() {
	if _, ok := _c.mutation.MaxTokens(); !ok {
		v := modelconfig.DefaultMaxTokens
		_c.mutation.SetMaxTokens(v)
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		v := modelconfig.DefaultTemperature
		_c.mutation.SetTemperature(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := modelconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelConfigCreate) check() error {
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "ModelConfig.model_name"`)}
	}
	if v, ok := _c.mutation.ModelName(); ok {
		if err := modelconfig.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "ModelConfig.model_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ModelConfig.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := modelconfig.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ModelConfig.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxTokens(); !ok {
		return &ValidationError{Name: "max_tokens", err: errors.New(`ent: missing required field "ModelConfig.max_tokens"`)}
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		return &ValidationError{Name: "temperature", err: errors.New(`ent: missing required field "ModelConfig.temperature"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ModelConfig.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := modelconfig.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "ModelConfig.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ModelConfigCreate) sqlSave(ctx context.Context) (*ModelConfig, error) {
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
			return nil, fmt.Errorf("unexpected ModelConfig.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModelConfigCreate) createSpec() (*ModelConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modelconfig.Table, sqlgraph.NewFieldSpec(modelconfig.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(modelconfig.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(modelconfig.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.APIBaseURL(); ok {
		_spec.SetField(modelconfig.FieldAPIBaseURL, field.TypeString, value)
		_node.APIBaseURL = value
	}
	if value, ok := _c.mutation.MaxTokens(); ok {
		_spec.SetField(modelconfig.FieldMaxTokens, field.TypeInt, value)
		_node.MaxTokens = value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(modelconfig.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(modelconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ModelConfigCreateBulk is the builder for creating many ModelConfig entities in bulk.
type ModelConfigCreateBulk struct {
	config
	err      error
	builders []*ModelConfigCreate
}

// Save creates the ModelConfig entities in the database.
func (_c *ModelConfigCreateBulk) Save(ctx context.Context) ([]*ModelConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModelConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelConfigMutation)
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
func (_c *ModelConfigCreateBulk) SaveX(ctx context.Context) []*ModelConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
