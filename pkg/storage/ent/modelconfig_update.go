// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recallhq/recall/pkg/storage/ent/modelconfig"
	"github.com/recallhq/recall/pkg/storage/ent/predicate"
)

// ModelConfigUpdate is the builder for updating ModelConfig entities.
type ModelConfigUpdate struct {
	config
	hooks    []Hook
	mutation *ModelConfigMutation
}

// Where appends a list predicates to the ModelConfigUpdate builder.
func (_u *ModelConfigUpdate) Where(ps ...predicate.ModelConfig) *ModelConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ModelConfigUpdate) SetModelName(v string) *ModelConfigUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableModelName(v *string) *ModelConfigUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ModelConfigUpdate) SetProvider(v string) *ModelConfigUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableProvider(v *string) *ModelConfigUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetAPIBaseURL sets the "api_base_url" field.
func (_u *ModelConfigUpdate) SetAPIBaseURL(v string) *ModelConfigUpdate {
	_u.mutation.SetAPIBaseURL(v)
	return _u
}

// SetNillableAPIBaseURL sets the "api_base_url" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableAPIBaseURL(v *string) *ModelConfigUpdate {
	if v != nil {
		_u.SetAPIBaseURL(*v)
	}
	return _u
}

// ClearAPIBaseURL clears the value of the "api_base_url" field.
func (_u *ModelConfigUpdate) ClearAPIBaseURL() *ModelConfigUpdate {
	_u.mutation.ClearAPIBaseURL()
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *ModelConfigUpdate) SetMaxTokens(v int) *ModelConfigUpdate {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableMaxTokens(v *int) *ModelConfigUpdate {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *ModelConfigUpdate) AddMaxTokens(v int) *ModelConfigUpdate {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *ModelConfigUpdate) SetTemperature(v float64) *ModelConfigUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *ModelConfigUpdate) SetNillableTemperature(v *float64) *ModelConfigUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *ModelConfigUpdate) AddTemperature(v float64) *ModelConfigUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// Mutation returns the ModelConfigMutation object of the builder.
func (_u *ModelConfigUpdate) Mutation() *ModelConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelConfigUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelConfigUpdate) check() error {
	if v, ok := _u.mutation.ModelName(); ok {
		if err := modelconfig.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "ModelConfig.model_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := modelconfig.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ModelConfig.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *ModelConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelconfig.Table, modelconfig.Columns, sqlgraph.NewFieldSpec(modelconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(modelconfig.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(modelconfig.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIBaseURL(); ok {
		_spec.SetField(modelconfig.FieldAPIBaseURL, field.TypeString, value)
	}
	if _u.mutation.APIBaseURLCleared() {
		_spec.ClearField(modelconfig.FieldAPIBaseURL, field.TypeString)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(modelconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(modelconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(modelconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(modelconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelConfigUpdateOne is the builder for updating a single ModelConfig entity.
type ModelConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelConfigMutation
}

// SetModelName sets the "model_name" field.
func (_u *ModelConfigUpdateOne) SetModelName(v string) *ModelConfigUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableModelName(v *string) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ModelConfigUpdateOne) SetProvider(v string) *ModelConfigUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableProvider(v *string) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetAPIBaseURL sets the "api_base_url" field.
func (_u *ModelConfigUpdateOne) SetAPIBaseURL(v string) *ModelConfigUpdateOne {
	_u.mutation.SetAPIBaseURL(v)
	return _u
}

// SetNillableAPIBaseURL sets the "api_base_url" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableAPIBaseURL(v *string) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetAPIBaseURL(*v)
	}
	return _u
}

// ClearAPIBaseURL clears the value of the "api_base_url" field.
func (_u *ModelConfigUpdateOne) ClearAPIBaseURL() *ModelConfigUpdateOne {
	_u.mutation.ClearAPIBaseURL()
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *ModelConfigUpdateOne) SetMaxTokens(v int) *ModelConfigUpdateOne {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableMaxTokens(v *int) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *ModelConfigUpdateOne) AddMaxTokens(v int) *ModelConfigUpdateOne {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *ModelConfigUpdateOne) SetTemperature(v float64) *ModelConfigUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *ModelConfigUpdateOne) SetNillableTemperature(v *float64) *ModelConfigUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *ModelConfigUpdateOne) AddTemperature(v float64) *ModelConfigUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// Mutation returns the ModelConfigMutation object of the builder.
func (_u *ModelConfigUpdateOne) Mutation() *ModelConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModelConfigUpdate builder.
func (_u *ModelConfigUpdateOne) Where(ps ...predicate.ModelConfig) *ModelConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelConfigUpdateOne) Select(field string, fields ...string) *ModelConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModelConfig entity.
func (_u *ModelConfigUpdateOne) Save(ctx context.Context) (*ModelConfig, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelConfigUpdateOne) SaveX(ctx context.Context) *ModelConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelConfigUpdateOne) check() error {
	if v, ok := _u.mutation.ModelName(); ok {
		if err := modelconfig.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "ModelConfig.model_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := modelconfig.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ModelConfig.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *ModelConfigUpdateOne) sqlSave(ctx context.Context) (_node *ModelConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelconfig.Table, modelconfig.Columns, sqlgraph.NewFieldSpec(modelconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modelconfig.FieldID)
		for _, f := range fields {
			if !modelconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modelconfig.FieldID {
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
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(modelconfig.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(modelconfig.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIBaseURL(); ok {
		_spec.SetField(modelconfig.FieldAPIBaseURL, field.TypeString, value)
	}
	if _u.mutation.APIBaseURLCleared() {
		_spec.ClearField(modelconfig.FieldAPIBaseURL, field.TypeString)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(modelconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(modelconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(modelconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(modelconfig.FieldTemperature, field.TypeFloat64, value)
	}
	_node = &ModelConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
