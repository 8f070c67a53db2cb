// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recallhq/recall/pkg/storage/ent/predicate"
	"github.com/recallhq/recall/pkg/storage/ent/promptusage"
)

// PromptUsageUpdate is the builder for updating PromptUsage entities.
type PromptUsageUpdate struct {
	config
	hooks    []Hook
	mutation *PromptUsageMutation
}

// Where appends a list predicates to the PromptUsageUpdate builder.
func (_u *PromptUsageUpdate) Where(ps ...predicate.PromptUsage) *PromptUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *PromptUsageUpdate) SetTemplateID(v string) *PromptUsageUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *PromptUsageUpdate) SetNillableTemplateID(v *string) *PromptUsageUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// SetAiModel sets the "ai_model" field.
func (_u *PromptUsageUpdate) SetAiModel(v string) *PromptUsageUpdate {
	_u.mutation.SetAiModel(v)
	return _u
}

// SetNillableAiModel sets the "ai_model" field if the given value is not nil.
func (_u *PromptUsageUpdate) SetNillableAiModel(v *string) *PromptUsageUpdate {
	if v != nil {
		_u.SetAiModel(*v)
	}
	return _u
}

// ClearAiModel clears the value of the "ai_model" field.
func (_u *PromptUsageUpdate) ClearAiModel() *PromptUsageUpdate {
	_u.mutation.ClearAiModel()
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *PromptUsageUpdate) SetResponseTimeMs(v int) *PromptUsageUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *PromptUsageUpdate) SetNillableResponseTimeMs(v *int) *PromptUsageUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *PromptUsageUpdate) AddResponseTimeMs(v int) *PromptUsageUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *PromptUsageUpdate) SetSuccess(v bool) *PromptUsageUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *PromptUsageUpdate) SetNillableSuccess(v *bool) *PromptUsageUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// Mutation returns the PromptUsageMutation object of the builder.
func (_u *PromptUsageUpdate) Mutation() *PromptUsageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptUsageUpdate) check() error {
	if v, ok := _u.mutation.TemplateID(); ok {
		if err := promptusage.TemplateIDValidator(v); err != nil {
			return &ValidationError{Name: "template_id", err: fmt.Errorf(`ent: validator failed for field "PromptUsage.template_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptusage.Table, promptusage.Columns, sqlgraph.NewFieldSpec(promptusage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(promptusage.FieldTemplateID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiModel(); ok {
		_spec.SetField(promptusage.FieldAiModel, field.TypeString, value)
	}
	if _u.mutation.AiModelCleared() {
		_spec.ClearField(promptusage.FieldAiModel, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(promptusage.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(promptusage.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(promptusage.FieldSuccess, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptUsageUpdateOne is the builder for updating a single PromptUsage entity.
type PromptUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptUsageMutation
}

// SetTemplateID sets the "template_id" field.
func (_u *PromptUsageUpdateOne) SetTemplateID(v string) *PromptUsageUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *PromptUsageUpdateOne) SetNillableTemplateID(v *string) *PromptUsageUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// SetAiModel sets the "ai_model" field.
func (_u *PromptUsageUpdateOne) SetAiModel(v string) *PromptUsageUpdateOne {
	_u.mutation.SetAiModel(v)
	return _u
}

// SetNillableAiModel sets the "ai_model" field if the given value is not nil.
func (_u *PromptUsageUpdateOne) SetNillableAiModel(v *string) *PromptUsageUpdateOne {
	if v != nil {
		_u.SetAiModel(*v)
	}
	return _u
}

// ClearAiModel clears the value of the "ai_model" field.
func (_u *PromptUsageUpdateOne) ClearAiModel() *PromptUsageUpdateOne {
	_u.mutation.ClearAiModel()
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *PromptUsageUpdateOne) SetResponseTimeMs(v int) *PromptUsageUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *PromptUsageUpdateOne) SetNillableResponseTimeMs(v *int) *PromptUsageUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *PromptUsageUpdateOne) AddResponseTimeMs(v int) *PromptUsageUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *PromptUsageUpdateOne) SetSuccess(v bool) *PromptUsageUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *PromptUsageUpdateOne) SetNillableSuccess(v *bool) *PromptUsageUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// Mutation returns the PromptUsageMutation object of the builder.
func (_u *PromptUsageUpdateOne) Mutation() *PromptUsageMutation {
	return _u.mutation
}

// Where appends a list predicates to the PromptUsageUpdate builder.
func (_u *PromptUsageUpdateOne) Where(ps ...predicate.PromptUsage) *PromptUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptUsageUpdateOne) Select(field string, fields ...string) *PromptUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromptUsage entity.
func (_u *PromptUsageUpdateOne) Save(ctx context.Context) (*PromptUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptUsageUpdateOne) SaveX(ctx context.Context) *PromptUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptUsageUpdateOne) check() error {
	if v, ok := _u.mutation.TemplateID(); ok {
		if err := promptusage.TemplateIDValidator(v); err != nil {
			return &ValidationError{Name: "template_id", err: fmt.Errorf(`ent: validator failed for field "PromptUsage.template_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptUsageUpdateOne) sqlSave(ctx context.Context) (_node *PromptUsage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptusage.Table, promptusage.Columns, sqlgraph.NewFieldSpec(promptusage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromptUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, promptusage.FieldID)
		for _, f := range fields {
			if !promptusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != promptusage.FieldID {
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
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(promptusage.FieldTemplateID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiModel(); ok {
		_spec.SetField(promptusage.FieldAiModel, field.TypeString, value)
	}
	if _u.mutation.AiModelCleared() {
		_spec.ClearField(promptusage.FieldAiModel, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(promptusage.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(promptusage.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(promptusage.FieldSuccess, field.TypeBool, value)
	}
	_node = &PromptUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
