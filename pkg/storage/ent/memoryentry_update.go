// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/recallhq/recall/pkg/storage/ent/memoryentry"
	"github.com/recallhq/recall/pkg/storage/ent/predicate"
)

// MemoryEntryUpdate is the builder for updating MemoryEntry entities.
type MemoryEntryUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryEntryMutation
}

// Where appends a list predicates to the MemoryEntryUpdate builder.
func (_u *MemoryEntryUpdate) Where(ps ...predicate.MemoryEntry) *MemoryEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *MemoryEntryUpdate) SetConversationID(v string) *MemoryEntryUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *MemoryEntryUpdate) SetNillableConversationID(v *string) *MemoryEntryUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MemoryEntryUpdate) SetSessionID(v string) *MemoryEntryUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MemoryEntryUpdate) SetNillableSessionID(v *string) *MemoryEntryUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *MemoryEntryUpdate) SetRole(v string) *MemoryEntryUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *MemoryEntryUpdate) SetNillableRole(v *string) *MemoryEntryUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *MemoryEntryUpdate) ClearRole() *MemoryEntryUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetContent sets the "content" field.
func (_u *MemoryEntryUpdate) SetContent(v string) *MemoryEntryUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MemoryEntryUpdate) SetNillableContent(v *string) *MemoryEntryUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetContextType sets the "context_type" field.
func (_u *MemoryEntryUpdate) SetContextType(v string) *MemoryEntryUpdate {
	_u.mutation.SetContextType(v)
	return _u
}

// SetNillableContextType sets the "context_type" field if the given value is not nil.
func (_u *MemoryEntryUpdate) SetNillableContextType(v *string) *MemoryEntryUpdate {
	if v != nil {
		_u.SetContextType(*v)
	}
	return _u
}

// SetImportanceScore sets the "importance_score" field.
func (_u *MemoryEntryUpdate) SetImportanceScore(v float64) *MemoryEntryUpdate {
	_u.mutation.ResetImportanceScore()
	_u.mutation.SetImportanceScore(v)
	return _u
}

// SetNillableImportanceScore sets the "importance_score" field if the given value is not nil.
func (_u *MemoryEntryUpdate) SetNillableImportanceScore(v *float64) *MemoryEntryUpdate {
	if v != nil {
		_u.SetImportanceScore(*v)
	}
	return _u
}

// AddImportanceScore adds value to the "importance_score" field.
func (_u *MemoryEntryUpdate) AddImportanceScore(v float64) *MemoryEntryUpdate {
	_u.mutation.AddImportanceScore(v)
	return _u
}

// SetTags sets the "tags" field.
func (_u *MemoryEntryUpdate) SetTags(v []string) *MemoryEntryUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *MemoryEntryUpdate) AppendTags(v []string) *MemoryEntryUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *MemoryEntryUpdate) ClearTags() *MemoryEntryUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MemoryEntryUpdate) SetMetadata(v map[string]interface{}) *MemoryEntryUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MemoryEntryUpdate) ClearMetadata() *MemoryEntryUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetTTLSeconds sets the "ttl_seconds" field.
func (_u *MemoryEntryUpdate) SetTTLSeconds(v int) *MemoryEntryUpdate {
	_u.mutation.ResetTTLSeconds()
	_u.mutation.SetTTLSeconds(v)
	return _u
}

// SetNillableTTLSeconds sets the "ttl_seconds" field if the given value is not nil.
func (_u *MemoryEntryUpdate) SetNillableTTLSeconds(v *int) *MemoryEntryUpdate {
	if v != nil {
		_u.SetTTLSeconds(*v)
	}
	return _u
}

// AddTTLSeconds adds value to the "ttl_seconds" field.
func (_u *MemoryEntryUpdate) AddTTLSeconds(v int) *MemoryEntryUpdate {
	_u.mutation.AddTTLSeconds(v)
	return _u
}

// Mutation returns the MemoryEntryMutation object of the builder.
func (_u *MemoryEntryUpdate) Mutation() *MemoryEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryEntryUpdate) check() error {
	if v, ok := _u.mutation.ConversationID(); ok {
		if err := memoryentry.ConversationIDValidator(v); err != nil {
			return &ValidationError{Name: "conversation_id", err: fmt.Errorf(`ent: validator failed for field "MemoryEntry.conversation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := memoryentry.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "MemoryEntry.content": %w`, err)}
		}
	}
	return nil
}

func (_u *MemoryEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryentry.Table, memoryentry.Columns, sqlgraph.NewFieldSpec(memoryentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(memoryentry.FieldConversationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(memoryentry.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(memoryentry.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(memoryentry.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(memoryentry.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextType(); ok {
		_spec.SetField(memoryentry.FieldContextType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImportanceScore(); ok {
		_spec.SetField(memoryentry.FieldImportanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportanceScore(); ok {
		_spec.AddField(memoryentry.FieldImportanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(memoryentry.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memoryentry.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(memoryentry.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(memoryentry.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(memoryentry.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.TTLSeconds(); ok {
		_spec.SetField(memoryentry.FieldTTLSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTTLSeconds(); ok {
		_spec.AddField(memoryentry.FieldTTLSeconds, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryEntryUpdateOne is the builder for updating a single MemoryEntry entity.
type MemoryEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryEntryMutation
}

// SetConversationID sets the "conversation_id" field.
func (_u *MemoryEntryUpdateOne) SetConversationID(v string) *MemoryEntryUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *MemoryEntryUpdateOne) SetNillableConversationID(v *string) *MemoryEntryUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MemoryEntryUpdateOne) SetSessionID(v string) *MemoryEntryUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MemoryEntryUpdateOne) SetNillableSessionID(v *string) *MemoryEntryUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *MemoryEntryUpdateOne) SetRole(v string) *MemoryEntryUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *MemoryEntryUpdateOne) SetNillableRole(v *string) *MemoryEntryUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *MemoryEntryUpdateOne) ClearRole() *MemoryEntryUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetContent sets the "content" field.
func (_u *MemoryEntryUpdateOne) SetContent(v string) *MemoryEntryUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MemoryEntryUpdateOne) SetNillableContent(v *string) *MemoryEntryUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetContextType sets the "context_type" field.
func (_u *MemoryEntryUpdateOne) SetContextType(v string) *MemoryEntryUpdateOne {
	_u.mutation.SetContextType(v)
	return _u
}

// SetNillableContextType sets the "context_type" field if the given value is not nil.
func (_u *MemoryEntryUpdateOne) SetNillableContextType(v *string) *MemoryEntryUpdateOne {
	if v != nil {
		_u.SetContextType(*v)
	}
	return _u
}

// SetImportanceScore sets the "importance_score" field.
func (_u *MemoryEntryUpdateOne) SetImportanceScore(v float64) *MemoryEntryUpdateOne {
	_u.mutation.ResetImportanceScore()
	_u.mutation.SetImportanceScore(v)
	return _u
}

// SetNillableImportanceScore sets the "importance_score" field if the given value is not nil.
func (_u *MemoryEntryUpdateOne) SetNillableImportanceScore(v *float64) *MemoryEntryUpdateOne {
	if v != nil {
		_u.SetImportanceScore(*v)
	}
	return _u
}

// AddImportanceScore adds value to the "importance_score" field.
func (_u *MemoryEntryUpdateOne) AddImportanceScore(v float64) *MemoryEntryUpdateOne {
	_u.mutation.AddImportanceScore(v)
	return _u
}

// SetTags sets the "tags" field.
func (_u *MemoryEntryUpdateOne) SetTags(v []string) *MemoryEntryUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *MemoryEntryUpdateOne) AppendTags(v []string) *MemoryEntryUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *MemoryEntryUpdateOne) ClearTags() *MemoryEntryUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MemoryEntryUpdateOne) SetMetadata(v map[string]interface{}) *MemoryEntryUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MemoryEntryUpdateOne) ClearMetadata() *MemoryEntryUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetTTLSeconds sets the "ttl_seconds" field.
func (_u *MemoryEntryUpdateOne) SetTTLSeconds(v int) *MemoryEntryUpdateOne {
	_u.mutation.ResetTTLSeconds()
	_u.mutation.SetTTLSeconds(v)
	return _u
}

// SetNillableTTLSeconds sets the "ttl_seconds" field if the given value is not nil.
func (_u *MemoryEntryUpdateOne) SetNillableTTLSeconds(v *int) *MemoryEntryUpdateOne {
	if v != nil {
		_u.SetTTLSeconds(*v)
	}
	return _u
}

// AddTTLSeconds adds value to the "ttl_seconds" field.
func (_u *MemoryEntryUpdateOne) AddTTLSeconds(v int) *MemoryEntryUpdateOne {
	_u.mutation.AddTTLSeconds(v)
	return _u
}

// Mutation returns the MemoryEntryMutation object of the builder.
func (_u *MemoryEntryUpdateOne) Mutation() *MemoryEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the MemoryEntryUpdate builder.
func (_u *MemoryEntryUpdateOne) Where(ps ...predicate.MemoryEntry) *MemoryEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryEntryUpdateOne) Select(field string, fields ...string) *MemoryEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MemoryEntry entity.
func (_u *MemoryEntryUpdateOne) Save(ctx context.Context) (*MemoryEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryEntryUpdateOne) SaveX(ctx context.Context) *MemoryEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryEntryUpdateOne) check() error {
	if v, ok := _u.mutation.ConversationID(); ok {
		if err := memoryentry.ConversationIDValidator(v); err != nil {
			return &ValidationError{Name: "conversation_id", err: fmt.Errorf(`ent: validator failed for field "MemoryEntry.conversation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := memoryentry.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "MemoryEntry.content": %w`, err)}
		}
	}
	return nil
}

func (_u *MemoryEntryUpdateOne) sqlSave(ctx context.Context) (_node *MemoryEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryentry.Table, memoryentry.Columns, sqlgraph.NewFieldSpec(memoryentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MemoryEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memoryentry.FieldID)
		for _, f := range fields {
			if !memoryentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memoryentry.FieldID {
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
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(memoryentry.FieldConversationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(memoryentry.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(memoryentry.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(memoryentry.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(memoryentry.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextType(); ok {
		_spec.SetField(memoryentry.FieldContextType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImportanceScore(); ok {
		_spec.SetField(memoryentry.FieldImportanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportanceScore(); ok {
		_spec.AddField(memoryentry.FieldImportanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(memoryentry.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memoryentry.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(memoryentry.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(memoryentry.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(memoryentry.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.TTLSeconds(); ok {
		_spec.SetField(memoryentry.FieldTTLSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTTLSeconds(); ok {
		_spec.AddField(memoryentry.FieldTTLSeconds, field.TypeInt, value)
	}
	_node = &MemoryEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
