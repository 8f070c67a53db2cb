// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recallhq/recall/pkg/storage/ent/contextrelationship"
	"github.com/recallhq/recall/pkg/storage/ent/memoryentry"
	"github.com/recallhq/recall/pkg/storage/ent/modelconfig"
	"github.com/recallhq/recall/pkg/storage/ent/predicate"
	"github.com/recallhq/recall/pkg/storage/ent/prompttemplate"
	"github.com/recallhq/recall/pkg/storage/ent/promptusage"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeContextRelationship = "ContextRelationship"
	TypeMemoryEntry         = "MemoryEntry"
	TypeModelConfig         = "ModelConfig"
	TypePromptTemplate      = "PromptTemplate"
	TypePromptUsage         = "PromptUsage"
)

// ContextRelationshipMutation represents an operation that mutates the ContextRelationship nodes in the graph.
type ContextRelationshipMutation struct {
	config
	op                Op
	typ               string
	id                *string
	source_memory_id  *string
	target_memory_id  *string
	relationship_type *string
	strength          *float64
	addstrength       *float64
	metadata          *map[string]interface{}
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ContextRelationship, error)
	predicates        []predicate.ContextRelationship
}

var _ ent.Mutation = (*ContextRelationshipMutation)(nil)

// contextrelationshipOption allows management of the mutation configuration using functional options.
type contextrelationshipOption func(*ContextRelationshipMutation)

// newContextRelationshipMutation creates new mutation for the ContextRelationship entity.
func newContextRelationshipMutation(c config, op Op, opts ...contextrelationshipOption) *ContextRelationshipMutation {
	m := &ContextRelationshipMutation{
		config:        c,
		op:            op,
		typ:           TypeContextRelationship,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContextRelationshipID sets the ID field of the mutation.
func withContextRelationshipID(id string) contextrelationshipOption {
	return func(m *ContextRelationshipMutation) {
		var (
			err   error
			once  sync.Once
			value *ContextRelationship
		)
		m.oldValue = func(ctx context.Context) (*ContextRelationship, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContextRelationship.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContextRelationship sets the old ContextRelationship of the mutation.
func withContextRelationship(node *ContextRelationship) contextrelationshipOption {
	return func(m *ContextRelationshipMutation) {
		m.oldValue = func(context.Context) (*ContextRelationship, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContextRelationshipMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContextRelationshipMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContextRelationship entities.
func (m *ContextRelationshipMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContextRelationshipMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContextRelationshipMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContextRelationship.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceMemoryID sets the "source_memory_id" field.
func (m *ContextRelationshipMutation) SetSourceMemoryID(s string) {
	m.source_memory_id = &s
}

// SourceMemoryID returns the value of the "source_memory_id" field in the mutation.
func (m *ContextRelationshipMutation) SourceMemoryID() (r string, exists bool) {
	v := m.source_memory_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceMemoryID returns the old "source_memory_id" field's value of the ContextRelationship entity.
// If the ContextRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextRelationshipMutation) OldSourceMemoryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceMemoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceMemoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceMemoryID: %w", err)
	}
	return oldValue.SourceMemoryID, nil
}

// ResetSourceMemoryID resets all changes to the "source_memory_id" field.
func (m *ContextRelationshipMutation) ResetSourceMemoryID() {
	m.source_memory_id = nil
}

// SetTargetMemoryID sets the "target_memory_id" field.
func (m *ContextRelationshipMutation) SetTargetMemoryID(s string) {
	m.target_memory_id = &s
}

// TargetMemoryID returns the value of the "target_memory_id" field in the mutation.
func (m *ContextRelationshipMutation) TargetMemoryID() (r string, exists bool) {
	v := m.target_memory_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetMemoryID returns the old "target_memory_id" field's value of the ContextRelationship entity.
// If the ContextRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextRelationshipMutation) OldTargetMemoryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetMemoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetMemoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetMemoryID: %w", err)
	}
	return oldValue.TargetMemoryID, nil
}

// ResetTargetMemoryID resets all changes to the "target_memory_id" field.
func (m *ContextRelationshipMutation) ResetTargetMemoryID() {
	m.target_memory_id = nil
}

// SetRelationshipType sets the "relationship_type" field.
func (m *ContextRelationshipMutation) SetRelationshipType(s string) {
	m.relationship_type = &s
}

// RelationshipType returns the value of the "relationship_type" field in the mutation.
func (m *ContextRelationshipMutation) RelationshipType() (r string, exists bool) {
	v := m.relationship_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationshipType returns the old "relationship_type" field's value of the ContextRelationship entity.
// If the ContextRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextRelationshipMutation) OldRelationshipType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationshipType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationshipType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationshipType: %w", err)
	}
	return oldValue.RelationshipType, nil
}

// ResetRelationshipType resets all changes to the "relationship_type" field.
func (m *ContextRelationshipMutation) ResetRelationshipType() {
	m.relationship_type = nil
}

// SetStrength sets the "strength" field.
func (m *ContextRelationshipMutation) SetStrength(f float64) {
	m.strength = &f
	m.addstrength = nil
}

// Strength returns the value of the "strength" field in the mutation.
func (m *ContextRelationshipMutation) Strength() (r float64, exists bool) {
	v := m.strength
	if v == nil {
		return
	}
	return *v, true
}

// OldStrength returns the old "strength" field's value of the ContextRelationship entity.
// If the ContextRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextRelationshipMutation) OldStrength(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrength: %w", err)
	}
	return oldValue.Strength, nil
}

// AddStrength adds f to the "strength" field.
func (m *ContextRelationshipMutation) AddStrength(f float64) {
	if m.addstrength != nil {
		*m.addstrength += f
	} else {
		m.addstrength = &f
	}
}

// AddedStrength returns the value that was added to the "strength" field in this mutation.
func (m *ContextRelationshipMutation) AddedStrength() (r float64, exists bool) {
	v := m.addstrength
	if v == nil {
		return
	}
	return *v, true
}

// ResetStrength resets all changes to the "strength" field.
func (m *ContextRelationshipMutation) ResetStrength() {
	m.strength = nil
	m.addstrength = nil
}

// SetMetadata sets the "metadata" field.
func (m *ContextRelationshipMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ContextRelationshipMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ContextRelationship entity.
// If the ContextRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextRelationshipMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ContextRelationshipMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[contextrelationship.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ContextRelationshipMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[contextrelationship.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ContextRelationshipMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, contextrelationship.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContextRelationshipMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContextRelationshipMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContextRelationship entity.
// If the ContextRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextRelationshipMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContextRelationshipMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ContextRelationshipMutation builder.
func (m *ContextRelationshipMutation) Where(ps ...predicate.ContextRelationship) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContextRelationshipMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContextRelationshipMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContextRelationship, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContextRelationshipMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContextRelationshipMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContextRelationship).
func (m *ContextRelationshipMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContextRelationshipMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.source_memory_id != nil {
		fields = append(fields, contextrelationship.FieldSourceMemoryID)
	}
	if m.target_memory_id != nil {
		fields = append(fields, contextrelationship.FieldTargetMemoryID)
	}
	if m.relationship_type != nil {
		fields = append(fields, contextrelationship.FieldRelationshipType)
	}
	if m.strength != nil {
		fields = append(fields, contextrelationship.FieldStrength)
	}
	if m.metadata != nil {
		fields = append(fields, contextrelationship.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, contextrelationship.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContextRelationshipMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contextrelationship.FieldSourceMemoryID:
		return m.SourceMemoryID()
	case contextrelationship.FieldTargetMemoryID:
		return m.TargetMemoryID()
	case contextrelationship.FieldRelationshipType:
		return m.RelationshipType()
	case contextrelationship.FieldStrength:
		return m.Strength()
	case contextrelationship.FieldMetadata:
		return m.Metadata()
	case contextrelationship.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContextRelationshipMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contextrelationship.FieldSourceMemoryID:
		return m.OldSourceMemoryID(ctx)
	case contextrelationship.FieldTargetMemoryID:
		return m.OldTargetMemoryID(ctx)
	case contextrelationship.FieldRelationshipType:
		return m.OldRelationshipType(ctx)
	case contextrelationship.FieldStrength:
		return m.OldStrength(ctx)
	case contextrelationship.FieldMetadata:
		return m.OldMetadata(ctx)
	case contextrelationship.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContextRelationship field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextRelationshipMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contextrelationship.FieldSourceMemoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceMemoryID(v)
		return nil
	case contextrelationship.FieldTargetMemoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetMemoryID(v)
		return nil
	case contextrelationship.FieldRelationshipType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationshipType(v)
		return nil
	case contextrelationship.FieldStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrength(v)
		return nil
	case contextrelationship.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case contextrelationship.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContextRelationship field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContextRelationshipMutation) AddedFields() []string {
	var fields []string
	if m.addstrength != nil {
		fields = append(fields, contextrelationship.FieldStrength)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContextRelationshipMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contextrelationship.FieldStrength:
		return m.AddedStrength()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextRelationshipMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contextrelationship.FieldStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStrength(v)
		return nil
	}
	return fmt.Errorf("unknown ContextRelationship numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContextRelationshipMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contextrelationship.FieldMetadata) {
		fields = append(fields, contextrelationship.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContextRelationshipMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContextRelationshipMutation) ClearField(name string) error {
	switch name {
	case contextrelationship.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ContextRelationship nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContextRelationshipMutation) ResetField(name string) error {
	switch name {
	case contextrelationship.FieldSourceMemoryID:
		m.ResetSourceMemoryID()
		return nil
	case contextrelationship.FieldTargetMemoryID:
		m.ResetTargetMemoryID()
		return nil
	case contextrelationship.FieldRelationshipType:
		m.ResetRelationshipType()
		return nil
	case contextrelationship.FieldStrength:
		m.ResetStrength()
		return nil
	case contextrelationship.FieldMetadata:
		m.ResetMetadata()
		return nil
	case contextrelationship.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContextRelationship field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContextRelationshipMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContextRelationshipMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContextRelationshipMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContextRelationshipMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContextRelationshipMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContextRelationshipMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContextRelationshipMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ContextRelationship unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContextRelationshipMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ContextRelationship edge %s", name)
}

// MemoryEntryMutation represents an operation that mutates the MemoryEntry nodes in the graph.
type MemoryEntryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	conversation_id     *string
	session_id          *string
	role                *string
	content             *string
	context_type        *string
	importance_score    *float64
	addimportance_score *float64
	tags                *[]string
	appendtags          []string
	metadata            *map[string]interface{}
	ttl_seconds         *int
	addttl_seconds      *int
	timestamp           *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*MemoryEntry, error)
	predicates          []predicate.MemoryEntry
}

var _ ent.Mutation = (*MemoryEntryMutation)(nil)

// memoryentryOption allows management of the mutation configuration using functional options.
type memoryentryOption func(*MemoryEntryMutation)

// newMemoryEntryMutation creates new mutation for the MemoryEntry entity.
func newMemoryEntryMutation(c config, op Op, opts ...memoryentryOption) *MemoryEntryMutation {
	m := &MemoryEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeMemoryEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemoryEntryID sets the ID field of the mutation.
func withMemoryEntryID(id string) memoryentryOption {
	return func(m *MemoryEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *MemoryEntry
		)
		m.oldValue = func(ctx context.Context) (*MemoryEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MemoryEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMemoryEntry sets the old MemoryEntry of the mutation.
func withMemoryEntry(node *MemoryEntry) memoryentryOption {
	return func(m *MemoryEntryMutation) {
		m.oldValue = func(context.Context) (*MemoryEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemoryEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemoryEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MemoryEntry entities.
func (m *MemoryEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemoryEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemoryEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MemoryEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *MemoryEntryMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *MemoryEntryMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *MemoryEntryMutation) ResetConversationID() {
	m.conversation_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *MemoryEntryMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *MemoryEntryMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *MemoryEntryMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRole sets the "role" field.
func (m *MemoryEntryMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *MemoryEntryMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *MemoryEntryMutation) ClearRole() {
	m.role = nil
	m.clearedFields[memoryentry.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *MemoryEntryMutation) RoleCleared() bool {
	_, ok := m.clearedFields[memoryentry.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *MemoryEntryMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, memoryentry.FieldRole)
}

// SetContent sets the "content" field.
func (m *MemoryEntryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MemoryEntryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MemoryEntryMutation) ResetContent() {
	m.content = nil
}

// SetContextType sets the "context_type" field.
func (m *MemoryEntryMutation) SetContextType(s string) {
	m.context_type = &s
}

// ContextType returns the value of the "context_type" field in the mutation.
func (m *MemoryEntryMutation) ContextType() (r string, exists bool) {
	v := m.context_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContextType returns the old "context_type" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldContextType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextType: %w", err)
	}
	return oldValue.ContextType, nil
}

// ResetContextType resets all changes to the "context_type" field.
func (m *MemoryEntryMutation) ResetContextType() {
	m.context_type = nil
}

// SetImportanceScore sets the "importance_score" field.
func (m *MemoryEntryMutation) SetImportanceScore(f float64) {
	m.importance_score = &f
	m.addimportance_score = nil
}

// ImportanceScore returns the value of the "importance_score" field in the mutation.
func (m *MemoryEntryMutation) ImportanceScore() (r float64, exists bool) {
	v := m.importance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldImportanceScore returns the old "importance_score" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldImportanceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportanceScore: %w", err)
	}
	return oldValue.ImportanceScore, nil
}

// AddImportanceScore adds f to the "importance_score" field.
func (m *MemoryEntryMutation) AddImportanceScore(f float64) {
	if m.addimportance_score != nil {
		*m.addimportance_score += f
	} else {
		m.addimportance_score = &f
	}
}

// AddedImportanceScore returns the value that was added to the "importance_score" field in this mutation.
func (m *MemoryEntryMutation) AddedImportanceScore() (r float64, exists bool) {
	v := m.addimportance_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetImportanceScore resets all changes to the "importance_score" field.
func (m *MemoryEntryMutation) ResetImportanceScore() {
	m.importance_score = nil
	m.addimportance_score = nil
}

// SetTags sets the "tags" field.
func (m *MemoryEntryMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *MemoryEntryMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *MemoryEntryMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *MemoryEntryMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *MemoryEntryMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[memoryentry.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *MemoryEntryMutation) TagsCleared() bool {
	_, ok := m.clearedFields[memoryentry.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *MemoryEntryMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, memoryentry.FieldTags)
}

// SetMetadata sets the "metadata" field.
func (m *MemoryEntryMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *MemoryEntryMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *MemoryEntryMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[memoryentry.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *MemoryEntryMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[memoryentry.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *MemoryEntryMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, memoryentry.FieldMetadata)
}

// SetTTLSeconds sets the "ttl_seconds" field.
func (m *MemoryEntryMutation) SetTTLSeconds(i int) {
	m.ttl_seconds = &i
	m.addttl_seconds = nil
}

// TTLSeconds returns the value of the "ttl_seconds" field in the mutation.
func (m *MemoryEntryMutation) TTLSeconds() (r int, exists bool) {
	v := m.ttl_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTTLSeconds returns the old "ttl_seconds" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldTTLSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTTLSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTTLSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTTLSeconds: %w", err)
	}
	return oldValue.TTLSeconds, nil
}

// AddTTLSeconds adds i to the "ttl_seconds" field.
func (m *MemoryEntryMutation) AddTTLSeconds(i int) {
	if m.addttl_seconds != nil {
		*m.addttl_seconds += i
	} else {
		m.addttl_seconds = &i
	}
}

// AddedTTLSeconds returns the value that was added to the "ttl_seconds" field in this mutation.
func (m *MemoryEntryMutation) AddedTTLSeconds() (r int, exists bool) {
	v := m.addttl_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTTLSeconds resets all changes to the "ttl_seconds" field.
func (m *MemoryEntryMutation) ResetTTLSeconds() {
	m.ttl_seconds = nil
	m.addttl_seconds = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *MemoryEntryMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *MemoryEntryMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *MemoryEntryMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the MemoryEntryMutation builder.
func (m *MemoryEntryMutation) Where(ps ...predicate.MemoryEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemoryEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemoryEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MemoryEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemoryEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemoryEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MemoryEntry).
func (m *MemoryEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemoryEntryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.conversation_id != nil {
		fields = append(fields, memoryentry.FieldConversationID)
	}
	if m.session_id != nil {
		fields = append(fields, memoryentry.FieldSessionID)
	}
	if m.role != nil {
		fields = append(fields, memoryentry.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, memoryentry.FieldContent)
	}
	if m.context_type != nil {
		fields = append(fields, memoryentry.FieldContextType)
	}
	if m.importance_score != nil {
		fields = append(fields, memoryentry.FieldImportanceScore)
	}
	if m.tags != nil {
		fields = append(fields, memoryentry.FieldTags)
	}
	if m.metadata != nil {
		fields = append(fields, memoryentry.FieldMetadata)
	}
	if m.ttl_seconds != nil {
		fields = append(fields, memoryentry.FieldTTLSeconds)
	}
	if m.timestamp != nil {
		fields = append(fields, memoryentry.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemoryEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case memoryentry.FieldConversationID:
		return m.ConversationID()
	case memoryentry.FieldSessionID:
		return m.SessionID()
	case memoryentry.FieldRole:
		return m.Role()
	case memoryentry.FieldContent:
		return m.Content()
	case memoryentry.FieldContextType:
		return m.ContextType()
	case memoryentry.FieldImportanceScore:
		return m.ImportanceScore()
	case memoryentry.FieldTags:
		return m.Tags()
	case memoryentry.FieldMetadata:
		return m.Metadata()
	case memoryentry.FieldTTLSeconds:
		return m.TTLSeconds()
	case memoryentry.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemoryEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case memoryentry.FieldConversationID:
		return m.OldConversationID(ctx)
	case memoryentry.FieldSessionID:
		return m.OldSessionID(ctx)
	case memoryentry.FieldRole:
		return m.OldRole(ctx)
	case memoryentry.FieldContent:
		return m.OldContent(ctx)
	case memoryentry.FieldContextType:
		return m.OldContextType(ctx)
	case memoryentry.FieldImportanceScore:
		return m.OldImportanceScore(ctx)
	case memoryentry.FieldTags:
		return m.OldTags(ctx)
	case memoryentry.FieldMetadata:
		return m.OldMetadata(ctx)
	case memoryentry.FieldTTLSeconds:
		return m.OldTTLSeconds(ctx)
	case memoryentry.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown MemoryEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case memoryentry.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case memoryentry.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case memoryentry.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case memoryentry.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case memoryentry.FieldContextType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextType(v)
		return nil
	case memoryentry.FieldImportanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportanceScore(v)
		return nil
	case memoryentry.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case memoryentry.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case memoryentry.FieldTTLSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTTLSeconds(v)
		return nil
	case memoryentry.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemoryEntryMutation) AddedFields() []string {
	var fields []string
	if m.addimportance_score != nil {
		fields = append(fields, memoryentry.FieldImportanceScore)
	}
	if m.addttl_seconds != nil {
		fields = append(fields, memoryentry.FieldTTLSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemoryEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case memoryentry.FieldImportanceScore:
		return m.AddedImportanceScore()
	case memoryentry.FieldTTLSeconds:
		return m.AddedTTLSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case memoryentry.FieldImportanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImportanceScore(v)
		return nil
	case memoryentry.FieldTTLSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTTLSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemoryEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(memoryentry.FieldRole) {
		fields = append(fields, memoryentry.FieldRole)
	}
	if m.FieldCleared(memoryentry.FieldTags) {
		fields = append(fields, memoryentry.FieldTags)
	}
	if m.FieldCleared(memoryentry.FieldMetadata) {
		fields = append(fields, memoryentry.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemoryEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemoryEntryMutation) ClearField(name string) error {
	switch name {
	case memoryentry.FieldRole:
		m.ClearRole()
		return nil
	case memoryentry.FieldTags:
		m.ClearTags()
		return nil
	case memoryentry.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown MemoryEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemoryEntryMutation) ResetField(name string) error {
	switch name {
	case memoryentry.FieldConversationID:
		m.ResetConversationID()
		return nil
	case memoryentry.FieldSessionID:
		m.ResetSessionID()
		return nil
	case memoryentry.FieldRole:
		m.ResetRole()
		return nil
	case memoryentry.FieldContent:
		m.ResetContent()
		return nil
	case memoryentry.FieldContextType:
		m.ResetContextType()
		return nil
	case memoryentry.FieldImportanceScore:
		m.ResetImportanceScore()
		return nil
	case memoryentry.FieldTags:
		m.ResetTags()
		return nil
	case memoryentry.FieldMetadata:
		m.ResetMetadata()
		return nil
	case memoryentry.FieldTTLSeconds:
		m.ResetTTLSeconds()
		return nil
	case memoryentry.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown MemoryEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemoryEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemoryEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemoryEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemoryEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemoryEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemoryEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemoryEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MemoryEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemoryEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MemoryEntry edge %s", name)
}

// ModelConfigMutation represents an operation that mutates the ModelConfig nodes in the graph.
type ModelConfigMutation struct {
	config
	op             Op
	typ            string
	id             *string
	model_name     *string
	provider       *string
	api_base_url   *string
	max_tokens     *int
	addmax_tokens  *int
	temperature    *float64
	addtemperature *float64
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ModelConfig, error)
	predicates     []predicate.ModelConfig
}

var _ ent.Mutation = (*ModelConfigMutation)(nil)

// modelconfigOption allows management of the mutation configuration using functional options.
type modelconfigOption func(*ModelConfigMutation)

// newModelConfigMutation creates new mutation for the ModelConfig entity.
func newModelConfigMutation(c config, op Op, opts ...modelconfigOption) *ModelConfigMutation {
	m := &ModelConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeModelConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelConfigID sets the ID field of the mutation.
func withModelConfigID(id string) modelconfigOption {
	return func(m *ModelConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelConfig
		)
		m.oldValue = func(ctx context.Context) (*ModelConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelConfig sets the old ModelConfig of the mutation.
func withModelConfig(node *ModelConfig) modelconfigOption {
	return func(m *ModelConfigMutation) {
		m.oldValue = func(context.Context) (*ModelConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModelConfig entities.
func (m *ModelConfigMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelConfigMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelConfigMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetModelName sets the "model_name" field.
func (m *ModelConfigMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ModelConfigMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ModelConfigMutation) ResetModelName() {
	m.model_name = nil
}

// SetProvider sets the "provider" field.
func (m *ModelConfigMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ModelConfigMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ModelConfigMutation) ResetProvider() {
	m.provider = nil
}

// SetAPIBaseURL sets the "api_base_url" field.
func (m *ModelConfigMutation) SetAPIBaseURL(s string) {
	m.api_base_url = &s
}

// APIBaseURL returns the value of the "api_base_url" field in the mutation.
func (m *ModelConfigMutation) APIBaseURL() (r string, exists bool) {
	v := m.api_base_url
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIBaseURL returns the old "api_base_url" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldAPIBaseURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIBaseURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIBaseURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIBaseURL: %w", err)
	}
	return oldValue.APIBaseURL, nil
}

// ClearAPIBaseURL clears the value of the "api_base_url" field.
func (m *ModelConfigMutation) ClearAPIBaseURL() {
	m.api_base_url = nil
	m.clearedFields[modelconfig.FieldAPIBaseURL] = struct{}{}
}

// APIBaseURLCleared returns if the "api_base_url" field was cleared in this mutation.
func (m *ModelConfigMutation) APIBaseURLCleared() bool {
	_, ok := m.clearedFields[modelconfig.FieldAPIBaseURL]
	return ok
}

// ResetAPIBaseURL resets all changes to the "api_base_url" field.
func (m *ModelConfigMutation) ResetAPIBaseURL() {
	m.api_base_url = nil
	delete(m.clearedFields, modelconfig.FieldAPIBaseURL)
}

// SetMaxTokens sets the "max_tokens" field.
func (m *ModelConfigMutation) SetMaxTokens(i int) {
	m.max_tokens = &i
	m.addmax_tokens = nil
}

// MaxTokens returns the value of the "max_tokens" field in the mutation.
func (m *ModelConfigMutation) MaxTokens() (r int, exists bool) {
	v := m.max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokens returns the old "max_tokens" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldMaxTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokens: %w", err)
	}
	return oldValue.MaxTokens, nil
}

// AddMaxTokens adds i to the "max_tokens" field.
func (m *ModelConfigMutation) AddMaxTokens(i int) {
	if m.addmax_tokens != nil {
		*m.addmax_tokens += i
	} else {
		m.addmax_tokens = &i
	}
}

// AddedMaxTokens returns the value that was added to the "max_tokens" field in this mutation.
func (m *ModelConfigMutation) AddedMaxTokens() (r int, exists bool) {
	v := m.addmax_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTokens resets all changes to the "max_tokens" field.
func (m *ModelConfigMutation) ResetMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
}

// SetTemperature sets the "temperature" field.
func (m *ModelConfigMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *ModelConfigMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldTemperature(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *ModelConfigMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *ModelConfigMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *ModelConfigMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ModelConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModelConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModelConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ModelConfigMutation builder.
func (m *ModelConfigMutation) Where(ps ...predicate.ModelConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelConfig).
func (m *ModelConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelConfigMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.model_name != nil {
		fields = append(fields, modelconfig.FieldModelName)
	}
	if m.provider != nil {
		fields = append(fields, modelconfig.FieldProvider)
	}
	if m.api_base_url != nil {
		fields = append(fields, modelconfig.FieldAPIBaseURL)
	}
	if m.max_tokens != nil {
		fields = append(fields, modelconfig.FieldMaxTokens)
	}
	if m.temperature != nil {
		fields = append(fields, modelconfig.FieldTemperature)
	}
	if m.created_at != nil {
		fields = append(fields, modelconfig.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modelconfig.FieldModelName:
		return m.ModelName()
	case modelconfig.FieldProvider:
		return m.Provider()
	case modelconfig.FieldAPIBaseURL:
		return m.APIBaseURL()
	case modelconfig.FieldMaxTokens:
		return m.MaxTokens()
	case modelconfig.FieldTemperature:
		return m.Temperature()
	case modelconfig.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modelconfig.FieldModelName:
		return m.OldModelName(ctx)
	case modelconfig.FieldProvider:
		return m.OldProvider(ctx)
	case modelconfig.FieldAPIBaseURL:
		return m.OldAPIBaseURL(ctx)
	case modelconfig.FieldMaxTokens:
		return m.OldMaxTokens(ctx)
	case modelconfig.FieldTemperature:
		return m.OldTemperature(ctx)
	case modelconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ModelConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modelconfig.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case modelconfig.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case modelconfig.FieldAPIBaseURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIBaseURL(v)
		return nil
	case modelconfig.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokens(v)
		return nil
	case modelconfig.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case modelconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ModelConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelConfigMutation) AddedFields() []string {
	var fields []string
	if m.addmax_tokens != nil {
		fields = append(fields, modelconfig.FieldMaxTokens)
	}
	if m.addtemperature != nil {
		fields = append(fields, modelconfig.FieldTemperature)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case modelconfig.FieldMaxTokens:
		return m.AddedMaxTokens()
	case modelconfig.FieldTemperature:
		return m.AddedTemperature()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case modelconfig.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokens(v)
		return nil
	case modelconfig.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	}
	return fmt.Errorf("unknown ModelConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(modelconfig.FieldAPIBaseURL) {
		fields = append(fields, modelconfig.FieldAPIBaseURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelConfigMutation) ClearField(name string) error {
	switch name {
	case modelconfig.FieldAPIBaseURL:
		m.ClearAPIBaseURL()
		return nil
	}
	return fmt.Errorf("unknown ModelConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelConfigMutation) ResetField(name string) error {
	switch name {
	case modelconfig.FieldModelName:
		m.ResetModelName()
		return nil
	case modelconfig.FieldProvider:
		m.ResetProvider()
		return nil
	case modelconfig.FieldAPIBaseURL:
		m.ResetAPIBaseURL()
		return nil
	case modelconfig.FieldMaxTokens:
		m.ResetMaxTokens()
		return nil
	case modelconfig.FieldTemperature:
		m.ResetTemperature()
		return nil
	case modelconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ModelConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ModelConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ModelConfig edge %s", name)
}

// PromptTemplateMutation represents an operation that mutates the PromptTemplate nodes in the graph.
type PromptTemplateMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	description      *string
	category         *string
	template_content *string
	variables        *[]string
	appendvariables  []string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*PromptTemplate, error)
	predicates       []predicate.PromptTemplate
}

var _ ent.Mutation = (*PromptTemplateMutation)(nil)

// prompttemplateOption allows management of the mutation configuration using functional options.
type prompttemplateOption func(*PromptTemplateMutation)

// newPromptTemplateMutation creates new mutation for the PromptTemplate entity.
func newPromptTemplateMutation(c config, op Op, opts ...prompttemplateOption) *PromptTemplateMutation {
	m := &PromptTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypePromptTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptTemplateID sets the ID field of the mutation.
func withPromptTemplateID(id string) prompttemplateOption {
	return func(m *PromptTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *PromptTemplate
		)
		m.oldValue = func(ctx context.Context) (*PromptTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromptTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromptTemplate sets the old PromptTemplate of the mutation.
func withPromptTemplate(node *PromptTemplate) prompttemplateOption {
	return func(m *PromptTemplateMutation) {
		m.oldValue = func(context.Context) (*PromptTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PromptTemplate entities.
func (m *PromptTemplateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptTemplateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptTemplateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromptTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PromptTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PromptTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PromptTemplateMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *PromptTemplateMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PromptTemplateMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PromptTemplateMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[prompttemplate.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PromptTemplateMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[prompttemplate.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PromptTemplateMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, prompttemplate.FieldDescription)
}

// SetCategory sets the "category" field.
func (m *PromptTemplateMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *PromptTemplateMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *PromptTemplateMutation) ResetCategory() {
	m.category = nil
}

// SetTemplateContent sets the "template_content" field.
func (m *PromptTemplateMutation) SetTemplateContent(s string) {
	m.template_content = &s
}

// TemplateContent returns the value of the "template_content" field in the mutation.
func (m *PromptTemplateMutation) TemplateContent() (r string, exists bool) {
	v := m.template_content
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateContent returns the old "template_content" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldTemplateContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateContent: %w", err)
	}
	return oldValue.TemplateContent, nil
}

// ResetTemplateContent resets all changes to the "template_content" field.
func (m *PromptTemplateMutation) ResetTemplateContent() {
	m.template_content = nil
}

// SetVariables sets the "variables" field.
func (m *PromptTemplateMutation) SetVariables(s []string) {
	m.variables = &s
	m.appendvariables = nil
}

// Variables returns the value of the "variables" field in the mutation.
func (m *PromptTemplateMutation) Variables() (r []string, exists bool) {
	v := m.variables
	if v == nil {
		return
	}
	return *v, true
}

// OldVariables returns the old "variables" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldVariables(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariables: %w", err)
	}
	return oldValue.Variables, nil
}

// AppendVariables adds s to the "variables" field.
func (m *PromptTemplateMutation) AppendVariables(s []string) {
	m.appendvariables = append(m.appendvariables, s...)
}

// AppendedVariables returns the list of values that were appended to the "variables" field in this mutation.
func (m *PromptTemplateMutation) AppendedVariables() ([]string, bool) {
	if len(m.appendvariables) == 0 {
		return nil, false
	}
	return m.appendvariables, true
}

// ClearVariables clears the value of the "variables" field.
func (m *PromptTemplateMutation) ClearVariables() {
	m.variables = nil
	m.appendvariables = nil
	m.clearedFields[prompttemplate.FieldVariables] = struct{}{}
}

// VariablesCleared returns if the "variables" field was cleared in this mutation.
func (m *PromptTemplateMutation) VariablesCleared() bool {
	_, ok := m.clearedFields[prompttemplate.FieldVariables]
	return ok
}

// ResetVariables resets all changes to the "variables" field.
func (m *PromptTemplateMutation) ResetVariables() {
	m.variables = nil
	m.appendvariables = nil
	delete(m.clearedFields, prompttemplate.FieldVariables)
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PromptTemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PromptTemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PromptTemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PromptTemplateMutation builder.
func (m *PromptTemplateMutation) Where(ps ...predicate.PromptTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromptTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromptTemplate).
func (m *PromptTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptTemplateMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, prompttemplate.FieldName)
	}
	if m.description != nil {
		fields = append(fields, prompttemplate.FieldDescription)
	}
	if m.category != nil {
		fields = append(fields, prompttemplate.FieldCategory)
	}
	if m.template_content != nil {
		fields = append(fields, prompttemplate.FieldTemplateContent)
	}
	if m.variables != nil {
		fields = append(fields, prompttemplate.FieldVariables)
	}
	if m.created_at != nil {
		fields = append(fields, prompttemplate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, prompttemplate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prompttemplate.FieldName:
		return m.Name()
	case prompttemplate.FieldDescription:
		return m.Description()
	case prompttemplate.FieldCategory:
		return m.Category()
	case prompttemplate.FieldTemplateContent:
		return m.TemplateContent()
	case prompttemplate.FieldVariables:
		return m.Variables()
	case prompttemplate.FieldCreatedAt:
		return m.CreatedAt()
	case prompttemplate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prompttemplate.FieldName:
		return m.OldName(ctx)
	case prompttemplate.FieldDescription:
		return m.OldDescription(ctx)
	case prompttemplate.FieldCategory:
		return m.OldCategory(ctx)
	case prompttemplate.FieldTemplateContent:
		return m.OldTemplateContent(ctx)
	case prompttemplate.FieldVariables:
		return m.OldVariables(ctx)
	case prompttemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case prompttemplate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PromptTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prompttemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case prompttemplate.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case prompttemplate.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case prompttemplate.FieldTemplateContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateContent(v)
		return nil
	case prompttemplate.FieldVariables:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariables(v)
		return nil
	case prompttemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case prompttemplate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptTemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptTemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PromptTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prompttemplate.FieldDescription) {
		fields = append(fields, prompttemplate.FieldDescription)
	}
	if m.FieldCleared(prompttemplate.FieldVariables) {
		fields = append(fields, prompttemplate.FieldVariables)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptTemplateMutation) ClearField(name string) error {
	switch name {
	case prompttemplate.FieldDescription:
		m.ClearDescription()
		return nil
	case prompttemplate.FieldVariables:
		m.ClearVariables()
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptTemplateMutation) ResetField(name string) error {
	switch name {
	case prompttemplate.FieldName:
		m.ResetName()
		return nil
	case prompttemplate.FieldDescription:
		m.ResetDescription()
		return nil
	case prompttemplate.FieldCategory:
		m.ResetCategory()
		return nil
	case prompttemplate.FieldTemplateContent:
		m.ResetTemplateContent()
		return nil
	case prompttemplate.FieldVariables:
		m.ResetVariables()
		return nil
	case prompttemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case prompttemplate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptTemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptTemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptTemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PromptTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptTemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PromptTemplate edge %s", name)
}

// PromptUsageMutation represents an operation that mutates the PromptUsage nodes in the graph.
type PromptUsageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	template_id         *string
	ai_model            *string
	response_time_ms    *int
	addresponse_time_ms *int
	success             *bool
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*PromptUsage, error)
	predicates          []predicate.PromptUsage
}

var _ ent.Mutation = (*PromptUsageMutation)(nil)

// promptusageOption allows management of the mutation configuration using functional options.
type promptusageOption func(*PromptUsageMutation)

// newPromptUsageMutation creates new mutation for the PromptUsage entity.
func newPromptUsageMutation(c config, op Op, opts ...promptusageOption) *PromptUsageMutation {
	m := &PromptUsageMutation{
		config:        c,
		op:            op,
		typ:           TypePromptUsage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptUsageID sets the ID field of the mutation.
func withPromptUsageID(id string) promptusageOption {
	return func(m *PromptUsageMutation) {
		var (
			err   error
			once  sync.Once
			value *PromptUsage
		)
		m.oldValue = func(ctx context.Context) (*PromptUsage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromptUsage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromptUsage sets the old PromptUsage of the mutation.
func withPromptUsage(node *PromptUsage) promptusageOption {
	return func(m *PromptUsageMutation) {
		m.oldValue = func(context.Context) (*PromptUsage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptUsageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptUsageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PromptUsage entities.
func (m *PromptUsageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptUsageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptUsageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromptUsage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTemplateID sets the "template_id" field.
func (m *PromptUsageMutation) SetTemplateID(s string) {
	m.template_id = &s
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *PromptUsageMutation) TemplateID() (r string, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the PromptUsage entity.
// If the PromptUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptUsageMutation) OldTemplateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *PromptUsageMutation) ResetTemplateID() {
	m.template_id = nil
}

// SetAiModel sets the "ai_model" field.
func (m *PromptUsageMutation) SetAiModel(s string) {
	m.ai_model = &s
}

// AiModel returns the value of the "ai_model" field in the mutation.
func (m *PromptUsageMutation) AiModel() (r string, exists bool) {
	v := m.ai_model
	if v == nil {
		return
	}
	return *v, true
}

// OldAiModel returns the old "ai_model" field's value of the PromptUsage entity.
// If the PromptUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptUsageMutation) OldAiModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiModel: %w", err)
	}
	return oldValue.AiModel, nil
}

// ClearAiModel clears the value of the "ai_model" field.
func (m *PromptUsageMutation) ClearAiModel() {
	m.ai_model = nil
	m.clearedFields[promptusage.FieldAiModel] = struct{}{}
}

// AiModelCleared returns if the "ai_model" field was cleared in this mutation.
func (m *PromptUsageMutation) AiModelCleared() bool {
	_, ok := m.clearedFields[promptusage.FieldAiModel]
	return ok
}

// ResetAiModel resets all changes to the "ai_model" field.
func (m *PromptUsageMutation) ResetAiModel() {
	m.ai_model = nil
	delete(m.clearedFields, promptusage.FieldAiModel)
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (m *PromptUsageMutation) SetResponseTimeMs(i int) {
	m.response_time_ms = &i
	m.addresponse_time_ms = nil
}

// ResponseTimeMs returns the value of the "response_time_ms" field in the mutation.
func (m *PromptUsageMutation) ResponseTimeMs() (r int, exists bool) {
	v := m.response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMs returns the old "response_time_ms" field's value of the PromptUsage entity.
// If the PromptUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptUsageMutation) OldResponseTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMs: %w", err)
	}
	return oldValue.ResponseTimeMs, nil
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (m *PromptUsageMutation) AddResponseTimeMs(i int) {
	if m.addresponse_time_ms != nil {
		*m.addresponse_time_ms += i
	} else {
		m.addresponse_time_ms = &i
	}
}

// AddedResponseTimeMs returns the value that was added to the "response_time_ms" field in this mutation.
func (m *PromptUsageMutation) AddedResponseTimeMs() (r int, exists bool) {
	v := m.addresponse_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseTimeMs resets all changes to the "response_time_ms" field.
func (m *PromptUsageMutation) ResetResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
}

// SetSuccess sets the "success" field.
func (m *PromptUsageMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *PromptUsageMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the PromptUsage entity.
// If the PromptUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptUsageMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *PromptUsageMutation) ResetSuccess() {
	m.success = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptUsageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptUsageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PromptUsage entity.
// If the PromptUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptUsageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptUsageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PromptUsageMutation builder.
func (m *PromptUsageMutation) Where(ps ...predicate.PromptUsage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptUsageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptUsageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromptUsage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptUsageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptUsageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromptUsage).
func (m *PromptUsageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptUsageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.template_id != nil {
		fields = append(fields, promptusage.FieldTemplateID)
	}
	if m.ai_model != nil {
		fields = append(fields, promptusage.FieldAiModel)
	}
	if m.response_time_ms != nil {
		fields = append(fields, promptusage.FieldResponseTimeMs)
	}
	if m.success != nil {
		fields = append(fields, promptusage.FieldSuccess)
	}
	if m.created_at != nil {
		fields = append(fields, promptusage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptUsageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case promptusage.FieldTemplateID:
		return m.TemplateID()
	case promptusage.FieldAiModel:
		return m.AiModel()
	case promptusage.FieldResponseTimeMs:
		return m.ResponseTimeMs()
	case promptusage.FieldSuccess:
		return m.Success()
	case promptusage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptUsageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case promptusage.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case promptusage.FieldAiModel:
		return m.OldAiModel(ctx)
	case promptusage.FieldResponseTimeMs:
		return m.OldResponseTimeMs(ctx)
	case promptusage.FieldSuccess:
		return m.OldSuccess(ctx)
	case promptusage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PromptUsage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptUsageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case promptusage.FieldTemplateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case promptusage.FieldAiModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiModel(v)
		return nil
	case promptusage.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMs(v)
		return nil
	case promptusage.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case promptusage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PromptUsage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptUsageMutation) AddedFields() []string {
	var fields []string
	if m.addresponse_time_ms != nil {
		fields = append(fields, promptusage.FieldResponseTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptUsageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case promptusage.FieldResponseTimeMs:
		return m.AddedResponseTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptUsageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case promptusage.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown PromptUsage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptUsageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(promptusage.FieldAiModel) {
		fields = append(fields, promptusage.FieldAiModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptUsageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptUsageMutation) ClearField(name string) error {
	switch name {
	case promptusage.FieldAiModel:
		m.ClearAiModel()
		return nil
	}
	return fmt.Errorf("unknown PromptUsage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptUsageMutation) ResetField(name string) error {
	switch name {
	case promptusage.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case promptusage.FieldAiModel:
		m.ResetAiModel()
		return nil
	case promptusage.FieldResponseTimeMs:
		m.ResetResponseTimeMs()
		return nil
	case promptusage.FieldSuccess:
		m.ResetSuccess()
		return nil
	case promptusage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PromptUsage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptUsageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptUsageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptUsageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptUsageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptUsageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptUsageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptUsageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PromptUsage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptUsageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PromptUsage edge %s", name)
}
