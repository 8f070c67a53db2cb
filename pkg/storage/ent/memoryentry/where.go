// Code generated by ent, DO NOT EDIT.

package memoryentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/recallhq/recall/pkg/storage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldContainsFold(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEQ(FieldConversationID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEQ(FieldSessionID, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEQ(FieldRole, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEQ(FieldContent, v))
}

// ContextType applies equality check predicate on the "context_type" field. It's identical to ContextTypeEQ.
func ContextType(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEQ(FieldContextType, v))
}

// ImportanceScore applies equality check predicate on the "importance_score" field. It's identical to ImportanceScoreEQ.
func ImportanceScore(v float64) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEQ(FieldImportanceScore, v))
}

// TTLSeconds applies equality check predicate on the "ttl_seconds" field. It's identical to TTLSecondsEQ.
func TTLSeconds(v int) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEQ(FieldTTLSeconds, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEQ(FieldTimestamp, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldContainsFold(FieldConversationID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldContainsFold(FieldSessionID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldHasSuffix(FieldRole, v))
}

// RoleIsNil applies the IsNil predicate on the "role" field.
func RoleIsNil() predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldIsNull(FieldRole))
}

// RoleNotNil applies the NotNil predicate on the "role" field.
func RoleNotNil() predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNotNull(FieldRole))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldContainsFold(FieldRole, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldContainsFold(FieldContent, v))
}

// ContextTypeEQ applies the EQ predicate on the "context_type" field.
func ContextTypeEQ(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEQ(FieldContextType, v))
}

// ContextTypeNEQ applies the NEQ predicate on the "context_type" field.
func ContextTypeNEQ(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNEQ(FieldContextType, v))
}

// ContextTypeIn applies the In predicate on the "context_type" field.
func ContextTypeIn(vs ...string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldIn(FieldContextType, vs...))
}

// ContextTypeNotIn applies the NotIn predicate on the "context_type" field.
func ContextTypeNotIn(vs ...string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNotIn(FieldContextType, vs...))
}

// ContextTypeGT applies the GT predicate on the "context_type" field.
func ContextTypeGT(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldGT(FieldContextType, v))
}

// ContextTypeGTE applies the GTE predicate on the "context_type" field.
func ContextTypeGTE(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldGTE(FieldContextType, v))
}

// ContextTypeLT applies the LT predicate on the "context_type" field.
func ContextTypeLT(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldLT(FieldContextType, v))
}

// ContextTypeLTE applies the LTE predicate on the "context_type" field.
func ContextTypeLTE(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldLTE(FieldContextType, v))
}

// ContextTypeContains applies the Contains predicate on the "context_type" field.
func ContextTypeContains(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldContains(FieldContextType, v))
}

// ContextTypeHasPrefix applies the HasPrefix predicate on the "context_type" field.
func ContextTypeHasPrefix(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldHasPrefix(FieldContextType, v))
}

// ContextTypeHasSuffix applies the HasSuffix predicate on the "context_type" field.
func ContextTypeHasSuffix(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldHasSuffix(FieldContextType, v))
}

// ContextTypeEqualFold applies the EqualFold predicate on the "context_type" field.
func ContextTypeEqualFold(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEqualFold(FieldContextType, v))
}

// ContextTypeContainsFold applies the ContainsFold predicate on the "context_type" field.
func ContextTypeContainsFold(v string) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldContainsFold(FieldContextType, v))
}

// ImportanceScoreEQ applies the EQ predicate on the "importance_score" field.
func ImportanceScoreEQ(v float64) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEQ(FieldImportanceScore, v))
}

// ImportanceScoreNEQ applies the NEQ predicate on the "importance_score" field.
func ImportanceScoreNEQ(v float64) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNEQ(FieldImportanceScore, v))
}

// ImportanceScoreIn applies the In predicate on the "importance_score" field.
func ImportanceScoreIn(vs ...float64) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldIn(FieldImportanceScore, vs...))
}

// ImportanceScoreNotIn applies the NotIn predicate on the "importance_score" field.
func ImportanceScoreNotIn(vs ...float64) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNotIn(FieldImportanceScore, vs...))
}

// ImportanceScoreGT applies the GT predicate on the "importance_score" field.
func ImportanceScoreGT(v float64) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldGT(FieldImportanceScore, v))
}

// ImportanceScoreGTE applies the GTE predicate on the "importance_score" field.
func ImportanceScoreGTE(v float64) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldGTE(FieldImportanceScore, v))
}

// ImportanceScoreLT applies the LT predicate on the "importance_score" field.
func ImportanceScoreLT(v float64) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldLT(FieldImportanceScore, v))
}

// ImportanceScoreLTE applies the LTE predicate on the "importance_score" field.
func ImportanceScoreLTE(v float64) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldLTE(FieldImportanceScore, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNotNull(FieldTags))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNotNull(FieldMetadata))
}

// TTLSecondsEQ applies the EQ predicate on the "ttl_seconds" field.
func TTLSecondsEQ(v int) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEQ(FieldTTLSeconds, v))
}

// TTLSecondsNEQ applies the NEQ predicate on the "ttl_seconds" field.
func TTLSecondsNEQ(v int) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNEQ(FieldTTLSeconds, v))
}

// TTLSecondsIn applies the In predicate on the "ttl_seconds" field.
func TTLSecondsIn(vs ...int) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldIn(FieldTTLSeconds, vs...))
}

// TTLSecondsNotIn applies the NotIn predicate on the "ttl_seconds" field.
func TTLSecondsNotIn(vs ...int) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNotIn(FieldTTLSeconds, vs...))
}

// TTLSecondsGT applies the GT predicate on the "ttl_seconds" field.
func TTLSecondsGT(v int) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldGT(FieldTTLSeconds, v))
}

// TTLSecondsGTE applies the GTE predicate on the "ttl_seconds" field.
func TTLSecondsGTE(v int) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldGTE(FieldTTLSeconds, v))
}

// TTLSecondsLT applies the LT predicate on the "ttl_seconds" field.
func TTLSecondsLT(v int) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldLT(FieldTTLSeconds, v))
}

// TTLSecondsLTE applies the LTE predicate on the "ttl_seconds" field.
func TTLSecondsLTE(v int) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldLTE(FieldTTLSeconds, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.FieldLTE(FieldTimestamp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MemoryEntry) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MemoryEntry) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MemoryEntry) predicate.MemoryEntry {
	return predicate.MemoryEntry(sql.NotPredicates(p))
}
