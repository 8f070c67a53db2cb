// Code generated by ent, DO NOT EDIT.

package contextrelationship

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/recallhq/recall/pkg/storage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldContainsFold(FieldID, id))
}

// SourceMemoryID applies equality check predicate on the "source_memory_id" field. It's identical to SourceMemoryIDEQ.
func SourceMemoryID(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldEQ(FieldSourceMemoryID, v))
}

// TargetMemoryID applies equality check predicate on the "target_memory_id" field. It's identical to TargetMemoryIDEQ.
func TargetMemoryID(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldEQ(FieldTargetMemoryID, v))
}

// RelationshipType applies equality check predicate on the "relationship_type" field. It's identical to RelationshipTypeEQ.
func RelationshipType(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldEQ(FieldRelationshipType, v))
}

// Strength applies equality check predicate on the "strength" field. It's identical to StrengthEQ.
func Strength(v float64) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldEQ(FieldStrength, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldEQ(FieldCreatedAt, v))
}

// SourceMemoryIDEQ applies the EQ predicate on the "source_memory_id" field.
func SourceMemoryIDEQ(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldEQ(FieldSourceMemoryID, v))
}

// SourceMemoryIDNEQ applies the NEQ predicate on the "source_memory_id" field.
func SourceMemoryIDNEQ(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldNEQ(FieldSourceMemoryID, v))
}

// SourceMemoryIDIn applies the In predicate on the "source_memory_id" field.
func SourceMemoryIDIn(vs ...string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldIn(FieldSourceMemoryID, vs...))
}

// SourceMemoryIDNotIn applies the NotIn predicate on the "source_memory_id" field.
func SourceMemoryIDNotIn(vs ...string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldNotIn(FieldSourceMemoryID, vs...))
}

// SourceMemoryIDGT applies the GT predicate on the "source_memory_id" field.
func SourceMemoryIDGT(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldGT(FieldSourceMemoryID, v))
}

// SourceMemoryIDGTE applies the GTE predicate on the "source_memory_id" field.
func SourceMemoryIDGTE(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldGTE(FieldSourceMemoryID, v))
}

// SourceMemoryIDLT applies the LT predicate on the "source_memory_id" field.
func SourceMemoryIDLT(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldLT(FieldSourceMemoryID, v))
}

// SourceMemoryIDLTE applies the LTE predicate on the "source_memory_id" field.
func SourceMemoryIDLTE(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldLTE(FieldSourceMemoryID, v))
}

// SourceMemoryIDContains applies the Contains predicate on the "source_memory_id" field.
func SourceMemoryIDContains(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldContains(FieldSourceMemoryID, v))
}

// SourceMemoryIDHasPrefix applies the HasPrefix predicate on the "source_memory_id" field.
func SourceMemoryIDHasPrefix(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldHasPrefix(FieldSourceMemoryID, v))
}

// SourceMemoryIDHasSuffix applies the HasSuffix predicate on the "source_memory_id" field.
func SourceMemoryIDHasSuffix(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldHasSuffix(FieldSourceMemoryID, v))
}

// SourceMemoryIDEqualFold applies the EqualFold predicate on the "source_memory_id" field.
func SourceMemoryIDEqualFold(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldEqualFold(FieldSourceMemoryID, v))
}

// SourceMemoryIDContainsFold applies the ContainsFold predicate on the "source_memory_id" field.
func SourceMemoryIDContainsFold(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldContainsFold(FieldSourceMemoryID, v))
}

// TargetMemoryIDEQ applies the EQ predicate on the "target_memory_id" field.
func TargetMemoryIDEQ(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldEQ(FieldTargetMemoryID, v))
}

// TargetMemoryIDNEQ applies the NEQ predicate on the "target_memory_id" field.
func TargetMemoryIDNEQ(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldNEQ(FieldTargetMemoryID, v))
}

// TargetMemoryIDIn applies the In predicate on the "target_memory_id" field.
func TargetMemoryIDIn(vs ...string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldIn(FieldTargetMemoryID, vs...))
}

// TargetMemoryIDNotIn applies the NotIn predicate on the "target_memory_id" field.
func TargetMemoryIDNotIn(vs ...string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldNotIn(FieldTargetMemoryID, vs...))
}

// TargetMemoryIDGT applies the GT predicate on the "target_memory_id" field.
func TargetMemoryIDGT(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldGT(FieldTargetMemoryID, v))
}

// TargetMemoryIDGTE applies the GTE predicate on the "target_memory_id" field.
func TargetMemoryIDGTE(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldGTE(FieldTargetMemoryID, v))
}

// TargetMemoryIDLT applies the LT predicate on the "target_memory_id" field.
func TargetMemoryIDLT(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldLT(FieldTargetMemoryID, v))
}

// TargetMemoryIDLTE applies the LTE predicate on the "target_memory_id" field.
func TargetMemoryIDLTE(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldLTE(FieldTargetMemoryID, v))
}

// TargetMemoryIDContains applies the Contains predicate on the "target_memory_id" field.
func TargetMemoryIDContains(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldContains(FieldTargetMemoryID, v))
}

// TargetMemoryIDHasPrefix applies the HasPrefix predicate on the "target_memory_id" field.
func TargetMemoryIDHasPrefix(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldHasPrefix(FieldTargetMemoryID, v))
}

// TargetMemoryIDHasSuffix applies the HasSuffix predicate on the "target_memory_id" field.
func TargetMemoryIDHasSuffix(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldHasSuffix(FieldTargetMemoryID, v))
}

// TargetMemoryIDEqualFold applies the EqualFold predicate on the "target_memory_id" field.
func TargetMemoryIDEqualFold(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldEqualFold(FieldTargetMemoryID, v))
}

// TargetMemoryIDContainsFold applies the ContainsFold predicate on the "target_memory_id" field.
func TargetMemoryIDContainsFold(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldContainsFold(FieldTargetMemoryID, v))
}

// RelationshipTypeEQ applies the EQ predicate on the "relationship_type" field.
func RelationshipTypeEQ(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldEQ(FieldRelationshipType, v))
}

// RelationshipTypeNEQ applies the NEQ predicate on the "relationship_type" field.
func RelationshipTypeNEQ(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldNEQ(FieldRelationshipType, v))
}

// RelationshipTypeIn applies the In predicate on the "relationship_type" field.
func RelationshipTypeIn(vs ...string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldIn(FieldRelationshipType, vs...))
}

// RelationshipTypeNotIn applies the NotIn predicate on the "relationship_type" field.
func RelationshipTypeNotIn(vs ...string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldNotIn(FieldRelationshipType, vs...))
}

// RelationshipTypeGT applies the GT predicate on the "relationship_type" field.
func RelationshipTypeGT(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldGT(FieldRelationshipType, v))
}

// RelationshipTypeGTE applies the GTE predicate on the "relationship_type" field.
func RelationshipTypeGTE(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldGTE(FieldRelationshipType, v))
}

// RelationshipTypeLT applies the LT predicate on the "relationship_type" field.
func RelationshipTypeLT(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldLT(FieldRelationshipType, v))
}

// RelationshipTypeLTE applies the LTE predicate on the "relationship_type" field.
func RelationshipTypeLTE(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldLTE(FieldRelationshipType, v))
}

// RelationshipTypeContains applies the Contains predicate on the "relationship_type" field.
func RelationshipTypeContains(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldContains(FieldRelationshipType, v))
}

// RelationshipTypeHasPrefix applies the HasPrefix predicate on the "relationship_type" field.
func RelationshipTypeHasPrefix(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldHasPrefix(FieldRelationshipType, v))
}

// RelationshipTypeHasSuffix applies the HasSuffix predicate on the "relationship_type" field.
func RelationshipTypeHasSuffix(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldHasSuffix(FieldRelationshipType, v))
}

// RelationshipTypeEqualFold applies the EqualFold predicate on the "relationship_type" field.
func RelationshipTypeEqualFold(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldEqualFold(FieldRelationshipType, v))
}

// RelationshipTypeContainsFold applies the ContainsFold predicate on the "relationship_type" field.
func RelationshipTypeContainsFold(v string) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldContainsFold(FieldRelationshipType, v))
}

// StrengthEQ applies the EQ predicate on the "strength" field.
func StrengthEQ(v float64) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldEQ(FieldStrength, v))
}

// StrengthNEQ applies the NEQ predicate on the "strength" field.
func StrengthNEQ(v float64) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldNEQ(FieldStrength, v))
}

// StrengthIn applies the In predicate on the "strength" field.
func StrengthIn(vs ...float64) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldIn(FieldStrength, vs...))
}

// StrengthNotIn applies the NotIn predicate on the "strength" field.
func StrengthNotIn(vs ...float64) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldNotIn(FieldStrength, vs...))
}

// StrengthGT applies the GT predicate on the "strength" field.
func StrengthGT(v float64) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldGT(FieldStrength, v))
}

// StrengthGTE applies the GTE predicate on the "strength" field.
func StrengthGTE(v float64) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldGTE(FieldStrength, v))
}

// StrengthLT applies the LT predicate on the "strength" field.
func StrengthLT(v float64) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldLT(FieldStrength, v))
}

// StrengthLTE applies the LTE predicate on the "strength" field.
func StrengthLTE(v float64) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldLTE(FieldStrength, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContextRelationship) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContextRelationship) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContextRelationship) predicate.ContextRelationship {
	return predicate.ContextRelationship(sql.NotPredicates(p))
}
