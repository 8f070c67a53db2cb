// Code generated by ent, DO NOT EDIT.

package promptusage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/recallhq/recall/pkg/storage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldContainsFold(FieldID, id))
}

// TemplateID applies equality check predicate on the "template_id" field. It's identical to TemplateIDEQ.
func TemplateID(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldEQ(FieldTemplateID, v))
}

// AiModel applies equality check predicate on the "ai_model" field. It's identical to AiModelEQ.
func AiModel(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldEQ(FieldAiModel, v))
}

// ResponseTimeMs applies equality check predicate on the "response_time_ms" field. It's identical to ResponseTimeMsEQ.
func ResponseTimeMs(v int) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldEQ(FieldResponseTimeMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldEQ(FieldSuccess, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// TemplateIDEQ applies the EQ predicate on the "template_id" field.
func TemplateIDEQ(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateIDNEQ applies the NEQ predicate on the "template_id" field.
func TemplateIDNEQ(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldNEQ(FieldTemplateID, v))
}

// TemplateIDIn applies the In predicate on the "template_id" field.
func TemplateIDIn(vs ...string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldIn(FieldTemplateID, vs...))
}

// TemplateIDNotIn applies the NotIn predicate on the "template_id" field.
func TemplateIDNotIn(vs ...string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldNotIn(FieldTemplateID, vs...))
}

// TemplateIDGT applies the GT predicate on the "template_id" field.
func TemplateIDGT(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldGT(FieldTemplateID, v))
}

// TemplateIDGTE applies the GTE predicate on the "template_id" field.
func TemplateIDGTE(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldGTE(FieldTemplateID, v))
}

// TemplateIDLT applies the LT predicate on the "template_id" field.
func TemplateIDLT(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldLT(FieldTemplateID, v))
}

// TemplateIDLTE applies the LTE predicate on the "template_id" field.
func TemplateIDLTE(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldLTE(FieldTemplateID, v))
}

// TemplateIDContains applies the Contains predicate on the "template_id" field.
func TemplateIDContains(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldContains(FieldTemplateID, v))
}

// TemplateIDHasPrefix applies the HasPrefix predicate on the "template_id" field.
func TemplateIDHasPrefix(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldHasPrefix(FieldTemplateID, v))
}

// TemplateIDHasSuffix applies the HasSuffix predicate on the "template_id" field.
func TemplateIDHasSuffix(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldHasSuffix(FieldTemplateID, v))
}

// TemplateIDEqualFold applies the EqualFold predicate on the "template_id" field.
func TemplateIDEqualFold(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldEqualFold(FieldTemplateID, v))
}

// TemplateIDContainsFold applies the ContainsFold predicate on the "template_id" field.
func TemplateIDContainsFold(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldContainsFold(FieldTemplateID, v))
}

// AiModelEQ applies the EQ predicate on the "ai_model" field.
func AiModelEQ(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldEQ(FieldAiModel, v))
}

// AiModelNEQ applies the NEQ predicate on the "ai_model" field.
func AiModelNEQ(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldNEQ(FieldAiModel, v))
}

// AiModelIn applies the In predicate on the "ai_model" field.
func AiModelIn(vs ...string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldIn(FieldAiModel, vs...))
}

// AiModelNotIn applies the NotIn predicate on the "ai_model" field.
func AiModelNotIn(vs ...string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldNotIn(FieldAiModel, vs...))
}

// AiModelGT applies the GT predicate on the "ai_model" field.
func AiModelGT(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldGT(FieldAiModel, v))
}

// AiModelGTE applies the GTE predicate on the "ai_model" field.
func AiModelGTE(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldGTE(FieldAiModel, v))
}

// AiModelLT applies the LT predicate on the "ai_model" field.
func AiModelLT(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldLT(FieldAiModel, v))
}

// AiModelLTE applies the LTE predicate on the "ai_model" field.
func AiModelLTE(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldLTE(FieldAiModel, v))
}

// AiModelContains applies the Contains predicate on the "ai_model" field.
func AiModelContains(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldContains(FieldAiModel, v))
}

// AiModelHasPrefix applies the HasPrefix predicate on the "ai_model" field.
func AiModelHasPrefix(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldHasPrefix(FieldAiModel, v))
}

// AiModelHasSuffix applies the HasSuffix predicate on the "ai_model" field.
func AiModelHasSuffix(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldHasSuffix(FieldAiModel, v))
}

// AiModelIsNil applies the IsNil predicate on the "ai_model" field.
func AiModelIsNil() predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldIsNull(FieldAiModel))
}

// AiModelNotNil applies the NotNil predicate on the "ai_model" field.
func AiModelNotNil() predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldNotNull(FieldAiModel))
}

// AiModelEqualFold applies the EqualFold predicate on the "ai_model" field.
func AiModelEqualFold(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldEqualFold(FieldAiModel, v))
}

// AiModelContainsFold applies the ContainsFold predicate on the "ai_model" field.
func AiModelContainsFold(v string) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldContainsFold(FieldAiModel, v))
}

// ResponseTimeMsEQ applies the EQ predicate on the "response_time_ms" field.
func ResponseTimeMsEQ(v int) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsNEQ applies the NEQ predicate on the "response_time_ms" field.
func ResponseTimeMsNEQ(v int) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldNEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsIn applies the In predicate on the "response_time_ms" field.
func ResponseTimeMsIn(vs ...int) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsNotIn applies the NotIn predicate on the "response_time_ms" field.
func ResponseTimeMsNotIn(vs ...int) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldNotIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsGT applies the GT predicate on the "response_time_ms" field.
func ResponseTimeMsGT(v int) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldGT(FieldResponseTimeMs, v))
}

// ResponseTimeMsGTE applies the GTE predicate on the "response_time_ms" field.
func ResponseTimeMsGTE(v int) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldGTE(FieldResponseTimeMs, v))
}

// ResponseTimeMsLT applies the LT predicate on the "response_time_ms" field.
func ResponseTimeMsLT(v int) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldLT(FieldResponseTimeMs, v))
}

// ResponseTimeMsLTE applies the LTE predicate on the "response_time_ms" field.
func ResponseTimeMsLTE(v int) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldLTE(FieldResponseTimeMs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldNEQ(FieldSuccess, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PromptUsage {
	return predicate.PromptUsage(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PromptUsage) predicate.PromptUsage {
	return predicate.PromptUsage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PromptUsage) predicate.PromptUsage {
	return predicate.PromptUsage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PromptUsage) predicate.PromptUsage {
	return predicate.PromptUsage(sql.NotPredicates(p))
}
