// Code generated by ent, DO NOT EDIT.

package modelconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/recallhq/recall/pkg/storage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldContainsFold(FieldID, id))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldModelName, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldProvider, v))
}

// APIBaseURL applies equality check predicate on the "api_base_url" field. It's identical to APIBaseURLEQ.
func APIBaseURL(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldAPIBaseURL, v))
}

// MaxTokens applies equality check predicate on the "max_tokens" field. It's identical to MaxTokensEQ.
func MaxTokens(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldMaxTokens, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldTemperature, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldContainsFold(FieldModelName, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldContainsFold(FieldProvider, v))
}

// APIBaseURLEQ applies the EQ predicate on the "api_base_url" field.
func APIBaseURLEQ(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldAPIBaseURL, v))
}

// APIBaseURLNEQ applies the NEQ predicate on the "api_base_url" field.
func APIBaseURLNEQ(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldAPIBaseURL, v))
}

// APIBaseURLIn applies the In predicate on the "api_base_url" field.
func APIBaseURLIn(vs ...string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldIn(FieldAPIBaseURL, vs...))
}

// APIBaseURLNotIn applies the NotIn predicate on the "api_base_url" field.
func APIBaseURLNotIn(vs ...string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNotIn(FieldAPIBaseURL, vs...))
}

// APIBaseURLGT applies the GT predicate on the "api_base_url" field.
func APIBaseURLGT(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGT(FieldAPIBaseURL, v))
}

// APIBaseURLGTE applies the GTE predicate on the "api_base_url" field.
func APIBaseURLGTE(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGTE(FieldAPIBaseURL, v))
}

// APIBaseURLLT applies the LT predicate on the "api_base_url" field.
func APIBaseURLLT(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLT(FieldAPIBaseURL, v))
}

// APIBaseURLLTE applies the LTE predicate on the "api_base_url" field.
func APIBaseURLLTE(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLTE(FieldAPIBaseURL, v))
}

// APIBaseURLContains applies the Contains predicate on the "api_base_url" field.
func APIBaseURLContains(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldContains(FieldAPIBaseURL, v))
}

// APIBaseURLHasPrefix applies the HasPrefix predicate on the "api_base_url" field.
func APIBaseURLHasPrefix(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldHasPrefix(FieldAPIBaseURL, v))
}

// APIBaseURLHasSuffix applies the HasSuffix predicate on the "api_base_url" field.
func APIBaseURLHasSuffix(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldHasSuffix(FieldAPIBaseURL, v))
}

// APIBaseURLIsNil applies the IsNil predicate on the "api_base_url" field.
func APIBaseURLIsNil() predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldIsNull(FieldAPIBaseURL))
}

// APIBaseURLNotNil applies the NotNil predicate on the "api_base_url" field.
func APIBaseURLNotNil() predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNotNull(FieldAPIBaseURL))
}

// APIBaseURLEqualFold applies the EqualFold predicate on the "api_base_url" field.
func APIBaseURLEqualFold(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEqualFold(FieldAPIBaseURL, v))
}

// APIBaseURLContainsFold applies the ContainsFold predicate on the "api_base_url" field.
func APIBaseURLContainsFold(v string) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldContainsFold(FieldAPIBaseURL, v))
}

// MaxTokensEQ applies the EQ predicate on the "max_tokens" field.
func MaxTokensEQ(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldMaxTokens, v))
}

// MaxTokensNEQ applies the NEQ predicate on the "max_tokens" field.
func MaxTokensNEQ(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldMaxTokens, v))
}

// MaxTokensIn applies the In predicate on the "max_tokens" field.
func MaxTokensIn(vs ...int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldIn(FieldMaxTokens, vs...))
}

// MaxTokensNotIn applies the NotIn predicate on the "max_tokens" field.
func MaxTokensNotIn(vs ...int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNotIn(FieldMaxTokens, vs...))
}

// MaxTokensGT applies the GT predicate on the "max_tokens" field.
func MaxTokensGT(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGT(FieldMaxTokens, v))
}

// MaxTokensGTE applies the GTE predicate on the "max_tokens" field.
func MaxTokensGTE(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGTE(FieldMaxTokens, v))
}

// MaxTokensLT applies the LT predicate on the "max_tokens" field.
func MaxTokensLT(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLT(FieldMaxTokens, v))
}

// MaxTokensLTE applies the LTE predicate on the "max_tokens" field.
func MaxTokensLTE(v int) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLTE(FieldMaxTokens, v))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLTE(FieldTemperature, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ModelConfig {
	return predicate.ModelConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModelConfig) predicate.ModelConfig {
	return predicate.ModelConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModelConfig) predicate.ModelConfig {
	return predicate.ModelConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModelConfig) predicate.ModelConfig {
	return predicate.ModelConfig(sql.NotPredicates(p))
}
