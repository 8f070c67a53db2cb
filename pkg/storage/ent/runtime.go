// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/recallhq/recall/pkg/storage/ent/contextrelationship"
	"github.com/recallhq/recall/pkg/storage/ent/memoryentry"
	"github.com/recallhq/recall/pkg/storage/ent/modelconfig"
	"github.com/recallhq/recall/pkg/storage/ent/prompttemplate"
	"github.com/recallhq/recall/pkg/storage/ent/promptusage"
	"github.com/recallhq/recall/pkg/storage/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contextrelationshipFields := schema.ContextRelationship{}.Fields()
	_ = contextrelationshipFields
	// contextrelationshipDescSourceMemoryID is the schema descriptor for source_memory_id field.
	contextrelationshipDescSourceMemoryID := contextrelationshipFields[1].Descriptor()
	// contextrelationship.SourceMemoryIDValidator is a validator for the "source_memory_id" field. It is called by the builders before save.
	contextrelationship.SourceMemoryIDValidator = contextrelationshipDescSourceMemoryID.Validators[0].(func(string) error)
	// contextrelationshipDescTargetMemoryID is the schema descriptor for target_memory_id field.
	contextrelationshipDescTargetMemoryID := contextrelationshipFields[2].Descriptor()
	// contextrelationship.TargetMemoryIDValidator is a validator for the "target_memory_id" field. It is called by the builders before save.
	contextrelationship.TargetMemoryIDValidator = contextrelationshipDescTargetMemoryID.Validators[0].(func(string) error)
	// contextrelationshipDescRelationshipType is the schema descriptor for relationship_type field.
	contextrelationshipDescRelationshipType := contextrelationshipFields[3].Descriptor()
	// contextrelationship.RelationshipTypeValidator is a validator for the "relationship_type" field. It is called by the builders before save.
	contextrelationship.RelationshipTypeValidator = contextrelationshipDescRelationshipType.Validators[0].(func(string) error)
	// contextrelationshipDescStrength is the schema descriptor for strength field.
	contextrelationshipDescStrength := contextrelationshipFields[4].Descriptor()
	// contextrelationship.DefaultStrength holds the default value on creation for the strength field.
	contextrelationship.DefaultStrength = contextrelationshipDescStrength.Default.(float64)
	// contextrelationshipDescCreatedAt is the schema descriptor for created_at field.
	contextrelationshipDescCreatedAt := contextrelationshipFields[6].Descriptor()
	// contextrelationship.DefaultCreatedAt holds the default value on creation for the created_at field.
	contextrelationship.DefaultCreatedAt = contextrelationshipDescCreatedAt.Default.(func() time.Time)
	// contextrelationshipDescID is the schema descriptor for id field.
	contextrelationshipDescID := contextrelationshipFields[0].Descriptor()
	// contextrelationship.IDValidator is a validator for the "id" field. It is called by the builders before save.
	contextrelationship.IDValidator = contextrelationshipDescID.Validators[0].(func(string) error)
	memoryentryFields := schema.MemoryEntry{}.Fields()
	_ = memoryentryFields
	// memoryentryDescConversationID is the schema descriptor for conversation_id field.
	memoryentryDescConversationID := memoryentryFields[1].Descriptor()
	// memoryentry.ConversationIDValidator is a validator for the "conversation_id" field. It is called by the builders before save.
	memoryentry.ConversationIDValidator = memoryentryDescConversationID.Validators[0].(func(string) error)
	// memoryentryDescSessionID is the schema descriptor for session_id field.
	memoryentryDescSessionID := memoryentryFields[2].Descriptor()
	// memoryentry.DefaultSessionID holds the default value on creation for the session_id field.
	memoryentry.DefaultSessionID = memoryentryDescSessionID.Default.(string)
	// memoryentryDescContent is the schema descriptor for content field.
	memoryentryDescContent := memoryentryFields[4].Descriptor()
	// memoryentry.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	memoryentry.ContentValidator = memoryentryDescContent.Validators[0].(func(string) error)
	// memoryentryDescImportanceScore is the schema descriptor for importance_score field.
	memoryentryDescImportanceScore := memoryentryFields[6].Descriptor()
	// memoryentry.DefaultImportanceScore holds the default value on creation for the importance_score field.
	memoryentry.DefaultImportanceScore = memoryentryDescImportanceScore.Default.(float64)
	// memoryentryDescTTLSeconds is the schema descriptor for ttl_seconds field.
	memoryentryDescTTLSeconds := memoryentryFields[9].Descriptor()
	// memoryentry.DefaultTTLSeconds holds the default value on creation for the ttl_seconds field.
	memoryentry.DefaultTTLSeconds = memoryentryDescTTLSeconds.Default.(int)
	// memoryentryDescTimestamp is the schema descriptor for timestamp field.
	memoryentryDescTimestamp := memoryentryFields[10].Descriptor()
	// memoryentry.DefaultTimestamp holds the default value on creation for the timestamp field.
	memoryentry.DefaultTimestamp = memoryentryDescTimestamp.Default.(func() time.Time)
	// memoryentryDescID is the schema descriptor for id field.
	memoryentryDescID := memoryentryFields[0].Descriptor()
	// memoryentry.IDValidator is a validator for the "id" field. It is called by the builders before save.
	memoryentry.IDValidator = memoryentryDescID.Validators[0].(func(string) error)
	modelconfigFields := schema.ModelConfig{}.Fields()
	_ = modelconfigFields
	// modelconfigDescModelName is the schema descriptor for model_name field.
	modelconfigDescModelName := modelconfigFields[1].Descriptor()
	// modelconfig.ModelNameValidator is a validator for the "model_name" field. It is called by the builders before save.
	modelconfig.ModelNameValidator = modelconfigDescModelName.Validators[0].(func(string) error)
	// modelconfigDescProvider is the schema descriptor for provider field.
	modelconfigDescProvider := modelconfigFields[2].Descriptor()
	// modelconfig.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	modelconfig.ProviderValidator = modelconfigDescProvider.Validators[0].(func(string) error)
	// modelconfigDescMaxTokens is the schema descriptor for max_tokens field.
	modelconfigDescMaxTokens := modelconfigFields[4].Descriptor()
	// modelconfig.DefaultMaxTokens holds the default value on creation for the max_tokens field.
	modelconfig.DefaultMaxTokens = modelconfigDescMaxTokens.Default.(int)
	// modelconfigDescTemperature is the schema descriptor for temperature field.
	modelconfigDescTemperature := modelconfigFields[5].Descriptor()
	// modelconfig.DefaultTemperature holds the default value on creation for the temperature field.
	modelconfig.DefaultTemperature = modelconfigDescTemperature.Default.(float64)
	// modelconfigDescCreatedAt is the schema descriptor for created_at field.
	modelconfigDescCreatedAt := modelconfigFields[6].Descriptor()
	// modelconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	modelconfig.DefaultCreatedAt = modelconfigDescCreatedAt.Default.(func() time.Time)
	// modelconfigDescID is the schema descriptor for id field.
	modelconfigDescID := modelconfigFields[0].Descriptor()
	// modelconfig.IDValidator is a validator for the "id" field. It is called by the builders before save.
	modelconfig.IDValidator = modelconfigDescID.Validators[0].(func(string) error)
	prompttemplateFields := schema.PromptTemplate{}.Fields()
	_ = prompttemplateFields
	// prompttemplateDescName is the schema descriptor for name field.
	prompttemplateDescName := prompttemplateFields[1].Descriptor()
	// prompttemplate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	prompttemplate.NameValidator = prompttemplateDescName.Validators[0].(func(string) error)
	// prompttemplateDescCategory is the schema descriptor for category field.
	prompttemplateDescCategory := prompttemplateFields[3].Descriptor()
	// prompttemplate.DefaultCategory holds the default value on creation for the category field.
	prompttemplate.DefaultCategory = prompttemplateDescCategory.Default.(string)
	// prompttemplateDescTemplateContent is the schema descriptor for template_content field.
	prompttemplateDescTemplateContent := prompttemplateFields[4].Descriptor()
	// prompttemplate.TemplateContentValidator is a validator for the "template_content" field. It is called by the builders before save.
	prompttemplate.TemplateContentValidator = prompttemplateDescTemplateContent.Validators[0].(func(string) error)
	// prompttemplateDescCreatedAt is the schema descriptor for created_at field.
	prompttemplateDescCreatedAt := prompttemplateFields[6].Descriptor()
	// prompttemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	prompttemplate.DefaultCreatedAt = prompttemplateDescCreatedAt.Default.(func() time.Time)
	// prompttemplateDescUpdatedAt is the schema descriptor for updated_at field.
	prompttemplateDescUpdatedAt := prompttemplateFields[7].Descriptor()
	// prompttemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prompttemplate.DefaultUpdatedAt = prompttemplateDescUpdatedAt.Default.(func() time.Time)
	// prompttemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prompttemplate.UpdateDefaultUpdatedAt = prompttemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// prompttemplateDescID is the schema descriptor for id field.
	prompttemplateDescID := prompttemplateFields[0].Descriptor()
	// prompttemplate.IDValidator is a validator for the "id" field. It is called by the builders before save.
	prompttemplate.IDValidator = prompttemplateDescID.Validators[0].(func(string) error)
	promptusageFields := schema.PromptUsage{}.Fields()
	_ = promptusageFields
	// promptusageDescTemplateID is the schema descriptor for template_id field.
	promptusageDescTemplateID := promptusageFields[1].Descriptor()
	// promptusage.TemplateIDValidator is a validator for the "template_id" field. It is called by the builders before save.
	promptusage.TemplateIDValidator = promptusageDescTemplateID.Validators[0].(func(string) error)
	// promptusageDescResponseTimeMs is the schema descriptor for response_time_ms field.
	promptusageDescResponseTimeMs := promptusageFields[3].Descriptor()
	// promptusage.DefaultResponseTimeMs holds the default value on creation for the response_time_ms field.
	promptusage.DefaultResponseTimeMs = promptusageDescResponseTimeMs.Default.(int)
	// promptusageDescSuccess is the schema descriptor for success field.
	promptusageDescSuccess := promptusageFields[4].Descriptor()
	// promptusage.DefaultSuccess holds the default value on creation for the success field.
	promptusage.DefaultSuccess = promptusageDescSuccess.Default.(bool)
	// promptusageDescCreatedAt is the schema descriptor for created_at field.
	promptusageDescCreatedAt := promptusageFields[5].Descriptor()
	// promptusage.DefaultCreatedAt holds the default value on creation for the created_at field.
	promptusage.DefaultCreatedAt = promptusageDescCreatedAt.Default.(func() time.Time)
	// promptusageDescID is the schema descriptor for id field.
	promptusageDescID := promptusageFields[0].Descriptor()
	// promptusage.IDValidator is a validator for the "id" field. It is called by the builders before save.
	promptusage.IDValidator = promptusageDescID.Validators[0].(func(string) error)
}
