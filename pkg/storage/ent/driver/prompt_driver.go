package entdriver

import (
	"context"
	"fmt"

	"github.com/recallhq/recall/pkg/prompt"
	"github.com/recallhq/recall/pkg/storage/ent"
	"github.com/recallhq/recall/pkg/storage/ent/modelconfig"
	"github.com/recallhq/recall/pkg/storage/ent/prompttemplate"
	"github.com/recallhq/recall/pkg/storage/ent/promptusage"
)

// PromptDriver provides prompt storage operations using an ent client.
// It shares the client with the EntDriver of the same database.
type PromptDriver struct {
	Client *ent.Client
}

// PutTemplate persists a new template.
func (pd *PromptDriver) PutTemplate(ctx context.Context, t *prompt.Template) error {
	err := pd.Client.PromptTemplate.Create().
		SetID(t.ID).
		SetName(t.Name).
		SetDescription(t.Description).
		SetCategory(t.Category).
		SetTemplateContent(t.Content).
		SetVariables(t.Variables).
		SetCreatedAt(t.CreatedAt).
		SetUpdatedAt(t.UpdatedAt).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return prompt.ErrDuplicateName
		}
		return fmt.Errorf("could not execute template creation: %w", err)
	}
	return nil
}

// TemplateByName retrieves a template by its unique name.
func (pd *PromptDriver) TemplateByName(ctx context.Context, name string) (*prompt.Template, error) {
	row, err := pd.Client.PromptTemplate.Query().
		Where(prompttemplate.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, prompt.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return entTemplateToPrompt(row), nil
}

// Templates lists templates ordered by name, optionally by category.
func (pd *PromptDriver) Templates(ctx context.Context, category string) ([]*prompt.Template, error) {
	q := pd.Client.PromptTemplate.Query()
	if category != "" {
		q = q.Where(prompttemplate.Category(category))
	}

	rows, err := q.Order(ent.Asc(prompttemplate.FieldName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}

	out := make([]*prompt.Template, 0, len(rows))
	for _, row := range rows {
		out = append(out, entTemplateToPrompt(row))
	}
	return out, nil
}

// DeleteTemplate removes a template by name.
func (pd *PromptDriver) DeleteTemplate(ctx context.Context, name string) error {
	n, err := pd.Client.PromptTemplate.Delete().
		Where(prompttemplate.Name(name)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if n == 0 {
		return prompt.ErrNotFound
	}
	return nil
}

// Categories returns the distinct template categories, sorted.
func (pd *PromptDriver) Categories(ctx context.Context) ([]string, error) {
	out, err := pd.Client.PromptTemplate.Query().
		Unique(true).
		Order(ent.Asc(prompttemplate.FieldCategory)).
		Select(prompttemplate.FieldCategory).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	return out, nil
}

// RecordUsage persists one usage record.
func (pd *PromptDriver) RecordUsage(ctx context.Context, u *prompt.Usage) error {
	err := pd.Client.PromptUsage.Create().
		SetID(u.ID).
		SetTemplateID(u.TemplateID).
		SetAiModel(u.Model).
		SetResponseTimeMs(u.ResponseTimeMs).
		SetSuccess(u.Success).
		SetCreatedAt(u.CreatedAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("could not execute usage creation: %w", err)
	}
	return nil
}

// UsageStats aggregates all recorded usage.
func (pd *PromptDriver) UsageStats(ctx context.Context) (*prompt.Stats, error) {
	rows, err := pd.Client.PromptUsage.Query().
		Order(ent.Asc(promptusage.FieldTemplateID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage: %w", err)
	}

	stats := &prompt.Stats{}
	perTemplate := make(map[string]*prompt.TemplateStats)
	var order []string
	totalTime := 0

	for _, row := range rows {
		stats.TotalCalls++
		totalTime += row.ResponseTimeMs
		if row.Success {
			stats.SuccessfulCalls++
		}

		ts, ok := perTemplate[row.TemplateID]
		if !ok {
			ts = &prompt.TemplateStats{TemplateID: row.TemplateID}
			perTemplate[row.TemplateID] = ts
			order = append(order, row.TemplateID)
		}
		ts.TotalCalls++
		if row.Success {
			ts.SuccessfulCalls++
		}
		ts.AvgResponseTimeMs += (float64(row.ResponseTimeMs) - ts.AvgResponseTimeMs) / float64(ts.TotalCalls)
	}

	if stats.TotalCalls > 0 {
		stats.AvgResponseTimeMs = float64(totalTime) / float64(stats.TotalCalls)
	}

	for _, templateID := range order {
		ts := perTemplate[templateID]
		row, err := pd.Client.PromptTemplate.Get(ctx, templateID)
		if err == nil {
			ts.TemplateName = row.Name
		} else if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to resolve template name: %w", err)
		}
		stats.ByTemplate = append(stats.ByTemplate, *ts)
	}

	return stats, nil
}

// PutModelConfig persists a model configuration.
func (pd *PromptDriver) PutModelConfig(ctx context.Context, c *prompt.ModelConfig) error {
	err := pd.Client.ModelConfig.Create().
		SetID(c.ID).
		SetModelName(c.ModelName).
		SetProvider(c.Provider).
		SetAPIBaseURL(c.APIBaseURL).
		SetMaxTokens(c.MaxTokens).
		SetTemperature(c.Temperature).
		SetCreatedAt(c.CreatedAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("could not execute config creation: %w", err)
	}
	return nil
}

// ModelConfigs lists stored model configurations ordered by model name.
func (pd *PromptDriver) ModelConfigs(ctx context.Context) ([]*prompt.ModelConfig, error) {
	rows, err := pd.Client.ModelConfig.Query().
		Order(ent.Asc(modelconfig.FieldModelName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query model configs: %w", err)
	}

	out := make([]*prompt.ModelConfig, 0, len(rows))
	for _, row := range rows {
		out = append(out, &prompt.ModelConfig{
			ID:          row.ID,
			ModelName:   row.ModelName,
			Provider:    row.Provider,
			APIBaseURL:  row.APIBaseURL,
			MaxTokens:   row.MaxTokens,
			Temperature: row.Temperature,
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}

func entTemplateToPrompt(row *ent.PromptTemplate) *prompt.Template {
	return &prompt.Template{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Category:    row.Category,
		Content:     row.TemplateContent,
		Variables:   row.Variables,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
