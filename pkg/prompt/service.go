package prompt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service owns template CRUD, rendering, and model configuration over a Store.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a Service over the given store.
func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// SeedDefaults registers the default templates, skipping any whose name is
// already taken. Safe to call on every start.
func (s *Service) SeedDefaults(ctx context.Context) error {
	for _, t := range DefaultTemplates() {
		_, err := s.store.TemplateByName(ctx, t.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("checking template %q: %w", t.Name, err)
		}

		if _, err := s.CreateTemplate(ctx, t); err != nil {
			return fmt.Errorf("seeding template %q: %w", t.Name, err)
		}
	}
	return nil
}

// CreateTemplate validates and persists a new template, assigning its ID and
// timestamps. Undeclared variables are inferred from the content.
func (s *Service) CreateTemplate(ctx context.Context, t *Template) (*Template, error) {
	if t.Name == "" {
		return nil, errors.New("template name must not be empty")
	}
	if t.Content == "" {
		return nil, errors.New("template content must not be empty")
	}
	if t.Category == "" {
		t.Category = "general"
	}
	if len(t.Variables) == 0 {
		t.Variables = ExtractVariables(t.Content)
	}

	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := s.store.PutTemplate(ctx, t); err != nil {
		return nil, err
	}

	s.logger.Debug("created template",
		zap.String("name", t.Name),
		zap.String("category", t.Category),
	)
	return t, nil
}

// Get retrieves a template by name.
func (s *Service) Get(ctx context.Context, name string) (*Template, error) {
	return s.store.TemplateByName(ctx, name)
}

// List returns templates, optionally restricted to one category.
func (s *Service) List(ctx context.Context, category string) ([]*Template, error) {
	return s.store.Templates(ctx, category)
}

// Delete removes a template by name.
func (s *Service) Delete(ctx context.Context, name string) error {
	return s.store.DeleteTemplate(ctx, name)
}

// Categories returns the distinct template categories.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.store.Categories(ctx)
}

// Render renders the named template with the given variables.
func (s *Service) Render(ctx context.Context, name string, vars map[string]string) (string, error) {
	t, err := s.store.TemplateByName(ctx, name)
	if err != nil {
		return "", err
	}
	return Render(t, vars)
}

// RecordUsage persists one usage record for a template invocation.
func (s *Service) RecordUsage(ctx context.Context, templateID, model string, responseTimeMs int, success bool) error {
	u := &Usage{
		ID:             uuid.NewString(),
		TemplateID:     templateID,
		Model:          model,
		ResponseTimeMs: responseTimeMs,
		Success:        success,
		CreatedAt:      time.Now().UTC(),
	}
	return s.store.RecordUsage(ctx, u)
}

// UsageStats aggregates all recorded usage.
func (s *Service) UsageStats(ctx context.Context) (*Stats, error) {
	return s.store.UsageStats(ctx)
}

// CreateModelConfig validates and persists a model configuration.
func (s *Service) CreateModelConfig(ctx context.Context, c *ModelConfig) (*ModelConfig, error) {
	if c.ModelName == "" {
		return nil, errors.New("model_name must not be empty")
	}
	if c.Provider == "" {
		return nil, errors.New("provider must not be empty")
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 4000
	}
	if c.Temperature == 0 {
		c.Temperature = 0.7
	}

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()

	if err := s.store.PutModelConfig(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ModelConfigs lists stored model configurations.
func (s *Service) ModelConfigs(ctx context.Context) ([]*ModelConfig, error) {
	return s.store.ModelConfigs(ctx)
}
