package prompt

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a named template or configuration is absent.
var ErrNotFound = errors.New("not found")

// ErrDuplicateName is returned when a template name is already taken.
var ErrDuplicateName = errors.New("template name already exists")

// Store is the persistence contract for templates, usage records, and model
// configurations. Implementations live under pkg/storage.
type Store interface {
	// PutTemplate persists a new template. Names are unique.
	PutTemplate(ctx context.Context, t *Template) error

	// TemplateByName retrieves a template by its unique name.
	TemplateByName(ctx context.Context, name string) (*Template, error)

	// Templates lists templates, optionally restricted to one category,
	// ordered by name.
	Templates(ctx context.Context, category string) ([]*Template, error)

	// DeleteTemplate removes a template by name. Returns ErrNotFound when
	// absent.
	DeleteTemplate(ctx context.Context, name string) error

	// Categories returns the distinct template categories, sorted.
	Categories(ctx context.Context) ([]string, error)

	// RecordUsage persists one usage record.
	RecordUsage(ctx context.Context, u *Usage) error

	// UsageStats aggregates all recorded usage.
	UsageStats(ctx context.Context) (*Stats, error)

	// PutModelConfig persists a model configuration.
	PutModelConfig(ctx context.Context, c *ModelConfig) error

	// ModelConfigs lists stored model configurations ordered by model name.
	ModelConfigs(ctx context.Context) ([]*ModelConfig, error)
}
