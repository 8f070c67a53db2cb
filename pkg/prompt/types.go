// Package prompt provides the prompt template registry: named templates with
// {{variable}} placeholders, category listing, per-template usage statistics,
// and AI model configuration records.
package prompt

import "time"

// Template is a named prompt template with declared variables.
type Template struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Content     string    `json:"template_content"`
	Variables   []string  `json:"variables"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Usage is one recorded template invocation.
type Usage struct {
	ID             string    `json:"id"`
	TemplateID     string    `json:"template_id"`
	Model          string    `json:"ai_model"`
	ResponseTimeMs int       `json:"response_time_ms"`
	Success        bool      `json:"success"`
	CreatedAt      time.Time `json:"created_at"`
}

// TemplateStats aggregates usage for one template.
type TemplateStats struct {
	TemplateID        string  `json:"template_id"`
	TemplateName      string  `json:"template_name"`
	TotalCalls        int     `json:"total_calls"`
	SuccessfulCalls   int     `json:"successful_calls"`
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
}

// Stats is the aggregate usage report across all templates.
type Stats struct {
	TotalCalls        int             `json:"total_calls"`
	SuccessfulCalls   int             `json:"successful_calls"`
	AvgResponseTimeMs float64         `json:"avg_response_time_ms"`
	ByTemplate        []TemplateStats `json:"by_template"`
}

// ModelConfig is a stored AI model configuration.
type ModelConfig struct {
	ID          string    `json:"id"`
	ModelName   string    `json:"model_name"`
	Provider    string    `json:"provider"`
	APIBaseURL  string    `json:"api_base_url,omitempty"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	CreatedAt   time.Time `json:"created_at"`
}
