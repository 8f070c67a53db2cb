package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/recallhq/recall/pkg/prompt"
)

// PromptStore implements prompt.Store using in-memory maps.
type PromptStore struct {
	mu        sync.RWMutex
	templates map[string]*prompt.Template // keyed by name
	usage     []*prompt.Usage
	configs   []*prompt.ModelConfig
}

// NewPromptStore creates an empty in-memory prompt store.
func NewPromptStore() *PromptStore {
	return &PromptStore{
		templates: make(map[string]*prompt.Template),
	}
}

// PutTemplate persists a new template.
func (s *PromptStore) PutTemplate(_ context.Context, t *prompt.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.templates[t.Name]; ok {
		return prompt.ErrDuplicateName
	}

	stored := *t
	s.templates[t.Name] = &stored
	return nil
}

// TemplateByName retrieves a template by name.
func (s *PromptStore) TemplateByName(_ context.Context, name string) (*prompt.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.templates[name]
	if !ok {
		return nil, prompt.ErrNotFound
	}

	out := *t
	return &out, nil
}

// Templates lists templates ordered by name, optionally by category.
func (s *PromptStore) Templates(_ context.Context, category string) ([]*prompt.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*prompt.Template
	for _, t := range s.templates {
		if category != "" && t.Category != category {
			continue
		}
		copied := *t
		out = append(out, &copied)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// DeleteTemplate removes a template by name.
func (s *PromptStore) DeleteTemplate(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.templates[name]; !ok {
		return prompt.ErrNotFound
	}
	delete(s.templates, name)
	return nil
}

// Categories returns the distinct template categories, sorted.
func (s *PromptStore) Categories(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, t := range s.templates {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

// RecordUsage appends one usage record.
func (s *PromptStore) RecordUsage(_ context.Context, u *prompt.Usage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *u
	s.usage = append(s.usage, &stored)
	return nil
}

// UsageStats aggregates all recorded usage.
func (s *PromptStore) UsageStats(_ context.Context) (*prompt.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &prompt.Stats{}
	perTemplate := make(map[string]*prompt.TemplateStats)
	totalTime := 0

	for _, u := range s.usage {
		stats.TotalCalls++
		totalTime += u.ResponseTimeMs
		if u.Success {
			stats.SuccessfulCalls++
		}

		ts, ok := perTemplate[u.TemplateID]
		if !ok {
			ts = &prompt.TemplateStats{TemplateID: u.TemplateID}
			perTemplate[u.TemplateID] = ts
		}
		ts.TotalCalls++
		if u.Success {
			ts.SuccessfulCalls++
		}
		// Running average keeps a second pass unnecessary.
		ts.AvgResponseTimeMs += (float64(u.ResponseTimeMs) - ts.AvgResponseTimeMs) / float64(ts.TotalCalls)
	}

	if stats.TotalCalls > 0 {
		stats.AvgResponseTimeMs = float64(totalTime) / float64(stats.TotalCalls)
	}

	for _, t := range s.templates {
		if ts, ok := perTemplate[t.ID]; ok {
			ts.TemplateName = t.Name
		}
	}

	for _, ts := range perTemplate {
		stats.ByTemplate = append(stats.ByTemplate, *ts)
	}
	sort.Slice(stats.ByTemplate, func(i, j int) bool {
		return stats.ByTemplate[i].TemplateID < stats.ByTemplate[j].TemplateID
	})

	return stats, nil
}

// PutModelConfig appends a model configuration.
func (s *PromptStore) PutModelConfig(_ context.Context, c *prompt.ModelConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *c
	s.configs = append(s.configs, &stored)
	return nil
}

// ModelConfigs lists model configurations ordered by model name.
func (s *PromptStore) ModelConfigs(_ context.Context) ([]*prompt.ModelConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*prompt.ModelConfig, 0, len(s.configs))
	for _, c := range s.configs {
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ModelName < out[j].ModelName })
	return out, nil
}
