package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/recallhq/recall/pkg/utils"
	"github.com/recallhq/recall/pkg/worker"
)

var (
	promptRenderToolName    = "prompt_render"
	promptRenderDescription = "Render a named prompt template with the given variable values. All variables declared by the template must be provided."

	promptListToolName    = "prompt_list"
	promptListDescription = "List available prompt templates, optionally filtered by category. Returns each template's name, category, declared variables, and a content preview."
)

// templatePreviewLen caps the content preview in prompt_list results.
const templatePreviewLen = 160

// PromptRenderInput represents the input arguments for the prompt_render tool.
type PromptRenderInput struct {
	Name      string            `json:"name" jsonschema:"the template name to render"`
	Variables map[string]string `json:"variables,omitempty" jsonschema:"values for the template's declared variables"`
	Model     string            `json:"ai_model,omitempty" jsonschema:"model name recorded with the usage statistics"`
}

// PromptRenderOutput represents the output of the prompt_render tool.
type PromptRenderOutput struct {
	Name     string `json:"name"`
	Rendered string `json:"rendered"`
}

func (s *Server) handlePromptRender(ctx context.Context, _ *mcp.CallToolRequest, input PromptRenderInput) (*mcp.CallToolResult, PromptRenderOutput, error) {
	tmpl, err := s.config.Prompts.Get(ctx, input.Name)
	if err != nil {
		return toolError("Failed to render template: %v", err), PromptRenderOutput{}, nil
	}

	start := time.Now()
	rendered, err := s.config.Prompts.Render(ctx, input.Name, input.Variables)
	elapsed := int(time.Since(start).Milliseconds())

	if s.config.Pool != nil {
		if !s.config.Pool.Enqueue(worker.Job{
			TemplateID:     tmpl.ID,
			Model:          input.Model,
			ResponseTimeMs: elapsed,
			Success:        err == nil,
		}) {
			s.config.Logger.Warn("usage queue full, dropping record",
				zap.String("template", input.Name),
			)
		}
	}

	if err != nil {
		return toolError("Failed to render template: %v", err), PromptRenderOutput{}, nil
	}

	output := PromptRenderOutput{
		Name:     input.Name,
		Rendered: rendered,
	}

	// The rendered text is returned directly so MCP clients can use it as a
	// prompt without unwrapping JSON.
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: rendered},
		},
	}, output, nil
}

// PromptListInput represents the input arguments for the prompt_list tool.
type PromptListInput struct {
	Category string `json:"category,omitempty" jsonschema:"restrict results to one category"`
}

// TemplateSummary is one template in a prompt_list result.
type TemplateSummary struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Variables   []string `json:"variables,omitempty"`
	Preview     string   `json:"preview"`
}

// PromptListOutput represents the output of the prompt_list tool.
type PromptListOutput struct {
	Count     int               `json:"count"`
	Templates []TemplateSummary `json:"templates"`
}

func (s *Server) handlePromptList(ctx context.Context, _ *mcp.CallToolRequest, input PromptListInput) (*mcp.CallToolResult, PromptListOutput, error) {
	templates, err := s.config.Prompts.List(ctx, input.Category)
	if err != nil {
		return toolError("Failed to list templates: %v", err), PromptListOutput{}, nil
	}

	summaries := make([]TemplateSummary, 0, len(templates))
	for _, t := range templates {
		summaries = append(summaries, TemplateSummary{
			Name:        t.Name,
			Category:    t.Category,
			Description: t.Description,
			Variables:   t.Variables,
			Preview:     utils.Truncate(t.Content, templatePreviewLen),
		})
	}

	output := PromptListOutput{
		Count:     len(summaries),
		Templates: summaries,
	}

	result, err := textResult(output)
	if err != nil {
		return toolError("Failed to serialize results: %v", err), PromptListOutput{}, nil
	}

	return result, output, nil
}
