package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/recallhq/recall/pkg/prompt"
	"github.com/recallhq/recall/pkg/worker"
)

// createTemplateRequest is the body for POST /templates.
type createTemplateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Content     string   `json:"template_content"`
	Variables   []string `json:"variables"`
}

// renderTemplateRequest is the body for POST /templates/:name/render.
type renderTemplateRequest struct {
	Variables map[string]string `json:"variables"`
	Model     string            `json:"ai_model"`
}

// createConfigRequest is the body for POST /configurations.
type createConfigRequest struct {
	ModelName   string  `json:"model_name"`
	Provider    string  `json:"provider"`
	APIBaseURL  string  `json:"api_base_url"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// promptsReady guards prompt routes when the prompt service is not wired.
func (s *Server) promptsReady(c *fiber.Ctx) (bool, error) {
	if s.svc.Prompts == nil {
		return false, c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{Error: "prompt service not configured"})
	}
	return true, nil
}

func (s *Server) handleCreateTemplate(c *fiber.Ctx) error {
	if ok, err := s.promptsReady(c); !ok {
		return err
	}

	var req createTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if req.Name == "" || req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "name and template_content are required"})
	}

	tmpl, err := s.svc.Prompts.CreateTemplate(c.Context(), &prompt.Template{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Content:     req.Content,
		Variables:   req.Variables,
	})
	if err != nil {
		return s.renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(tmpl)
}

func (s *Server) handleListTemplates(c *fiber.Ctx) error {
	if ok, err := s.promptsReady(c); !ok {
		return err
	}

	templates, err := s.svc.Prompts.List(c.Context(), c.Query("category"))
	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(fiber.Map{
		"count":     len(templates),
		"templates": templates,
	})
}

func (s *Server) handleGetTemplate(c *fiber.Ctx) error {
	if ok, err := s.promptsReady(c); !ok {
		return err
	}

	tmpl, err := s.svc.Prompts.Get(c.Context(), c.Params("name"))
	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(tmpl)
}

func (s *Server) handleDeleteTemplate(c *fiber.Ctx) error {
	if ok, err := s.promptsReady(c); !ok {
		return err
	}

	name := c.Params("name")
	if err := s.svc.Prompts.Delete(c.Context(), name); err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": name})
}

func (s *Server) handleRenderTemplate(c *fiber.Ctx) error {
	if ok, err := s.promptsReady(c); !ok {
		return err
	}

	var req renderTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	name := c.Params("name")

	tmpl, err := s.svc.Prompts.Get(c.Context(), name)
	if err != nil {
		return s.renderError(c, err)
	}

	start := time.Now()
	rendered, err := s.svc.Prompts.Render(c.Context(), name, req.Variables)
	elapsed := int(time.Since(start).Milliseconds())

	if s.svc.Pool != nil {
		if !s.svc.Pool.Enqueue(worker.Job{
			TemplateID:     tmpl.ID,
			Model:          req.Model,
			ResponseTimeMs: elapsed,
			Success:        err == nil,
		}) {
			s.logger.Warn("usage queue full, dropping record",
				zap.String("template", name),
			)
		}
	}

	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(fiber.Map{
		"name":     name,
		"rendered": rendered,
	})
}

func (s *Server) handleCategories(c *fiber.Ctx) error {
	if ok, err := s.promptsReady(c); !ok {
		return err
	}

	categories, err := s.svc.Prompts.Categories(c.Context())
	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(fiber.Map{"categories": categories})
}

func (s *Server) handleUsageStats(c *fiber.Ctx) error {
	if ok, err := s.promptsReady(c); !ok {
		return err
	}

	stats, err := s.svc.Prompts.UsageStats(c.Context())
	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(stats)
}

func (s *Server) handleListConfigs(c *fiber.Ctx) error {
	if ok, err := s.promptsReady(c); !ok {
		return err
	}

	configs, err := s.svc.Prompts.ModelConfigs(c.Context())
	if err != nil {
		return s.renderError(c, err)
	}

	return c.JSON(fiber.Map{
		"count":          len(configs),
		"configurations": configs,
	})
}

func (s *Server) handleCreateConfig(c *fiber.Ctx) error {
	if ok, err := s.promptsReady(c); !ok {
		return err
	}

	var req createConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if req.ModelName == "" || req.Provider == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "model_name and provider are required"})
	}

	cfg, err := s.svc.Prompts.CreateModelConfig(c.Context(), &prompt.ModelConfig{
		ModelName:   req.ModelName,
		Provider:    req.Provider,
		APIBaseURL:  req.APIBaseURL,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return s.renderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(cfg)
}
