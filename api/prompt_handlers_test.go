package api

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	recalllogger "github.com/recallhq/recall/pkg/logger"
	"github.com/recallhq/recall/pkg/memory"
	"github.com/recallhq/recall/pkg/prompt"
	"github.com/recallhq/recall/pkg/storage/inmemory"
)

// createTemplate creates one template through the API and returns it.
func createTemplate(server *Server, body map[string]any) prompt.Template {
	resp, err := server.app.Test(jsonRequest(http.MethodPost, "/templates", body))
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(fiber.StatusCreated))

	var tmpl prompt.Template
	decodeBody(resp, &tmpl)
	return tmpl
}

var _ = Describe("prompt endpoints", func() {
	var server *Server

	BeforeEach(func() {
		server = newTestServer()
	})

	Context("when the prompt service is not wired", func() {
		It("returns 503", func() {
			logger := recalllogger.Nop()
			driver := inmemory.NewDriver()
			memories := memory.NewManager(driver, logger)
			graph := memory.NewGraph(driver, logger)

			bare := NewServer(Config{ListenAddr: ":0"}, Services{
				Memories: memories,
				Graph:    graph,
				Contexts: memory.NewContextBuilder(memories, graph, logger),
			}, logger)

			req, err := http.NewRequest(http.MethodGet, "/templates", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := bare.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusServiceUnavailable))
		})
	})

	Describe("POST /templates", func() {
		It("creates a template and infers its variables", func() {
			tmpl := createTemplate(server, map[string]any{
				"name":             "greet",
				"template_content": "Hello {{name}}.",
			})
			Expect(tmpl.ID).NotTo(BeEmpty())
			Expect(tmpl.Variables).To(Equal([]string{"name"}))
			Expect(tmpl.Category).To(Equal("general"))
		})

		It("returns 400 when name or content is missing", func() {
			resp, err := server.app.Test(jsonRequest(http.MethodPost, "/templates", map[string]any{
				"name": "incomplete",
			}))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
		})

		It("returns 409 for a duplicate name", func() {
			createTemplate(server, map[string]any{
				"name":             "greet",
				"template_content": "one",
			})

			resp, err := server.app.Test(jsonRequest(http.MethodPost, "/templates", map[string]any{
				"name":             "greet",
				"template_content": "two",
			}))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusConflict))
		})
	})

	Describe("GET /templates", func() {
		BeforeEach(func() {
			createTemplate(server, map[string]any{
				"name":             "dev",
				"category":         "development",
				"template_content": "body",
			})
			createTemplate(server, map[string]any{
				"name":             "test",
				"category":         "testing",
				"template_content": "body",
			})
		})

		It("lists every template", func() {
			req, err := http.NewRequest(http.MethodGet, "/templates", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body struct {
				Count     int                `json:"count"`
				Templates []*prompt.Template `json:"templates"`
			}
			decodeBody(resp, &body)
			Expect(body.Count).To(Equal(2))
		})

		It("filters by category", func() {
			req, err := http.NewRequest(http.MethodGet, "/templates?category=testing", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())

			var body struct {
				Count     int                `json:"count"`
				Templates []*prompt.Template `json:"templates"`
			}
			decodeBody(resp, &body)
			Expect(body.Count).To(Equal(1))
			Expect(body.Templates[0].Name).To(Equal("test"))
		})
	})

	Describe("GET /templates/:name", func() {
		It("returns the template", func() {
			createTemplate(server, map[string]any{
				"name":             "greet",
				"template_content": "Hello {{name}}.",
			})

			req, err := http.NewRequest(http.MethodGet, "/templates/greet", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var tmpl prompt.Template
			decodeBody(resp, &tmpl)
			Expect(tmpl.Name).To(Equal("greet"))
		})

		It("returns 404 for an unknown name", func() {
			req, err := http.NewRequest(http.MethodGet, "/templates/ghost", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusNotFound))
		})
	})

	Describe("DELETE /templates/:name", func() {
		It("deletes and then 404s on a second delete", func() {
			createTemplate(server, map[string]any{
				"name":             "doomed",
				"template_content": "body",
			})

			req, err := http.NewRequest(http.MethodDelete, "/templates/doomed", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			resp, err = server.app.Test(jsonRequest(http.MethodDelete, "/templates/doomed", nil))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusNotFound))
		})
	})

	Describe("POST /templates/:name/render", func() {
		BeforeEach(func() {
			createTemplate(server, map[string]any{
				"name":             "greet",
				"template_content": "Hello {{name}}.",
			})
		})

		It("renders with the provided variables", func() {
			resp, err := server.app.Test(jsonRequest(http.MethodPost, "/templates/greet/render", map[string]any{
				"variables": map[string]string{"name": "Ada"},
			}))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var body struct {
				Name     string `json:"name"`
				Rendered string `json:"rendered"`
			}
			decodeBody(resp, &body)
			Expect(body.Rendered).To(Equal("Hello Ada."))
		})

		It("returns 500 when required variables are missing", func() {
			resp, err := server.app.Test(jsonRequest(http.MethodPost, "/templates/greet/render", map[string]any{
				"variables": map[string]string{},
			}))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusInternalServerError))
		})

		It("returns 404 for an unknown template", func() {
			resp, err := server.app.Test(jsonRequest(http.MethodPost, "/templates/ghost/render", map[string]any{
				"variables": map[string]string{},
			}))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusNotFound))
		})
	})

	Describe("GET /categories", func() {
		It("returns the distinct categories", func() {
			createTemplate(server, map[string]any{
				"name":             "a",
				"category":         "development",
				"template_content": "body",
			})
			createTemplate(server, map[string]any{
				"name":             "b",
				"category":         "testing",
				"template_content": "body",
			})

			req, err := http.NewRequest(http.MethodGet, "/categories", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())

			var body struct {
				Categories []string `json:"categories"`
			}
			decodeBody(resp, &body)
			Expect(body.Categories).To(Equal([]string{"development", "testing"}))
		})
	})

	Describe("GET /stats/usage", func() {
		It("returns zeroed stats with no usage", func() {
			req, err := http.NewRequest(http.MethodGet, "/stats/usage", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var stats prompt.Stats
			decodeBody(resp, &stats)
			Expect(stats.TotalCalls).To(BeZero())
		})
	})

	Describe("configurations", func() {
		It("creates and lists model configurations", func() {
			resp, err := server.app.Test(jsonRequest(http.MethodPost, "/configurations", map[string]any{
				"model_name": "gpt-4",
				"provider":   "openai",
			}))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusCreated))

			var created prompt.ModelConfig
			decodeBody(resp, &created)
			Expect(created.MaxTokens).To(Equal(4000))

			req, err := http.NewRequest(http.MethodGet, "/configurations", nil)
			Expect(err).NotTo(HaveOccurred())

			resp, err = server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())

			var body struct {
				Count          int                   `json:"count"`
				Configurations []*prompt.ModelConfig `json:"configurations"`
			}
			decodeBody(resp, &body)
			Expect(body.Count).To(Equal(1))
		})

		It("returns 400 when provider is missing", func() {
			resp, err := server.app.Test(jsonRequest(http.MethodPost, "/configurations", map[string]any{
				"model_name": "gpt-4",
			}))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
		})
	})
})
