package inmemory

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/pkg/prompt"
)

func newTemplate(name, category string) *prompt.Template {
	now := time.Now().UTC()
	return &prompt.Template{
		ID:        "id-" + name,
		Name:      name,
		Category:  category,
		Content:   "Do {{task}}",
		Variables: []string{"task"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

var _ = Describe("PromptStore", func() {
	var (
		ctx   context.Context
		store *PromptStore
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = NewPromptStore()
	})

	Describe("templates", func() {
		It("round-trips a template by name", func() {
			Expect(store.PutTemplate(ctx, newTemplate("api_design", "development"))).To(Succeed())

			got, err := store.TemplateByName(ctx, "api_design")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Category).To(Equal("development"))
		})

		It("rejects a duplicate name", func() {
			Expect(store.PutTemplate(ctx, newTemplate("api_design", "development"))).To(Succeed())

			err := store.PutTemplate(ctx, newTemplate("api_design", "other"))
			Expect(err).To(MatchError(prompt.ErrDuplicateName))
		})

		It("returns ErrNotFound for an unknown name", func() {
			_, err := store.TemplateByName(ctx, "ghost")
			Expect(err).To(MatchError(prompt.ErrNotFound))
		})

		It("lists templates ordered by name", func() {
			Expect(store.PutTemplate(ctx, newTemplate("zeta", "general"))).To(Succeed())
			Expect(store.PutTemplate(ctx, newTemplate("alpha", "general"))).To(Succeed())

			templates, err := store.Templates(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(templates).To(HaveLen(2))
			Expect(templates[0].Name).To(Equal("alpha"))
			Expect(templates[1].Name).To(Equal("zeta"))
		})

		It("filters the listing by category", func() {
			Expect(store.PutTemplate(ctx, newTemplate("dev", "development"))).To(Succeed())
			Expect(store.PutTemplate(ctx, newTemplate("test", "testing"))).To(Succeed())

			templates, err := store.Templates(ctx, "development")
			Expect(err).NotTo(HaveOccurred())
			Expect(templates).To(HaveLen(1))
			Expect(templates[0].Name).To(Equal("dev"))
		})

		It("deletes by name and errors on a second delete", func() {
			Expect(store.PutTemplate(ctx, newTemplate("doomed", "general"))).To(Succeed())
			Expect(store.DeleteTemplate(ctx, "doomed")).To(Succeed())
			Expect(store.DeleteTemplate(ctx, "doomed")).To(MatchError(prompt.ErrNotFound))
		})

		It("returns the distinct categories sorted", func() {
			Expect(store.PutTemplate(ctx, newTemplate("a", "testing"))).To(Succeed())
			Expect(store.PutTemplate(ctx, newTemplate("b", "development"))).To(Succeed())
			Expect(store.PutTemplate(ctx, newTemplate("c", "development"))).To(Succeed())

			categories, err := store.Categories(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(categories).To(Equal([]string{"development", "testing"}))
		})
	})

	Describe("usage stats", func() {
		BeforeEach(func() {
			Expect(store.PutTemplate(ctx, newTemplate("tracked", "general"))).To(Succeed())
		})

		record := func(templateID string, ms int, success bool) {
			Expect(store.RecordUsage(ctx, &prompt.Usage{
				ID:             "u-" + templateID,
				TemplateID:     templateID,
				Model:          "gpt-4",
				ResponseTimeMs: ms,
				Success:        success,
				CreatedAt:      time.Now().UTC(),
			})).To(Succeed())
		}

		It("aggregates totals, success counts and average response time", func() {
			record("id-tracked", 100, true)
			record("id-tracked", 300, false)

			stats, err := store.UsageStats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalCalls).To(Equal(2))
			Expect(stats.SuccessfulCalls).To(Equal(1))
			Expect(stats.AvgResponseTimeMs).To(Equal(200.0))
		})

		It("breaks stats down per template with resolved names", func() {
			record("id-tracked", 100, true)
			record("other-id", 50, true)

			stats, err := store.UsageStats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.ByTemplate).To(HaveLen(2))

			var tracked *prompt.TemplateStats
			for i := range stats.ByTemplate {
				if stats.ByTemplate[i].TemplateID == "id-tracked" {
					tracked = &stats.ByTemplate[i]
				}
			}
			Expect(tracked).NotTo(BeNil())
			Expect(tracked.TemplateName).To(Equal("tracked"))
			Expect(tracked.TotalCalls).To(Equal(1))
		})

		It("returns zeroed stats with no usage", func() {
			stats, err := store.UsageStats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalCalls).To(BeZero())
			Expect(stats.AvgResponseTimeMs).To(BeZero())
		})
	})

	Describe("model configs", func() {
		It("lists configurations ordered by model name", func() {
			Expect(store.PutModelConfig(ctx, &prompt.ModelConfig{
				ID: "c1", ModelName: "gpt-4", Provider: "openai",
			})).To(Succeed())
			Expect(store.PutModelConfig(ctx, &prompt.ModelConfig{
				ID: "c2", ModelName: "claude-3", Provider: "anthropic",
			})).To(Succeed())

			configs, err := store.ModelConfigs(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(configs).To(HaveLen(2))
			Expect(configs[0].ModelName).To(Equal("claude-3"))
		})
	})
})
