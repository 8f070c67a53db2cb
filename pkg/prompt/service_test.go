package prompt_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/pkg/logger"
	"github.com/recallhq/recall/pkg/prompt"
	"github.com/recallhq/recall/pkg/storage/inmemory"
)

var _ = Describe("Service", func() {
	var (
		ctx context.Context
		svc *prompt.Service
	)

	BeforeEach(func() {
		ctx = context.Background()
		svc = prompt.NewService(inmemory.NewPromptStore(), logger.Nop())
	})

	Describe("CreateTemplate", func() {
		It("assigns ID, timestamps and a default category", func() {
			t, err := svc.CreateTemplate(ctx, &prompt.Template{
				Name:    "greet",
				Content: "Hello {{name}}.",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(t.ID).NotTo(BeEmpty())
			Expect(t.CreatedAt).NotTo(BeZero())
			Expect(t.Category).To(Equal("general"))
		})

		It("infers variables from the content when none are declared", func() {
			t, err := svc.CreateTemplate(ctx, &prompt.Template{
				Name:    "greet",
				Content: "Hello {{name}} from {{place}}.",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(t.Variables).To(Equal([]string{"name", "place"}))
		})

		It("keeps explicitly declared variables", func() {
			t, err := svc.CreateTemplate(ctx, &prompt.Template{
				Name:      "greet",
				Content:   "Hello {{name}} from {{place}}.",
				Variables: []string{"name"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(t.Variables).To(Equal([]string{"name"}))
		})

		It("rejects an empty name", func() {
			_, err := svc.CreateTemplate(ctx, &prompt.Template{Content: "body"})
			Expect(err).To(HaveOccurred())
		})

		It("rejects empty content", func() {
			_, err := svc.CreateTemplate(ctx, &prompt.Template{Name: "empty"})
			Expect(err).To(HaveOccurred())
		})

		It("surfaces ErrDuplicateName for a taken name", func() {
			_, err := svc.CreateTemplate(ctx, &prompt.Template{Name: "greet", Content: "one"})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.CreateTemplate(ctx, &prompt.Template{Name: "greet", Content: "two"})
			Expect(err).To(MatchError(prompt.ErrDuplicateName))
		})
	})

	Describe("SeedDefaults", func() {
		It("registers every default template", func() {
			Expect(svc.SeedDefaults(ctx)).To(Succeed())

			templates, err := svc.List(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(templates).To(HaveLen(len(prompt.DefaultTemplates())))
		})

		It("is idempotent across restarts", func() {
			Expect(svc.SeedDefaults(ctx)).To(Succeed())
			Expect(svc.SeedDefaults(ctx)).To(Succeed())

			templates, err := svc.List(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(templates).To(HaveLen(len(prompt.DefaultTemplates())))
		})

		It("preserves a user template that shadows a default name", func() {
			custom, err := svc.CreateTemplate(ctx, &prompt.Template{
				Name:    "api_design",
				Content: "my own take on {{resource_name}}",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(svc.SeedDefaults(ctx)).To(Succeed())

			got, err := svc.Get(ctx, "api_design")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(custom.ID))
		})
	})

	Describe("Render", func() {
		BeforeEach(func() {
			_, err := svc.CreateTemplate(ctx, &prompt.Template{
				Name:    "greet",
				Content: "Hello {{name}}.",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("renders a stored template", func() {
			out, err := svc.Render(ctx, "greet", map[string]string{"name": "Ada"})
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("Hello Ada."))
		})

		It("surfaces ErrNotFound for an unknown template", func() {
			_, err := svc.Render(ctx, "ghost", nil)
			Expect(err).To(MatchError(prompt.ErrNotFound))
		})
	})

	Describe("usage recording", func() {
		It("feeds the aggregate stats", func() {
			t, err := svc.CreateTemplate(ctx, &prompt.Template{Name: "greet", Content: "hi"})
			Expect(err).NotTo(HaveOccurred())

			Expect(svc.RecordUsage(ctx, t.ID, "gpt-4", 120, true)).To(Succeed())
			Expect(svc.RecordUsage(ctx, t.ID, "gpt-4", 80, true)).To(Succeed())

			stats, err := svc.UsageStats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalCalls).To(Equal(2))
			Expect(stats.SuccessfulCalls).To(Equal(2))
			Expect(stats.AvgResponseTimeMs).To(Equal(100.0))
		})
	})

	Describe("CreateModelConfig", func() {
		It("applies token and temperature defaults", func() {
			c, err := svc.CreateModelConfig(ctx, &prompt.ModelConfig{
				ModelName: "gpt-4",
				Provider:  "openai",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(c.ID).NotTo(BeEmpty())
			Expect(c.MaxTokens).To(Equal(4000))
			Expect(c.Temperature).To(Equal(0.7))
		})

		It("rejects a missing provider", func() {
			_, err := svc.CreateModelConfig(ctx, &prompt.ModelConfig{ModelName: "gpt-4"})
			Expect(err).To(HaveOccurred())
		})
	})
})
