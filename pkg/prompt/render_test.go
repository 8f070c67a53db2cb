package prompt_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/pkg/prompt"
)

var _ = Describe("Render", func() {
	It("substitutes declared placeholders", func() {
		t := &prompt.Template{
			Name:      "greet",
			Content:   "Hello {{name}}, welcome to {{place}}.",
			Variables: []string{"name", "place"},
		}

		out, err := prompt.Render(t, map[string]string{
			"name":  "Ada",
			"place": "the machine room",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("Hello Ada, welcome to the machine room."))
	})

	It("handles whitespace inside placeholders", func() {
		t := &prompt.Template{
			Name:      "greet",
			Content:   "Hello {{ name }}.",
			Variables: []string{"name"},
		}

		out, err := prompt.Render(t, map[string]string{"name": "Ada"})
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("Hello Ada."))
	})

	It("errors listing every missing variable", func() {
		t := &prompt.Template{
			Name:      "greet",
			Content:   "Hello {{name}}, welcome to {{place}}.",
			Variables: []string{"name", "place"},
		}

		_, err := prompt.Render(t, map[string]string{})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("name"))
		Expect(err.Error()).To(ContainSubstring("place"))
	})

	It("ignores extra variables", func() {
		t := &prompt.Template{
			Name:      "greet",
			Content:   "Hello {{name}}.",
			Variables: []string{"name"},
		}

		out, err := prompt.Render(t, map[string]string{
			"name":   "Ada",
			"unused": "whatever",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("Hello Ada."))
	})

	It("leaves undeclared placeholders without values untouched", func() {
		t := &prompt.Template{
			Name:    "partial",
			Content: "Hello {{name}} from {{origin}}.",
			// origin is not declared, so it is not required.
			Variables: []string{"name"},
		}

		out, err := prompt.Render(t, map[string]string{"name": "Ada"})
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("Hello Ada from {{origin}}."))
	})
})

var _ = Describe("ExtractVariables", func() {
	It("returns distinct names in order of first appearance", func() {
		vars := prompt.ExtractVariables("{{b}} then {{a}} then {{b}} again")
		Expect(vars).To(Equal([]string{"b", "a"}))
	})

	It("returns nil for content without placeholders", func() {
		Expect(prompt.ExtractVariables("plain text")).To(BeEmpty())
	})
})
