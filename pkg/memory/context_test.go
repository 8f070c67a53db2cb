package memory_test

import (
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/pkg/logger"
	"github.com/recallhq/recall/pkg/memory"
	"github.com/recallhq/recall/pkg/storage/inmemory"
)

var _ = Describe("ContextBuilder", func() {
	var (
		ctx     context.Context
		driver  *inmemory.Driver
		manager *memory.Manager
		graph   *memory.Graph
		builder *memory.ContextBuilder
	)

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
		manager = memory.NewManager(driver, logger.Nop())
		graph = memory.NewGraph(driver, logger.Nop())
		builder = memory.NewContextBuilder(manager, graph, logger.Nop())
	})

	It("rejects an empty conversation ID", func() {
		_, err := builder.Build(ctx, memory.BuildParams{})

		var verr memory.ValidationError
		Expect(errors.As(err, &verr)).To(BeTrue())
	})

	It("returns the fallback text when nothing matches", func() {
		text, err := builder.Build(ctx, memory.BuildParams{ConversationID: "conv-1"})
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(Equal("No relevant context found."))
	})

	It("renders a single conversation section with uppercased roles", func() {
		_, err := manager.Store(ctx, memory.StoreParams{
			ConversationID: "conv-1",
			Role:           "user",
			Content:        "what is recall?",
		})
		Expect(err).NotTo(HaveOccurred())

		text, err := builder.Build(ctx, memory.BuildParams{ConversationID: "conv-1"})
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(HavePrefix("## CONVERSATION CONTEXT:"))
		Expect(text).To(ContainSubstring("[USER] what is recall?"))
	})

	It("orders entries within a section by importance then recency", func() {
		_, err := manager.Store(ctx, memory.StoreParams{
			ConversationID:  "conv-1",
			Role:            "user",
			Content:         "minor detail",
			ImportanceScore: floatPtr(0.2),
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = manager.Store(ctx, memory.StoreParams{
			ConversationID:  "conv-1",
			Role:            "assistant",
			Content:         "key decision",
			ImportanceScore: floatPtr(0.9),
		})
		Expect(err).NotTo(HaveOccurred())

		text, err := builder.Build(ctx, memory.BuildParams{ConversationID: "conv-1"})
		Expect(err).NotTo(HaveOccurred())

		keyIdx := strings.Index(text, "key decision")
		minorIdx := strings.Index(text, "minor detail")
		Expect(keyIdx).To(BeNumerically(">=", 0))
		Expect(minorIdx).To(BeNumerically(">=", 0))
		Expect(keyIdx).To(BeNumerically("<", minorIdx))
	})

	It("emits one labeled section per requested context type, in request order", func() {
		_, err := manager.Store(ctx, memory.StoreParams{
			ConversationID: "conv-1",
			Role:           "user",
			Content:        "chat line",
			ContextType:    memory.ContextConversation,
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = manager.Store(ctx, memory.StoreParams{
			ConversationID: "conv-1",
			Role:           "assistant",
			Content:        "analysis line",
			ContextType:    memory.ContextCodeAnalysis,
		})
		Expect(err).NotTo(HaveOccurred())

		text, err := builder.Build(ctx, memory.BuildParams{
			ConversationID: "conv-1",
			ContextTypes:   []memory.ContextType{memory.ContextCodeAnalysis, memory.ContextConversation},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(ContainSubstring("## CODE_ANALYSIS CONTEXT:"))
		Expect(text).To(ContainSubstring("## CONVERSATION CONTEXT:"))
		Expect(strings.Index(text, "CODE_ANALYSIS")).To(BeNumerically("<", strings.Index(text, "## CONVERSATION")))
	})

	It("omits sections for types with no entries", func() {
		_, err := manager.Store(ctx, memory.StoreParams{
			ConversationID: "conv-1",
			Role:           "user",
			Content:        "chat line",
		})
		Expect(err).NotTo(HaveOccurred())

		text, err := builder.Build(ctx, memory.BuildParams{
			ConversationID: "conv-1",
			ContextTypes:   []memory.ContextType{memory.ContextConversation, memory.ContextTestResult},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(text).NotTo(ContainSubstring("TEST_RESULT"))
	})

	It("drops entries below the importance floor", func() {
		_, err := manager.Store(ctx, memory.StoreParams{
			ConversationID:  "conv-1",
			Role:            "user",
			Content:         "faint memory",
			ImportanceScore: floatPtr(0.1),
		})
		Expect(err).NotTo(HaveOccurred())

		text, err := builder.Build(ctx, memory.BuildParams{
			ConversationID: "conv-1",
			MinImportance:  0.5,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(Equal("No relevant context found."))
	})

	It("appends a related section sourced from the relationship graph", func() {
		neighbor, err := manager.Store(ctx, memory.StoreParams{
			ConversationID: "conv-2",
			Role:           "assistant",
			Content:        "neighboring fact",
		})
		Expect(err).NotTo(HaveOccurred())

		hub, err := manager.Store(ctx, memory.StoreParams{
			ConversationID: "conv-2",
			Role:           "assistant",
			Content:        "hub fact",
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = graph.Relate(ctx, memory.RelateParams{
			SourceID: hub.ID,
			TargetID: neighbor.ID,
			Type:     "references",
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = manager.Store(ctx, memory.StoreParams{
			ConversationID: "conv-1",
			Role:           "user",
			Content:        "main line",
			RelatedIDs:     []string{hub.ID},
		})
		Expect(err).NotTo(HaveOccurred())

		text, err := builder.Build(ctx, memory.BuildParams{ConversationID: "conv-1"})
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(ContainSubstring("## RELATED CONTEXT:"))
		Expect(text).To(ContainSubstring("[RELATED] neighboring fact"))
	})

	It("is idempotent with no intervening writes", func() {
		_, err := manager.Store(ctx, memory.StoreParams{
			ConversationID: "conv-1",
			Role:           "user",
			Content:        "stable line",
		})
		Expect(err).NotTo(HaveOccurred())

		first, err := builder.Build(ctx, memory.BuildParams{ConversationID: "conv-1"})
		Expect(err).NotTo(HaveOccurred())

		second, err := builder.Build(ctx, memory.BuildParams{ConversationID: "conv-1"})
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal(first))
	})

	It("caps each section at MaxEntries", func() {
		for i := 0; i < 4; i++ {
			_, err := manager.Store(ctx, memory.StoreParams{
				ConversationID: "conv-1",
				Role:           "user",
				Content:        "line",
			})
			Expect(err).NotTo(HaveOccurred())
		}

		text, err := builder.Build(ctx, memory.BuildParams{
			ConversationID: "conv-1",
			MaxEntries:     2,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.Count(text, "[USER] line")).To(Equal(2))
	})
})
