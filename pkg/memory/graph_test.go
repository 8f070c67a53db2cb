package memory_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/pkg/logger"
	"github.com/recallhq/recall/pkg/memory"
	"github.com/recallhq/recall/pkg/storage/inmemory"
)

var _ = Describe("Graph", func() {
	var (
		ctx     context.Context
		driver  *inmemory.Driver
		manager *memory.Manager
		graph   *memory.Graph

		a, b, c *memory.Entry
	)

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
		manager = memory.NewManager(driver, logger.Nop())
		graph = memory.NewGraph(driver, logger.Nop())

		var err error
		a, err = manager.Store(ctx, memory.StoreParams{
			ConversationID: "conv-1",
			Content:        "entry a",
		})
		Expect(err).NotTo(HaveOccurred())

		b, err = manager.Store(ctx, memory.StoreParams{
			ConversationID:  "conv-1",
			Content:         "entry b",
			ImportanceScore: floatPtr(0.9),
		})
		Expect(err).NotTo(HaveOccurred())

		c, err = manager.Store(ctx, memory.StoreParams{
			ConversationID:  "conv-1",
			Content:         "entry c",
			ImportanceScore: floatPtr(0.4),
		})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Relate", func() {
		It("creates a directed edge with default strength 1.0", func() {
			rel, err := graph.Relate(ctx, memory.RelateParams{
				SourceID: a.ID,
				TargetID: b.ID,
				Type:     "builds_on",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(rel.ID).NotTo(BeEmpty())
			Expect(rel.Strength).To(Equal(1.0))
			Expect(rel.CreatedAt).NotTo(BeZero())
		})

		It("rejects a missing relationship type", func() {
			_, err := graph.Relate(ctx, memory.RelateParams{
				SourceID: a.ID,
				TargetID: b.ID,
			})

			var verr memory.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Field).To(Equal("relationship_type"))
		})

		It("rejects a strength outside [0,1]", func() {
			_, err := graph.Relate(ctx, memory.RelateParams{
				SourceID: a.ID,
				TargetID: b.ID,
				Type:     "builds_on",
				Strength: floatPtr(1.2),
			})

			var verr memory.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Field).To(Equal("strength"))
		})

		It("returns NotFoundError when the source does not exist", func() {
			_, err := graph.Relate(ctx, memory.RelateParams{
				SourceID: "ghost",
				TargetID: b.ID,
				Type:     "builds_on",
			})

			var nferr memory.NotFoundError
			Expect(errors.As(err, &nferr)).To(BeTrue())
			Expect(nferr.ID).To(Equal("ghost"))
		})

		It("returns NotFoundError when the target does not exist", func() {
			_, err := graph.Relate(ctx, memory.RelateParams{
				SourceID: a.ID,
				TargetID: "ghost",
				Type:     "builds_on",
			})

			var nferr memory.NotFoundError
			Expect(errors.As(err, &nferr)).To(BeTrue())
		})

		It("permits duplicate edges", func() {
			for i := 0; i < 2; i++ {
				_, err := graph.Relate(ctx, memory.RelateParams{
					SourceID: a.ID,
					TargetID: b.ID,
					Type:     "builds_on",
				})
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(driver.RelationshipCount()).To(Equal(2))
		})
	})

	Describe("Related", func() {
		It("orders targets by edge strength descending", func() {
			_, err := graph.Relate(ctx, memory.RelateParams{
				SourceID: a.ID,
				TargetID: c.ID,
				Type:     "references",
				Strength: floatPtr(0.3),
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = graph.Relate(ctx, memory.RelateParams{
				SourceID: a.ID,
				TargetID: b.ID,
				Type:     "references",
				Strength: floatPtr(0.8),
			})
			Expect(err).NotTo(HaveOccurred())

			related, err := graph.Related(ctx, a.ID, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(related).To(HaveLen(2))
			Expect(related[0].ID).To(Equal(b.ID))
			Expect(related[1].ID).To(Equal(c.ID))
		})

		It("breaks strength ties by target importance descending", func() {
			_, err := graph.Relate(ctx, memory.RelateParams{
				SourceID: a.ID,
				TargetID: c.ID,
				Type:     "references",
				Strength: floatPtr(0.5),
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = graph.Relate(ctx, memory.RelateParams{
				SourceID: a.ID,
				TargetID: b.ID,
				Type:     "references",
				Strength: floatPtr(0.5),
			})
			Expect(err).NotTo(HaveOccurred())

			related, err := graph.Related(ctx, a.ID, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(related).To(HaveLen(2))
			Expect(related[0].ID).To(Equal(b.ID))
		})

		It("follows outgoing edges only", func() {
			_, err := graph.Relate(ctx, memory.RelateParams{
				SourceID: b.ID,
				TargetID: a.ID,
				Type:     "references",
			})
			Expect(err).NotTo(HaveOccurred())

			related, err := graph.Related(ctx, a.ID, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(related).To(BeEmpty())
		})

		It("skips edges whose target has been deleted", func() {
			_, err := graph.Relate(ctx, memory.RelateParams{
				SourceID: a.ID,
				TargetID: b.ID,
				Type:     "references",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = driver.DeleteConversation(ctx, b.ConversationID)
			Expect(err).NotTo(HaveOccurred())

			related, err := graph.Related(ctx, a.ID, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(related).To(BeEmpty())
		})

		It("rejects an empty memory ID", func() {
			_, err := graph.Related(ctx, "", 0)

			var verr memory.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
		})
	})

	Describe("RelationshipsFor", func() {
		It("includes edges where the entry is source or target", func() {
			_, err := graph.Relate(ctx, memory.RelateParams{
				SourceID: a.ID,
				TargetID: b.ID,
				Type:     "references",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = graph.Relate(ctx, memory.RelateParams{
				SourceID: c.ID,
				TargetID: a.ID,
				Type:     "builds_on",
			})
			Expect(err).NotTo(HaveOccurred())

			rels, err := graph.RelationshipsFor(ctx, a.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(rels).To(HaveLen(2))
		})

		It("returns an empty slice for an unconnected entry", func() {
			rels, err := graph.RelationshipsFor(ctx, a.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(rels).To(BeEmpty())
		})
	})
})
