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

func floatPtr(f float64) *float64 {
	return &f
}

var _ = Describe("Manager", func() {
	var (
		ctx     context.Context
		driver  *inmemory.Driver
		manager *memory.Manager
	)

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
		manager = memory.NewManager(driver, logger.Nop())
	})

	Describe("Store", func() {
		It("assigns an ID and a timestamp", func() {
			entry, err := manager.Store(ctx, memory.StoreParams{
				ConversationID: "conv-1",
				Role:           "user",
				Content:        "hello",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(entry.ID).NotTo(BeEmpty())
			Expect(entry.Timestamp).NotTo(BeZero())
		})

		It("applies defaults for session, importance, TTL and context type", func() {
			entry, err := manager.Store(ctx, memory.StoreParams{
				ConversationID: "conv-1",
				Role:           "user",
				Content:        "hello",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(entry.SessionID).To(Equal("default"))
			Expect(entry.ImportanceScore).To(Equal(0.5))
			Expect(entry.TTLSeconds).To(Equal(3600))
			Expect(entry.ContextType).To(Equal(memory.ContextConversation))
		})

		It("honors an explicit zero importance score", func() {
			entry, err := manager.Store(ctx, memory.StoreParams{
				ConversationID:  "conv-1",
				Content:         "hello",
				ImportanceScore: floatPtr(0),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(entry.ImportanceScore).To(Equal(0.0))
		})

		It("rejects an empty conversation ID", func() {
			_, err := manager.Store(ctx, memory.StoreParams{Content: "hello"})

			var verr memory.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Field).To(Equal("conversation_id"))
		})

		It("rejects empty content", func() {
			_, err := manager.Store(ctx, memory.StoreParams{ConversationID: "conv-1"})

			var verr memory.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Field).To(Equal("content"))
		})

		It("rejects an importance score above 1", func() {
			_, err := manager.Store(ctx, memory.StoreParams{
				ConversationID:  "conv-1",
				Content:         "hello",
				ImportanceScore: floatPtr(1.5),
			})

			var verr memory.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Field).To(Equal("importance_score"))
		})

		It("rejects an unknown context type", func() {
			_, err := manager.Store(ctx, memory.StoreParams{
				ConversationID: "conv-1",
				Content:        "hello",
				ContextType:    "daydream",
			})

			var verr memory.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Field).To(Equal("context_type"))
		})

		It("rejects a negative TTL", func() {
			_, err := manager.Store(ctx, memory.StoreParams{
				ConversationID: "conv-1",
				Content:        "hello",
				TTLSeconds:     -5,
			})

			var verr memory.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Field).To(Equal("ttl_seconds"))
		})

		It("writes nothing when validation fails", func() {
			_, err := manager.Store(ctx, memory.StoreParams{ConversationID: "conv-1"})
			Expect(err).To(HaveOccurred())
			Expect(driver.EntryCount()).To(BeZero())
		})

		Context("with related IDs", func() {
			It("links the new entry to existing entries", func() {
				target, err := manager.Store(ctx, memory.StoreParams{
					ConversationID: "conv-1",
					Content:        "target",
				})
				Expect(err).NotTo(HaveOccurred())

				entry, err := manager.Store(ctx, memory.StoreParams{
					ConversationID: "conv-1",
					Content:        "source",
					RelatedIDs:     []string{target.ID},
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(entry.Relationships).To(Equal([]string{target.ID}))
				Expect(driver.RelationshipCount()).To(Equal(1))
			})

			It("skips missing targets without failing the store", func() {
				entry, err := manager.Store(ctx, memory.StoreParams{
					ConversationID: "conv-1",
					Content:        "source",
					RelatedIDs:     []string{"no-such-entry"},
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(entry.Relationships).To(BeEmpty())
				Expect(driver.RelationshipCount()).To(BeZero())
			})
		})
	})

	Describe("Retrieve", func() {
		It("rejects an empty conversation ID", func() {
			_, err := manager.Retrieve(ctx, memory.RetrieveParams{})

			var verr memory.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
		})

		It("returns an empty slice for an unknown conversation", func() {
			entries, err := manager.Retrieve(ctx, memory.RetrieveParams{ConversationID: "nope"})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(BeEmpty())
		})

		It("orders by importance descending then recency descending", func() {
			low, err := manager.Store(ctx, memory.StoreParams{
				ConversationID:  "conv-1",
				Content:         "low",
				ImportanceScore: floatPtr(0.2),
			})
			Expect(err).NotTo(HaveOccurred())

			older, err := manager.Store(ctx, memory.StoreParams{
				ConversationID:  "conv-1",
				Content:         "high older",
				ImportanceScore: floatPtr(0.9),
			})
			Expect(err).NotTo(HaveOccurred())

			newer, err := manager.Store(ctx, memory.StoreParams{
				ConversationID:  "conv-1",
				Content:         "high newer",
				ImportanceScore: floatPtr(0.9),
			})
			Expect(err).NotTo(HaveOccurred())

			entries, err := manager.Retrieve(ctx, memory.RetrieveParams{ConversationID: "conv-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(3))
			Expect(entries[0].ID).To(Equal(newer.ID))
			Expect(entries[1].ID).To(Equal(older.ID))
			Expect(entries[2].ID).To(Equal(low.ID))
		})

		It("applies context type, tags and importance filters conjunctively", func() {
			match, err := manager.Store(ctx, memory.StoreParams{
				ConversationID:  "conv-1",
				Content:         "match",
				ContextType:     memory.ContextCodeAnalysis,
				Tags:            []string{"go", "review"},
				ImportanceScore: floatPtr(0.8),
			})
			Expect(err).NotTo(HaveOccurred())

			// Right type and tag, but below the importance floor.
			_, err = manager.Store(ctx, memory.StoreParams{
				ConversationID:  "conv-1",
				Content:         "too faint",
				ContextType:     memory.ContextCodeAnalysis,
				Tags:            []string{"go"},
				ImportanceScore: floatPtr(0.3),
			})
			Expect(err).NotTo(HaveOccurred())

			// Right tag and importance, wrong type.
			_, err = manager.Store(ctx, memory.StoreParams{
				ConversationID:  "conv-1",
				Content:         "wrong type",
				Tags:            []string{"go"},
				ImportanceScore: floatPtr(0.9),
			})
			Expect(err).NotTo(HaveOccurred())

			entries, err := manager.Retrieve(ctx, memory.RetrieveParams{
				ConversationID: "conv-1",
				ContextType:    memory.ContextCodeAnalysis,
				Tags:           []string{"go"},
				MinImportance:  0.5,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].ID).To(Equal(match.ID))
		})

		It("matches entries carrying any of the requested tags", func() {
			_, err := manager.Store(ctx, memory.StoreParams{
				ConversationID: "conv-1",
				Content:        "tagged go",
				Tags:           []string{"go"},
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = manager.Store(ctx, memory.StoreParams{
				ConversationID: "conv-1",
				Content:        "tagged rust",
				Tags:           []string{"rust"},
			})
			Expect(err).NotTo(HaveOccurred())

			entries, err := manager.Retrieve(ctx, memory.RetrieveParams{
				ConversationID: "conv-1",
				Tags:           []string{"go", "rust"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
		})

		It("caps results at the requested limit", func() {
			for i := 0; i < 5; i++ {
				_, err := manager.Store(ctx, memory.StoreParams{
					ConversationID: "conv-1",
					Content:        "entry",
				})
				Expect(err).NotTo(HaveOccurred())
			}

			entries, err := manager.Retrieve(ctx, memory.RetrieveParams{
				ConversationID: "conv-1",
				Limit:          3,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(3))
		})

		It("derives each entry's relationship list from the graph", func() {
			target, err := manager.Store(ctx, memory.StoreParams{
				ConversationID: "conv-2",
				Content:        "target",
			})
			Expect(err).NotTo(HaveOccurred())

			source, err := manager.Store(ctx, memory.StoreParams{
				ConversationID: "conv-1",
				Content:        "source",
				RelatedIDs:     []string{target.ID},
			})
			Expect(err).NotTo(HaveOccurred())

			entries, err := manager.Retrieve(ctx, memory.RetrieveParams{ConversationID: "conv-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].ID).To(Equal(source.ID))
			Expect(entries[0].Relationships).To(Equal([]string{target.ID}))
		})

		It("rejects an unknown context type filter", func() {
			_, err := manager.Retrieve(ctx, memory.RetrieveParams{
				ConversationID: "conv-1",
				ContextType:    "daydream",
			})

			var verr memory.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
		})
	})

	Describe("SearchByTags", func() {
		It("rejects an empty tag list", func() {
			_, err := manager.SearchByTags(ctx, nil, 10)

			var verr memory.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
		})

		It("searches across conversations", func() {
			_, err := manager.Store(ctx, memory.StoreParams{
				ConversationID: "conv-1",
				Content:        "first",
				Tags:           []string{"shared"},
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = manager.Store(ctx, memory.StoreParams{
				ConversationID: "conv-2",
				Content:        "second",
				Tags:           []string{"shared"},
			})
			Expect(err).NotTo(HaveOccurred())

			entries, err := manager.SearchByTags(ctx, []string{"shared"}, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
		})
	})

	Describe("Clear", func() {
		It("removes every entry in the conversation and reports the count", func() {
			for i := 0; i < 3; i++ {
				_, err := manager.Store(ctx, memory.StoreParams{
					ConversationID: "conv-1",
					Content:        "entry",
				})
				Expect(err).NotTo(HaveOccurred())
			}
			_, err := manager.Store(ctx, memory.StoreParams{
				ConversationID: "conv-2",
				Content:        "untouched",
			})
			Expect(err).NotTo(HaveOccurred())

			n, err := manager.Clear(ctx, "conv-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(3))

			entries, err := manager.Retrieve(ctx, memory.RetrieveParams{ConversationID: "conv-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(BeEmpty())

			others, err := manager.Retrieve(ctx, memory.RetrieveParams{ConversationID: "conv-2"})
			Expect(err).NotTo(HaveOccurred())
			Expect(others).To(HaveLen(1))
		})

		It("is idempotent", func() {
			n, err := manager.Clear(ctx, "conv-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())
		})

		It("leaves no edges behind for the cleared entries", func() {
			a, err := manager.Store(ctx, memory.StoreParams{
				ConversationID: "conv-1",
				Content:        "first",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = manager.Store(ctx, memory.StoreParams{
				ConversationID: "conv-1",
				Content:        "second",
				RelatedIDs:     []string{a.ID},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(driver.RelationshipCount()).To(Equal(1))

			_, err = manager.Clear(ctx, "conv-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(driver.RelationshipCount()).To(BeZero())
		})
	})
})
