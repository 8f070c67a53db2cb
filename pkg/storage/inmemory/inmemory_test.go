package inmemory

import (
	"context"
	"errors"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/pkg/memory"
)

// newEntry builds a valid entry with a deterministic timestamp offset so
// recency ordering is stable in tests.
func newEntry(id, conversationID string, score float64, age time.Duration) *memory.Entry {
	return &memory.Entry{
		ID:              id,
		ConversationID:  conversationID,
		SessionID:       "default",
		Role:            "user",
		Content:         "content " + id,
		ContextType:     memory.ContextConversation,
		ImportanceScore: score,
		TTLSeconds:      3600,
		Timestamp:       time.Now().UTC().Add(-age),
	}
}

var _ = Describe("Driver", func() {
	var (
		ctx    context.Context
		driver *Driver
	)

	BeforeEach(func() {
		ctx = context.Background()
		driver = NewDriver()
	})

	Describe("PutEntry and GetEntry", func() {
		It("round-trips an entry", func() {
			e := newEntry("e1", "conv-1", 0.5, 0)
			Expect(driver.PutEntry(ctx, e)).To(Succeed())

			got, err := driver.GetEntry(ctx, "e1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Content).To(Equal("content e1"))
		})

		It("rejects a duplicate ID", func() {
			Expect(driver.PutEntry(ctx, newEntry("e1", "conv-1", 0.5, 0))).To(Succeed())
			Expect(driver.PutEntry(ctx, newEntry("e1", "conv-1", 0.5, 0))).NotTo(Succeed())
		})

		It("returns NotFoundError for an unknown ID", func() {
			_, err := driver.GetEntry(ctx, "ghost")

			var nferr memory.NotFoundError
			Expect(errors.As(err, &nferr)).To(BeTrue())
			Expect(nferr.ID).To(Equal("ghost"))
		})

		It("stores a copy, not the caller's pointer", func() {
			e := newEntry("e1", "conv-1", 0.5, 0)
			Expect(driver.PutEntry(ctx, e)).To(Succeed())

			e.Content = "mutated"

			got, err := driver.GetEntry(ctx, "e1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Content).To(Equal("content e1"))
		})
	})

	Describe("QueryEntries", func() {
		BeforeEach(func() {
			Expect(driver.PutEntry(ctx, newEntry("old-high", "conv-1", 0.9, 2*time.Hour))).To(Succeed())
			Expect(driver.PutEntry(ctx, newEntry("new-high", "conv-1", 0.9, time.Hour))).To(Succeed())
			Expect(driver.PutEntry(ctx, newEntry("new-low", "conv-1", 0.1, 0))).To(Succeed())
			Expect(driver.PutEntry(ctx, newEntry("other", "conv-2", 1.0, 0))).To(Succeed())
		})

		It("orders by importance descending then timestamp descending", func() {
			entries, err := driver.QueryEntries(ctx, memory.Filter{ConversationID: "conv-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(3))
			Expect(entries[0].ID).To(Equal("new-high"))
			Expect(entries[1].ID).To(Equal("old-high"))
			Expect(entries[2].ID).To(Equal("new-low"))
		})

		It("scopes to one conversation", func() {
			entries, err := driver.QueryEntries(ctx, memory.Filter{ConversationID: "conv-2"})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].ID).To(Equal("other"))
		})

		It("applies the importance floor", func() {
			entries, err := driver.QueryEntries(ctx, memory.Filter{
				ConversationID: "conv-1",
				MinImportance:  0.5,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
		})

		It("caps results at the limit after ranking", func() {
			entries, err := driver.QueryEntries(ctx, memory.Filter{
				ConversationID: "conv-1",
				Limit:          1,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].ID).To(Equal("new-high"))
		})

		It("breaks identical timestamps by insertion order", func() {
			ts := time.Now().UTC()
			first := newEntry("tie-first", "conv-3", 0.5, 0)
			first.Timestamp = ts
			second := newEntry("tie-second", "conv-3", 0.5, 0)
			second.Timestamp = ts

			Expect(driver.PutEntry(ctx, first)).To(Succeed())
			Expect(driver.PutEntry(ctx, second)).To(Succeed())

			entries, err := driver.QueryEntries(ctx, memory.Filter{ConversationID: "conv-3"})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries[0].ID).To(Equal("tie-second"))
			Expect(entries[1].ID).To(Equal("tie-first"))
		})
	})

	Describe("DeleteConversation", func() {
		It("removes only the named conversation", func() {
			Expect(driver.PutEntry(ctx, newEntry("e1", "conv-1", 0.5, 0))).To(Succeed())
			Expect(driver.PutEntry(ctx, newEntry("e2", "conv-1", 0.5, 0))).To(Succeed())
			Expect(driver.PutEntry(ctx, newEntry("e3", "conv-2", 0.5, 0))).To(Succeed())

			n, err := driver.DeleteConversation(ctx, "conv-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(2))
			Expect(driver.EntryCount()).To(Equal(1))
		})

		It("returns zero for an unknown conversation", func() {
			n, err := driver.DeleteConversation(ctx, "ghost")
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())
		})

		It("cascades deletion to edges touching removed entries", func() {
			Expect(driver.PutEntry(ctx, newEntry("a", "conv-1", 0.5, 0))).To(Succeed())
			Expect(driver.PutEntry(ctx, newEntry("b", "conv-1", 0.5, 0))).To(Succeed())
			Expect(driver.PutEntry(ctx, newEntry("c", "conv-2", 0.5, 0))).To(Succeed())

			Expect(driver.PutRelationship(ctx, &memory.Relationship{
				ID: "r1", SourceID: "a", TargetID: "b", Type: "references", Strength: 1,
			})).To(Succeed())
			Expect(driver.PutRelationship(ctx, &memory.Relationship{
				ID: "r2", SourceID: "c", TargetID: "b", Type: "references", Strength: 1,
			})).To(Succeed())

			_, err := driver.DeleteConversation(ctx, "conv-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(driver.RelationshipCount()).To(BeZero())
		})
	})

	Describe("TrimConversation", func() {
		It("keeps the highest-ranked entries when over the cap", func() {
			total, keep := 1050, 1000
			for i := 0; i < total; i++ {
				score := float64(i) / float64(total)
				e := newEntry(fmt.Sprintf("e%04d", i), "conv-1", score, time.Duration(i)*time.Second)
				Expect(driver.PutEntry(ctx, e)).To(Succeed())
			}

			removed, err := driver.TrimConversation(ctx, "conv-1", keep)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(Equal(total - keep))
			Expect(driver.EntryCount()).To(Equal(keep))

			// The survivors are exactly the top of the ranking: every entry
			// scored below the cut is gone.
			entries, err := driver.QueryEntries(ctx, memory.Filter{ConversationID: "conv-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(keep))
			cut := float64(total-keep) / float64(total)
			Expect(entries[len(entries)-1].ImportanceScore).To(
				BeNumerically(">=", cut),
			)
		})

		It("does nothing at or under the cap", func() {
			Expect(driver.PutEntry(ctx, newEntry("e1", "conv-1", 0.5, 0))).To(Succeed())

			removed, err := driver.TrimConversation(ctx, "conv-1", 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeZero())
		})

		It("cascades deletion to edges touching trimmed entries", func() {
			Expect(driver.PutEntry(ctx, newEntry("high", "conv-1", 0.9, 0))).To(Succeed())
			Expect(driver.PutEntry(ctx, newEntry("mid", "conv-1", 0.5, 0))).To(Succeed())
			Expect(driver.PutEntry(ctx, newEntry("low", "conv-1", 0.1, 0))).To(Succeed())

			Expect(driver.PutRelationship(ctx, &memory.Relationship{
				ID: "r1", SourceID: "high", TargetID: "low", Type: "references", Strength: 1,
			})).To(Succeed())
			Expect(driver.PutRelationship(ctx, &memory.Relationship{
				ID: "r2", SourceID: "high", TargetID: "mid", Type: "references", Strength: 1,
			})).To(Succeed())

			removed, err := driver.TrimConversation(ctx, "conv-1", 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(Equal(1))
			Expect(driver.RelationshipCount()).To(Equal(1))

			rels, err := driver.RelationshipsFor(ctx, "high")
			Expect(err).NotTo(HaveOccurred())
			Expect(rels).To(HaveLen(1))
			Expect(rels[0].ID).To(Equal("r2"))
		})
	})

	Describe("DeleteExpired", func() {
		It("removes entries whose own TTL has elapsed", func() {
			expired := newEntry("expired", "conv-1", 0.5, 2*time.Hour)
			expired.TTLSeconds = 60
			live := newEntry("live", "conv-1", 0.5, 2*time.Hour)
			live.TTLSeconds = 86400

			Expect(driver.PutEntry(ctx, expired)).To(Succeed())
			Expect(driver.PutEntry(ctx, live)).To(Succeed())

			n, err := driver.DeleteExpired(ctx, time.Now().UTC())
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))

			_, err = driver.GetEntry(ctx, "expired")
			Expect(err).To(HaveOccurred())
			_, err = driver.GetEntry(ctx, "live")
			Expect(err).NotTo(HaveOccurred())
		})

		It("cascades deletion to relationships on either side", func() {
			expired := newEntry("expired", "conv-1", 0.5, 2*time.Hour)
			expired.TTLSeconds = 60
			a := newEntry("a", "conv-1", 0.5, 0)
			b := newEntry("b", "conv-1", 0.5, 0)

			Expect(driver.PutEntry(ctx, expired)).To(Succeed())
			Expect(driver.PutEntry(ctx, a)).To(Succeed())
			Expect(driver.PutEntry(ctx, b)).To(Succeed())

			Expect(driver.PutRelationship(ctx, &memory.Relationship{
				ID: "r1", SourceID: "expired", TargetID: "a", Type: "references", Strength: 1,
			})).To(Succeed())
			Expect(driver.PutRelationship(ctx, &memory.Relationship{
				ID: "r2", SourceID: "b", TargetID: "expired", Type: "references", Strength: 1,
			})).To(Succeed())
			Expect(driver.PutRelationship(ctx, &memory.Relationship{
				ID: "r3", SourceID: "a", TargetID: "b", Type: "references", Strength: 1,
			})).To(Succeed())

			_, err := driver.DeleteExpired(ctx, time.Now().UTC())
			Expect(err).NotTo(HaveOccurred())
			Expect(driver.RelationshipCount()).To(Equal(1))

			rels, err := driver.RelationshipsFor(ctx, "a")
			Expect(err).NotTo(HaveOccurred())
			Expect(rels).To(HaveLen(1))
			Expect(rels[0].ID).To(Equal("r3"))
		})

		It("returns zero when nothing has expired", func() {
			Expect(driver.PutEntry(ctx, newEntry("live", "conv-1", 0.5, 0))).To(Succeed())

			n, err := driver.DeleteExpired(ctx, time.Now().UTC())
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())
		})
	})

	Describe("relationships", func() {
		BeforeEach(func() {
			Expect(driver.PutEntry(ctx, newEntry("a", "conv-1", 0.5, 0))).To(Succeed())
			Expect(driver.PutEntry(ctx, newEntry("b", "conv-1", 0.9, 0))).To(Succeed())
			Expect(driver.PutEntry(ctx, newEntry("c", "conv-1", 0.2, 0))).To(Succeed())
		})

		It("orders related entries by strength then target importance", func() {
			Expect(driver.PutRelationship(ctx, &memory.Relationship{
				ID: "r1", SourceID: "a", TargetID: "c", Type: "references", Strength: 0.9,
			})).To(Succeed())
			Expect(driver.PutRelationship(ctx, &memory.Relationship{
				ID: "r2", SourceID: "a", TargetID: "b", Type: "references", Strength: 0.4,
			})).To(Succeed())

			related, err := driver.RelatedEntries(ctx, "a", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(related).To(HaveLen(2))
			Expect(related[0].ID).To(Equal("c"))
			Expect(related[1].ID).To(Equal("b"))
		})

		It("breaks equal strengths by target importance", func() {
			Expect(driver.PutRelationship(ctx, &memory.Relationship{
				ID: "r1", SourceID: "a", TargetID: "c", Type: "references", Strength: 0.7,
			})).To(Succeed())
			Expect(driver.PutRelationship(ctx, &memory.Relationship{
				ID: "r2", SourceID: "a", TargetID: "b", Type: "references", Strength: 0.7,
			})).To(Succeed())

			related, err := driver.RelatedEntries(ctx, "a", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(related).To(HaveLen(2))
			Expect(related[0].ID).To(Equal("b"))
			Expect(related[1].ID).To(Equal("c"))
		})

		It("skips dangling edges", func() {
			Expect(driver.PutRelationship(ctx, &memory.Relationship{
				ID: "r1", SourceID: "a", TargetID: "gone", Type: "references", Strength: 1,
			})).To(Succeed())

			related, err := driver.RelatedEntries(ctx, "a", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(related).To(BeEmpty())
		})

		It("deduplicates targets reached over parallel edges", func() {
			for i := 0; i < 2; i++ {
				Expect(driver.PutRelationship(ctx, &memory.Relationship{
					ID: fmt.Sprintf("r%d", i), SourceID: "a", TargetID: "b", Type: "references", Strength: 1,
				})).To(Succeed())
			}

			related, err := driver.RelatedEntries(ctx, "a", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(related).To(HaveLen(1))

			ids, err := driver.RelatedIDs(ctx, "a")
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(Equal([]string{"b"}))
		})
	})

	Describe("ConversationCounts", func() {
		It("counts entries per conversation", func() {
			Expect(driver.PutEntry(ctx, newEntry("e1", "conv-1", 0.5, 0))).To(Succeed())
			Expect(driver.PutEntry(ctx, newEntry("e2", "conv-1", 0.5, 0))).To(Succeed())
			Expect(driver.PutEntry(ctx, newEntry("e3", "conv-2", 0.5, 0))).To(Succeed())

			counts, err := driver.ConversationCounts(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(counts).To(Equal(map[string]int{"conv-1": 2, "conv-2": 1}))
		})
	})
})
