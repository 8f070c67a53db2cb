package retention

import (
	"context"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/pkg/logger"
	"github.com/recallhq/recall/pkg/memory"
	"github.com/recallhq/recall/pkg/storage/inmemory"
)

func seedEntry(driver *inmemory.Driver, id, conversationID string, score float64, ttl int, age time.Duration) {
	err := driver.PutEntry(context.Background(), &memory.Entry{
		ID:              id,
		ConversationID:  conversationID,
		SessionID:       "default",
		Role:            "user",
		Content:         "content " + id,
		ContextType:     memory.ContextConversation,
		ImportanceScore: score,
		TTLSeconds:      ttl,
		Timestamp:       time.Now().UTC().Add(-age),
	})
	Expect(err).NotTo(HaveOccurred())
}

var _ = Describe("Service", func() {
	var (
		ctx    context.Context
		driver *inmemory.Driver
	)

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
	})

	Describe("NewService", func() {
		It("fills zero config fields with defaults", func() {
			svc := NewService(driver, Config{}, logger.Nop())
			Expect(svc.config.Interval).To(Equal(DefaultInterval))
			Expect(svc.config.MaxEntriesPerConversation).To(Equal(DefaultMaxEntriesPerConversation))
			Expect(svc.config.ErrorBackoff).To(Equal(DefaultErrorBackoff))
		})

		It("keeps explicit settings", func() {
			svc := NewService(driver, Config{
				Interval:                  time.Minute,
				MaxEntriesPerConversation: 10,
			}, logger.Nop())
			Expect(svc.config.Interval).To(Equal(time.Minute))
			Expect(svc.config.MaxEntriesPerConversation).To(Equal(10))
		})
	})

	Describe("RunCycle", func() {
		It("removes expired entries and leaves live ones", func() {
			seedEntry(driver, "expired", "conv-1", 0.5, 60, 2*time.Hour)
			seedEntry(driver, "live", "conv-1", 0.5, 86400, 2*time.Hour)

			svc := NewService(driver, Config{}, logger.Nop())
			Expect(svc.RunCycle(ctx)).To(Succeed())

			Expect(driver.EntryCount()).To(Equal(1))
			_, err := driver.GetEntry(ctx, "live")
			Expect(err).NotTo(HaveOccurred())
		})

		It("honors each entry's own TTL rather than a global one", func() {
			// Same age, different TTLs: only the short-lived one goes.
			seedEntry(driver, "short", "conv-1", 0.5, 600, time.Hour)
			seedEntry(driver, "long", "conv-1", 0.5, 7200, time.Hour)

			svc := NewService(driver, Config{}, logger.Nop())
			Expect(svc.RunCycle(ctx)).To(Succeed())

			_, err := driver.GetEntry(ctx, "short")
			Expect(err).To(HaveOccurred())
			_, err = driver.GetEntry(ctx, "long")
			Expect(err).NotTo(HaveOccurred())
		})

		It("trims oversized conversations back to the cap", func() {
			for i := 0; i < 15; i++ {
				seedEntry(driver, fmt.Sprintf("e%02d", i), "conv-1", float64(i)/15.0, 86400, 0)
			}
			seedEntry(driver, "small", "conv-2", 0.5, 86400, 0)

			svc := NewService(driver, Config{MaxEntriesPerConversation: 10}, logger.Nop())
			Expect(svc.RunCycle(ctx)).To(Succeed())

			counts, err := driver.ConversationCounts(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(counts["conv-1"]).To(Equal(10))
			Expect(counts["conv-2"]).To(Equal(1))

			// The five lowest-scored entries are the ones dropped.
			for i := 0; i < 5; i++ {
				_, err := driver.GetEntry(ctx, fmt.Sprintf("e%02d", i))
				Expect(err).To(HaveOccurred())
			}
		})

		It("expires before trimming, so expired entries never count against the cap", func() {
			for i := 0; i < 10; i++ {
				seedEntry(driver, fmt.Sprintf("dead%02d", i), "conv-1", 0.9, 60, time.Hour)
			}
			for i := 0; i < 5; i++ {
				seedEntry(driver, fmt.Sprintf("live%02d", i), "conv-1", 0.1, 86400, 0)
			}

			svc := NewService(driver, Config{MaxEntriesPerConversation: 5}, logger.Nop())
			Expect(svc.RunCycle(ctx)).To(Succeed())

			counts, err := driver.ConversationCounts(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(counts["conv-1"]).To(Equal(5))

			for i := 0; i < 5; i++ {
				_, err := driver.GetEntry(ctx, fmt.Sprintf("live%02d", i))
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("is a no-op on an empty store", func() {
			svc := NewService(driver, Config{}, logger.Nop())
			Expect(svc.RunCycle(ctx)).To(Succeed())
		})
	})

	Describe("Start and Wait", func() {
		It("runs cycles on the interval until cancelled", func() {
			seedEntry(driver, "expired", "conv-1", 0.5, 60, 2*time.Hour)

			runCtx, cancel := context.WithCancel(ctx)
			svc := NewService(driver, Config{Interval: 10 * time.Millisecond}, logger.Nop())
			svc.Start(runCtx)

			Eventually(driver.EntryCount, time.Second, 5*time.Millisecond).Should(BeZero())

			cancel()
			svc.Wait()
		})

		It("stops promptly when cancelled before the first tick", func() {
			runCtx, cancel := context.WithCancel(ctx)
			svc := NewService(driver, Config{Interval: time.Hour}, logger.Nop())
			svc.Start(runCtx)
			cancel()
			svc.Wait()
		})
	})
})
