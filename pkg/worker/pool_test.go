package worker

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/pkg/logger"
	"github.com/recallhq/recall/pkg/prompt"
	"github.com/recallhq/recall/pkg/storage/inmemory"
)

// newTestPool creates a pool over an in-memory prompt store. Callers should
// "pool.Close()" to drain enqueued jobs before asserting stats.
func newTestPool(queueSize uint) (*Pool, *prompt.Service) {
	svc := prompt.NewService(inmemory.NewPromptStore(), logger.Nop())

	pool, err := NewPool(&Config{
		Prompts:   svc,
		QueueSize: queueSize,
		Logger:    logger.Nop(),
	})
	Expect(err).NotTo(HaveOccurred())

	return pool, svc
}

var _ = Describe("Pool", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("NewPool", func() {
		It("applies worker and queue defaults", func() {
			pool, _ := newTestPool(0)
			defer pool.Close()

			Expect(pool.config.NumWorkers).To(Equal(defaultNumWorkers))
			Expect(pool.config.QueueSize).To(Equal(defaultJobQueueSize))
		})
	})

	Describe("Enqueue", func() {
		It("returns true when the queue has capacity", func() {
			pool, _ := newTestPool(0)

			ok := pool.Enqueue(Job{
				TemplateID:     "t-1",
				Model:          "gpt-4",
				ResponseTimeMs: 42,
				Success:        true,
			})
			Expect(ok).To(BeTrue())
			pool.Close()
		})

		It("persists drained jobs into usage stats", func() {
			pool, svc := newTestPool(0)

			for i := 0; i < 5; i++ {
				ok := pool.Enqueue(Job{
					TemplateID:     "t-1",
					Model:          "gpt-4",
					ResponseTimeMs: 100,
					Success:        i%2 == 0,
				})
				Expect(ok).To(BeTrue())
			}
			pool.Close()

			stats, err := svc.UsageStats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalCalls).To(Equal(5))
			Expect(stats.SuccessfulCalls).To(Equal(3))
			Expect(stats.AvgResponseTimeMs).To(Equal(100.0))
		})

		It("records against multiple templates independently", func() {
			pool, svc := newTestPool(0)

			for i := 0; i < 4; i++ {
				ok := pool.Enqueue(Job{
					TemplateID:     fmt.Sprintf("t-%d", i%2),
					Model:          "gpt-4",
					ResponseTimeMs: 10,
					Success:        true,
				})
				Expect(ok).To(BeTrue())
			}
			pool.Close()

			stats, err := svc.UsageStats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.ByTemplate).To(HaveLen(2))
			for _, ts := range stats.ByTemplate {
				Expect(ts.TotalCalls).To(Equal(2))
			}
		})
	})

	Describe("Close", func() {
		It("drains every queued job before returning", func() {
			pool, svc := newTestPool(64)

			for i := 0; i < 50; i++ {
				Expect(pool.Enqueue(Job{
					TemplateID:     "t-1",
					Model:          "gpt-4",
					ResponseTimeMs: 1,
					Success:        true,
				})).To(BeTrue())
			}
			pool.Close()

			stats, err := svc.UsageStats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalCalls).To(Equal(50))
		})
	})
})
