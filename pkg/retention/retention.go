// Package retention provides the background sweep that removes TTL-expired
// memory entries and trims oversized conversations.
package retention

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/recallhq/recall/pkg/memory"
)

const (
	// DefaultInterval between cleanup cycles.
	DefaultInterval = time.Hour

	// DefaultMaxEntriesPerConversation is the size cap a conversation is
	// trimmed back to.
	DefaultMaxEntriesPerConversation = 1000

	// DefaultErrorBackoff is how long the loop waits after a failed cycle
	// before resuming.
	DefaultErrorBackoff = time.Minute
)

// Config holds the retention service settings. Zero values take the defaults.
type Config struct {
	Interval                  time.Duration
	MaxEntriesPerConversation int
	ErrorBackoff              time.Duration
}

// Service runs cleanup cycles against the store on a fixed interval. Each
// cycle performs two independent sweeps: expiry (per-entry TTL, cascading to
// relationships) and conversation-size trimming. A failed sweep is logged and
// the loop resumes after a backoff; a bad cycle never halts future cycles.
type Service struct {
	store  memory.Store
	config Config
	logger *zap.Logger
	done   chan struct{}
}

// NewService creates a retention service over the given store.
func NewService(store memory.Store, config Config, logger *zap.Logger) *Service {
	if config.Interval <= 0 {
		config.Interval = DefaultInterval
	}
	if config.MaxEntriesPerConversation <= 0 {
		config.MaxEntriesPerConversation = DefaultMaxEntriesPerConversation
	}
	if config.ErrorBackoff <= 0 {
		config.ErrorBackoff = DefaultErrorBackoff
	}

	return &Service{
		store:  store,
		config: config,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Start launches the cleanup loop. Cancel the context to stop it; the
// cancellation takes effect at the next loop iteration, not immediately.
func (s *Service) Start(ctx context.Context) {
	go s.loop(ctx)
}

// Wait blocks until the loop has exited after its context was cancelled.
func (s *Service) Wait() {
	<-s.done
}

func (s *Service) loop(ctx context.Context) {
	defer close(s.done)

	s.logger.Info("retention service started",
		zap.Duration("interval", s.config.Interval),
		zap.Int("max_entries_per_conversation", s.config.MaxEntriesPerConversation),
	)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("retention service stopped")
			return
		case <-ticker.C:
			if err := s.RunCycle(ctx); err != nil {
				s.logger.Error("cleanup cycle failed", zap.Error(err))
				select {
				case <-ctx.Done():
					s.logger.Info("retention service stopped")
					return
				case <-time.After(s.config.ErrorBackoff):
				}
			}
		}
	}
}

// RunCycle executes one complete cleanup cycle: the expiry sweep followed by
// the size sweep. Exposed so operators can trigger a cycle on demand.
func (s *Service) RunCycle(ctx context.Context) error {
	s.logger.Debug("starting cleanup cycle")

	if err := s.sweepExpired(ctx); err != nil {
		return err
	}
	if err := s.sweepOversized(ctx); err != nil {
		return err
	}

	s.logger.Debug("cleanup cycle completed")
	return nil
}

// sweepExpired deletes every entry whose own TTL has elapsed. The store
// cascades deletion of relationships referencing a removed entry.
func (s *Service) sweepExpired(ctx context.Context) error {
	removed, err := s.store.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return err
	}
	if removed > 0 {
		s.logger.Info("removed expired entries", zap.Int("removed", removed))
	}
	return nil
}

// sweepOversized trims every conversation above the cap back down to the cap,
// keeping the entries ranked highest by importance then recency.
func (s *Service) sweepOversized(ctx context.Context) error {
	counts, err := s.store.ConversationCounts(ctx)
	if err != nil {
		return err
	}

	maxEntries := s.config.MaxEntriesPerConversation
	for conversationID, count := range counts {
		if count <= maxEntries {
			continue
		}

		removed, err := s.store.TrimConversation(ctx, conversationID, maxEntries)
		if err != nil {
			return err
		}
		s.logger.Info("trimmed conversation",
			zap.String("conversation_id", conversationID),
			zap.Int("kept", maxEntries),
			zap.Int("removed", removed),
		)
	}
	return nil
}
