// Package worker provides an asynchronous worker pool for recording prompt
// usage off the API hot path, so rendering never waits on stats persistence.
package worker

import (
	"context"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/recallhq/recall/pkg/prompt"
)

var (
	defaultNumWorkers   uint = 3
	defaultJobQueueSize uint = 256
)

// Job is one usage record for the pool to persist.
type Job struct {
	TemplateID     string
	Model          string
	ResponseTimeMs int
	Success        bool
}

// Config holds the worker pool settings.
type Config struct {
	// Prompts records usage into the prompt store.
	Prompts *prompt.Service

	// NumWorkers is the number of background workers (default 3).
	NumWorkers uint

	// QueueSize is the capacity of the buffered job channel (default 256).
	QueueSize uint

	// Logger is the provided zap logger.
	Logger *zap.Logger
}

// Pool persists usage records asynchronously via a fixed set of workers.
type Pool struct {
	config *Config
	queue  chan Job
	wg     sync.WaitGroup
	logger *zap.Logger
}

// NewPool creates a Pool and starts its worker goroutines.
func NewPool(c *Config) (*Pool, error) {
	if c.NumWorkers == 0 {
		c.NumWorkers = defaultNumWorkers
	}
	if c.QueueSize == 0 {
		c.QueueSize = defaultJobQueueSize
	}
	if c.NumWorkers > uint(math.MaxInt) {
		return nil, fmt.Errorf("NumWorkers %d exceeds max int", c.NumWorkers)
	}

	p := &Pool{
		config: c,
		queue:  make(chan Job, c.QueueSize),
		logger: c.Logger,
	}

	p.wg.Add(int(c.NumWorkers))
	for i := range c.NumWorkers {
		go p.worker(i)
	}

	return p, nil
}

// Enqueue submits a job for processing. Returns true if enqueued, false if
// the queue is full and the job was dropped.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case p.queue <- job:
		p.logger.Debug("usage job queued",
			zap.String("template_id", job.TemplateID),
			zap.String("model", job.Model),
		)
		return true
	default:
		p.logger.Error("usage job dropped, queue full",
			zap.String("template_id", job.TemplateID),
			zap.String("model", job.Model),
		)
		return false
	}
}

// Close signals workers to stop and waits for in-flight jobs to drain.
// Call during graceful shutdown after the HTTP servers have stopped.
func (p *Pool) Close() {
	close(p.queue)
	p.wg.Wait()
}

func (p *Pool) worker(id uint) {
	defer p.wg.Done()
	p.logger.Debug("usage worker started", zap.Uint("worker_id", id))

	for job := range p.queue {
		p.processJob(job)
	}

	p.logger.Debug("usage worker stopped", zap.Uint("worker_id", id))
}

func (p *Pool) processJob(job Job) {
	ctx := context.Background()

	err := p.config.Prompts.RecordUsage(ctx, job.TemplateID, job.Model, job.ResponseTimeMs, job.Success)
	if err != nil {
		p.logger.Error("async usage recording failed",
			zap.String("template_id", job.TemplateID),
			zap.Error(err),
		)
		return
	}

	p.logger.Debug("usage recorded",
		zap.String("template_id", job.TemplateID),
		zap.String("model", job.Model),
	)
}
