package wallet

import (
	"context"
	"fmt"
	"sync"

	errs "github.com/logifin/wallet-ledger/internal/domain/error"
	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
)

// defaultQueueSize bounds how many operations may wait on a single user
const defaultQueueSize = 128

// Sequencer runs operations for the same user strictly one after another, in
// submission order. Different users proceed in parallel. A user's worker
// goroutine is started on demand and exits once its queue drains.
type Sequencer struct {
	logger    coreport.Logger
	queueSize int

	mu     sync.Mutex
	queues map[string]*userQueue
	closed bool
	wg     sync.WaitGroup
}

// userQueue is guarded by Sequencer.mu except for the channel itself
type userQueue struct {
	jobs    chan *job
	pending int
}

type job struct {
	ctx  context.Context
	fn   func(ctx context.Context) error
	done chan error
}

// NewSequencer creates a Sequencer; queueSize <= 0 selects the default
func NewSequencer(logger coreport.Logger, queueSize int) *Sequencer {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Sequencer{
		logger:    logger,
		queueSize: queueSize,
		queues:    make(map[string]*userQueue),
	}
}

// Submit queues fn behind every earlier operation of userID and blocks until
// it has run. fn is skipped when ctx is cancelled before its turn comes.
func (s *Sequencer) Submit(ctx context.Context, userID string, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errs.ErrShuttingDown
	}
	q, ok := s.queues[userID]
	if !ok {
		q = &userQueue{jobs: make(chan *job, s.queueSize)}
		s.queues[userID] = q
		s.wg.Add(1)
		go s.work(userID, q)
	}
	q.pending++
	s.mu.Unlock()

	j := &job{ctx: ctx, fn: fn, done: make(chan error, 1)}
	select {
	case q.jobs <- j:
	case <-ctx.Done():
		s.abandon(userID, q)
		return ctx.Err()
	}

	// The job honours ctx itself, so waiting here never outlives a cancelled
	// unit of work by more than its rollback.
	return <-j.done
}

// Active returns the number of users with queued or running operations
func (s *Sequencer) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queues)
}

// Shutdown rejects new submissions and waits for queued operations to finish
func (s *Sequencer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down wallet sequencer", map[string]any{
		"active_users": s.Active(),
	})

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	drained := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		s.logger.Info("Wallet sequencer shut down successfully", nil)
		return nil
	case <-ctx.Done():
		s.logger.Warn("Wallet sequencer shutdown timed out", map[string]any{
			"active_users": s.Active(),
		})
		return ctx.Err()
	}
}

// abandon withdraws a submission that never reached the queue
func (s *Sequencer) abandon(userID string, q *userQueue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q.pending--
	if q.pending == 0 {
		delete(s.queues, userID)
		close(q.jobs)
	}
}

func (s *Sequencer) work(userID string, q *userQueue) {
	defer s.wg.Done()

	for j := range q.jobs {
		j.done <- s.run(userID, j)

		s.mu.Lock()
		q.pending--
		if q.pending == 0 {
			delete(s.queues, userID)
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()
	}
}

func (s *Sequencer) run(userID string, j *job) (err error) {
	if err := j.ctx.Err(); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Recovered panic in wallet operation", map[string]any{
				"user_id": userID,
				"panic":   fmt.Sprint(r),
			})
			err = fmt.Errorf("%w: operation panicked", errs.ErrInternal)
		}
	}()

	return j.fn(j.ctx)
}
