package reminder

import (
	"context"
	"log/slog"
	"sync"

	"subs_manager/internal/entity"
)

const defaultQueueSize = 64

// EffectRunner is the synchronous side of a Background queue
type EffectRunner interface {
	Dispatch(ctx context.Context, effects []entity.Effect)
}

type batch struct {
	ctx     context.Context
	effects []entity.Effect
}

// Background moves dispatch off the request path.
// A single worker keeps batches in submission order, so a cancel never overtakes an earlier schedule.
type Background struct {
	next  EffectRunner
	log   *slog.Logger
	queue chan batch
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewBackground(next EffectRunner, log *slog.Logger, size int) *Background {
	if log == nil {
		log = slog.Default()
	}
	if size <= 0 {
		size = defaultQueueSize
	}
	b := &Background{
		next:  next,
		log:   log,
		queue: make(chan batch, size),
		done:  make(chan struct{}),
	}
	go b.run()
	return b
}

// Dispatch enqueues the effects and returns. It blocks only while the queue is full.
// After Close the effects are run inline.
func (b *Background) Dispatch(ctx context.Context, effects []entity.Effect) {
	if len(effects) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		b.next.Dispatch(ctx, effects)
		return
	}
	b.queue <- batch{ctx: ctx, effects: effects}
	b.mu.RUnlock()
}

// Close stops accepting batches and waits until the queued ones are applied or ctx ends
func (b *Background) Close(ctx context.Context) error {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		close(b.queue)
	}
	b.mu.Unlock()

	select {
	case <-b.done:
		return nil
	case <-ctx.Done():
		b.log.Warn("effects still queued at shutdown", slog.Int("batches", len(b.queue)))
		return ctx.Err()
	}
}

func (b *Background) run() {
	defer close(b.done)
	for bt := range b.queue {
		b.next.Dispatch(bt.ctx, bt.effects)
	}
}
