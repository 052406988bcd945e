package notify

import (
	"context"
	"fmt"
	"numberbot/pkg/logger"
	"numberbot/pkg/serrors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultBuffer is used by NewQueue when no positive buffer size is given.
const DefaultBuffer = 256

var (
	// ErrQueueFull is returned by Queue.Notify when the buffer has no room.
	// The notice is dropped.
	ErrQueueFull = serrors.With(serrors.ErrUnavailable, "notice queue is full")
	// ErrQueueClosed is returned by Queue.Notify after Close.
	ErrQueueClosed = serrors.With(serrors.ErrUnavailable, "notice queue is closed")
)

type queued struct {
	ctx context.Context //nolint: containedctx
	msg Message
}

// Queue is a Sink that hands notices to a background goroutine. Notify never
// waits for the wrapped sink.
type Queue struct {
	sink    Sink
	timeout time.Duration
	items   chan queued
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewQueue starts delivering to sink. Each delivery is bounded by timeout;
// zero means no bound.
func NewQueue(sink Sink, buffer int, timeout time.Duration) *Queue {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	q := &Queue{
		sink:    sink,
		timeout: timeout,
		items:   make(chan queued, buffer),
		done:    make(chan struct{}),
	}
	go q.run()

	return q
}

// Notify enqueues msg. The caller's cancellation does not reach the delivery,
// its logger fields do.
func (q *Queue) Notify(ctx context.Context, msg Message) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.items <- queued{ctx: context.WithoutCancel(ctx), msg: msg}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting notices and waits for the buffered ones to be
// delivered or for ctx to end.
func (q *Queue) Close(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.items)
	}
	q.mu.Unlock()

	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("could not drain notice queue: %w", ctx.Err())
	}
}

func (q *Queue) run() {
	defer close(q.done)

	for item := range q.items {
		q.deliver(item)
	}
}

func (q *Queue) deliver(item queued) {
	ctx := item.ctx
	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	if err := q.sink.Notify(ctx, item.msg); err != nil {
		logger.Warn(ctx, "could not deliver notice",
			zap.String("kind", string(item.msg.Kind)),
			zap.Int64("chatID", item.msg.ChatID),
			zap.Error(err))
	}
}

var _ Sink = (*Queue)(nil)
