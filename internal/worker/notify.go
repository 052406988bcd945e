package worker

import (
	"context"
	"errors"
	"fmt"
	"numberbot/pkg/logger"
	"numberbot/pkg/notify"
	"numberbot/pkg/serrors"
	"numberbot/pkg/storage"
	"sync"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// NotifyArgs is the job payload of one queued notice.
type NotifyArgs struct {
	Notice notify.Message `json:"notice"`
}

func (NotifyArgs) Kind() string { return "notify" }

// NotifyWorker sends queued notices through a sink.
//
// Deliveries share one token bucket so the log chat is never flooded. When the
// sink reports throttling every worker stops sending until the retry-after
// window has passed, and the throttled job is snoozed for that long.
type NotifyWorker struct {
	river.WorkerDefaults[NotifyArgs]

	sink    notify.Sink
	limiter *rate.Limiter
	now     func() time.Time

	// mu protects pausedUntil.
	mu          sync.Mutex
	pausedUntil time.Time
}

// NewNotifyWorker constructs a NotifyWorker delivering through sink.
func NewNotifyWorker(sink notify.Sink, options Options) *NotifyWorker {
	limit := rate.Inf
	if options.PerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(options.PerMinute))
	}

	return &NotifyWorker{
		sink:    sink,
		limiter: rate.NewLimiter(limit, 1),
		now:     time.Now,
	}
}

// Work delivers a single notice and maps sink errors to River actions:
// throttling snoozes, a rejected message is cancelled and anything else is
// retried.
func (w *NotifyWorker) Work(ctx context.Context, job *river.Job[NotifyArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("kind", string(job.Args.Notice.Kind)),
		zap.Int64("chatID", job.Args.Notice.ChatID))

	if wait := w.pausedFor(); wait > 0 {
		logger.Debug(ctx, "notices paused", zap.Duration("wait", wait))

		return river.JobSnooze(wait) //nolint: wrapcheck
	}

	if err := w.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("could not reserve send slot: %w", err)
	}

	err := w.sink.Notify(ctx, job.Args.Notice)
	if err == nil {
		logger.Debug(ctx, "notice delivered")

		return nil
	}

	var throttled *notify.ThrottledError
	if errors.As(err, &throttled) {
		logger.Warn(ctx, "notice throttled", zap.Duration("retryAfter", throttled.RetryAfter))
		w.pause(throttled.RetryAfter)

		return river.JobSnooze(throttled.RetryAfter) //nolint: wrapcheck
	}

	if errors.Is(err, serrors.ErrBadRequest) {
		logger.Error(ctx, "notice rejected", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}

	logger.Error(ctx, "could not deliver notice", zap.Error(err))

	return fmt.Errorf("could not deliver notice: %w", err)
}

func (w *NotifyWorker) pausedFor() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.pausedUntil.Sub(w.now())
}

// pause never shortens an existing pause.
func (w *NotifyWorker) pause(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if until := w.now().Add(d); until.After(w.pausedUntil) {
		w.pausedUntil = until
	}
}

// QueueSink is a notify.Sink that enqueues notices for NotifyWorker instead of
// sending them inline.
type QueueSink struct {
	jobs        storage.JobStorage
	maxAttempts int
}

// NewQueueSink creates a QueueSink writing to jobs.
func NewQueueSink(jobs storage.JobStorage, options Options) *QueueSink {
	return &QueueSink{jobs: jobs, maxAttempts: options.MaxAttempts}
}

func (q *QueueSink) Notify(ctx context.Context, msg notify.Message) error {
	opts := &river.InsertOpts{}
	if q.maxAttempts > 0 {
		opts.MaxAttempts = q.maxAttempts
	}

	if _, err := q.jobs.AddJob(ctx, NotifyArgs{Notice: msg}, opts); err != nil {
		return fmt.Errorf("could not enqueue notice: %w", err)
	}

	return nil
}

var _ notify.Sink = (*QueueSink)(nil)
