// Package worker delivers queued operator notices through River.
package worker

import (
	"context"
	"fmt"
	"numberbot/internal/config"
	"numberbot/pkg/logger"
	"numberbot/pkg/notify"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the notice queue.
type Options struct {
	// Workers is how many notices are delivered concurrently.
	Workers int
	// PerMinute caps deliveries per minute across all workers. Zero disables it.
	PerMinute int
	// MaxAttempts is how many times River tries a notice before discarding it.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Workers:     cfg.Notifications.Workers,
		PerMinute:   cfg.Notifications.PerMinute,
		MaxAttempts: cfg.Notifications.MaxAttempts,
	}
}

// Start runs a River client that hands queued notices to sink.
func Start(ctx context.Context, dbPool *pgxpool.Pool, sink notify.Sink, options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewNotifyWorker(sink, options))

	maxWorkers := options.Workers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
