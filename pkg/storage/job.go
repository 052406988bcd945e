package storage

import (
	"context"

	"github.com/riverqueue/river"
)

//go:generate mockgen -package mockstorage -source=job.go -destination=mock/mockjob.go *

// JobStorage enqueues background jobs. Only backends with a durable queue
// (PostgreSQL) implement it. When called on a transactional handle the job
// becomes visible on commit.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It reports false when
	// a unique job with the same arguments already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
