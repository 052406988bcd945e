package postgres

import (
	"context"
	"fmt"
	"numberbot/pkg/serrors"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job. On a transactional handle the job is inserted
// in the same transaction and becomes visible on commit.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	if p.jobs == nil {
		return false, serrors.With(serrors.ErrInternal, "job queue is not configured")
	}

	var (
		res *rivertype.JobInsertResult
		err error
	)
	if tx, txErr := p.tx(); txErr == nil {
		res, err = p.jobs.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = p.jobs.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
