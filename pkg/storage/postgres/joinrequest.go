package postgres

import (
	"context"
	"fmt"
	"iter"
	"numberbot/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	joinRequestsTable = "join_requests"
)

func (p *PgSQL) AddJoinRequest(ctx context.Context, req domain.JoinRequest) error {
	_, err := p.Builder.Insert(joinRequestsTable).
		Rows(PgJoinRequest{
			ChannelID:   req.ChannelID,
			UserID:      int64(req.UserID),
			RequestedAt: req.RequestedAt,
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not add join request into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) RemoveJoinRequest(ctx context.Context, channelID string, userID domain.UserID) error {
	_, err := p.Builder.Delete(joinRequestsTable).
		Where(
			goqu.C("channel_id").Eq(channelID),
			goqu.C("user_id").Eq(int64(userID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not remove join request from pg: %w", err)
	}

	return nil
}

// PendingJoinRequests runs its query when iteration starts and stops reading
// rows as soon as the consumer stops.
func (p *PgSQL) PendingJoinRequests(ctx context.Context, channelID string) iter.Seq2[domain.UserID, error] {
	return func(yield func(domain.UserID, error) bool) {
		query, args, err := p.Builder.From(joinRequestsTable).
			Prepared(true).
			Select("user_id").
			Where(goqu.C("channel_id").Eq(channelID)).
			Order(goqu.C("requested_at").Asc()).
			ToSQL()
		if err != nil {
			yield(0, fmt.Errorf("could not build join requests query: %w", err))

			return
		}

		rows, err := p.DB.QueryContext(ctx, query, args...)
		if err != nil {
			yield(0, fmt.Errorf("could not list join requests from pg: %w", err))

			return
		}
		defer func() {
			_ = rows.Close()
		}()

		for rows.Next() {
			var userID int64
			if err := rows.Scan(&userID); err != nil {
				yield(0, fmt.Errorf("could not scan join request: %w", err))

				return
			}
			if !yield(domain.UserID(userID), nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(0, fmt.Errorf("could not read join requests: %w", err))
		}
	}
}
