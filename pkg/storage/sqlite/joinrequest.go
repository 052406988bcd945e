package sqlite

import (
	"context"
	"fmt"
	"iter"
	"numberbot/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

// AddJoinRequest keeps the first request time when a user asks again.
func (s *SQLite) AddJoinRequest(ctx context.Context, req domain.JoinRequest) error {
	_, err := s.Builder.Insert(joinRequestsTable).
		Prepared(true).
		Rows(joinRequestRow{
			ChannelID:   req.ChannelID,
			UserID:      int64(req.UserID),
			RequestedAt: req.RequestedAt.UTC(),
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not add join request into sqlite: %w", err)
	}

	return nil
}

func (s *SQLite) RemoveJoinRequest(ctx context.Context, channelID string, userID domain.UserID) error {
	_, err := s.Builder.Delete(joinRequestsTable).
		Prepared(true).
		Where(
			goqu.C("channel_id").Eq(channelID),
			goqu.C("user_id").Eq(int64(userID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not remove join request from sqlite: %w", err)
	}

	return nil
}

func (s *SQLite) PendingJoinRequests(ctx context.Context, channelID string) iter.Seq2[domain.UserID, error] {
	return func(yield func(domain.UserID, error) bool) {
		query, args, err := s.Builder.From(joinRequestsTable).
			Prepared(true).
			Select("user_id").
			Where(goqu.C("channel_id").Eq(channelID)).
			Order(goqu.C("requested_at").Asc()).
			ToSQL()
		if err != nil {
			yield(0, fmt.Errorf("could not build join requests query: %w", err))

			return
		}

		rows, err := s.DB.QueryContext(ctx, query, args...)
		if err != nil {
			yield(0, fmt.Errorf("could not list join requests from sqlite: %w", err))

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
