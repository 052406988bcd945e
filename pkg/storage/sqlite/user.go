package sqlite

import (
	"context"
	"fmt"
	"numberbot/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
)

// UpsertUser reports a created row the same way the postgres store does: the
// visits column only reads one right after the insert.
func (s *SQLite) UpsertUser(ctx context.Context, userID domain.UserID, meta domain.UserMeta, seenAt time.Time) (bool, error) {
	var visits int64
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO users (id, username, first_name, first_seen_at, last_seen_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			username = excluded.username,
			first_name = excluded.first_name,
			last_seen_at = excluded.last_seen_at,
			visits = users.visits + 1
		RETURNING visits`,
		int64(userID), meta.Username, meta.FirstName, seenAt.UTC(), seenAt.UTC(),
	).Scan(&visits)
	if err != nil {
		return false, fmt.Errorf("could not upsert user into sqlite: %w", err)
	}

	return visits == 1, nil
}

func (s *SQLite) IncrementUserQueryCount(ctx context.Context, userID domain.UserID) error {
	_, err := s.Builder.Update(usersTable).
		Prepared(true).
		Set(goqu.Record{"query_count": goqu.L("query_count + 1")}).
		Where(goqu.C("id").Eq(int64(userID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not increment user query count in sqlite: %w", err)
	}

	return nil
}

func (s *SQLite) CountUsers(ctx context.Context) (int64, error) {
	count, err := s.Builder.From(usersTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count users in sqlite: %w", err)
	}

	return count, nil
}

func (s *SQLite) UserByID(ctx context.Context, userID domain.UserID) (*domain.UserRecord, error) {
	var user userRow
	found, err := s.Builder.From(usersTable).
		Prepared(true).
		Where(goqu.C("id").Eq(int64(userID))).
		ScanStructContext(ctx, &user)
	if err != nil {
		return nil, fmt.Errorf("could not get user from sqlite: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return user.toDomain(), nil
}
