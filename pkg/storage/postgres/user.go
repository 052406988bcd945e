package postgres

import (
	"context"
	"fmt"
	"numberbot/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const (
	usersTable = "users"
)

// UpsertUser inserts the user or refreshes its profile. The visits column is
// bumped on every conflict, so a returned value of one identifies the insert.
func (p *PgSQL) UpsertUser(ctx context.Context, userID domain.UserID, meta domain.UserMeta, seenAt time.Time) (bool, error) {
	var visits int64
	if _, err := p.Builder.Insert(usersTable).
		Rows(PgUser{
			ID:          int64(userID),
			Username:    meta.Username,
			FirstName:   meta.FirstName,
			FirstSeenAt: seenAt,
			LastSeenAt:  seenAt,
		}).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"username":     goqu.L("EXCLUDED.username"),
			"first_name":   goqu.L("EXCLUDED.first_name"),
			"last_seen_at": goqu.L("EXCLUDED.last_seen_at"),
			"visits":       goqu.L("users.visits + 1"),
		})).
		Returning("visits").
		Executor().ScanValContext(ctx, &visits); err != nil {
		return false, fmt.Errorf("could not upsert user into pg: %w", err)
	}

	return visits == 1, nil
}

func (p *PgSQL) IncrementUserQueryCount(ctx context.Context, userID domain.UserID) error {
	_, err := p.Builder.Update(usersTable).
		Set(goqu.Record{"query_count": goqu.L("query_count + 1")}).
		Where(goqu.C("id").Eq(int64(userID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not increment user query count in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) CountUsers(ctx context.Context) (int64, error) {
	count, err := p.Builder.From(usersTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count users in pg: %w", err)
	}

	return count, nil
}

func (p *PgSQL) UserByID(ctx context.Context, userID domain.UserID) (*domain.UserRecord, error) {
	var user PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.C("id").Eq(int64(userID))).
		ScanStructContext(ctx, &user)
	if err != nil {
		return nil, fmt.Errorf("could not get user from pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return user.ToDomain(), nil
}
