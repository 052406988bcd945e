package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"numberbot/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (s *SQLite) AppendQuery(ctx context.Context, record domain.UsageRecord) error {
	result, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("could not marshal lookup result: %w", err)
	}

	id := record.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = s.Builder.Insert(queriesTable).
		Prepared(true).
		Rows(queryRow{
			ID:        id.String(),
			UserID:    int64(record.UserID),
			Number:    string(record.Number),
			Result:    string(result),
			CreatedAt: createdAt.UTC(),
		}).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not append query into sqlite: %w", err)
	}

	return nil
}

func (s *SQLite) IncrementDailyCounter(ctx context.Context, date string) (int64, error) {
	var queries int64
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO daily_stats (day, queries) VALUES (?, 1)
		ON CONFLICT (day) DO UPDATE SET queries = daily_stats.queries + 1
		RETURNING queries`, date,
	).Scan(&queries)
	if err != nil {
		return 0, fmt.Errorf("could not increment daily counter in sqlite: %w", err)
	}

	return queries, nil
}

func (s *SQLite) DailyCounter(ctx context.Context, date string) (int64, error) {
	var queries int64
	found, err := s.Builder.From(dailyStatsTable).
		Prepared(true).
		Select("queries").
		Where(goqu.C("day").Eq(date)).
		ScanValContext(ctx, &queries)
	if err != nil {
		return 0, fmt.Errorf("could not get daily counter from sqlite: %w", err)
	}
	if !found {
		return 0, nil
	}

	return queries, nil
}
