package postgres

import (
	"context"
	"fmt"
	"numberbot/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	queriesTable    = "queries"
	dailyStatsTable = "daily_stats"
)

func (p *PgSQL) AppendQuery(ctx context.Context, record domain.UsageRecord) error {
	var row PgQuery
	if err := row.FromDomain(record); err != nil {
		return err
	}

	if _, err := p.Builder.Insert(queriesTable).Rows(row).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not append query into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) IncrementDailyCounter(ctx context.Context, date string) (int64, error) {
	var queries int64
	if _, err := p.Builder.Insert(dailyStatsTable).
		Rows(goqu.Record{"day": date, "queries": 1}).
		OnConflict(goqu.DoUpdate("day", goqu.Record{
			"queries": goqu.L("daily_stats.queries + 1"),
		})).
		Returning("queries").
		Executor().ScanValContext(ctx, &queries); err != nil {
		return 0, fmt.Errorf("could not increment daily counter in pg: %w", err)
	}

	return queries, nil
}

func (p *PgSQL) DailyCounter(ctx context.Context, date string) (int64, error) {
	var queries int64
	if _, err := p.Builder.From(dailyStatsTable).
		Select("queries").
		Where(goqu.C("day").Eq(date)).
		ScanValContext(ctx, &queries); err != nil {
		return 0, fmt.Errorf("could not get daily counter from pg: %w", err)
	}

	return queries, nil
}
