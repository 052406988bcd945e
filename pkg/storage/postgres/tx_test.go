package postgres_test

import (
	"errors"
	"numberbot/pkg/domain"
	"numberbot/pkg/serrors"
	"numberbot/pkg/storage"
	"numberbot/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_TxMisuse(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	inner, ok := tx.(*postgres.PgSQL)
	require.True(t, ok)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.ErrorIs(t, inner.Ping(ctx), storage.ErrAlreadyInTx)
	require.ErrorIs(t, inner.Close(), storage.ErrAlreadyInTx)
}

func TestPgSQL_CommitMakesWritesVisible(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = tx.UpsertUser(ctx, 1, domain.UserMeta{FirstName: "A"}, time.Now())
	require.NoError(t, err)
	_, err = tx.IncrementDailyCounter(ctx, "2025-02-01")
	require.NoError(t, err)

	// not visible outside the transaction yet
	n, err := pg.CountUsers(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	require.NoError(t, tx.Commit())

	n, err = pg.CountUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	day, err := pg.DailyCounter(ctx, "2025-02-01")
	require.NoError(t, err)
	require.Equal(t, int64(1), day)
}

func TestPgSQL_RollbackDiscardsWrites(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = tx.IncrementDailyCounter(ctx, "2025-02-01")
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	day, err := pg.DailyCounter(ctx, "2025-02-01")
	require.NoError(t, err)
	require.Zero(t, day)
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.IncrementDailyCounter(ctx, "2025-02-01")

		return err
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.IncrementDailyCounter(ctx, "2025-02-01"); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	day, err := pg.DailyCounter(ctx, "2025-02-01")
	require.NoError(t, err)
	require.Equal(t, int64(1), day)
}

func TestPgSQL_WithTxRollsBackOnPanic(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()

	require.PanicsWithValue(t, "boom", func() {
		_ = pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, _ = s.IncrementDailyCounter(ctx, "2025-02-01")

			panic("boom")
		})
	})

	day, err := pg.DailyCounter(ctx, "2025-02-01")
	require.NoError(t, err)
	require.Zero(t, day)
}
