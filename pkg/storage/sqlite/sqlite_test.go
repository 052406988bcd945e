package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"numberbot/pkg/domain"
	"numberbot/pkg/storage"
	"numberbot/pkg/storage/sqlite"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.SQLite {
	t.Helper()

	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.Up(db.DB.(*sql.DB), filepath.Join("..", "..", "..", "migrations", "sqlite")))

	return db
}

func TestSQLite_UpsertUser_FirstSeenOnce(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	created, err := db.UpsertUser(ctx, 1, domain.UserMeta{Username: "bob", FirstName: "Bob"}, first)
	require.NoError(t, err)
	require.True(t, created)

	created, err = db.UpsertUser(ctx, 1, domain.UserMeta{Username: "bobby", FirstName: "Bob"}, first.Add(time.Hour))
	require.NoError(t, err)
	require.False(t, created)

	user, err := db.UserByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "bobby", user.Meta.Username)
	require.True(t, first.Equal(user.FirstSeenAt))
	require.True(t, first.Add(time.Hour).Equal(user.LastSeenAt))

	missing, err := db.UserByID(ctx, 2)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestSQLite_UpsertUser_Concurrent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		creates int
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			created, err := db.UpsertUser(ctx, 77, domain.UserMeta{}, time.Now())
			if err != nil {
				t.Error(err)

				return
			}
			if created {
				mu.Lock()
				creates++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, creates)
	count, err := db.CountUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestSQLite_QueriesAndCounters(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := db.UpsertUser(ctx, 3, domain.UserMeta{}, time.Now())
	require.NoError(t, err)

	err = db.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.AppendQuery(ctx, domain.UsageRecord{ID: uuid.New(), UserID: 3, Number: "9876543210"}); err != nil {
			return err
		}
		if err := tx.IncrementUserQueryCount(ctx, 3); err != nil {
			return err
		}
		_, err := tx.IncrementDailyCounter(ctx, "2025-03-01")

		return err
	})
	require.NoError(t, err)

	user, err := db.UserByID(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, int64(1), user.QueryCount)

	n, err := db.DailyCounter(ctx, "2025-03-01")
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = db.DailyCounter(ctx, "2025-03-02")
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSQLite_WithTx_Rollback(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.IncrementDailyCounter(ctx, "2025-03-01"); err != nil {
			return err
		}

		return errors.New("boom")
	})
	require.Error(t, err)

	n, err := db.DailyCounter(ctx, "2025-03-01")
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSQLite_TxErrors(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.ErrorIs(t, db.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, db.Rollback(), storage.ErrNotInTx)

	tx, err := db.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.(*sqlite.SQLite).Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	require.NoError(t, tx.Rollback())
}

func TestSQLite_JoinRequests(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, db.AddJoinRequest(ctx, domain.JoinRequest{ChannelID: "@c", UserID: 9, RequestedAt: now.Add(time.Second)}))
	require.NoError(t, db.AddJoinRequest(ctx, domain.JoinRequest{ChannelID: "@c", UserID: 8, RequestedAt: now}))
	require.NoError(t, db.AddJoinRequest(ctx, domain.JoinRequest{ChannelID: "@c", UserID: 8, RequestedAt: now}))

	var ids []domain.UserID
	for id, err := range db.PendingJoinRequests(ctx, "@c") {
		require.NoError(t, err)
		ids = append(ids, id)
	}
	require.Equal(t, []domain.UserID{8, 9}, ids)

	require.NoError(t, db.RemoveJoinRequest(ctx, "@c", 8))

	ids = ids[:0]
	for id, err := range db.PendingJoinRequests(ctx, "@c") {
		require.NoError(t, err)
		ids = append(ids, id)
	}
	require.Equal(t, []domain.UserID{9}, ids)
}

func TestSQLite_Ping(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Ping(context.Background()))
}

func TestSQLite_BuiltStatementsFollowTheTx(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.AddJoinRequest(ctx, domain.JoinRequest{ChannelID: "@c", UserID: 4, RequestedAt: time.Now()}); err != nil {
			return err
		}
		if err := tx.AppendQuery(ctx, domain.UsageRecord{UserID: 4, Number: "9876543210"}); err != nil {
			return err
		}

		return errors.New("boom")
	})
	require.Error(t, err)

	for _, err := range db.PendingJoinRequests(ctx, "@c") {
		require.NoError(t, err)
		require.Fail(t, "join request survived the rollback")
	}

	var queries int
	require.NoError(t, db.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM queries`).Scan(&queries))
	require.Zero(t, queries)
}

func TestSQLite_AppendQuery_StoresResult(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	id := uuid.New()
	carrier := "Jio"
	require.NoError(t, db.AppendQuery(ctx, domain.UsageRecord{
		ID:     id,
		UserID: 5,
		Number: "9876543210",
		Result: domain.LookupResult{
			Number:     "9876543210",
			Validation: &domain.ValidationData{Carrier: &carrier},
		},
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}))

	var (
		number string
		raw    string
	)
	require.NoError(t, db.DB.QueryRowContext(ctx,
		`SELECT number, result FROM queries WHERE id = ?`, id.String()).Scan(&number, &raw))
	require.Equal(t, "9876543210", number)
	require.Contains(t, raw, `"Jio"`)
}
