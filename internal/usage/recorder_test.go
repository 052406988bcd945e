package usage_test

import (
	"context"
	"database/sql"
	"errors"
	"numberbot/internal/usage"
	"numberbot/pkg/domain"
	"numberbot/pkg/storage"
	mockstorage "numberbot/pkg/storage/mock"
	"numberbot/pkg/storage/sqlite"
	"path/filepath"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	kolkata = time.FixedZone("IST", 5*3600+1800)
	// 20:00 UTC on March 1st is already March 2nd in India.
	fixedNow = time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
)

func newTestRecorder(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, usage.Recorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	r := usage.New(st, usage.Options{
		Location: kolkata,
		Now:      func() time.Time { return fixedNow },
	})

	return ctrl, st, r
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestRecorder_RecordUser(t *testing.T) {
	_, st, r := newTestRecorder(t)

	meta := domain.UserMeta{Username: "alice", FirstName: "Alice"}
	st.EXPECT().UpsertUser(gomock.Any(), domain.UserID(5), meta, fixedNow).Return(true, nil)

	created, err := r.RecordUser(context.Background(), 5, meta)
	require.NoError(t, err)
	require.True(t, created)
}

func TestRecorder_RecordUser_Error(t *testing.T) {
	_, st, r := newTestRecorder(t)

	st.EXPECT().UpsertUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))

	_, err := r.RecordUser(context.Background(), 5, domain.UserMeta{})
	require.Error(t, err)
}

func TestRecorder_RecordQuery(t *testing.T) {
	ctrl, st, r := newTestRecorder(t)

	result := domain.LookupResult{Number: "9876543210"}
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().AppendQuery(gomock.Any(), gomock.Cond(func(rec domain.UsageRecord) bool {
				return rec.UserID == 5 && rec.Number == "9876543210" && rec.CreatedAt.Equal(fixedNow) &&
					rec.Result.Number == result.Number
			})).Return(nil),
			tx.EXPECT().IncrementUserQueryCount(gomock.Any(), domain.UserID(5)).Return(nil),
			tx.EXPECT().IncrementDailyCounter(gomock.Any(), "2025-03-02").Return(int64(1), nil),
		)
	})

	require.NoError(t, r.RecordQuery(context.Background(), 5, "9876543210", result))
}

func TestRecorder_RecordQuery_FailureIsReturned(t *testing.T) {
	ctrl, st, r := newTestRecorder(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AppendQuery(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().IncrementUserQueryCount(gomock.Any(), gomock.Any()).Return(errors.New("constraint"))
	})

	err := r.RecordQuery(context.Background(), 5, "9876543210", domain.LookupResult{})
	require.Error(t, err)
	require.ErrorContains(t, err, "constraint")
}

func TestRecorder_Stats(t *testing.T) {
	_, st, r := newTestRecorder(t)

	st.EXPECT().CountUsers(gomock.Any()).Return(int64(12), nil)
	st.EXPECT().DailyCounter(gomock.Any(), "2025-03-02").Return(int64(4), nil)

	stats, err := r.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.Stats{TotalUsers: 12, TodayQueries: 4, Date: "2025-03-02"}, stats)
}

func TestRecorder_User(t *testing.T) {
	_, st, r := newTestRecorder(t)

	record := &domain.UserRecord{ID: 5, QueryCount: 7, FirstSeenAt: fixedNow}
	st.EXPECT().UserByID(gomock.Any(), domain.UserID(5)).Return(record, nil)
	st.EXPECT().UserByID(gomock.Any(), domain.UserID(6)).Return(nil, errors.New("db down"))

	user, err := r.User(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, record, user)

	_, err = r.User(context.Background(), 6)
	require.ErrorContains(t, err, "could not get user")
}

func TestRecorder_RecordUser_FirstSeenExactlyOnce(t *testing.T) {
	db, err := sqlite.New(filepath.Join(t.TempDir(), "usage.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.Up(db.DB.(*sql.DB), filepath.Join("..", "..", "migrations", "sqlite")))

	r := usage.New(db, usage.Options{})
	ctx := context.Background()

	for _, id := range []domain.UserID{1, 2, 3} {
		firsts := 0
		for range 5 {
			created, err := r.RecordUser(ctx, id, domain.UserMeta{})
			require.NoError(t, err)
			if created {
				firsts++
			}
		}
		require.Equal(t, 1, firsts, "user %d", id)
	}

	require.NoError(t, r.RecordQuery(ctx, 1, "9876543210", domain.LookupResult{Number: "9876543210"}))

	stats, err := r.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), stats.TotalUsers)
	require.Equal(t, int64(1), stats.TodayQueries)

	user, err := r.User(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), user.QueryCount)

	missing, err := r.User(ctx, 99)
	require.NoError(t, err)
	require.Nil(t, missing)
}
