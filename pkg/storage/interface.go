// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence operations and transaction management so that different
// backends (PostgreSQL, SQLite) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"iter"
	"numberbot/pkg/domain"
	"time"
)

// UserStorage persists bot users.
type UserStorage interface {
	// UpsertUser creates the user or refreshes its profile and last seen time.
	// It reports true only for the call that created the row.
	UpsertUser(ctx context.Context, userID domain.UserID, meta domain.UserMeta, seenAt time.Time) (bool, error)
	// IncrementUserQueryCount adds one to the user's lookup counter. Unknown
	// users are ignored.
	IncrementUserQueryCount(ctx context.Context, userID domain.UserID) error
	// CountUsers returns the number of distinct users ever recorded.
	CountUsers(ctx context.Context) (int64, error)
	// UserByID returns nil when the user does not exist.
	UserByID(ctx context.Context, userID domain.UserID) (*domain.UserRecord, error)
}

// QueryStorage persists answered lookups and per day counters.
type QueryStorage interface {
	// AppendQuery stores a usage record. Records are never updated.
	AppendQuery(ctx context.Context, record domain.UsageRecord) error
	// IncrementDailyCounter adds one to the counter of date (YYYY-MM-DD) and
	// returns the new value.
	IncrementDailyCounter(ctx context.Context, date string) (int64, error)
	// DailyCounter returns the counter of date, zero when nothing was recorded.
	DailyCounter(ctx context.Context, date string) (int64, error)
}

// JoinRequestStorage tracks join requests waiting for approval.
type JoinRequestStorage interface {
	// AddJoinRequest records a pending request. Recording the same request
	// twice is not an error.
	AddJoinRequest(ctx context.Context, req domain.JoinRequest) error
	// RemoveJoinRequest forgets the request of userID in channelID, if any.
	RemoveJoinRequest(ctx context.Context, channelID string, userID domain.UserID) error
	// PendingJoinRequests lazily yields the users waiting in channelID, oldest
	// first. Rows are read as the sequence is consumed.
	PendingJoinRequests(ctx context.Context, channelID string) iter.Seq2[domain.UserID, error]
}

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	UserStorage
	QueryStorage
	JoinRequestStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same domain-specific capabilities as AllStorage,
// and additionally allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions. It exposes domain-specific capabilities and lifecycle
// management such as Close.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx is a helper that begins a transaction, invokes the provided callback
	// with a TxStorage, and then commits on success or rolls back if the callback
	// returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
