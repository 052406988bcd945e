package usage

import (
	"context"
	"numberbot/pkg/domain"
)

//go:generate mockgen -package mockusage -source=interface.go -destination=mock/mockusage.go *
type Recorder interface {
	// RecordUser upserts the user and reports whether this call created it.
	RecordUser(ctx context.Context, userID domain.UserID, meta domain.UserMeta) (bool, error)
	// RecordQuery appends the answered lookup and bumps the user and day counters
	// in a single transaction.
	RecordQuery(ctx context.Context, userID domain.UserID, number domain.PhoneNumber, result domain.LookupResult) error
	// Stats returns the number of users and today's query counter.
	Stats(ctx context.Context) (domain.Stats, error)
	// User returns what is stored about userID, or nil when it was never recorded.
	User(ctx context.Context, userID domain.UserID) (*domain.UserRecord, error)
}
