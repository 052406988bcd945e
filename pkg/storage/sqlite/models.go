package sqlite

import (
	"numberbot/pkg/domain"
	"time"
)

const (
	usersTable        = "users"
	queriesTable      = "queries"
	dailyStatsTable   = "daily_stats"
	joinRequestsTable = "join_requests"
)

type userRow struct {
	ID          int64     `db:"id"`
	Username    string    `db:"username"`
	FirstName   string    `db:"first_name"`
	QueryCount  int64     `db:"query_count"`
	FirstSeenAt time.Time `db:"first_seen_at"`
	LastSeenAt  time.Time `db:"last_seen_at"`
}

func (u *userRow) toDomain() *domain.UserRecord {
	return &domain.UserRecord{
		ID:          domain.UserID(u.ID),
		Meta:        domain.UserMeta{Username: u.Username, FirstName: u.FirstName},
		QueryCount:  u.QueryCount,
		FirstSeenAt: u.FirstSeenAt,
		LastSeenAt:  u.LastSeenAt,
	}
}

// queryRow stores the lookup result as JSON text and the ID in its string form.
type queryRow struct {
	ID        string    `db:"id"`
	UserID    int64     `db:"user_id"`
	Number    string    `db:"number"`
	Result    string    `db:"result"`
	CreatedAt time.Time `db:"created_at"`
}

type joinRequestRow struct {
	ChannelID   string    `db:"channel_id"`
	UserID      int64     `db:"user_id"`
	RequestedAt time.Time `db:"requested_at"`
}
