package postgres

import (
	"encoding/json"
	"fmt"
	"numberbot/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgUser struct {
	ID         int64  `db:"id"`
	Username   string `db:"username"`
	FirstName  string `db:"first_name"`
	QueryCount int64  `db:"query_count" goqu:"skipinsert"`
	Visits     int64  `db:"visits"      goqu:"skipinsert"`

	FirstSeenAt time.Time `db:"first_seen_at"`
	LastSeenAt  time.Time `db:"last_seen_at"`
}

func (p *PgUser) ToDomain() *domain.UserRecord {
	return &domain.UserRecord{
		ID: domain.UserID(p.ID),
		Meta: domain.UserMeta{
			Username:  p.Username,
			FirstName: p.FirstName,
		},
		QueryCount:  p.QueryCount,
		FirstSeenAt: p.FirstSeenAt,
		LastSeenAt:  p.LastSeenAt,
	}
}

type PgQuery struct {
	ID        uuid.UUID       `db:"id"`
	UserID    int64           `db:"user_id"`
	Number    string          `db:"number"`
	Result    json.RawMessage `db:"result"`
	CreatedAt time.Time       `db:"created_at"`
}

func (p *PgQuery) FromDomain(record domain.UsageRecord) error {
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

	*p = PgQuery{
		ID:        id,
		UserID:    int64(record.UserID),
		Number:    string(record.Number),
		Result:    result,
		CreatedAt: createdAt,
	}

	return nil
}

type PgJoinRequest struct {
	ChannelID   string    `db:"channel_id"`
	UserID      int64     `db:"user_id"`
	RequestedAt time.Time `db:"requested_at"`
}
