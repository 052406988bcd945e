package domain

import (
	"strconv"
	"time"
)

// UserID is a Telegram user identifier.
type UserID int64

func (u UserID) String() string { return strconv.FormatInt(int64(u), 10) }

// UserMeta holds the profile fields captured when a user talks to the bot.
type UserMeta struct {
	Username  string `json:"username,omitempty"`
	FirstName string `json:"firstName,omitempty"`
}

// UserRecord is the persisted view of a bot user. It is upserted on every
// /start and its QueryCount grows with every accepted lookup.
type UserRecord struct {
	// ID is the Telegram user ID.
	ID UserID `json:"id"`
	// Meta holds the latest known username and first name.
	Meta UserMeta `json:"meta"`
	// QueryCount is the number of lookups recorded for the user.
	QueryCount int64 `json:"queryCount"`
	// FirstSeenAt is when the user was first recorded.
	FirstSeenAt time.Time `json:"firstSeenAt"`
	// LastSeenAt is when the user was last upserted.
	LastSeenAt time.Time `json:"lastSeenAt"`
}
