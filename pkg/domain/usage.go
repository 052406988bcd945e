package domain

import (
	"time"

	"github.com/google/uuid"
)

// UsageRecord is an append-only log entry for one answered lookup.
type UsageRecord struct {
	// ID uniquely identifies the record.
	ID uuid.UUID `json:"id"`
	// UserID is the user who asked.
	UserID UserID `json:"userId"`
	// Number is the canonical number that was looked up.
	Number PhoneNumber `json:"number"`
	// Result is the snapshot delivered to the user.
	Result LookupResult `json:"result"`
	// CreatedAt is when the lookup was answered.
	CreatedAt time.Time `json:"createdAt"`
}

// Stats summarizes bot usage for operators.
type Stats struct {
	// TotalUsers is the number of distinct users ever recorded.
	TotalUsers int64 `json:"totalUsers"`
	// TodayQueries is the day counter for Date.
	TodayQueries int64 `json:"todayQueries"`
	// Date is the calendar day, formatted as YYYY-MM-DD, TodayQueries refers to.
	Date string `json:"date"`
	// Keys is the number of loaded validation credentials.
	Keys int `json:"keys"`
	// KeyCursor is the index of the next credential to be handed out.
	KeyCursor int `json:"keyCursor"`
}

// JoinRequest is a pending request to join a required channel.
type JoinRequest struct {
	ChannelID   string    `json:"channelId"`
	UserID      UserID    `json:"userId"`
	RequestedAt time.Time `json:"requestedAt"`
}
