package gate

import (
	"context"
	"iter"
	"numberbot/pkg/domain"
)

//go:generate mockgen -package mockgate -source=interface.go -destination=mock/mockgate.go *

// MembershipProvider answers membership questions about required channels.
type MembershipProvider interface {
	// MemberStatus returns the user's current status in channelID.
	MemberStatus(ctx context.Context, channelID string, userID domain.UserID) (domain.MemberStatus, error)
	// InviteLink returns a URL users can join channel with, creating one when
	// the channel has no public address.
	InviteLink(ctx context.Context, channel domain.Channel) (string, error)
}

// JoinRequestInspector enumerates join requests that have not been decided yet.
type JoinRequestInspector interface {
	// PendingJoinRequests yields the users waiting for approval in channelID.
	// The sequence is lazy and can be ranged over once per call.
	PendingJoinRequests(ctx context.Context, channelID string) iter.Seq2[domain.UserID, error]
}

// Gate decides whether a user may use the bot.
type Gate interface {
	// IsAuthorized reports whether every required channel is satisfied.
	IsAuthorized(ctx context.Context, userID domain.UserID) bool
	// Decisions evaluates every required channel.
	Decisions(ctx context.Context, userID domain.UserID) []domain.ChannelDecision
	// JoinPrompt lists a join link for every required channel whose URL could
	// be resolved.
	JoinPrompt(ctx context.Context, userID domain.UserID) []domain.JoinLink
}
