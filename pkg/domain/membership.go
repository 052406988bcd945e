package domain

// Channel is a chat every user must join before using the bot.
type Channel struct {
	// ID is either a public "@username" or a numeric "-100..." chat ID.
	ID string `json:"id" yaml:"id"`
	// Name is shown on the join button.
	Name string `json:"name" yaml:"name"`
	// InviteURL, when set, is used instead of resolving a link at runtime.
	InviteURL string `json:"inviteUrl,omitempty" yaml:"inviteUrl"`
}

// JoinLink is one button of the join prompt.
type JoinLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// MemberStatus is the membership state reported by the chat platform.
type MemberStatus string

const (
	MemberStatusOwner         MemberStatus = "owner"
	MemberStatusAdministrator MemberStatus = "administrator"
	MemberStatusMember        MemberStatus = "member"
	MemberStatusLeft          MemberStatus = "left"
	MemberStatusKicked        MemberStatus = "kicked"
	MemberStatusUnknown       MemberStatus = "unknown"
)

// Active reports whether the status grants membership on its own.
func (s MemberStatus) Active() bool {
	switch s {
	case MemberStatusOwner, MemberStatusAdministrator, MemberStatusMember:
		return true
	default:
		return false
	}
}

// MembershipDecision is the gate's verdict for one user and one channel.
type MembershipDecision int

const (
	// DecisionNotMember means the user left or never joined and has no pending request.
	DecisionNotMember MembershipDecision = iota
	// DecisionMember means the user is an active member.
	DecisionMember
	// DecisionPendingJoinRequest means the user asked to join and is awaiting approval.
	DecisionPendingJoinRequest
	// DecisionCheckFailed means the status query failed and no pending request was found.
	DecisionCheckFailed
)

// Satisfied reports whether the decision lets the user through.
func (d MembershipDecision) Satisfied() bool {
	return d == DecisionMember || d == DecisionPendingJoinRequest
}

func (d MembershipDecision) String() string {
	switch d {
	case DecisionMember:
		return "member"
	case DecisionPendingJoinRequest:
		return "pending_join_request"
	case DecisionCheckFailed:
		return "check_failed"
	default:
		return "not_member"
	}
}

// ChannelDecision pairs a channel with the decision reached for it.
type ChannelDecision struct {
	Channel  Channel            `json:"channel"`
	Decision MembershipDecision `json:"decision"`
}
