package gate_test

import (
	"context"
	"errors"
	"iter"
	"numberbot/internal/gate"
	mockgate "numberbot/internal/gate/mock"
	"numberbot/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const user = domain.UserID(1001)

var (
	chanA = domain.Channel{ID: "-1001111", Name: "Channel A"}
	chanB = domain.Channel{ID: "@channel_b", Name: "Channel B"}
	chanC = domain.Channel{ID: "-1003333", Name: "Channel C", InviteURL: "https://t.me/+static"}
)

func pending(ids ...domain.UserID) iter.Seq2[domain.UserID, error] {
	return func(yield func(domain.UserID, error) bool) {
		for _, id := range ids {
			if !yield(id, nil) {
				return
			}
		}
	}
}

func failingAfter(err error, ids ...domain.UserID) iter.Seq2[domain.UserID, error] {
	return func(yield func(domain.UserID, error) bool) {
		for _, id := range ids {
			if !yield(id, nil) {
				return
			}
		}
		yield(0, err)
	}
}

func newGate(t *testing.T, channels ...domain.Channel) (*mockgate.MockMembershipProvider, *mockgate.MockJoinRequestInspector, gate.Gate) {
	t.Helper()

	ctrl := gomock.NewController(t)
	members := mockgate.NewMockMembershipProvider(ctrl)
	requests := mockgate.NewMockJoinRequestInspector(ctrl)

	g, err := gate.New(members, requests, nil, gate.Options{Channels: channels, Timeout: time.Second})
	require.NoError(t, err)

	return members, requests, g
}

func TestIsAuthorized_NoChannels(t *testing.T) {
	_, _, g := newGate(t)
	require.True(t, g.IsAuthorized(context.Background(), user))
}

func TestIsAuthorized_MemberEverywhere(t *testing.T) {
	members, _, g := newGate(t, chanA, chanB)

	members.EXPECT().MemberStatus(gomock.Any(), chanA.ID, user).Return(domain.MemberStatusMember, nil)
	members.EXPECT().MemberStatus(gomock.Any(), chanB.ID, user).Return(domain.MemberStatusAdministrator, nil)

	require.True(t, g.IsAuthorized(context.Background(), user))
}

func TestIsAuthorized_PendingRequestSatisfiesChannel(t *testing.T) {
	members, requests, g := newGate(t, chanA, chanB)

	members.EXPECT().MemberStatus(gomock.Any(), chanA.ID, user).Return(domain.MemberStatusLeft, nil)
	requests.EXPECT().PendingJoinRequests(gomock.Any(), chanA.ID).Return(pending(7, user, 9))
	members.EXPECT().MemberStatus(gomock.Any(), chanB.ID, user).Return(domain.MemberStatusMember, nil)

	require.True(t, g.IsAuthorized(context.Background(), user))
}

func TestIsAuthorized_OneNotMemberFails(t *testing.T) {
	members, requests, g := newGate(t, chanA, chanB, chanC)

	members.EXPECT().MemberStatus(gomock.Any(), chanA.ID, user).Return(domain.MemberStatusMember, nil)
	members.EXPECT().MemberStatus(gomock.Any(), chanB.ID, user).Return(domain.MemberStatusKicked, nil)
	requests.EXPECT().PendingJoinRequests(gomock.Any(), chanB.ID).Return(pending(42))
	// chanC is never consulted once chanB fails.

	require.False(t, g.IsAuthorized(context.Background(), user))
}

func TestIsAuthorized_InspectionErrorFailsClosed(t *testing.T) {
	members, requests, g := newGate(t, chanA)

	members.EXPECT().MemberStatus(gomock.Any(), chanA.ID, user).Return(domain.MemberStatusLeft, nil)
	requests.EXPECT().PendingJoinRequests(gomock.Any(), chanA.ID).Return(failingAfter(errors.New("flood wait"), 5))

	require.False(t, g.IsAuthorized(context.Background(), user))
}

func TestIsAuthorized_StatusErrorFallsBackToRequests(t *testing.T) {
	members, requests, g := newGate(t, chanA)

	members.EXPECT().MemberStatus(gomock.Any(), chanA.ID, user).Return(domain.MemberStatus(""), errors.New("chat not found"))
	requests.EXPECT().PendingJoinRequests(gomock.Any(), chanA.ID).Return(pending(user))

	require.True(t, g.IsAuthorized(context.Background(), user))
}

func TestIsAuthorized_StopsAtMatchingRequest(t *testing.T) {
	members, requests, g := newGate(t, chanA)

	consumedPastMatch := false
	seq := func(yield func(domain.UserID, error) bool) {
		if !yield(user, nil) {
			return
		}
		consumedPastMatch = true
		yield(99, nil)
	}

	members.EXPECT().MemberStatus(gomock.Any(), chanA.ID, user).Return(domain.MemberStatusLeft, nil)
	requests.EXPECT().PendingJoinRequests(gomock.Any(), chanA.ID).Return(iter.Seq2[domain.UserID, error](seq))

	require.True(t, g.IsAuthorized(context.Background(), user))
	require.False(t, consumedPastMatch)
}

func TestDecisions(t *testing.T) {
	members, requests, g := newGate(t, chanA, chanB, chanC)

	members.EXPECT().MemberStatus(gomock.Any(), chanA.ID, user).Return(domain.MemberStatus(""), errors.New("timeout"))
	requests.EXPECT().PendingJoinRequests(gomock.Any(), chanA.ID).Return(pending())
	members.EXPECT().MemberStatus(gomock.Any(), chanB.ID, user).Return(domain.MemberStatusLeft, nil)
	requests.EXPECT().PendingJoinRequests(gomock.Any(), chanB.ID).Return(pending())
	members.EXPECT().MemberStatus(gomock.Any(), chanC.ID, user).Return(domain.MemberStatusOwner, nil)

	require.Equal(t, []domain.ChannelDecision{
		{Channel: chanA, Decision: domain.DecisionCheckFailed},
		{Channel: chanB, Decision: domain.DecisionNotMember},
		{Channel: chanC, Decision: domain.DecisionMember},
	}, g.Decisions(context.Background(), user))
}

func TestMembershipCallsCarryDeadline(t *testing.T) {
	members, _, g := newGate(t, chanA)

	members.EXPECT().MemberStatus(gomock.Any(), chanA.ID, user).
		DoAndReturn(func(ctx context.Context, _ string, _ domain.UserID) (domain.MemberStatus, error) {
			_, ok := ctx.Deadline()
			if !ok {
				return "", errors.New("missing deadline")
			}

			return domain.MemberStatusMember, nil
		})

	require.True(t, g.IsAuthorized(context.Background(), user))
}

func TestJoinPrompt(t *testing.T) {
	chanD := domain.Channel{ID: "-1004444", Name: "Channel D"}
	members, _, g := newGate(t, chanA, chanB, chanC, chanD)

	members.EXPECT().InviteLink(gomock.Any(), chanA).Return("https://t.me/+requestlink", nil)
	members.EXPECT().InviteLink(gomock.Any(), chanB).Return("", errors.New("not enough rights"))
	members.EXPECT().InviteLink(gomock.Any(), chanD).Return("", errors.New("chat not found"))

	require.Equal(t, []domain.JoinLink{
		{Name: "Channel A", URL: "https://t.me/+requestlink"},
		{Name: "Channel B", URL: "https://t.me/channel_b"},
		{Name: "Channel C", URL: "https://t.me/+static"},
	}, g.JoinPrompt(context.Background(), user))
}

func TestPublicURL(t *testing.T) {
	for in, want := range map[string]string{
		"@news":      "https://t.me/news",
		"@":          "",
		"-100123456": "",
		"":           "",
	} {
		require.Equal(t, want, gate.PublicURL(in), in)
	}
}
