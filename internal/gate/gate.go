// Package gate enforces membership of the required channels before a user may
// run lookups.
//
// A channel is satisfied when the user is a member, or when the user left (or
// the status could not be read) but has a join request waiting for approval.
// Anything else fails closed.
package gate

import (
	"context"
	"fmt"
	"numberbot/internal/config"
	"numberbot/pkg/domain"
	"numberbot/pkg/logger"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// Options configure the gate.
type Options struct {
	// Channels is the ordered list of channels every user must satisfy.
	Channels []domain.Channel
	// Timeout bounds each membership, invite or join request call.
	Timeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Channels: cfg.Channels(),
		Timeout:  cfg.Telegram.RequestTimeout,
	}
}

type gate struct {
	options   Options
	members   MembershipProvider
	requests  JoinRequestInspector
	decisions metric.Int64Counter
}

// New creates a Gate. A nil MeterProvider disables metrics.
func New(members MembershipProvider, requests JoinRequestInspector, mp metric.MeterProvider, options Options) (Gate, error) {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}

	decisions, err := mp.Meter("numberbot/internal/gate").Int64Counter("numberbot.gate.decisions",
		metric.WithDescription("Per channel membership decisions"))
	if err != nil {
		return nil, fmt.Errorf("could not create decisions counter: %w", err)
	}

	return &gate{
		options:   options,
		members:   members,
		requests:  requests,
		decisions: decisions,
	}, nil
}

// IsAuthorized stops at the first channel that is not satisfied.
func (g *gate) IsAuthorized(ctx context.Context, userID domain.UserID) bool {
	for _, ch := range g.options.Channels {
		if !g.decide(ctx, ch, userID).Satisfied() {
			return false
		}
	}

	return true
}

func (g *gate) Decisions(ctx context.Context, userID domain.UserID) []domain.ChannelDecision {
	out := make([]domain.ChannelDecision, 0, len(g.options.Channels))
	for _, ch := range g.options.Channels {
		out = append(out, domain.ChannelDecision{Channel: ch, Decision: g.decide(ctx, ch, userID)})
	}

	return out
}

func (g *gate) JoinPrompt(ctx context.Context, userID domain.UserID) []domain.JoinLink {
	links := make([]domain.JoinLink, 0, len(g.options.Channels))
	for _, ch := range g.options.Channels {
		url := g.resolveURL(ctx, ch, userID)
		if url == "" {
			continue
		}

		links = append(links, domain.JoinLink{Name: ch.Name, URL: url})
	}

	return links
}

func (g *gate) decide(ctx context.Context, ch domain.Channel, userID domain.UserID) domain.MembershipDecision {
	decision := g.evaluate(ctx, ch, userID)
	g.decisions.Add(ctx, 1, metric.WithAttributes(attribute.String("decision", decision.String())))

	return decision
}

func (g *gate) evaluate(ctx context.Context, ch domain.Channel, userID domain.UserID) domain.MembershipDecision {
	status, err := g.memberStatus(ctx, ch.ID, userID)
	if err != nil {
		logger.Warn(ctx, "could not get member status",
			zap.String("channel", ch.ID), zap.Stringer("userID", userID), zap.Error(err))

		if g.hasPendingRequest(ctx, ch.ID, userID) {
			return domain.DecisionPendingJoinRequest
		}

		return domain.DecisionCheckFailed
	}

	if status.Active() {
		return domain.DecisionMember
	}

	if g.hasPendingRequest(ctx, ch.ID, userID) {
		return domain.DecisionPendingJoinRequest
	}

	return domain.DecisionNotMember
}

func (g *gate) memberStatus(ctx context.Context, channelID string, userID domain.UserID) (domain.MemberStatus, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	return g.members.MemberStatus(ctx, channelID, userID)
}

// hasPendingRequest treats an enumeration error as "not found".
func (g *gate) hasPendingRequest(ctx context.Context, channelID string, userID domain.UserID) bool {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	for id, err := range g.requests.PendingJoinRequests(ctx, channelID) {
		if err != nil {
			logger.Warn(ctx, "could not list join requests", zap.String("channel", channelID), zap.Error(err))

			return false
		}
		if id == userID {
			return true
		}
	}

	return false
}

func (g *gate) resolveURL(ctx context.Context, ch domain.Channel, userID domain.UserID) string {
	if ch.InviteURL != "" {
		return ch.InviteURL
	}

	callCtx, cancel := g.callContext(ctx)
	defer cancel()

	url, err := g.members.InviteLink(callCtx, ch)
	if err == nil && url != "" {
		return url
	}
	if err != nil {
		logger.Warn(ctx, "could not resolve invite link",
			zap.String("channel", ch.ID), zap.Stringer("userID", userID), zap.Error(err))
	}

	return PublicURL(ch.ID)
}

// PublicURL returns the t.me address of a public "@username" channel, or ""
// for numeric ids which have no public address.
func PublicURL(channelID string) string {
	name, ok := strings.CutPrefix(channelID, "@")
	if !ok || name == "" {
		return ""
	}

	return "https://t.me/" + name
}

func (g *gate) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.options.Timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, g.options.Timeout)
}
