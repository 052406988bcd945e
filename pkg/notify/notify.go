// Package notify delivers operator notices (new users, queries, exhausted
// credentials) to a log chat. Delivery is fire and forget. Sinks used on the
// user's path are wrapped in a Queue so no reply waits for a notice.
//
//go:generate mockgen -package mocknotify -source=notify.go -destination=mock/mocknotify.go *
package notify

import (
	"context"
	"fmt"
	"numberbot/pkg/logger"
	"numberbot/pkg/serrors"
	"time"

	"go.uber.org/zap"
)

// Kind tags a notice so sinks and logs can tell them apart.
type Kind string

const (
	KindNewUser        Kind = "new_user"
	KindQuery          Kind = "query"
	KindKeyLimit       Kind = "key_limit"
	KindKeysExhausted  Kind = "keys_exhausted"
	KindStorageFailure Kind = "storage_failure"
)

// Message is one notice addressed to a chat.
type Message struct {
	Kind   Kind   `json:"kind"`
	ChatID int64  `json:"chatId"`
	Text   string `json:"text"`
}

// Sink delivers notices.
type Sink interface {
	Notify(ctx context.Context, msg Message) error
}

// ThrottledError is returned by sinks when the transport asked the caller to
// back off. It matches serrors.ErrRateLimited.
type ThrottledError struct {
	RetryAfter time.Duration
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("throttled, retry after %s", e.RetryAfter)
}

func (e *ThrottledError) Is(target error) bool { return target == serrors.ErrRateLimited }

// Fire hands msg to sink and logs a failure instead of returning it. With a
// Queue as sink it returns without waiting for delivery. A nil sink drops the
// notice.
func Fire(ctx context.Context, sink Sink, msg Message) {
	if sink == nil {
		return
	}

	if err := sink.Notify(ctx, msg); err != nil {
		logger.Warn(ctx, "could not deliver notice",
			zap.String("kind", string(msg.Kind)),
			zap.Int64("chatID", msg.ChatID),
			zap.Error(err))
	}
}

// LogSink writes notices to the context logger. It is used when no log chat
// is configured.
type LogSink struct{}

func (LogSink) Notify(ctx context.Context, msg Message) error {
	logger.Info(ctx, "notice",
		zap.String("kind", string(msg.Kind)),
		zap.Int64("chatID", msg.ChatID),
		zap.String("text", msg.Text))

	return nil
}

var _ Sink = LogSink{}
