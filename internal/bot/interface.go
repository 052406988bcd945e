package bot

import (
	"context"
	"numberbot/pkg/telegram"
)

//go:generate mockgen -package mockbot -source=interface.go -destination=mock/mockbot.go *
type Messenger interface {
	// Send posts msg to chatID and returns the new message ID.
	Send(ctx context.Context, chatID int64, msg telegram.Message) (int, error)
	// Edit replaces the content of a message sent earlier.
	Edit(ctx context.Context, chatID int64, messageID int, msg telegram.Message) error
	// SendPhoto posts a photo by URL with msg as its caption.
	SendPhoto(ctx context.Context, chatID int64, photoURL string, msg telegram.Message) (int, error)
	// AnswerCallback acknowledges a button press.
	AnswerCallback(ctx context.Context, callbackID, text string) error
}
