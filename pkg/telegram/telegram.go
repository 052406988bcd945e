// Package telegram adapts github.com/go-telegram/bot to the bot's collaborator
// interfaces: sending and editing messages, membership checks, invite links
// and operator notices.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"numberbot/pkg/domain"
	"numberbot/pkg/notify"
	"numberbot/pkg/serrors"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Button is one inline keyboard button. Exactly one of URL and CallbackData
// should be set.
type Button struct {
	Text         string
	URL          string
	CallbackData string
}

// Message is an outgoing HTML message with an optional inline keyboard.
type Message struct {
	Text    string
	Buttons [][]Button
}

// Client wraps a *bot.Bot.
type Client struct {
	bot *bot.Bot
}

// New creates a Client around b.
func New(b *bot.Bot) *Client {
	return &Client{bot: b}
}

// Send posts msg to chatID and returns the new message ID.
func (c *Client) Send(ctx context.Context, chatID int64, msg Message) (int, error) {
	sent, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        msg.Text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard(msg.Buttons),
	})
	if err != nil {
		return 0, mapError("could not send message", err)
	}

	return sent.ID, nil
}

// Edit replaces the text and keyboard of an existing message. Editing a
// message to its current content is not an error.
func (c *Client) Edit(ctx context.Context, chatID int64, messageID int, msg Message) error {
	_, err := c.bot.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      chatID,
		MessageID:   messageID,
		Text:        msg.Text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard(msg.Buttons),
	})
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "message is not modified") {
		return nil
	}
	if err != nil {
		return mapError("could not edit message", err)
	}

	return nil
}

// SendPhoto posts a photo by URL with msg as its caption.
func (c *Client) SendPhoto(ctx context.Context, chatID int64, photoURL string, msg Message) (int, error) {
	sent, err := c.bot.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:      chatID,
		Photo:       &models.InputFileString{Data: photoURL},
		Caption:     msg.Text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard(msg.Buttons),
	})
	if err != nil {
		return 0, mapError("could not send photo", err)
	}

	return sent.ID, nil
}

// AnswerCallback acknowledges a callback query, optionally with a toast.
func (c *Client) AnswerCallback(ctx context.Context, callbackID, text string) error {
	if _, err := c.bot.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	}); err != nil {
		return mapError("could not answer callback", err)
	}

	return nil
}

// MemberStatus reports userID's status in channelID. A restricted user counts
// as a member only while still in the chat.
func (c *Client) MemberStatus(ctx context.Context, channelID string, userID domain.UserID) (domain.MemberStatus, error) {
	member, err := c.bot.GetChatMember(ctx, &bot.GetChatMemberParams{
		ChatID: channelID,
		UserID: int64(userID),
	})
	if err != nil {
		return domain.MemberStatusUnknown, mapError("could not get chat member", err)
	}

	return StatusOf(*member), nil
}

// InviteLink returns the public address of a channel with a username, or a
// fresh join-request link for a private one.
func (c *Client) InviteLink(ctx context.Context, ch domain.Channel) (string, error) {
	chat, err := c.bot.GetChat(ctx, &bot.GetChatParams{ChatID: ch.ID})
	if err != nil {
		return "", mapError("could not get chat", err)
	}
	if chat.Username != "" {
		return "https://t.me/" + chat.Username, nil
	}

	link, err := c.bot.CreateChatInviteLink(ctx, &bot.CreateChatInviteLinkParams{
		ChatID:             ch.ID,
		Name:               "numberbot",
		CreatesJoinRequest: true,
	})
	if err != nil {
		return "", mapError("could not create invite link", err)
	}

	return link.InviteLink, nil
}

// Notify sends an operator notice as an HTML message.
func (c *Client) Notify(ctx context.Context, msg notify.Message) error {
	if msg.ChatID == 0 {
		return serrors.With(serrors.ErrBadRequest, "notice %q has no chat", msg.Kind)
	}

	_, err := c.Send(ctx, msg.ChatID, Message{Text: msg.Text})

	return err
}

// StatusOf maps a chat member to a domain status.
func StatusOf(member models.ChatMember) domain.MemberStatus {
	switch member.Type {
	case models.ChatMemberTypeOwner:
		return domain.MemberStatusOwner
	case models.ChatMemberTypeAdministrator:
		return domain.MemberStatusAdministrator
	case models.ChatMemberTypeMember:
		return domain.MemberStatusMember
	case models.ChatMemberTypeRestricted:
		if member.Restricted != nil && member.Restricted.IsMember {
			return domain.MemberStatusMember
		}

		return domain.MemberStatusLeft
	case models.ChatMemberTypeLeft:
		return domain.MemberStatusLeft
	case models.ChatMemberTypeBanned:
		return domain.MemberStatusKicked
	default:
		return domain.MemberStatusUnknown
	}
}

// MemberUserID returns the user a chat member entry is about.
func MemberUserID(member models.ChatMember) (domain.UserID, bool) {
	switch {
	case member.Owner != nil:
		return idOf(member.Owner.User)
	case member.Administrator != nil:
		return idOf(member.Administrator.User)
	case member.Member != nil:
		return idOf(member.Member.User)
	case member.Restricted != nil:
		return idOf(member.Restricted.User)
	case member.Left != nil:
		return idOf(member.Left.User)
	case member.Banned != nil:
		return idOf(member.Banned.User)
	default:
		return 0, false
	}
}

// Sender is who an update came from.
type Sender struct {
	ID        domain.UserID
	Username  string
	FirstName string
}

// SenderOf accepts a models.User or a *models.User.
func SenderOf(u any) (Sender, bool) {
	var user models.User
	switch u := u.(type) {
	case *models.User:
		if u == nil {
			return Sender{}, false
		}
		user = *u
	case models.User:
		user = u
	default:
		return Sender{}, false
	}

	if user.ID == 0 {
		return Sender{}, false
	}

	return Sender{ID: domain.UserID(user.ID), Username: user.Username, FirstName: user.FirstName}, true
}

// idOf covers member variants that carry the user by value as well as by pointer.
func idOf(u any) (domain.UserID, bool) {
	s, ok := SenderOf(u)

	return s.ID, ok
}

func keyboard(rows [][]Button) models.ReplyMarkup {
	if len(rows) == 0 {
		return nil
	}

	markup := &models.InlineKeyboardMarkup{InlineKeyboard: make([][]models.InlineKeyboardButton, 0, len(rows))}
	for _, row := range rows {
		buttons := make([]models.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, models.InlineKeyboardButton{Text: b.Text, URL: b.URL, CallbackData: b.CallbackData})
		}
		markup.InlineKeyboard = append(markup.InlineKeyboard, buttons)
	}

	return markup
}

func mapError(msg string, err error) error {
	var tooMany *bot.TooManyRequestsError
	switch {
	case errors.As(err, &tooMany):
		return fmt.Errorf("%s: %w", msg, &notify.ThrottledError{RetryAfter: time.Duration(tooMany.RetryAfter) * time.Second})
	case errors.Is(err, context.DeadlineExceeded):
		return serrors.Wrap(serrors.ErrTimeout, err, "%s", msg)
	case errors.Is(err, bot.ErrorBadRequest), errors.Is(err, bot.ErrorNotFound):
		return serrors.Wrap(serrors.ErrBadRequest, err, "%s", msg)
	case errors.Is(err, bot.ErrorForbidden), errors.Is(err, bot.ErrorUnauthorized):
		return serrors.Wrap(serrors.ErrForbidden, err, "%s", msg)
	default:
		return serrors.Wrap(serrors.ErrUnavailable, err, "%s", msg)
	}
}

var _ notify.Sink = (*Client)(nil)
