// Package bot turns Telegram updates into lookups, gate prompts and operator
// commands.
package bot

import (
	"context"
	"errors"
	"numberbot/internal/admission"
	"numberbot/internal/config"
	"numberbot/internal/credential"
	"numberbot/internal/gate"
	"numberbot/internal/lookup"
	"numberbot/internal/phone"
	"numberbot/internal/usage"
	"numberbot/pkg/domain"
	"numberbot/pkg/logger"
	"numberbot/pkg/notify"
	"numberbot/pkg/serrors"
	"numberbot/pkg/storage"
	"numberbot/pkg/telegram"
	"strconv"
	"strings"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Options configure the dispatcher.
type Options struct {
	// OwnerID may run operator commands.
	OwnerID domain.UserID
	// LogChatID receives operator notices.
	LogChatID int64
	// WelcomeImage is sent with /start when set.
	WelcomeImage string
	// Workers bounds how many updates are handled at once.
	Workers int
	// Channels are the required channels, used to attribute join requests.
	Channels []domain.Channel
	// CountryName is shown when the provider does not report a country.
	CountryName string
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		OwnerID:      domain.UserID(cfg.Telegram.OwnerID),
		LogChatID:    cfg.Telegram.LogChatID,
		WelcomeImage: cfg.Telegram.WelcomeImage,
		Workers:      cfg.Telegram.Workers,
		Channels:     cfg.Channels(),
		CountryName:  cfg.Phone.CountryName,
	}
}

// Services are the collaborators the dispatcher drives.
type Services struct {
	Normalizer   *phone.Normalizer
	Gate         gate.Gate
	Limiter      admission.Limiter
	Lookup       lookup.Aggregator
	Usage        usage.Recorder
	Keys         *credential.Rotator
	JoinRequests storage.JoinRequestStorage
	Notices      notify.Sink
}

// Dispatcher routes updates to handlers.
type Dispatcher struct {
	options   Options
	services  Services
	messenger Messenger
	render    renderer
	sem       *semaphore.Weighted
}

// New creates a Dispatcher.
func New(messenger Messenger, services Services, options Options) *Dispatcher {
	if options.Workers <= 0 {
		options.Workers = 1
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &Dispatcher{
		options:   options,
		services:  services,
		messenger: messenger,
		render:    renderer{countryName: options.CountryName, format: services.Normalizer.Format},
		sem:       semaphore.NewWeighted(int64(options.Workers)),
	}
}

// Handle processes one update. Its signature matches tgbot.HandlerFunc so it
// can be installed as the default handler.
func (d *Dispatcher) Handle(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	if err := d.sem.Acquire(ctx, 1); err != nil {
		return
	}
	defer d.sem.Release(1)

	ctx = logger.WithFields(ctx, zap.Int64("updateID", update.ID))

	switch {
	case update.Message != nil:
		d.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		d.handleCallback(ctx, update.CallbackQuery)
	case update.ChatJoinRequest != nil:
		d.handleJoinRequest(ctx, update.ChatJoinRequest)
	case update.ChatMember != nil:
		d.handleChatMember(ctx, update.ChatMember)
	}
}

func (d *Dispatcher) handleMessage(ctx context.Context, msg *models.Message) {
	sender, ok := telegram.SenderOf(msg.From)
	if !ok || msg.Chat.Type != "private" || msg.Text == "" {
		return
	}
	ctx = logger.WithFields(ctx, zap.Stringer("userID", sender.ID))

	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, "/") {
		d.lookup(ctx, msg.Chat.ID, sender, text)

		return
	}

	command, _, _ := strings.Cut(strings.Fields(text)[0], "@")
	switch command {
	case "/start":
		d.start(ctx, msg.Chat.ID, sender)
	case "/stats":
		d.stats(ctx, msg.Chat.ID, sender)
	case "/me":
		d.me(ctx, msg.Chat.ID, sender)
	default:
		d.send(ctx, msg.Chat.ID, telegram.Message{Text: d.render.help()})
	}
}

func (d *Dispatcher) start(ctx context.Context, chatID int64, sender telegram.Sender) {
	firstSeen, err := d.services.Usage.RecordUser(ctx, sender.ID, domain.UserMeta{
		Username:  sender.Username,
		FirstName: sender.FirstName,
	})
	if err != nil {
		logger.Error(ctx, "could not record user", zap.Error(err))
	}
	if firstSeen {
		d.notice(ctx, notify.KindNewUser, d.render.newUserNotice(sender))
	}

	authorized := d.services.Gate.IsAuthorized(ctx, sender.ID)
	welcome := telegram.Message{Text: d.render.welcome(sender.FirstName, !authorized)}

	if d.options.WelcomeImage != "" {
		if _, err := d.messenger.SendPhoto(ctx, chatID, d.options.WelcomeImage, welcome); err != nil {
			logger.Warn(ctx, "could not send welcome photo", zap.Error(err))
			d.send(ctx, chatID, welcome)
		}
	} else {
		d.send(ctx, chatID, welcome)
	}

	if !authorized {
		d.send(ctx, chatID, d.render.joinPrompt(d.services.Gate.JoinPrompt(ctx, sender.ID)))
	}
}

func (d *Dispatcher) stats(ctx context.Context, chatID int64, sender telegram.Sender) {
	if d.options.OwnerID == 0 || sender.ID != d.options.OwnerID {
		d.send(ctx, chatID, telegram.Message{Text: d.render.unauthorized()})

		return
	}

	stats, err := d.services.Usage.Stats(ctx)
	if err != nil {
		logger.Error(ctx, "could not get stats", zap.Error(err))
		d.send(ctx, chatID, telegram.Message{Text: d.render.failed()})

		return
	}
	stats.Keys = d.services.Keys.Len()
	stats.KeyCursor = d.services.Keys.Cursor()

	d.send(ctx, chatID, telegram.Message{Text: d.render.stats(stats)})
}

// me shows users their lookup count and where they stand with every required
// channel. It is available before the gate is passed.
func (d *Dispatcher) me(ctx context.Context, chatID int64, sender telegram.Sender) {
	record, err := d.services.Usage.User(ctx, sender.ID)
	if err != nil {
		logger.Warn(ctx, "could not get user", zap.Error(err))
	}

	decisions := d.services.Gate.Decisions(ctx, sender.ID)
	d.send(ctx, chatID, telegram.Message{Text: d.render.me(sender, record, decisions)})
}

// lookup answers a number. Provider calls only happen once the user passed
// the gate, the number is well formed and the user is within their caps.
func (d *Dispatcher) lookup(ctx context.Context, chatID int64, sender telegram.Sender, text string) {
	if !d.services.Gate.IsAuthorized(ctx, sender.ID) {
		d.send(ctx, chatID, d.render.joinPrompt(d.services.Gate.JoinPrompt(ctx, sender.ID)))

		return
	}

	number, err := d.services.Normalizer.Normalize(text)
	if err != nil {
		reason := "invalid number"
		var se *serrors.Error
		if errors.As(err, &se) && se.Message() != "" {
			reason = se.Message()
		}
		logger.Debug(ctx, "rejected number", zap.Error(err))
		d.send(ctx, chatID, telegram.Message{Text: d.render.invalidNumber(reason)})

		return
	}
	ctx = logger.WithFields(ctx, zap.Stringer("number", number))

	if err := d.services.Limiter.Allow(ctx, sender.ID); err != nil {
		logger.Info(ctx, "lookup rate limited", zap.Error(err))
		reply := d.render.minuteLimited()
		if errors.Is(err, admission.ErrDailyLimit) {
			reply = d.render.dailyLimited()
		}
		d.send(ctx, chatID, telegram.Message{Text: reply})

		return
	}

	d.notice(ctx, notify.KindQuery, d.render.queryNotice(sender, number))

	processingID, err := d.messenger.Send(ctx, chatID, telegram.Message{Text: d.render.processing()})
	if err != nil {
		logger.Error(ctx, "could not send processing message", zap.Error(err))

		return
	}

	result := d.services.Lookup.Lookup(ctx, number)
	if result.Exhausted() {
		d.edit(ctx, chatID, processingID, telegram.Message{Text: d.render.exhausted()})

		return
	}

	if err := d.messenger.Edit(ctx, chatID, processingID, d.render.result(result)); err != nil {
		logger.Error(ctx, "could not deliver lookup result", zap.Error(err))
		d.edit(ctx, chatID, processingID, telegram.Message{Text: d.render.failed()})

		return
	}

	if err := d.services.Usage.RecordQuery(ctx, sender.ID, number, result); err != nil {
		logger.Error(ctx, "could not record query", zap.Error(err))
		d.notice(ctx, notify.KindStorageFailure, d.render.storageNotice(sender, number))
	}
}

func (d *Dispatcher) handleCallback(ctx context.Context, cq *models.CallbackQuery) {
	if err := d.messenger.AnswerCallback(ctx, cq.ID, ""); err != nil {
		logger.Warn(ctx, "could not answer callback", zap.Error(err))
	}
	if cq.Data != CheckMembershipData {
		return
	}

	sender, ok := telegram.SenderOf(cq.From)
	if !ok {
		return
	}
	ctx = logger.WithFields(ctx, zap.Stringer("userID", sender.ID))

	var reply telegram.Message
	if d.services.Gate.IsAuthorized(ctx, sender.ID) {
		reply = telegram.Message{Text: d.render.membershipVerified()}
	} else {
		reply = d.render.stillGated(d.services.Gate.JoinPrompt(ctx, sender.ID))
	}

	chatID, messageID := int64(sender.ID), 0
	if m := cq.Message.Message; m != nil {
		chatID, messageID = m.Chat.ID, m.ID
	}
	if messageID == 0 {
		d.send(ctx, chatID, reply)

		return
	}

	if err := d.messenger.Edit(ctx, chatID, messageID, reply); err != nil {
		logger.Warn(ctx, "could not edit membership prompt", zap.Error(err))
		d.send(ctx, chatID, reply)
	}
}

func (d *Dispatcher) handleJoinRequest(ctx context.Context, req *models.ChatJoinRequest) {
	sender, ok := telegram.SenderOf(req.From)
	if !ok {
		return
	}
	channelID, ok := d.channelFor(req.Chat.ID, req.Chat.Username)
	if !ok {
		return
	}
	ctx = logger.WithFields(ctx, zap.Stringer("userID", sender.ID), zap.String("channel", channelID))

	requestedAt := d.options.Now()
	if req.Date > 0 {
		requestedAt = time.Unix(int64(req.Date), 0)
	}

	if err := d.services.JoinRequests.AddJoinRequest(ctx, domain.JoinRequest{
		ChannelID:   channelID,
		UserID:      sender.ID,
		RequestedAt: requestedAt,
	}); err != nil {
		logger.Error(ctx, "could not record join request", zap.Error(err))

		return
	}

	logger.Info(ctx, "join request recorded")
}

// handleChatMember forgets a pending request once the user's status in the
// channel changes, whether they were approved or left.
func (d *Dispatcher) handleChatMember(ctx context.Context, upd *models.ChatMemberUpdated) {
	userID, ok := telegram.MemberUserID(upd.NewChatMember)
	if !ok {
		return
	}
	channelID, ok := d.channelFor(upd.Chat.ID, upd.Chat.Username)
	if !ok {
		return
	}
	ctx = logger.WithFields(ctx, zap.Stringer("userID", userID), zap.String("channel", channelID))

	if err := d.services.JoinRequests.RemoveJoinRequest(ctx, channelID, userID); err != nil {
		logger.Error(ctx, "could not clear join request", zap.Error(err))

		return
	}

	logger.Debug(ctx, "join request cleared", zap.String("status", string(telegram.StatusOf(upd.NewChatMember))))
}

// channelFor maps an update's chat to the configured channel ID.
func (d *Dispatcher) channelFor(chatID int64, username string) (string, bool) {
	numeric := strconv.FormatInt(chatID, 10)
	for _, ch := range d.options.Channels {
		if ch.ID == numeric {
			return ch.ID, true
		}
		if username != "" && strings.EqualFold(ch.ID, "@"+username) {
			return ch.ID, true
		}
	}

	return "", false
}

func (d *Dispatcher) notice(ctx context.Context, kind notify.Kind, text string) {
	notify.Fire(ctx, d.services.Notices, notify.Message{Kind: kind, ChatID: d.options.LogChatID, Text: text})
}

func (d *Dispatcher) send(ctx context.Context, chatID int64, msg telegram.Message) {
	if _, err := d.messenger.Send(ctx, chatID, msg); err != nil {
		logger.Error(ctx, "could not send message", zap.Error(err))
	}
}

func (d *Dispatcher) edit(ctx context.Context, chatID int64, messageID int, msg telegram.Message) {
	if err := d.messenger.Edit(ctx, chatID, messageID, msg); err != nil {
		logger.Error(ctx, "could not edit message", zap.Error(err))
	}
}
