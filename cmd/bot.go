package main

import (
	"context"
	"errors"
	"net/http"
	"numberbot/internal/admission"
	"numberbot/internal/api"
	"numberbot/internal/bot"
	"numberbot/internal/config"
	"numberbot/internal/credential"
	"numberbot/internal/gate"
	"numberbot/internal/lookup"
	"numberbot/internal/phone"
	"numberbot/internal/usage"
	"numberbot/internal/worker"
	"numberbot/pkg/logger"
	"numberbot/pkg/metrics"
	"numberbot/pkg/notify"
	"numberbot/pkg/provider/numverify"
	"numberbot/pkg/provider/truecaller"
	"numberbot/pkg/storage/postgres"
	"numberbot/pkg/telegram"
	"numberbot/pkg/tracing"
	"os/signal"
	"syscall"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// allowedUpdates are the update types the dispatcher handles. chat_member
// updates are only delivered when requested explicitly.
var allowedUpdates = tgbot.AllowedUpdates{ //nolint: gochecknoglobals
	"message",
	"callback_query",
	"chat_join_request",
	"chat_member",
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupLimiter uses Redis when a URL is configured and per process memory
// otherwise.
func setupLimiter(ctx context.Context, cfg *config.Config) (admission.Limiter, func()) {
	options, err := admission.NewOptions(cfg)
	if err != nil {
		logger.Fatal(ctx, "could not create limiter options", zap.Error(err))
	}

	if cfg.Redis.URL == "" {
		logger.Info(ctx, "no redis configured, keeping query limits in memory")

		return admission.NewMemory(options), func() {}
	}

	client, err := admission.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}

	return admission.NewRedis(client, options), func() {
		logger.Info(ctx, "closing redis client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

// setupNotices picks how operator notices travel. Without a log chat they are
// only logged. On postgres they are queued through River so a Telegram outage
// or flood wait does not lose them. Otherwise they are sent directly. Either
// way they pass through an in-memory queue so no lookup waits on delivery.
func setupNotices(
	ctx context.Context,
	cfg *config.Config,
	pg *postgres.PgSQL,
	tg *telegram.Client,
) (notify.Sink, func(ctx context.Context)) {
	sink, stopSink := noticeSink(ctx, cfg, pg, tg)
	queue := notify.NewQueue(sink, cfg.Notifications.Buffer, cfg.Telegram.RequestTimeout)

	return queue, func(ctx context.Context) {
		logger.Info(ctx, "draining notice queue...")
		if err := queue.Close(ctx); err != nil {
			logger.Warn(ctx, "could not drain notice queue", zap.Error(err))
		}
		stopSink(ctx)
	}
}

func noticeSink(
	ctx context.Context,
	cfg *config.Config,
	pg *postgres.PgSQL,
	tg *telegram.Client,
) (notify.Sink, func(ctx context.Context)) {
	noop := func(context.Context) {}

	if cfg.Telegram.LogChatID == 0 {
		logger.Info(ctx, "no log chat configured, notices are logged only")

		return notify.LogSink{}, noop
	}

	if pg == nil {
		return tg, noop
	}

	options := worker.NewOptions(cfg)
	riverClient, err := worker.Start(ctx, pg.Pool, tg, options)
	if err != nil {
		logger.Fatal(ctx, "could not start notice workers", zap.Error(err))
	}

	return worker.NewQueueSink(pg, options), func(ctx context.Context) {
		logger.Info(ctx, "stopping notice workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop notice workers", zap.Error(err))
		}
	}
}

// loadKeys reads the validation keys. A missing file starts the bot with no
// keys; they can be loaded later through the admin API.
func loadKeys(ctx context.Context, cfg *config.Config) *credential.Rotator {
	keys, err := credential.ReadFile(cfg.Providers.KeysFile)
	if err != nil {
		logger.Warn(ctx, "could not load validation keys, starting without any", zap.Error(err))
	}
	logger.Info(ctx, "loaded validation keys", zap.Int("count", len(keys)))

	return credential.NewRotator(keys)
}

func newServices(
	ctx context.Context,
	cfg *config.Config,
	strg appStorage,
	tg *telegram.Client,
	keys *credential.Rotator,
	notices notify.Sink,
	limiter admission.Limiter,
	mp metric.MeterProvider,
) bot.Services {
	httpClient := &http.Client{Timeout: cfg.Providers.Timeout}

	aggregator, err := lookup.New(
		truecaller.New(httpClient, cfg.Providers.IdentityURL),
		numverify.New(httpClient, cfg.Providers.ValidationURL),
		keys,
		notices,
		mp,
		lookup.NewOptions(cfg),
	)
	if err != nil {
		logger.Fatal(ctx, "could not create lookup aggregator", zap.Error(err))
	}

	g, err := gate.New(tg, strg, mp, gate.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create membership gate", zap.Error(err))
	}

	usageOptions, err := usage.NewOptions(cfg)
	if err != nil {
		logger.Fatal(ctx, "could not create usage options", zap.Error(err))
	}

	return bot.Services{
		Normalizer:   phone.New(cfg.Phone.CountryCode, cfg.Phone.AllowedStartDigits),
		Gate:         g,
		Limiter:      limiter,
		Lookup:       aggregator,
		Usage:        usage.New(strg, usageOptions),
		Keys:         keys,
		JoinRequests: strg,
		Notices:      notices,
	}
}

func botCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Starts the Telegram bot, the admin API server and notice workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.Telegram.Token == "" {
				logger.Fatal(ctx, "BOT_TOKEN is required")
			}

			shutdownTracing, err := tracing.Setup(ctx, cfg.Telemetry.OTLPEndpoint, cfg.Telemetry.ServiceName)
			if err != nil {
				logger.Fatal(ctx, "could not set up tracing", zap.Error(err))
			}

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			strg, pg, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			limiter, closeLimiter := setupLimiter(ctx, cfg)
			defer closeLimiter()

			keys := loadKeys(ctx, cfg)

			// the dispatcher needs the client and the client needs the bot;
			// updates only arrive after Start, by which time it is set.
			var dispatcher *bot.Dispatcher
			b, err := tgbot.New(cfg.Telegram.Token,
				tgbot.WithDefaultHandler(func(ctx context.Context, b *tgbot.Bot, update *models.Update) {
					dispatcher.Handle(ctx, b, update)
				}),
				tgbot.WithAllowedUpdates(allowedUpdates),
				tgbot.WithErrorsHandler(func(err error) {
					logger.Warn(ctx, "telegram polling failed", zap.Error(err))
				}),
			)
			if err != nil {
				logger.Fatal(ctx, "could not create telegram bot", zap.Error(err))
			}
			tg := telegram.New(b)

			notices, stopNotices := setupNotices(ctx, cfg, pg, tg)
			services := newServices(ctx, cfg, strg, tg, keys, notices, limiter, mp)
			dispatcher = bot.New(tg, services, bot.NewOptions(cfg))

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Usage:   services.Usage,
				Keys:    keys,
				Storage: strg,
			})

			logger.Info(ctx, "starting telegram polling...",
				zap.Int("channels", len(cfg.Channels())),
				zap.String("storage", cfg.Storage.Driver))
			// Start blocks until ctx is canceled.
			b.Start(ctx)

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopNotices(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shut down meter provider", zap.Error(err))
			}
			if err := shutdownTracing(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shut down tracing", zap.Error(err))
			}
		},
	}

	return cmd
}
