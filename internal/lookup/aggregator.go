// Package lookup fetches everything the bot knows about a number from the
// identity and validation providers.
package lookup

import (
	"context"
	"fmt"
	"numberbot/internal/config"
	"numberbot/internal/credential"
	"numberbot/pkg/domain"
	"numberbot/pkg/logger"
	"numberbot/pkg/metrics"
	"numberbot/pkg/notify"
	"numberbot/pkg/provider"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const instrumentationName = "numberbot/internal/lookup"

// Options configure how lookups reach the providers.
type Options struct {
	// CountryCode is the dial prefix used to build the E.164 form for the
	// identity provider, e.g. "+91".
	CountryCode string
	// ISOCountry is sent to the validation provider alongside the national number.
	ISOCountry string
	// Timeout bounds every single provider round trip. Zero means no timeout.
	Timeout time.Duration
	// LogChatID is the chat credential notices are addressed to.
	LogChatID int64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		CountryCode: cfg.Phone.CountryCode,
		ISOCountry:  cfg.Phone.ISOCountry,
		Timeout:     cfg.Providers.Timeout,
		LogChatID:   cfg.Telegram.LogChatID,
	}
}

// aggregator is the concrete implementation of the Aggregator interface.
type aggregator struct {
	options    Options
	identity   provider.IdentityProvider
	validation provider.ValidationProvider
	keys       *credential.Rotator
	sink       notify.Sink

	tracer   trace.Tracer
	attempts metric.Int64Counter
	results  metric.Int64Counter
	duration metric.Float64Histogram
}

// New creates an Aggregator. The rotator is shared with whoever reloads keys.
// A nil MeterProvider disables metrics.
func New(
	identity provider.IdentityProvider,
	validation provider.ValidationProvider,
	keys *credential.Rotator,
	sink notify.Sink,
	mp metric.MeterProvider,
	options Options,
) (Aggregator, error) {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(instrumentationName)

	attempts, err := meter.Int64Counter("numberbot.lookup.validation.attempts",
		metric.WithDescription("Validation calls by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create attempts counter: %w", err)
	}
	results, err := meter.Int64Counter("numberbot.lookup.results",
		metric.WithDescription("Lookups by which halves were available"))
	if err != nil {
		return nil, fmt.Errorf("could not create results counter: %w", err)
	}
	duration, err := meter.Float64Histogram("numberbot.lookup.duration",
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &aggregator{
		options:    options,
		identity:   identity,
		validation: validation,
		keys:       keys,
		sink:       sink,
		tracer:     otel.Tracer(instrumentationName),
		attempts:   attempts,
		results:    results,
		duration:   duration,
	}, nil
}

// Lookup runs the identity fetch and the validation rotation concurrently and
// merges their results.
func (a *aggregator) Lookup(ctx context.Context, number domain.PhoneNumber) domain.LookupResult {
	start := time.Now()
	ctx, span := a.tracer.Start(ctx, "lookup.Lookup")
	defer span.End()

	result := domain.LookupResult{Number: number}

	// neither branch returns an error, the group only joins them.
	var g errgroup.Group
	g.Go(func() error {
		result.Identity = a.fetchIdentity(ctx, number)

		return nil
	})
	g.Go(func() error {
		result.Validation = a.fetchValidation(ctx, number)

		return nil
	})
	_ = g.Wait()

	attrs := metric.WithAttributes(
		attribute.Bool("identity", result.Identity != nil),
		attribute.Bool("validation", result.Validation != nil))
	a.results.Add(ctx, 1, attrs)
	a.duration.Record(ctx, time.Since(start).Seconds())

	span.SetAttributes(
		attribute.Bool("lookup.identity", result.Identity != nil),
		attribute.Bool("lookup.validation", result.Validation != nil))
	if result.Exhausted() {
		span.SetStatus(codes.Error, "validation exhausted")
	}

	return result
}

func (a *aggregator) fetchIdentity(ctx context.Context, number domain.PhoneNumber) *domain.IdentityData {
	ctx, span := a.tracer.Start(ctx, "lookup.identity")
	defer span.End()

	ctx, cancel := a.attemptContext(ctx)
	defer cancel()

	data, err := a.identity.Identity(ctx, a.options.CountryCode+string(number))
	if err != nil {
		span.RecordError(err)
		logger.Warn(ctx, "identity lookup failed", zap.Error(err))

		return nil
	}

	return data
}

// fetchValidation tries each credential at most once, in rotation order. The
// attempt budget is the number of keys loaded when the call starts. A caller
// that goes away stops the rotation without reporting the keys as exhausted.
func (a *aggregator) fetchValidation(ctx context.Context, number domain.PhoneNumber) *domain.ValidationData {
	ctx, span := a.tracer.Start(ctx, "lookup.validation")
	defer span.End()

	budget := a.keys.Len()
	for attempt := range budget {
		if ctx.Err() != nil {
			break
		}

		key, ok := a.keys.Next()
		if !ok {
			break
		}

		outcome, data := a.validateWith(ctx, key, number)
		a.attempts.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome.String())))

		switch outcome {
		case provider.OutcomeOK:
			span.SetAttributes(attribute.Int("lookup.attempts", attempt+1))

			return data
		case provider.OutcomeQuota:
			notify.Fire(ctx, a.sink, notify.Message{
				Kind:   notify.KindKeyLimit,
				ChatID: a.options.LogChatID,
				Text:   fmt.Sprintf("❌ API key limit exceeded: %s", credential.Mask(key)),
			})
		case provider.OutcomeRejected, provider.OutcomeTransport:
		}
	}

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		logger.Warn(ctx, "validation abandoned", zap.Error(err))

		return nil
	}

	span.SetAttributes(attribute.Int("lookup.attempts", budget))
	logger.Error(ctx, "all validation keys exhausted", zap.Int("keys", budget))
	notify.Fire(ctx, a.sink, notify.Message{
		Kind:   notify.KindKeysExhausted,
		ChatID: a.options.LogChatID,
		Text:   "❌ All API keys exhausted! Please add new keys.",
	})

	return nil
}

func (a *aggregator) validateWith(
	ctx context.Context,
	key string,
	number domain.PhoneNumber,
) (provider.Outcome, *domain.ValidationData) {
	ctx, cancel := a.attemptContext(ctx)
	defer cancel()

	resp, err := a.validation.Validate(ctx, key, number, a.options.ISOCountry)
	outcome := provider.Classify(resp, err)

	fields := []zap.Field{zap.String("key", credential.Mask(key)), zap.Stringer("outcome", outcome)}
	switch {
	case err != nil:
		fields = append(fields, zap.Error(err))
	case resp.Error != nil:
		fields = append(fields, zap.Int("code", resp.Error.Code), zap.String("info", resp.Error.Info))
	}

	if outcome != provider.OutcomeOK {
		logger.Warn(ctx, "validation attempt failed", fields...)

		return outcome, nil
	}

	data := resp.Data

	return outcome, &data
}

func (a *aggregator) attemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.options.Timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, a.options.Timeout)
}
