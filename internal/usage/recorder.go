// Package usage persists who uses the bot and what they looked up.
package usage

import (
	"context"
	"fmt"
	"numberbot/internal/config"
	"numberbot/pkg/domain"
	"numberbot/pkg/storage"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the format of day counter keys.
const DateLayout = "2006-01-02"

// Options configure the recorder.
type Options struct {
	// Location is the time zone day counters roll over in. Defaults to UTC.
	Location *time.Location
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) (Options, error) {
	loc, err := cfg.Location()
	if err != nil {
		return Options{}, err
	}

	return Options{Location: loc}, nil
}

type recorder struct {
	options Options
	storage storage.Storage
}

// New creates a Recorder backed by the provided storage.
func New(storage storage.Storage, options Options) Recorder {
	if options.Location == nil {
		options.Location = time.UTC
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &recorder{
		options: options,
		storage: storage,
	}
}

func (r *recorder) RecordUser(ctx context.Context, userID domain.UserID, meta domain.UserMeta) (bool, error) {
	created, err := r.storage.UpsertUser(ctx, userID, meta, r.options.Now())
	if err != nil {
		return false, fmt.Errorf("could not record user: %w", err)
	}

	return created, nil
}

func (r *recorder) RecordQuery(
	ctx context.Context,
	userID domain.UserID,
	number domain.PhoneNumber,
	result domain.LookupResult,
) error {
	now := r.options.Now()
	record := domain.UsageRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Number:    number,
		Result:    result,
		CreatedAt: now,
	}

	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.AppendQuery(ctx, record); err != nil {
			return fmt.Errorf("could not append query: %w", err)
		}
		if err := tx.IncrementUserQueryCount(ctx, userID); err != nil {
			return fmt.Errorf("could not increment user query count: %w", err)
		}
		if _, err := tx.IncrementDailyCounter(ctx, r.day(now)); err != nil {
			return fmt.Errorf("could not increment daily counter: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not record query: %w", err)
	}

	return nil
}

func (r *recorder) Stats(ctx context.Context) (domain.Stats, error) {
	date := r.day(r.options.Now())

	users, err := r.storage.CountUsers(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("could not count users: %w", err)
	}

	queries, err := r.storage.DailyCounter(ctx, date)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("could not get daily counter: %w", err)
	}

	return domain.Stats{
		TotalUsers:   users,
		TodayQueries: queries,
		Date:         date,
	}, nil
}

func (r *recorder) User(ctx context.Context, userID domain.UserID) (*domain.UserRecord, error) {
	user, err := r.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	return user, nil
}

func (r *recorder) day(t time.Time) string {
	return t.In(r.options.Location).Format(DateLayout)
}
