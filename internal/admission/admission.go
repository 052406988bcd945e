// Package admission caps how many lookups a user may run per minute and per
// calendar day.
package admission

import (
	"numberbot/internal/config"
	"numberbot/pkg/serrors"
	"time"
)

var (
	// ErrMinuteLimit is returned when the per minute cap is reached.
	ErrMinuteLimit = serrors.NewKind("MINUTE_LIMIT")
	// ErrDailyLimit is returned when the per day cap is reached.
	ErrDailyLimit = serrors.NewKind("DAILY_LIMIT")
)

// Options configure both limiter implementations. A cap of zero or less
// disables that check.
type Options struct {
	PerMinute int
	PerDay    int
	// Location is the time zone days roll over in. Defaults to UTC.
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

	return Options{
		PerMinute: cfg.Limits.PerMinute,
		PerDay:    cfg.Limits.PerDay,
		Location:  loc,
	}, nil
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Now == nil {
		o.Now = time.Now
	}

	return o
}

func minuteLimited(limit int) error {
	return serrors.Wrap(serrors.ErrRateLimited, ErrMinuteLimit, "more than %d lookups per minute", limit)
}

func dailyLimited(limit int) error {
	return serrors.Wrap(serrors.ErrRateLimited, ErrDailyLimit, "more than %d lookups per day", limit)
}
