package admission_test

import (
	"context"
	"numberbot/internal/admission"
	"numberbot/pkg/domain"
	"numberbot/pkg/serrors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

var ist = time.FixedZone("IST", 5*60*60+30*60)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return mr, client
}

type limiterFactory func(t *testing.T, options admission.Options) admission.Limiter

func factories() map[string]limiterFactory {
	return map[string]limiterFactory{
		"memory": func(_ *testing.T, options admission.Options) admission.Limiter {
			return admission.NewMemory(options)
		},
		"redis": func(t *testing.T, options admission.Options) admission.Limiter {
			_, client := newRedis(t)

			return admission.NewRedis(client, options)
		},
	}
}

func TestAllow_MinuteCap(t *testing.T) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			c := &clock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
			l := factory(t, admission.Options{PerMinute: 2, Now: c.Now})
			ctx := context.Background()

			require.NoError(t, l.Allow(ctx, 1))
			require.NoError(t, l.Allow(ctx, 1))

			err := l.Allow(ctx, 1)
			require.ErrorIs(t, err, serrors.ErrRateLimited)
			require.ErrorIs(t, err, admission.ErrMinuteLimit)

			// other users are unaffected
			require.NoError(t, l.Allow(ctx, 2))

			c.now = c.now.Add(time.Minute)
			require.NoError(t, l.Allow(ctx, 1))
		})
	}
}

func TestAllow_DailyCapRollsOverInLocation(t *testing.T) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			// 18:00 UTC is 23:30 IST, half an hour before the local day ends.
			c := &clock{now: time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)}
			l := factory(t, admission.Options{PerDay: 3, Location: ist, Now: c.Now})
			ctx := context.Background()

			for range 3 {
				require.NoError(t, l.Allow(ctx, 7))
				c.now = c.now.Add(2 * time.Minute)
			}

			err := l.Allow(ctx, 7)
			require.ErrorIs(t, err, serrors.ErrRateLimited)
			require.ErrorIs(t, err, admission.ErrDailyLimit)

			c.now = time.Date(2025, 3, 1, 18, 31, 0, 0, time.UTC)
			require.NoError(t, l.Allow(ctx, 7))
		})
	}
}

func TestAllow_DisabledCaps(t *testing.T) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			l := factory(t, admission.Options{})
			for range 100 {
				require.NoError(t, l.Allow(context.Background(), domain.UserID(3)))
			}
		})
	}
}

func TestRedis_CountersExpire(t *testing.T) {
	mr, client := newRedis(t)
	c := &clock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	l := admission.NewRedis(client, admission.Options{PerMinute: 5, PerDay: 5, Now: c.Now})

	require.NoError(t, l.Allow(context.Background(), 1))

	keys := mr.Keys()
	require.Len(t, keys, 2)
	for _, key := range keys {
		require.Positive(t, mr.TTL(key), key)
	}

	mr.FastForward(26 * time.Hour)
	require.Empty(t, mr.Keys())
}

func TestRedis_FailsOpen(t *testing.T) {
	mr, client := newRedis(t)
	l := admission.NewRedis(client, admission.Options{PerMinute: 1, PerDay: 1})

	mr.Close()

	require.NoError(t, l.Allow(context.Background(), 1))
	require.NoError(t, l.Allow(context.Background(), 1))
}

func TestNewRedisClient(t *testing.T) {
	mr, _ := newRedis(t)

	client, err := admission.NewRedisClient(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	require.NoError(t, client.Close())

	_, err = admission.NewRedisClient(context.Background(), "")
	require.Error(t, err)

	_, err = admission.NewRedisClient(context.Background(), "not a url")
	require.Error(t, err)
}
