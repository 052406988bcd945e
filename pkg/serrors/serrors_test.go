package serrors_test

import (
	"context"
	"errors"
	"fmt"
	"numberbot/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type quotaError struct{ code int }

func (e quotaError) Error() string { return fmt.Sprintf("quota error %d", e.code) }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrBadRequest,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrNotFound,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for _, k := range kinds {
		require.False(t, seen[k], "duplicate kind %v", k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("connection reset")

	require.Equal(t, "number 123 rejected", serrors.With(serrors.ErrBadRequest, "number %d rejected", 123).Error())
	require.Equal(t, "validating number: connection reset",
		serrors.Wrap(serrors.ErrUnavailable, cause, "validating number").Error())
	require.Equal(t, "RATE_LIMITED", serrors.KindOnly(serrors.ErrRateLimited).Error())
}

func TestIsMatchesKindAndCause(t *testing.T) {
	cause := quotaError{code: 104}
	err := fmt.Errorf("attempt 2: %w", serrors.Wrap(serrors.ErrRateLimited, cause, "validation api"))

	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, serrors.ErrUnavailable)
}

func TestAsExtractsKindAndCause(t *testing.T) {
	err := serrors.Wrap(serrors.ErrRateLimited, &quotaError{code: 106}, "validation api")

	var k serrors.Kind
	require.ErrorAs(t, err, &k)
	require.Equal(t, serrors.ErrRateLimited, k)

	var qe *quotaError
	require.ErrorAs(t, err, &qe)
	require.Equal(t, 106, qe.code)
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrTimeout,
		serrors.KindOf(fmt.Errorf("outer: %w", serrors.Wrap(serrors.ErrTimeout, context.DeadlineExceeded, "identity"))))
}

func TestIsTransient(t *testing.T) {
	require.True(t, serrors.IsTransient(serrors.KindOnly(serrors.ErrTimeout)))
	require.True(t, serrors.IsTransient(serrors.KindOnly(serrors.ErrUnavailable)))
	require.True(t, serrors.IsTransient(serrors.KindOnly(serrors.ErrRateLimited)))
	require.False(t, serrors.IsTransient(serrors.KindOnly(serrors.ErrBadRequest)))
	require.False(t, serrors.IsTransient(errors.New("plain")))
}
