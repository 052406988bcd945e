package provider_test

import (
	"context"
	"errors"
	"numberbot/pkg/provider"
	"numberbot/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIError_QuotaExceeded(t *testing.T) {
	cases := []struct {
		name string
		err  *provider.APIError
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "usage limit code", err: &provider.APIError{Code: 104}, want: true},
		{name: "rate limit code", err: &provider.APIError{Code: 106}, want: true},
		{
			name: "monthly volume wording",
			err:  &provider.APIError{Code: 999, Info: "Your monthly API request volume has been reached."},
			want: true,
		},
		{name: "limit wording", err: &provider.APIError{Code: 999, Info: "Usage LIMIT reached"}, want: true},
		{name: "invalid key", err: &provider.APIError{Code: 101, Type: "invalid_access_key"}, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.err.QuotaExceeded())
		})
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		resp provider.ValidationResponse
		err  error
		want provider.Outcome
	}{
		{name: "success", resp: provider.ValidationResponse{Success: true}, want: provider.OutcomeOK},
		{
			name: "quota",
			resp: provider.ValidationResponse{Error: &provider.APIError{Code: 104}},
			want: provider.OutcomeQuota,
		},
		{
			name: "rejected",
			resp: provider.ValidationResponse{Error: &provider.APIError{Code: 210, Info: "no phone number provided"}},
			want: provider.OutcomeRejected,
		},
		{name: "rejected without details", resp: provider.ValidationResponse{}, want: provider.OutcomeRejected},
		{name: "transport", err: errors.New("connection refused"), want: provider.OutcomeTransport},
		{
			name: "timeout",
			err:  serrors.Wrap(serrors.ErrTimeout, context.DeadlineExceeded, "validation request"),
			want: provider.OutcomeTransport,
		},
		{name: "http 429", err: serrors.With(serrors.ErrRateLimited, "rate limited"), want: provider.OutcomeQuota},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, provider.Classify(tc.resp, tc.err))
		})
	}
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "ok", provider.OutcomeOK.String())
	require.Equal(t, "quota", provider.OutcomeQuota.String())
	require.Equal(t, "rejected", provider.OutcomeRejected.String())
	require.Equal(t, "transport", provider.OutcomeTransport.String())
}
