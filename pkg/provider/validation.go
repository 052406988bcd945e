package provider

import (
	"errors"
	"fmt"
	"numberbot/pkg/domain"
	"numberbot/pkg/serrors"
	"strings"
)

// Quota error codes documented by the validation API.
const (
	CodeUsageLimitReached = 104
	CodeRateLimitReached  = 106
)

// ValidationResponse is the decoded body of a validation call that reached
// the provider.
type ValidationResponse struct {
	// Success is false when the provider rejected the request.
	Success bool
	// Data holds the optional fields of a successful answer.
	Data domain.ValidationData
	// Error describes why the provider rejected the request. It is nil when
	// Success is true.
	Error *APIError
}

// APIError is an application error reported inside a provider response body.
type APIError struct {
	Code int
	Type string
	Info string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider error %d (%s): %s", e.Code, e.Type, e.Info)
}

// QuotaExceeded reports whether the error means the credential ran out of
// quota, either by code or by the wording of its message.
func (e *APIError) QuotaExceeded() bool {
	if e == nil {
		return false
	}
	if e.Code == CodeUsageLimitReached || e.Code == CodeRateLimitReached {
		return true
	}

	info := strings.ToLower(e.Info)

	return strings.Contains(info, "limit") || strings.Contains(info, "request volume has been reached")
}

// Outcome classifies one validation attempt.
type Outcome int

const (
	// OutcomeOK means the provider answered with data.
	OutcomeOK Outcome = iota
	// OutcomeQuota means the credential is out of quota.
	OutcomeQuota
	// OutcomeRejected means the provider answered with another application error.
	OutcomeRejected
	// OutcomeTransport means the provider could not be reached or answered garbage.
	OutcomeTransport
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeQuota:
		return "quota"
	case OutcomeRejected:
		return "rejected"
	default:
		return "transport"
	}
}

// Classify maps the result of ValidationProvider.Validate to an Outcome. An
// HTTP-level rate limit counts as a quota outcome.
func Classify(resp ValidationResponse, err error) Outcome {
	switch {
	case err != nil && errors.Is(err, serrors.ErrRateLimited):
		return OutcomeQuota
	case err != nil:
		return OutcomeTransport
	case resp.Success:
		return OutcomeOK
	case resp.Error.QuotaExceeded():
		return OutcomeQuota
	default:
		return OutcomeRejected
	}
}
