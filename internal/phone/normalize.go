// Package phone turns free-form user input into canonical national phone
// numbers.
package phone

import (
	"numberbot/pkg/domain"
	"numberbot/pkg/serrors"
	"slices"
	"strings"
)

// NationalLength is the number of digits in a canonical number.
const NationalLength = 10

var (
	// ErrWrongLength is returned when the input does not reduce to exactly
	// NationalLength digits.
	ErrWrongLength = serrors.NewKind("WRONG_LENGTH")
	// ErrInvalidStartDigit is returned when the national number starts with a
	// digit outside the allowed set.
	ErrInvalidStartDigit = serrors.NewKind("INVALID_START_DIGIT")
)

// Normalizer validates numbers for a single country. It holds no mutable
// state and is safe for concurrent use.
type Normalizer struct {
	countryCode string
	dialDigits  string
	allowed     []byte
}

// New creates a Normalizer for the given dial code (e.g. "+91") and allowed
// leading digits (e.g. "6", "7", "8", "9"). Entries of allowed that are not a
// single digit are ignored.
func New(countryCode string, allowed []string) *Normalizer {
	n := &Normalizer{
		countryCode: "+" + strings.TrimLeft(strings.TrimSpace(countryCode), "+"),
	}
	n.dialDigits = strings.TrimPrefix(n.countryCode, "+")

	for _, a := range allowed {
		a = strings.TrimSpace(a)
		if len(a) == 1 && a[0] >= '0' && a[0] <= '9' && !slices.Contains(n.allowed, a[0]) {
			n.allowed = append(n.allowed, a[0])
		}
	}

	return n
}

// CountryCode returns the dial code numbers are displayed with, e.g. "+91".
func (n *Normalizer) CountryCode() string { return n.countryCode }

// AllowedStartDigits returns the accepted leading digits in configuration order.
func (n *Normalizer) AllowedStartDigits() []string {
	out := make([]string, len(n.allowed))
	for i, d := range n.allowed {
		out[i] = string(d)
	}

	return out
}

// Normalize reduces raw to a canonical number.
//
// Everything except digits and a leading "+" is discarded. The country prefix
// is then removed in its "+CC" form, or in its bare "CC" form when more than
// NationalLength digits are left. Any other "+" prefix is kept. Input that does not end up as exactly
// NationalLength digits is rejected, never truncated. Both failures match
// serrors.ErrBadRequest.
func (n *Normalizer) Normalize(raw string) (domain.PhoneNumber, error) {
	cleaned := clean(raw)

	var national string
	switch {
	case strings.HasPrefix(cleaned, n.countryCode):
		national = cleaned[len(n.countryCode):]
	case n.dialDigits != "" && strings.HasPrefix(cleaned, n.dialDigits) && len(cleaned) > NationalLength:
		national = cleaned[len(n.dialDigits):]
	default:
		// a "+" followed by a foreign dial code stays and fails the length check.
		national = cleaned
	}

	if len(national) != NationalLength {
		return "", serrors.Wrap(serrors.ErrBadRequest, ErrWrongLength,
			"number must have exactly %d digits, optionally prefixed with %s", NationalLength, n.countryCode)
	}
	if !slices.Contains(n.allowed, national[0]) {
		return "", serrors.Wrap(serrors.ErrBadRequest, ErrInvalidStartDigit,
			"number must start with one of %s", strings.Join(n.AllowedStartDigits(), ", "))
	}

	return domain.PhoneNumber(national), nil
}

// Format returns the display form of a canonical number, e.g. "+919876543210".
func (n *Normalizer) Format(number domain.PhoneNumber) string {
	return n.countryCode + string(number)
}

// clean keeps digits and a "+" that precedes every digit.
func clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		}
	}

	return b.String()
}
