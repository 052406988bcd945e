// Package provider defines the contracts of the two third-party data sources a
// lookup is built from, plus the outcome model for validation calls.
//
//go:generate mockgen -package mockprovider -source=interface.go -destination=mock/mockprovider.go *
package provider

import (
	"context"
	"numberbot/pkg/domain"
)

// IdentityProvider resolves the registered name behind a number.
type IdentityProvider interface {
	// Identity looks up an E.164 number such as "+919876543210". Any returned
	// error means no identity data could be obtained.
	Identity(ctx context.Context, e164 string) (*domain.IdentityData, error)
}

// ValidationProvider checks a national number with a caller-supplied
// credential.
type ValidationProvider interface {
	// Validate queries the provider using key. A non-nil error is a transport
	// failure (network, timeout, unexpected HTTP status, undecodable body);
	// application-level failures are reported through ValidationResponse.Error.
	Validate(ctx context.Context, key string, local domain.PhoneNumber, countryCode string) (ValidationResponse, error)
}
