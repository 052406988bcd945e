package lookup

import (
	"context"
	"numberbot/pkg/domain"
)

//go:generate mockgen -package mocklookup -source=interface.go -destination=mock/mocklookup.go *
type Aggregator interface {
	// Lookup merges identity and validation data for a canonical number. It
	// never fails: missing halves are reported as nil fields of the result.
	Lookup(ctx context.Context, number domain.PhoneNumber) domain.LookupResult
}
