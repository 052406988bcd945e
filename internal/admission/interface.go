package admission

import (
	"context"
	"numberbot/pkg/domain"
)

//go:generate mockgen -package mockadmission -source=interface.go -destination=mock/mockadmission.go *
type Limiter interface {
	// Allow counts one lookup for userID. It returns an error matching
	// serrors.ErrRateLimited, and ErrMinuteLimit or ErrDailyLimit, when the
	// user is over a cap. Backend failures let the lookup through.
	Allow(ctx context.Context, userID domain.UserID) error
}
