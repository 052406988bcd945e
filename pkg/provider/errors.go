package provider

import (
	"context"
	"errors"
	"net"
	"numberbot/pkg/serrors"
)

// TransportError classifies a failed HTTP round trip: deadlines become
// serrors.ErrTimeout, everything else serrors.ErrUnavailable.
func TransportError(err error, msg string) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return serrors.Wrap(serrors.ErrTimeout, err, "%s", msg)
	}

	return serrors.Wrap(serrors.ErrUnavailable, err, "%s", msg)
}
