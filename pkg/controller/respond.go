package controller

import (
	"context"
	"errors"
	"net/http"
	"numberbot/pkg/logger"
	"numberbot/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

type kindStatus struct {
	kind    serrors.Kind
	status  int
	message string
}

// kindStatuses is checked in order; the first kind err matches wins.
var kindStatuses = []kindStatus{ //nolint: gochecknoglobals
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrForbidden, http.StatusForbidden, "forbidden"},
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "upstream timed out"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
}

// WriteJSON writes status and the object produced by fill.
func WriteJSON(w http.ResponseWriter, status int, fill func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	fill(e)
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// WriteError renders err as {"code", "message"}. The status follows the
// serrors kind of err. The message attached with serrors.With or serrors.Wrap
// is shown to the caller; causes never are. Errors without a known kind,
// including nil, are logged and answered with 500.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	status, code, message := http.StatusInternalServerError, serrors.ErrInternal.Error(), "internal error"

	known := false
	for _, ks := range kindStatuses {
		if err != nil && errors.Is(err, ks.kind) {
			status, code, message = ks.status, ks.kind.Error(), ks.message
			known = true

			break
		}
	}

	var se *serrors.Error
	if known && errors.As(err, &se) && se.Message() != "" {
		message = se.Message()
	}

	if !known {
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	WriteJSON(w, status, func(e *jx.Encoder) {
		e.FieldStart("code")
		e.Str(code)
		e.FieldStart("message")
		e.Str(message)
	})
}
