package api

import (
	"net/http"
	"numberbot/internal/credential"
	"numberbot/pkg/controller"
	"numberbot/pkg/logger"
	"numberbot/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

type handler struct {
	deps     Deps
	keysFile string
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.deps.Storage != nil {
		if err := h.deps.Storage.Ping(ctx); err != nil {
			logger.Warn(ctx, "storage is not reachable", zap.Error(err))
			controller.WriteError(ctx, w, serrors.Wrap(serrors.ErrUnavailable, err, "storage is not reachable"))

			return
		}
	}

	controller.WriteJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.FieldStart("status")
		e.Str("ok")
	})
}

func (h *handler) stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	st, err := h.deps.Usage.Stats(ctx)
	if err != nil {
		controller.WriteError(ctx, w, serrors.Wrap(serrors.ErrUnavailable, err, "could not read stats"))

		return
	}

	if h.deps.Keys != nil {
		st.Keys = h.deps.Keys.Len()
		st.KeyCursor = h.deps.Keys.Cursor()
	}

	controller.WriteJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.FieldStart("totalUsers")
		e.Int64(st.TotalUsers)
		e.FieldStart("todayQueries")
		e.Int64(st.TodayQueries)
		e.FieldStart("date")
		e.Str(st.Date)
		e.FieldStart("keys")
		e.Int(st.Keys)
		e.FieldStart("keyCursor")
		e.Int(st.KeyCursor)
	})
}

// reloadKeys re-reads the keys file and replaces the rotator's list. A file
// that cannot be read leaves the current keys in place.
func (h *handler) reloadKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.deps.Keys == nil {
		controller.WriteError(ctx, w, serrors.With(serrors.ErrNotFound, "no key rotator configured"))

		return
	}

	keys, err := credential.ReadFile(h.keysFile)
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	h.deps.Keys.Reload(keys)
	logger.Info(ctx, "reloaded validation keys", zap.Int("count", len(keys)))

	controller.WriteJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.FieldStart("keys")
		e.Int(len(keys))
	})
}
