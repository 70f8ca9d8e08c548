package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// DashboardFeed streams dashboard snapshots over a websocket
// @Summary Live dashboard feed
// @Description Upgrades to a websocket and pushes a dashboard snapshot on every committed re-synchronize. The first message is the current state.
// @Tags dashboard
// @Success 101
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Router /dashboard/ws [get]
// @Security BearerAuth
func (h *Handler) DashboardFeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	feed, cancel, err := h.s.Subscribe(ctx)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	defer cancel()

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.ErrorContext(ctx, "websocket accept", "error", err)
		return
	}

	defer conn.Close(websocket.StatusInternalError, "feed closed")

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "client gone")
			return
		case snap, ok := <-feed:
			if !ok {
				conn.Close(websocket.StatusNormalClosure, "session closed")
				return
			}

			err = wsjson.Write(ctx, conn, h.dashboardResponse(snap, r))
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					slog.ErrorContext(ctx, "websocket write", "error", err)
				}

				return
			}
		}
	}
}
