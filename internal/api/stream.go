package api

import (
	"net/http"
	"time"

	"github.com/Hariz09/game-hub-sub001/internal/constants"
	"github.com/Hariz09/game-hub-sub001/internal/logging"
	"github.com/Hariz09/game-hub-sub001/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Clients only send control frames; anything larger is dropped.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	// Sessions are unauthenticated; any origin may watch one.
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// StreamSession upgrades to a websocket and pushes a snapshot after every
// state change of the session, starting with the current one.
func (h *GameHandler) StreamSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	s, err := h.sessions.Get(id)
	if err != nil {
		writeServiceError(c, err, constants.ErrSessionNotFound)
		return
	}
	updates, cancel, err := h.sessions.Subscribe(id)
	if err != nil {
		writeServiceError(c, err, constants.ErrSessionNotFound)
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		cancel()
		logging.Warn(constants.ErrFailedUpgradeStream, err, logging.Fields{constants.LogFieldSessionID: id})
		return
	}
	logging.Debug("stream opened", logging.Fields{constants.LogFieldSessionID: id})

	go readLoop(conn, cancel)
	writeLoop(conn, s.Snapshot(), updates)
	cancel()
	logging.Debug("stream closed", logging.Fields{constants.LogFieldSessionID: id})
}

// readLoop discards client frames and keeps the read deadline alive with
// pongs. Any read error ends the subscription.
func readLoop(conn *websocket.Conn, cancel func()) {
	defer cancel()
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Debug("stream read error", logging.Fields{"error": err.Error()})
			}
			return
		}
	}
}

// writeLoop sends first, then every update until the channel closes.
func writeLoop(conn *websocket.Conn, first service.Snapshot, updates <-chan service.Snapshot) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	if err := writeSnapshot(conn, first); err != nil {
		return
	}
	// Updates queued before first was taken are already reflected in it.
	sent := first.Version
	for {
		select {
		case snap, ok := <-updates:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if snap.Version <= sent {
				continue
			}
			if err := writeSnapshot(conn, snap); err != nil {
				return
			}
			sent = snap.Version
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func writeSnapshot(conn *websocket.Conn, snap service.Snapshot) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(snap)
}
