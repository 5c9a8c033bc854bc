package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"teamboard/auth"
	"teamboard/domain"
	"teamboard/domain/event"
	"teamboard/sink"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type inboundMessage struct {
	Content    string `json:"content"`
	Attachment string `json:"attachment,omitempty"`
}

type outboundMessage struct {
	ID         uuid.UUID `json:"id"`
	Room       string    `json:"room"`
	Author     string    `json:"author"`
	Content    string    `json:"content"`
	Attachment string    `json:"attachment,omitempty"`
	Lang       string    `json:"lang,omitempty"`
	At         time.Time `json:"at"`
}

// handleWebsocket joins the caller to a room for the lifetime of the
// connection. Browsers cannot set headers on websocket requests, so the token
// travels as a query parameter.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.ValidateToken(r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	roomID := domain.RoomID(r.URL.Query().Get("room"))
	if roomID == "" {
		http.Error(w, "missing room parameter", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("Websocket upgrade failed", "error", err)
		return
	}

	// One sink per connection. The suffix keeps two tabs of the same user
	// from evicting each other in the registry.
	participantID := fmt.Sprintf("%s#%s", claims.Username, uuid.NewString()[:8])
	wsSink := sink.NewWsSink(s.log, s.wsBuffer)

	s.chat.JoinRoom(participantID, roomID, wsSink)
	s.stats.ConnectionOpened()
	s.log.Info("Participant joined", "participant", participantID, "room", roomID)

	go s.writePump(conn, wsSink)
	s.readPump(conn, claims.Username, participantID, roomID)
}

// readPump consumes submissions until the connection drops, then removes the
// participant from every room they joined.
func (s *Server) readPump(conn *websocket.Conn, username, participantID string, roomID domain.RoomID) {
	defer func() {
		s.chat.LeaveRoom(participantID)
		s.stats.ConnectionClosed()
		_ = conn.Close()
		s.log.Info("Participant left", "participant", participantID)
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn("Websocket read failed", "participant", participantID, "error", err)
			}
			return
		}

		cmd := domain.PostMessageCommand{
			Room:       roomID,
			SenderID:   username,
			Content:    msg.Content,
			Attachment: msg.Attachment,
			ReceivedAt: time.Now().UTC(),
		}
		if err := s.chat.PostMessage(context.Background(), cmd); err != nil {
			s.log.Warn("Submission rejected", "participant", participantID, "error", err)
		}
	}
}

// writePump forwards broadcast events to the connection and keeps it alive
// with periodic pings.
func (s *Server) writePump(conn *websocket.Conn, wsSink *sink.WsSink) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case evt := <-wsSink.Events:
			broadcast, ok := evt.(event.MessageBroadcast)
			if !ok {
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(toOutbound(broadcast)); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func toOutbound(evt event.MessageBroadcast) outboundMessage {
	return outboundMessage{
		ID:         evt.ID,
		Room:       string(evt.Room),
		Author:     evt.Author,
		Content:    evt.Content,
		Attachment: evt.Attachment,
		Lang:       evt.Lang,
		At:         evt.At,
	}
}
