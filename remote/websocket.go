package remote

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/phanxgames/touchinput"
)

// Handler is an http.Handler that upgrades requests to WebSocket and feeds
// every text or binary message into a Receiver. Pointers still down when a
// connection closes are canceled.
type Handler struct {
	recv     *Receiver
	upgrader websocket.Upgrader
}

// NewHandler creates a WebSocket handler for recv. Cross-origin requests
// are accepted.
func NewHandler(recv *Receiver) *Handler {
	return &Handler{
		recv: recv,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.recv.log.Warnf("websocket upgrade from %s: %v", r.RemoteAddr, err)
		return
	}
	defer conn.Close()
	h.recv.log.Infof("websocket peer %s connected", r.RemoteAddr)

	sess := newSession(h.recv)
	defer sess.close()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.recv.log.Warnf("websocket read from %s: %v", r.RemoteAddr, err)
			}
			return
		}
		if err := sess.handle(data); err != nil {
			h.recv.log.Warnf("websocket peer %s: %v", r.RemoteAddr, err)
		}
	}
}

// WebSocketSender streams samples to a remote Handler.
type WebSocketSender struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// DialWebSocket connects to a Handler at url (ws:// or wss://).
func DialWebSocket(ctx context.Context, url string) (*WebSocketSender, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket dial: %w", err)
	}
	return &WebSocketSender{conn: conn}, nil
}

// Send writes one frame of samples as a single message.
func (s *WebSocketSender) Send(samples ...touchinput.PointerSample) error {
	data, err := Encode(samples)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("websocket send: %w", err)
	}
	return nil
}

// Close sends a close frame and closes the connection.
func (s *WebSocketSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return s.conn.Close()
}
