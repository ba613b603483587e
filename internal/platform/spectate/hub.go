// Package spectate broadcasts frames to websocket viewers. A Hub is an
// engine.Display, so it can be teed next to the player's own terminal.
package spectate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// sendBuffer is how many frames a viewer may lag behind before frames are
// dropped for it.
const sendBuffer = 8

const writeTimeout = time.Second

// viewer is one connected websocket client.
type viewer struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans frames out to connected viewers. Slow viewers miss frames; they
// never stall the game.
type Hub struct {
	glyphs   core.Glyphs
	upgrader websocket.Upgrader
	logger   *log.Logger

	mu      sync.Mutex
	viewers map[*viewer]struct{}
	closed  bool
}

// NewHub creates a hub that renders frames with glyphs.
func NewHub(glyphs core.Glyphs, logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		glyphs: glyphs,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger:  logger.WithPrefix("spectate"),
		viewers: make(map[*viewer]struct{}),
	}
}

// ServeHTTP upgrades the request and registers the viewer.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	v := &viewer{conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.viewers[v] = struct{}{}
	n := len(h.viewers)
	h.mu.Unlock()
	h.logger.Info("viewer joined", "remote", r.RemoteAddr, "viewers", n)

	go h.writePump(v)
	h.readPump(v)
	h.remove(v)
	h.logger.Info("viewer left", "remote", r.RemoteAddr)
}

// readPump discards incoming messages until the viewer disconnects.
func (h *Hub) readPump(v *viewer) {
	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump sends queued frames until the send channel is closed.
func (h *Hub) writePump(v *viewer) {
	defer v.conn.Close()
	for msg := range v.send {
		v.conn.SetWriteDeadline(time.Now().Add(writeTimeout)) //nolint:errcheck // Checked by WriteMessage
		if err := v.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.logger.Debug("write failed", "error", err)
			return
		}
	}
	v.conn.WriteControl(websocket.CloseMessage, //nolint:errcheck // Best-effort close
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeTimeout))
}

func (h *Hub) remove(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.viewers[v]; ok {
		delete(h.viewers, v)
		close(v.send)
	}
}

// broadcast queues msg for every viewer, dropping it for viewers whose
// buffer is full.
func (h *Hub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for v := range h.viewers {
		select {
		case v.send <- msg:
		default:
			h.logger.Debug("viewer lagging, frame dropped")
		}
	}
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// Clear implements engine.Display. Viewers replace the frame on every
// message, so nothing is sent.
func (h *Hub) Clear() error {
	return nil
}

// Draw implements engine.Display.
func (h *Hub) Draw(g *core.Grid) error {
	h.broadcast([]byte(g.Render(h.glyphs)))
	return nil
}

// Message implements engine.Display.
func (h *Hub) Message(msg string) error {
	h.broadcast([]byte(msg))
	return nil
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for v := range h.viewers {
		delete(h.viewers, v)
		close(v.send)
	}
}

// Server serves a hub over HTTP at /.
type Server struct {
	hub      *Hub
	srv      *http.Server
	listener net.Listener
	logger   *log.Logger
}

// Listen binds addr and returns a server ready to Serve.
func Listen(addr string, hub *Hub) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("spectate: listen %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/", hub)
	return &Server{
		hub:      hub,
		srv:      &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		listener: ln,
		logger:   hub.logger,
	}, nil
}

// Addr returns the bound address.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Serve accepts viewers until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("spectator server listening", "address", s.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(s.listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("spectate: serve: %w", err)
	case <-ctx.Done():
	}

	s.hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("spectate: shutdown: %w", err)
	}
	return nil
}
