package network

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/byrax15/snake-gl/core"
	"github.com/byrax15/snake-gl/event"
	"github.com/byrax15/snake-gl/game"
)

// ErrHubFull is returned to upgrade requests beyond MaxPeers
var ErrHubFull = errors.New("spectator limit reached")

// Hub fans snapshots and outcome events out to websocket spectators
// Broadcasts never block the tick: a subscriber whose queue is full misses the frame
type Hub struct {
	cfg      *Config
	upgrader websocket.Upgrader
	log      logrus.FieldLogger

	mu     sync.Mutex
	subs   map[*subscriber]struct{}
	latest []byte // Last snapshot frame, replayed to new subscribers
	server *http.Server
	closed bool
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.send) })
}

// NewHub creates a hub, a nil config uses DefaultConfig and a nil logger discards
func NewHub(cfg *Config, log logrus.FieldLogger) *Hub {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Hub{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		log:  log.WithField("component", "spectator_hub"),
		subs: make(map[*subscriber]struct{}),
	}
}

// Handler returns the HTTP handler serving the /ws endpoint
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.serveWS)
	return mux
}

// Start listens on the configured address and serves in the background
// Returns the bound address, useful with ":0"
func (h *Hub) Start() (net.Addr, error) {
	ln, err := net.Listen("tcp", h.cfg.Address)
	if err != nil {
		return nil, errors.Wrapf(err, "listen %s", h.cfg.Address)
	}

	srv := &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: h.cfg.WriteTimeout,
	}
	h.mu.Lock()
	h.server = srv
	h.mu.Unlock()

	core.Go(func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.log.WithError(err).Error("Spectator server stopped")
		}
	})

	h.log.WithField("addr", ln.Addr().String()).Info("Spectator feed listening")
	return ln.Addr(), nil
}

// Stop shuts the server down and disconnects every subscriber
func (h *Hub) Stop(ctx context.Context) error {
	h.mu.Lock()
	h.closed = true
	srv := h.server
	for s := range h.subs {
		s.close()
		delete(h.subs, s)
	}
	h.mu.Unlock()

	if srv == nil {
		return nil
	}
	return errors.Wrap(srv.Shutdown(ctx), "shutdown spectator server")
}

// Count returns the number of connected subscribers
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// BroadcastSnapshot sends a snapshot frame to every subscriber
func (h *Hub) BroadcastSnapshot(s game.Snapshot) {
	data, err := json.Marshal(snapshotMessage(s))
	if err != nil {
		h.log.WithError(err).Warn("Snapshot encode failed")
		return
	}

	h.mu.Lock()
	h.latest = data
	h.mu.Unlock()

	h.broadcast(data)
}

// EventTypes lists the outcome events forwarded to spectators
func (h *Hub) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventAppleEaten,
		event.EventCollision,
		event.EventRestarted,
		event.EventModeChanged,
	}
}

// HandleEvent forwards an outcome event to every subscriber
func (h *Hub) HandleEvent(ev event.GameEvent) {
	data, err := json.Marshal(eventMessage(ev))
	if err != nil {
		h.log.WithError(err).Warn("Event encode failed")
		return
	}
	h.broadcast(data)
}

func (h *Hub) broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.subs {
		select {
		case s.send <- data:
		default:
			// Slow consumer, drop the frame
		}
	}
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	full := h.closed || len(h.subs) >= h.cfg.MaxPeers
	h.mu.Unlock()
	if full {
		http.Error(w, ErrHubFull.Error(), http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Debug("Upgrade failed")
		return
	}

	s := &subscriber{
		conn: conn,
		send: make(chan []byte, h.cfg.SendQueueSize),
	}

	h.mu.Lock()
	if h.closed || len(h.subs) >= h.cfg.MaxPeers {
		h.mu.Unlock()
		// Lost the race for the last slot after upgrading
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, ErrHubFull.Error()),
			time.Now().Add(h.cfg.WriteTimeout))
		conn.Close()
		return
	}
	h.subs[s] = struct{}{}
	if h.latest != nil {
		select {
		case s.send <- h.latest:
		default:
		}
	}
	count := len(h.subs)
	h.mu.Unlock()

	h.log.WithFields(logrus.Fields{
		"remote": r.RemoteAddr,
		"peers":  count,
	}).Info("Spectator connected")

	core.Go(func() { h.writePump(s) })
	core.Go(func() { h.readPump(s) })
}

func (h *Hub) unregister(s *subscriber) {
	h.mu.Lock()
	if _, ok := h.subs[s]; ok {
		delete(h.subs, s)
		s.close()
	}
	h.mu.Unlock()
}

// readPump discards inbound frames and keeps the read deadline alive on pong
func (h *Hub) readPump(s *subscriber) {
	defer func() {
		h.unregister(s)
		s.conn.Close()
	}()

	s.conn.SetReadLimit(h.cfg.MaxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.WithError(err).Debug("Spectator read failed")
			}
			return
		}
	}
}

func (h *Hub) writePump(s *subscriber) {
	ticker := time.NewTicker(h.cfg.HeartbeatInterval)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case data, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.log.WithError(err).Debug("Spectator write failed")
				h.unregister(s)
				return
			}

		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.unregister(s)
				return
			}
		}
	}
}
