package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lab1702/cellspread/logger"
	"github.com/sirupsen/logrus"
)

// isValidOrigin checks if the origin is allowed to connect
func isValidOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		// No origin header - could be a non-browser client
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		logger.Component("hub").WithField("origin", origin).Warn("invalid origin URL")
		return false
	}

	// Allow same-origin connections
	if r.Host == originURL.Host {
		return true
	}

	// Allow localhost connections for development
	if strings.HasPrefix(originURL.Host, "localhost:") ||
		strings.HasPrefix(originURL.Host, "127.0.0.1:") ||
		originURL.Host == "localhost" ||
		originURL.Host == "127.0.0.1" {
		return true
	}

	logger.Component("hub").WithField("origin", origin).Warn("rejected websocket connection")
	return false
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       isValidOrigin,
	EnableCompression: true, // Enable per-message deflate compression
}

// Message types
const (
	MsgTypeFire   = "fire"
	MsgTypeImpact = "impact"
	MsgTypeDamage = "damage"
	MsgTypeState  = "state"
	MsgTypeError  = "error"
)

// ClientMessage represents a message from client to server
type ClientMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ServerMessage represents a message from server to client
type ServerMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// StateUpdate is the periodic world snapshot sent to clients
type StateUpdate struct {
	Tick    int            `json:"tick"`
	Done    bool           `json:"done"`
	Actors  []ActorInfo    `json:"actors"`
	Impacts []ImpactMarker `json:"impacts"`
}

// Client represents a connected viewer
type Client struct {
	ID     int
	conn   *websocket.Conn
	send   chan ServerMessage
	server *Server
}

// Server runs a simulation in real time and streams it to viewers
type Server struct {
	mu         sync.RWMutex
	clients    map[int]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan ServerMessage
	nextID     int
	done       chan struct{}
	stopOnce   sync.Once

	cfg     Config
	simMu   sync.Mutex
	sim     *Simulation
	overlay *WarheadDebugOverlay
}

// NewServer wraps a simulation for live serving
func NewServer(sim *Simulation, cfg Config) *Server {
	s := &Server{
		clients:    make(map[int]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan ServerMessage, 256),
		done:       make(chan struct{}),
		cfg:        cfg,
		sim:        sim,
	}
	s.overlay = NewWarheadDebugOverlay(cfg.OverlayTTL, s.publish)
	sim.SetOverlay(s.overlay)
	return s
}

// Run starts the server main loop and blocks until Shutdown
func (s *Server) Run() {
	// Start game loop
	go s.gameLoop()

	// Handle client events
	for {
		select {
		case client := <-s.register:
			s.mu.Lock()
			s.clients[client.ID] = client
			s.mu.Unlock()
			logger.Component("hub").WithField("client", client.ID).Info("client connected")

		case client := <-s.unregister:
			s.mu.Lock()
			if _, ok := s.clients[client.ID]; ok {
				delete(s.clients, client.ID)
				close(client.send)
			}
			s.mu.Unlock()
			logger.Component("hub").WithField("client", client.ID).Info("client disconnected")

		case message := <-s.broadcast:
			s.mu.RLock()
			for _, client := range s.clients {
				select {
				case client.send <- message:
					// Successfully sent
				default:
					// Client send channel is full, skip this message
					logger.Component("hub").WithField("client", client.ID).Warn("send buffer full, skipping broadcast")
				}
			}
			s.mu.RUnlock()

		case <-s.done:
			return
		}
	}
}

// Shutdown stops the game loop and the hub. Safe to call more than once.
func (s *Server) Shutdown() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

// publish queues a message for every client
func (s *Server) publish(msg ServerMessage) {
	select {
	case s.broadcast <- msg:
	case <-s.done:
	}
}

// gameLoop advances the simulation once per tick
func (s *Server) gameLoop() {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.step()
			s.sendGameState()
		case <-s.done:
			return
		}
	}
}

// step runs one simulation tick and publishes its damage events
func (s *Server) step() {
	s.simMu.Lock()
	s.sim.Step()
	events := s.sim.Events()
	s.overlay.Tick()
	s.simMu.Unlock()

	for _, ev := range events {
		s.publish(ServerMessage{Type: MsgTypeDamage, Data: ev})
	}
}

// state snapshots the simulation for clients and HTTP handlers
func (s *Server) state() StateUpdate {
	s.simMu.Lock()
	defer s.simMu.Unlock()
	return StateUpdate{
		Tick:    s.sim.Tick(),
		Done:    s.sim.Done(),
		Actors:  s.sim.World().Actors(),
		Impacts: s.overlay.Impacts(),
	}
}

// sendGameState sends the current world state to all clients
func (s *Server) sendGameState() {
	s.publish(ServerMessage{Type: MsgTypeState, Data: s.state()})
}

// Fire queues a live detonation
func (s *Server) Fire(req FireRequest) error {
	s.simMu.Lock()
	defer s.simMu.Unlock()
	return s.sim.Queue(req)
}

// HandleWebSocket handles WebSocket connections
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Component("hub").WithError(err).Warn("websocket upgrade failed")
		return
	}

	s.mu.Lock()
	clientID := s.nextID
	s.nextID++
	s.mu.Unlock()

	client := &Client{
		ID:     clientID,
		conn:   conn,
		send:   make(chan ServerMessage, 256),
		server: s,
	}

	select {
	case s.register <- client:
	case <-s.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// readPump handles incoming messages from the client
func (c *Client) readPump() {
	defer func() {
		select {
		case c.server.unregister <- c:
		case <-c.server.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		var msg ClientMessage
		err := c.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Component("hub").WithError(err).Warn("websocket error")
			}
			break
		}

		c.handleMessage(msg)
	}
}

// writePump sends messages to the client
func (c *Client) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.server.done:
			return
		}
	}
}

// handleMessage processes a message from the client
func (c *Client) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case MsgTypeFire:
		var req FireRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			c.sendError("invalid fire request")
			return
		}
		if err := c.server.Fire(req); err != nil {
			c.sendError(err.Error())
			return
		}
		logger.Component("hub").WithFields(logrus.Fields{
			"client":  c.ID,
			"warhead": req.Warhead,
			"pos":     req.Pos.String(),
		}).Debug("fire queued")
	default:
		logger.Component("hub").WithField("type", msg.Type).Warn("unknown message type")
	}
}

// sendError replies to this client only
func (c *Client) sendError(text string) {
	select {
	case c.send <- ServerMessage{Type: MsgTypeError, Data: text}:
	default:
	}
}
