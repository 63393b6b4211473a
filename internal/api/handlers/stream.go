package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wonny/warroom/internal/contracts"
	"github.com/wonny/warroom/internal/execution"
	"github.com/wonny/warroom/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // same-host dashboards only, reverse proxy enforces origin
	},
}

// StreamMessage is the envelope for every websocket broadcast.
type StreamMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// DebateUpdate is pushed to every client after each completed debate.
type DebateUpdate struct {
	Ticker     string                  `json:"ticker"`
	Action     contracts.Action        `json:"action"`
	Confidence float64                 `json:"confidence"`
	Votes      []contracts.Vote        `json:"votes"`
	Gate       *execution.GateDecision `json:"gate,omitempty"`
	Timestamp  time.Time               `json:"timestamp"`
}

// StreamHandler pushes live debate results to websocket clients
// ⭐ SSOT: 웹소켓 브로드캐스트는 이 구조체에서만
type StreamHandler struct {
	clients     map[*websocket.Conn]bool
	clientMutex map[*websocket.Conn]*sync.Mutex
	mu          sync.RWMutex
	logger      *logger.Logger
}

// NewStreamHandler creates a new stream handler.
func NewStreamHandler(log *logger.Logger) *StreamHandler {
	return &StreamHandler{
		clients:     make(map[*websocket.Conn]bool),
		clientMutex: make(map[*websocket.Conn]*sync.Mutex),
		logger:      log,
	}
}

// Handle upgrades the connection and keeps it registered until close
// GET /api/war-room/stream
func (h *StreamHandler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Error("Failed to upgrade websocket connection")
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.clientMutex[conn] = &sync.Mutex{}
	clientCount := len(h.clients)
	h.mu.Unlock()

	h.logger.WithFields(map[string]interface{}{
		"clients": clientCount,
	}).Debug("Websocket client connected")

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		delete(h.clientMutex, conn)
		remaining := len(h.clients)
		h.mu.Unlock()

		conn.Close()
		h.logger.WithFields(map[string]interface{}{
			"clients": remaining,
		}).Debug("Websocket client disconnected")
	}()

	// Drain client messages to keep the connection alive
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.WithError(err).Warn("Websocket read error")
			}
			break
		}
	}
}

// BroadcastDebate pushes a completed debate to every connected client.
func (h *StreamHandler) BroadcastDebate(result *contracts.DebateResult, gate *execution.GateDecision) {
	h.broadcast(StreamMessage{
		Type: "debate",
		Payload: DebateUpdate{
			Ticker:     result.Ticker,
			Action:     result.Consensus.Action,
			Confidence: result.Consensus.Confidence,
			Votes:      result.Votes,
			Gate:       gate,
			Timestamp:  time.Now(),
		},
	})
}

// ClientCount reports currently connected clients.
func (h *StreamHandler) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *StreamHandler) broadcast(msg StreamMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal stream message")
		return
	}

	// Snapshot under read lock, write outside it. Per-connection mutex
	// serializes writes because gorilla conns allow one writer at a time.
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	mutexes := make([]*sync.Mutex, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
		mutexes = append(mutexes, h.clientMutex[conn])
	}
	h.mu.RUnlock()

	for i, conn := range conns {
		mutexes[i].Lock()
		err := conn.WriteMessage(websocket.TextMessage, data)
		mutexes[i].Unlock()

		if err != nil {
			h.logger.WithError(err).Warn("Failed to push debate to client")
		}
	}
}
