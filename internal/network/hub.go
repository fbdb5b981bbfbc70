// Package network is the WebSocket edge of the server. One hub fans game
// state and career events out to every connected client; each client feeds
// UI actions into the store.
package network

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ringsidegames/cornerman/internal/events"
	"github.com/ringsidegames/cornerman/internal/platform/logger"
	"github.com/ringsidegames/cornerman/internal/platform/metrics"
	"github.com/ringsidegames/cornerman/internal/store"
)

// Frame is the envelope every server-to-client message travels in.
type Frame struct {
	Type    string `json:"type"` // "STATE", "EVENT", "SCOUT_POOL", ...
	Payload any    `json:"payload"`
}

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.Mutex

	store  *store.Store
	saver  store.Saver
	logger *logger.Logger
}

// NewHub initializes a new WebSocket Hub. saver may be nil when persistence
// is disabled; save/load actions then fail gracefully.
func NewHub(st *store.Store, saver store.Saver, log *logger.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		store:      st,
		saver:      saver,
		logger:     log,
	}
}

// Run starts the Hub's main loop to handle client connections and broadcasts.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("WebSocket Hub shutting down.")
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			metrics.Get().ClientConnected()
			h.logger.Info("WebSocket client %s connected", client.id)
			// Late joiners get the current state immediately.
			client.sendFrame(Frame{Type: "STATE", Payload: h.statePayload()})
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				metrics.Get().ClientDisconnected()
				h.logger.Info("WebSocket client %s disconnected", client.id)
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
					metrics.Get().IncrWSMessagesOut()
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// statePayload bundles what the frontend needs to render everything.
func (h *Hub) statePayload() any {
	return map[string]any{
		"manager": h.store.Manager(),
		"state":   h.store.State(),
		"started": h.store.Started(),
	}
}

// BroadcastState pushes the current game state to every client. Called
// after every mutating action so all tabs stay in sync.
func (h *Hub) BroadcastState() {
	h.BroadcastFrame(Frame{Type: "STATE", Payload: h.statePayload()})
}

// BroadcastFrame serializes a frame and fans it out.
func (h *Hub) BroadcastFrame(f Frame) {
	payload, err := json.Marshal(f)
	if err != nil {
		h.logger.Error("Failed to serialize frame for WebSocket broadcast: %v", err)
		return
	}
	h.broadcast <- payload
}

// StartEventPoller spawns a goroutine that tails the event log and pushes
// new career events to the Hub. The feed runs independently of the action
// path so slow clients never stall the store.
func (h *Hub) StartEventPoller(ctx context.Context, eventLog *events.EventLog) {
	go func() {
		pollInterval := time.NewTicker(200 * time.Millisecond)
		defer pollInterval.Stop()

		lastProcessed := 0

		for {
			select {
			case <-ctx.Done():
				return
			case <-pollInterval.C:
				all := eventLog.Replay()
				if len(all) > lastProcessed {
					for _, event := range all[lastProcessed:] {
						h.BroadcastFrame(Frame{Type: "EVENT", Payload: event})
					}
					lastProcessed = len(all)
				}
			}
		}
	}()
}
