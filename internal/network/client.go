package network

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ringsidegames/cornerman/internal/domain/fight"
	"github.com/ringsidegames/cornerman/internal/domain/fighter"
	"github.com/ringsidegames/cornerman/internal/domain/game"
	"github.com/ringsidegames/cornerman/internal/domain/gym"
	"github.com/ringsidegames/cornerman/internal/domain/manager"
	"github.com/ringsidegames/cornerman/internal/platform/metrics"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer. Commands carry ids, not
	// entities, so this stays small.
	maxMessageSize = 512
)

// UIAction represents an incoming command from the frontend.
type UIAction struct {
	Type    string          `json:"type"`    // "ADVANCE_DAY", "TRAIN", "BOOK_FIGHT", ...
	Payload json.RawMessage `json:"payload"` // Action-specific data
}

// Client represents one active WebSocket connection.
type Client struct {
	id   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewClient creates a new WebSocket client and returns it.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:   uuid.NewString(),
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
}

// Register adds the client to the hub.
func (c *Client) Register() {
	c.hub.register <- c
}

// sendFrame serializes a frame onto this client's outbound queue only.
func (c *Client) sendFrame(f Frame) {
	payload, err := json.Marshal(f)
	if err != nil {
		c.hub.logger.Error("Failed to serialize frame for client %s: %v", c.id, err)
		return
	}
	select {
	case c.send <- payload:
		metrics.Get().IncrWSMessagesOut()
	default:
	}
}

// ReadPump pumps messages from the websocket connection into the store.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Error("websocket read: %v", err)
			}
			break
		}
		metrics.Get().IncrWSMessagesIn()

		var action UIAction
		if err := json.Unmarshal(message, &action); err != nil {
			c.hub.logger.Error("Failed to parse UIAction from WebSocket: %v", err)
			continue
		}

		c.handleUIAction(action)
	}
}

func (c *Client) handleUIAction(action UIAction) {
	st := c.hub.store

	// Everything except START_GAME and LOAD_GAME needs a running career.
	switch action.Type {
	case "START_GAME", "LOAD_GAME":
	default:
		if !st.Started() {
			c.hub.logger.Warn("UIAction %s before game start from client %s", action.Type, c.id)
			return
		}
	}

	switch action.Type {
	case "START_GAME":
		var m manager.Character
		if err := json.Unmarshal(action.Payload, &m); err != nil {
			c.hub.logger.Warn("Failed to parse manager for START_GAME: %v", err)
			return
		}
		st.StartGame(m)
		c.hub.BroadcastState()

	case "ADVANCE_DAY":
		st.AdvanceDay()
		c.hub.BroadcastState()

	case "TRAIN":
		var parsed struct {
			FighterID string           `json:"fighter_id"`
			Stat      fighter.StatName `json:"stat"`
		}
		if err := json.Unmarshal(action.Payload, &parsed); err != nil {
			return
		}
		outcome := st.TrainFighter(parsed.FighterID, parsed.Stat)
		c.sendFrame(Frame{Type: "TRAIN_RESULT", Payload: outcome})
		c.hub.BroadcastState()

	case "SCOUT_POOL":
		c.sendFrame(Frame{Type: "SCOUT_POOL", Payload: st.ScoutPool()})

	case "SCOUT_PROSPECT":
		// Prospects are referenced by id into the server-held pool.
		var parsed struct {
			ProspectID string `json:"prospect_id"`
		}
		if err := json.Unmarshal(action.Payload, &parsed); err != nil {
			return
		}
		if revealed, ok := st.ScoutProspect(parsed.ProspectID); ok {
			c.sendFrame(Frame{Type: "PROSPECT_REVEALED", Payload: revealed})
			c.hub.BroadcastState()
		}

	case "SIGN_PROSPECT":
		var parsed struct {
			ProspectID string `json:"prospect_id"`
		}
		if err := json.Unmarshal(action.Payload, &parsed); err != nil {
			return
		}
		if st.SignProspect(parsed.ProspectID) {
			c.hub.BroadcastState()
		}

	case "RELEASE_FIGHTER":
		var parsed struct {
			FighterID string `json:"fighter_id"`
		}
		if err := json.Unmarshal(action.Payload, &parsed); err != nil {
			return
		}
		if st.ReleaseFighter(parsed.FighterID) {
			c.hub.BroadcastState()
		}

	case "FIGHT_OFFERS":
		c.sendFrame(Frame{Type: "FIGHT_OFFERS", Payload: st.FightOffers()})

	case "BOOK_FIGHT":
		var parsed struct {
			Offer     fight.Offer `json:"offer"`
			FighterID string      `json:"fighter_id"`
		}
		if err := json.Unmarshal(action.Payload, &parsed); err != nil {
			return
		}
		if st.BookFight(parsed.Offer, parsed.FighterID) {
			c.hub.BroadcastState()
		}

	case "RESOLVE_FIGHT":
		var parsed struct {
			FightID string `json:"fight_id"`
		}
		if err := json.Unmarshal(action.Payload, &parsed); err != nil {
			return
		}
		if outcome, ok := st.ResolveFight(parsed.FightID); ok {
			c.hub.BroadcastFrame(Frame{Type: "FIGHT_OUTCOME", Payload: outcome})
			c.hub.BroadcastState()
		}

	case "UPGRADE_GYM":
		if st.UpgradeGym() {
			c.hub.BroadcastState()
		}

	case "HIRE_STAFF":
		var parsed struct {
			Role gym.StaffRole `json:"role"`
		}
		if err := json.Unmarshal(action.Payload, &parsed); err != nil {
			return
		}
		if st.HireStaff(parsed.Role) {
			c.hub.BroadcastState()
		}

	case "SET_SCREEN":
		var parsed struct {
			Screen game.Screen `json:"screen"`
		}
		if err := json.Unmarshal(action.Payload, &parsed); err != nil {
			return
		}
		st.SetScreen(parsed.Screen)
		c.hub.BroadcastState()

	case "MOVE":
		var parsed struct {
			X   int            `json:"x"`
			Y   int            `json:"y"`
			Dir game.Direction `json:"dir"`
		}
		if err := json.Unmarshal(action.Payload, &parsed); err != nil {
			return
		}
		st.SetPlayerPos(parsed.X, parsed.Y)
		st.SetPlayerDir(parsed.Dir)
		c.hub.BroadcastState()

	case "CHANGE_MAP":
		var parsed struct {
			Map game.MapID `json:"map"`
			X   int        `json:"x"`
			Y   int        `json:"y"`
		}
		if err := json.Unmarshal(action.Payload, &parsed); err != nil {
			return
		}
		st.ChangeMap(parsed.Map, parsed.X, parsed.Y)
		c.hub.BroadcastState()

	case "POP_DIALOG":
		if _, ok := st.PopDialog(); ok {
			c.hub.BroadcastState()
		}

	case "SAVE_GAME":
		c.handlePersist(action.Payload, true)

	case "LOAD_GAME":
		c.handlePersist(action.Payload, false)

	default:
		c.hub.logger.Warn("Unknown UIAction type: %s", action.Type)
	}
}

func (c *Client) handlePersist(rawPayload []byte, save bool) {
	if c.hub.saver == nil {
		c.hub.logger.Warn("Persistence disabled, ignoring save/load")
		return
	}
	var parsed struct {
		Slot string `json:"slot"`
	}
	if err := json.Unmarshal(rawPayload, &parsed); err != nil || parsed.Slot == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var err error
	if save {
		err = c.hub.store.SaveGame(ctx, c.hub.saver, parsed.Slot)
	} else {
		err = c.hub.store.LoadGame(ctx, c.hub.saver, parsed.Slot)
	}
	if err != nil {
		c.sendFrame(Frame{Type: "PERSIST_ERROR", Payload: err.Error()})
	}
	c.hub.BroadcastState()
}

// WritePump pumps messages from the hub to the websocket connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message.
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
