// Package metrics provides lightweight observability for the game server.
// Counters are cheap enough to bump from the hot simulation path.
package metrics

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// Collector gathers simulation and transport counters.
type Collector struct {
	// Simulation metrics
	DaysAdvanced    int64
	FightsSimulated int64
	FightersCreated int64
	EventsAppended  int64

	// Persistence metrics
	SaveWrites int64
	SaveErrors int64

	// WebSocket metrics
	WSConnectionsActive int64
	WSMessagesIn        int64
	WSMessagesOut       int64

	StartTime time.Time
}

// Global collector instance
var collector = &Collector{
	StartTime: time.Now(),
}

// Get returns the global collector.
func Get() *Collector {
	return collector
}

func (c *Collector) IncrDaysAdvanced()    { atomic.AddInt64(&c.DaysAdvanced, 1) }
func (c *Collector) IncrFightsSimulated() { atomic.AddInt64(&c.FightsSimulated, 1) }
func (c *Collector) IncrFightersCreated() { atomic.AddInt64(&c.FightersCreated, 1) }
func (c *Collector) IncrEventsAppended()  { atomic.AddInt64(&c.EventsAppended, 1) }
func (c *Collector) IncrSaveWrites()      { atomic.AddInt64(&c.SaveWrites, 1) }
func (c *Collector) IncrSaveErrors()      { atomic.AddInt64(&c.SaveErrors, 1) }
func (c *Collector) IncrWSMessagesIn()    { atomic.AddInt64(&c.WSMessagesIn, 1) }
func (c *Collector) IncrWSMessagesOut()   { atomic.AddInt64(&c.WSMessagesOut, 1) }
func (c *Collector) ClientConnected()     { atomic.AddInt64(&c.WSConnectionsActive, 1) }
func (c *Collector) ClientDisconnected()  { atomic.AddInt64(&c.WSConnectionsActive, -1) }

// Snapshot is the JSON shape served by the metrics endpoint.
type Snapshot struct {
	UptimeSeconds       float64 `json:"uptime_seconds"`
	DaysAdvanced        int64   `json:"days_advanced"`
	FightsSimulated     int64   `json:"fights_simulated"`
	FightersCreated     int64   `json:"fighters_created"`
	EventsAppended      int64   `json:"events_appended"`
	SaveWrites          int64   `json:"save_writes"`
	SaveErrors          int64   `json:"save_errors"`
	WSConnectionsActive int64   `json:"ws_connections_active"`
	WSMessagesIn        int64   `json:"ws_messages_in"`
	WSMessagesOut       int64   `json:"ws_messages_out"`
}

// Handler serves the current counters as JSON.
func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := Get()
		snap := Snapshot{
			UptimeSeconds:       time.Since(c.StartTime).Seconds(),
			DaysAdvanced:        atomic.LoadInt64(&c.DaysAdvanced),
			FightsSimulated:     atomic.LoadInt64(&c.FightsSimulated),
			FightersCreated:     atomic.LoadInt64(&c.FightersCreated),
			EventsAppended:      atomic.LoadInt64(&c.EventsAppended),
			SaveWrites:          atomic.LoadInt64(&c.SaveWrites),
			SaveErrors:          atomic.LoadInt64(&c.SaveErrors),
			WSConnectionsActive: atomic.LoadInt64(&c.WSConnectionsActive),
			WSMessagesIn:        atomic.LoadInt64(&c.WSMessagesIn),
			WSMessagesOut:       atomic.LoadInt64(&c.WSMessagesOut),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(snap)
	}
}
