// Package events provides the append-only career log. Every store action
// that changes the world leaves an immutable record here; the UI's activity
// feed and the save-game audit trail are both built from it.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ringsidegames/cornerman/internal/platform/logger"
	"github.com/ringsidegames/cornerman/internal/platform/metrics"
)

// EventType defines the category of a career event.
type EventType string

const (
	EventTypeGameStarted     EventType = "GAME_STARTED"
	EventTypeDayAdvanced     EventType = "DAY_ADVANCED"
	EventTypeWeekSettled     EventType = "WEEK_SETTLED"
	EventTypeFighterSigned   EventType = "FIGHTER_SIGNED"
	EventTypeFighterReleased EventType = "FIGHTER_RELEASED"
	EventTypeFighterTrained  EventType = "FIGHTER_TRAINED"
	EventTypeFighterScouted  EventType = "FIGHTER_SCOUTED"
	EventTypeFightBooked     EventType = "FIGHT_BOOKED"
	EventTypeFightRecorded   EventType = "FIGHT_RECORDED"
	EventTypeGymUpgraded     EventType = "GYM_UPGRADED"
	EventTypeStaffHired      EventType = "STAFF_HIRED"
	EventTypeSponsorSigned   EventType = "SPONSOR_SIGNED"
	EventTypeSponsorExpired  EventType = "SPONSOR_EXPIRED"
	EventTypeGameSaved       EventType = "GAME_SAVED"
	EventTypeGameLoaded      EventType = "GAME_LOADED"
)

// GameEvent represents an immutable record of something that happened in
// the career.
type GameEvent struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	ActorID   string    `json:"actor_id"`  // fighter/manager/system id
	TargetID  string    `json:"target_id"` // affected entity (optional)
	Payload   any       `json:"payload"`   // event-specific data
	GameDay   int       `json:"game_day"`
}

// EventPersister defines how an event is durably stored.
type EventPersister interface {
	Append(event GameEvent) error
}

// EventLog is the in-memory append-only log with optional write-through
// persistence.
type EventLog struct {
	mu        sync.RWMutex
	events    []GameEvent
	persister EventPersister
	log       *logger.Logger
}

// NewEventLog creates a new event log with an optional persister and logger.
func NewEventLog(persister EventPersister, log *logger.Logger) *EventLog {
	return &EventLog{
		events:    make([]GameEvent, 0),
		persister: persister,
		log:       log,
	}
}

// Record builds and appends an event, filling in id and timestamp.
func (el *EventLog) Record(t EventType, actorID, targetID string, gameDay int, payload any) GameEvent {
	event := GameEvent{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Type:      t,
		ActorID:   actorID,
		TargetID:  targetID,
		Payload:   payload,
		GameDay:   gameDay,
	}
	el.Append(event)
	return event
}

// Append adds a new event to the log. Events are immutable once appended.
func (el *EventLog) Append(event GameEvent) {
	el.mu.Lock()
	defer el.mu.Unlock()
	el.events = append(el.events, event)

	if el.persister != nil {
		// Write through to persistent storage off the caller's path.
		go func(e GameEvent) {
			if err := el.persister.Append(e); err != nil {
				if el.log != nil {
					el.log.Error("event %s (%s) not persisted: %v", e.ID, e.Type, err)
				}
				return
			}
			metrics.Get().IncrEventsAppended()
		}(event)
	}
}

// GetByActor returns all events involving a specific actor.
func (el *EventLog) GetByActor(actorID string) []GameEvent {
	el.mu.RLock()
	defer el.mu.RUnlock()

	var result []GameEvent
	for _, e := range el.events {
		if e.ActorID == actorID {
			result = append(result, e)
		}
	}
	return result
}

// GetByDay returns all events that occurred on a specific game day.
func (el *EventLog) GetByDay(day int) []GameEvent {
	el.mu.RLock()
	defer el.mu.RUnlock()

	var result []GameEvent
	for _, e := range el.events {
		if e.GameDay == day {
			result = append(result, e)
		}
	}
	return result
}

// Replay returns the full history for state reconstruction or feeds.
func (el *EventLog) Replay() []GameEvent {
	el.mu.RLock()
	defer el.mu.RUnlock()
	out := make([]GameEvent, len(el.events))
	copy(out, el.events)
	return out
}

// Len returns the number of appended events.
func (el *EventLog) Len() int {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return len(el.events)
}
