// Package store owns the authoritative game state and exposes the only
// mutation surface the other layers may call. Every action reads the
// current state, computes a new one, and replaces it wholesale, so each
// transition is atomic from the caller's perspective.
//
// ARCHITECTURAL RULE: simulation packages (gen, sim, career) return data;
// the store commits it. Nothing else mutates game.State.
package store

import (
	"sync"

	"github.com/ringsidegames/cornerman/internal/career"
	"github.com/ringsidegames/cornerman/internal/config"
	"github.com/ringsidegames/cornerman/internal/domain/fight"
	"github.com/ringsidegames/cornerman/internal/domain/fighter"
	"github.com/ringsidegames/cornerman/internal/domain/game"
	"github.com/ringsidegames/cornerman/internal/domain/gym"
	"github.com/ringsidegames/cornerman/internal/domain/manager"
	"github.com/ringsidegames/cornerman/internal/events"
	"github.com/ringsidegames/cornerman/internal/gen"
	"github.com/ringsidegames/cornerman/internal/platform/logger"
	"github.com/ringsidegames/cornerman/internal/platform/rng"
	"github.com/ringsidegames/cornerman/internal/sim"
)

// Store is the stateful heart of the game. All other components are pure.
type Store struct {
	mu      sync.RWMutex
	manager *manager.Character
	state   *game.State

	// Last scouted pool. Prospects are signed by id from here, never from
	// client-supplied fighter data.
	prospects []fighter.Fighter

	tables *config.Tables
	rng    *rng.Source
	ids    *rng.IDSource
	gen    *gen.Generator
	sim    *sim.Simulator
	career *career.Engine
	log    *logger.Logger
	events *events.EventLog
}

// New wires a store. The event log may be nil when no audit trail is wanted
// (tests mostly run without one).
func New(tables *config.Tables, source *rng.Source, ids *rng.IDSource, log *logger.Logger, eventLog *events.EventLog) *Store {
	generator := gen.New(source, ids, tables)
	return &Store{
		tables: tables,
		rng:    source,
		ids:    ids,
		gen:    generator,
		sim:    sim.New(source),
		career: career.New(tables, source, generator, log),
		log:    log,
		events: eventLog,
	}
}

// record appends to the event log when one is attached.
func (s *Store) record(t events.EventType, actorID, targetID string, gameDay int, payload any) {
	if s.events != nil {
		s.events.Record(t, actorID, targetID, gameDay, payload)
	}
}

// Started reports whether a game is in progress.
func (s *Store) Started() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state != nil
}

// Manager returns a copy of the manager character, or nil before StartGame.
func (s *Store) Manager() *manager.Character {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.manager == nil {
		return nil
	}
	m := *s.manager
	return &m
}

// State returns a snapshot of the current game state, or nil before
// StartGame. The snapshot is a clone; mutating it does not affect the store.
func (s *Store) State() *game.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return nil
	}
	return s.state.Clone()
}

// StartGame creates the initial state for a fresh career: a garage gym, one
// scrub on a starter contract, and seed money.
func (s *Store) StartGame(m manager.Character) {
	starter := s.gen.GenerateFighter(gen.Options{
		Tier:             fighter.TierScrub,
		ForceWeightClass: fighter.Lightweight,
	})
	starter.ContractWeeksLeft = s.tables.StarterWeeks
	starter.Salary = s.tables.StarterSalary
	starter.SignedDay = 1

	base := s.tables.UpgradeForLevel(1)

	state := &game.State{
		Day:      1,
		Week:     1,
		Money:    s.tables.StartingMoney,
		Fighters: []fighter.Fighter{starter},
		Gym: gym.State{
			Level:       base.Level,
			Reputation:  20,
			Equipment:   30,
			Rent:        base.Rent,
			MaxFighters: base.MaxFighters,
		},
		World: game.WorldState{
			CurrentMap: game.MapGym,
			PlayerX:    7,
			PlayerY:    8,
			PlayerDir:  game.DirDown,
		},
		ActiveScreen: game.ScreenOverworld,
	}

	s.mu.Lock()
	s.manager = &m
	s.state = state
	s.prospects = nil
	s.mu.Unlock()

	s.record(events.EventTypeGameStarted, m.ID, starter.ID, 1, nil)
	s.log.Event("GAME_STARTED", m.ID, "New career started with "+starter.Name)
}

// ResumeGame restores a previously saved career.
func (s *Store) ResumeGame(m manager.Character, state *game.State) {
	s.mu.Lock()
	s.manager = &m
	s.state = state.Clone()
	s.prospects = nil
	s.mu.Unlock()
	s.record(events.EventTypeGameLoaded, m.ID, "", state.Day, nil)
}

// mutate clones the state, applies fn, and swaps the result in. Returns
// false (and applies nothing) when no game exists. fn returning false
// aborts the swap.
func (s *Store) mutate(fn func(gs *game.State) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return false
	}
	next := s.state.Clone()
	if !fn(next) {
		return false
	}
	s.state = next
	return true
}

// ── Screens / world ─────────────────────────────────────

// SetScreen changes the active UI screen pointer.
func (s *Store) SetScreen(screen game.Screen) {
	s.mutate(func(gs *game.State) bool {
		gs.ActiveScreen = screen
		return true
	})
}

// ChangeMap moves the player to another map at the given position.
func (s *Store) ChangeMap(m game.MapID, x, y int) {
	s.mutate(func(gs *game.State) bool {
		gs.World.CurrentMap = m
		gs.World.PlayerX = x
		gs.World.PlayerY = y
		return true
	})
}

// SetPlayerPos updates the overworld position.
func (s *Store) SetPlayerPos(x, y int) {
	s.mutate(func(gs *game.State) bool {
		gs.World.PlayerX = x
		gs.World.PlayerY = y
		return true
	})
}

// SetPlayerDir updates the overworld facing.
func (s *Store) SetPlayerDir(dir game.Direction) {
	s.mutate(func(gs *game.State) bool {
		gs.World.PlayerDir = dir
		return true
	})
}

// ── Dialog queue ────────────────────────────────────────

// PushDialog appends a message at the tail of the narrative queue.
func (s *Store) PushDialog(msg game.DialogMessage) {
	s.mutate(func(gs *game.State) bool {
		gs.DialogQueue = append(gs.DialogQueue, msg)
		return true
	})
}

// PopDialog removes and returns the head of the narrative queue.
func (s *Store) PopDialog() (game.DialogMessage, bool) {
	var msg game.DialogMessage
	ok := s.mutate(func(gs *game.State) bool {
		if len(gs.DialogQueue) == 0 {
			return false
		}
		msg = gs.DialogQueue[0]
		gs.DialogQueue = gs.DialogQueue[1:]
		return true
	})
	return msg, ok
}

// ── Money ───────────────────────────────────────────────

// AddMoney credits income and tracks cumulative earnings.
func (s *Store) AddMoney(amount int) {
	s.mutate(func(gs *game.State) bool {
		gs.Money += amount
		gs.TotalEarnings += amount
		return true
	})
}

// SpendMoney debits an expense. It rejects (no mutation) when the cost
// exceeds the current balance.
func (s *Store) SpendMoney(amount int) bool {
	return s.mutate(func(gs *game.State) bool {
		if amount > gs.Money {
			return false
		}
		gs.Money -= amount
		gs.TotalSpent += amount
		return true
	})
}

// ── Roster / schedule primitives ────────────────────────

// AddFighter appends a fighter to the roster.
func (s *Store) AddFighter(f fighter.Fighter) {
	s.mutate(func(gs *game.State) bool {
		gs.Fighters = append(gs.Fighters, f)
		return true
	})
}

// RemoveFighter drops a fighter from the roster by id.
func (s *Store) RemoveFighter(id string) {
	s.mutate(func(gs *game.State) bool {
		kept := gs.Fighters[:0]
		for _, f := range gs.Fighters {
			if f.ID != id {
				kept = append(kept, f)
			}
		}
		gs.Fighters = kept
		return true
	})
}

// UpdateFighter applies a mutation to one roster fighter. Bounded fields
// are re-clamped afterwards, so callers cannot push a stat out of range.
func (s *Store) UpdateFighter(id string, update func(*fighter.Fighter)) bool {
	return s.mutate(func(gs *game.State) bool {
		f := gs.FighterByID(id)
		if f == nil {
			return false
		}
		update(f)
		f.ClampVitals()
		return true
	})
}

// AddFight books a bout onto the schedule.
func (s *Store) AddFight(sf fight.ScheduledFight) {
	s.mutate(func(gs *game.State) bool {
		gs.Schedule = append(gs.Schedule, sf)
		return true
	})
}

// RemoveFight drops a scheduled bout by id.
func (s *Store) RemoveFight(id string) {
	s.mutate(func(gs *game.State) bool {
		kept := gs.Schedule[:0]
		for _, sf := range gs.Schedule {
			if sf.ID != id {
				kept = append(kept, sf)
			}
		}
		gs.Schedule = kept
		return true
	})
}

// ── Day advancement ─────────────────────────────────────

// AdvanceDay moves the world one day forward via the career engine and
// enqueues whatever dialogs it produced.
func (s *Store) AdvanceDay() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return false
	}
	next, dialogs := s.career.AdvanceDay(s.state)
	next.DialogQueue = append(next.DialogQueue, dialogs...)
	s.state = next

	if next.Day%7 == 0 {
		s.record(events.EventTypeWeekSettled, "system", "", next.Day, nil)
	}
	s.record(events.EventTypeDayAdvanced, "system", "", next.Day, nil)
	return true
}
