package store

import (
	"context"

	"github.com/ringsidegames/cornerman/internal/domain/game"
	"github.com/ringsidegames/cornerman/internal/domain/manager"
	"github.com/ringsidegames/cornerman/internal/events"
	"github.com/ringsidegames/cornerman/internal/platform/metrics"
)

// Saver persists and restores whole careers. The store only needs these two
// calls; the SQLite implementation lives in infra/storage.
type Saver interface {
	Save(ctx context.Context, slot string, m manager.Character, gs *game.State) error
	Load(ctx context.Context, slot string) (manager.Character, *game.State, error)
}

// SaveGame writes the current career to a slot. The result is narrated
// through the dialog queue either way.
func (s *Store) SaveGame(ctx context.Context, saver Saver, slot string) error {
	s.mu.RLock()
	if s.state == nil || s.manager == nil {
		s.mu.RUnlock()
		return nil
	}
	m := *s.manager
	snapshot := s.state.Clone()
	s.mu.RUnlock()

	if err := saver.Save(ctx, slot, m, snapshot); err != nil {
		metrics.Get().IncrSaveErrors()
		s.log.Error("save failed: %v", err)
		s.PushDialog(game.DialogMessage{Speaker: "SYSTEM", Text: "Save failed! Try again."})
		return err
	}

	metrics.Get().IncrSaveWrites()
	s.record(events.EventTypeGameSaved, m.ID, slot, snapshot.Day, nil)
	s.PushDialog(game.DialogMessage{Speaker: "SYSTEM", Text: "Game saved."})
	return nil
}

// LoadGame replaces the running career with a saved one.
func (s *Store) LoadGame(ctx context.Context, saver Saver, slot string) error {
	m, gs, err := saver.Load(ctx, slot)
	if err != nil {
		s.log.Error("load failed: %v", err)
		return err
	}

	// Resume id counters past anything in the save so new entities never
	// collide with loaded ones.
	s.ids.AdvancePast("fighter", fighterIDs(gs))
	s.ids.AdvancePast("fight", fightIDs(gs))

	s.ResumeGame(m, gs)
	s.log.Event("GAME_LOADED", m.ID, "slot "+slot)
	return nil
}

func fighterIDs(gs *game.State) []string {
	ids := make([]string, 0, len(gs.Fighters)+len(gs.Schedule))
	for _, f := range gs.Fighters {
		ids = append(ids, f.ID)
	}
	for _, sf := range gs.Schedule {
		ids = append(ids, sf.Opponent.ID)
	}
	return ids
}

func fightIDs(gs *game.State) []string {
	ids := make([]string, 0, len(gs.Schedule))
	for _, sf := range gs.Schedule {
		ids = append(ids, sf.ID)
	}
	return ids
}
