package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ringsidegames/cornerman/internal/domain/game"
	"github.com/ringsidegames/cornerman/internal/domain/manager"
)

// SaveVersion is bumped whenever SaveBlob changes shape. Loads refuse a
// mismatched version instead of guessing.
const SaveVersion = 1

// ErrSlotNotFound is returned when loading an empty slot.
var ErrSlotNotFound = errors.New("save slot not found")

// SaveBlob is the JSON payload stored per slot: one whole career.
type SaveBlob struct {
	Version int               `json:"version"`
	Manager manager.Character `json:"manager"`
	State   *game.State       `json:"state"`
}

// SaveRepository persists whole careers as versioned JSON blobs, one row per
// slot. It satisfies store.Saver.
type SaveRepository struct {
	db *sql.DB
}

func NewSaveRepository(db *sql.DB) *SaveRepository {
	return &SaveRepository{db: db}
}

// Save upserts the career into a slot.
func (r *SaveRepository) Save(ctx context.Context, slot string, m manager.Character, gs *game.State) error {
	blob, err := json.Marshal(SaveBlob{Version: SaveVersion, Manager: m, State: gs})
	if err != nil {
		return fmt.Errorf("failed to marshal save: %w", err)
	}

	query := `
		INSERT INTO save_slots (slot, version, payload, saved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			version=excluded.version,
			payload=excluded.payload,
			saved_at=excluded.saved_at
	`
	_, err = r.db.ExecContext(ctx, query, slot, SaveVersion, string(blob), time.Now())
	if err != nil {
		return fmt.Errorf("failed to write save slot: %w", err)
	}
	return nil
}

// Load reads a slot back. Returns ErrSlotNotFound for an empty slot and an
// error for a version the running build does not understand.
func (r *SaveRepository) Load(ctx context.Context, slot string) (manager.Character, *game.State, error) {
	query := `SELECT version, payload FROM save_slots WHERE slot = ?`

	var version int
	var payload string
	err := r.db.QueryRowContext(ctx, query, slot).Scan(&version, &payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return manager.Character{}, nil, ErrSlotNotFound
		}
		return manager.Character{}, nil, fmt.Errorf("failed to read save slot: %w", err)
	}

	if version != SaveVersion {
		return manager.Character{}, nil, fmt.Errorf("save version %d not supported (want %d)", version, SaveVersion)
	}

	var blob SaveBlob
	if err := json.Unmarshal([]byte(payload), &blob); err != nil {
		return manager.Character{}, nil, fmt.Errorf("failed to unmarshal save: %w", err)
	}
	return blob.Manager, blob.State, nil
}

// ListSlots returns the occupied slot names, most recent first.
func (r *SaveRepository) ListSlots(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT slot FROM save_slots ORDER BY saved_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}
