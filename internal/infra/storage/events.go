package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ringsidegames/cornerman/internal/events"
)

// SQLiteEventRepository persists career events. It satisfies
// events.EventPersister.
type SQLiteEventRepository struct {
	db *sql.DB
}

func NewSQLiteEventRepository(db *sql.DB) *SQLiteEventRepository {
	return &SQLiteEventRepository{db: db}
}

func (r *SQLiteEventRepository) Append(event events.GameEvent) error {
	payloadBytes, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	query := `
		INSERT INTO events (id, timestamp, event_type, actor_id, target_id, payload, game_day)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(query,
		event.ID, event.Timestamp, string(event.Type), event.ActorID,
		event.TargetID, string(payloadBytes), event.GameDay,
	)
	if err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepository) getMany(ctx context.Context, query string, args ...any) ([]events.GameEvent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []events.GameEvent
	for rows.Next() {
		var e events.GameEvent
		var payloadStr string
		err := rows.Scan(&e.ID, &e.Timestamp, &e.Type, &e.ActorID, &e.TargetID, &payloadStr, &e.GameDay)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(payloadStr), &e.Payload); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetByActorID reads back the trail for one actor, oldest first.
func (r *SQLiteEventRepository) GetByActorID(ctx context.Context, actorID string) ([]events.GameEvent, error) {
	query := `SELECT id, timestamp, event_type, actor_id, target_id, payload, game_day FROM events WHERE actor_id = ? ORDER BY timestamp ASC`
	return r.getMany(ctx, query, actorID)
}

// GetByGameDay reads back everything that happened on one game day.
func (r *SQLiteEventRepository) GetByGameDay(ctx context.Context, day int) ([]events.GameEvent, error) {
	query := `SELECT id, timestamp, event_type, actor_id, target_id, payload, game_day FROM events WHERE game_day = ? ORDER BY timestamp ASC`
	return r.getMany(ctx, query, day)
}

// GetByEventType reads back one category of event, oldest first.
func (r *SQLiteEventRepository) GetByEventType(ctx context.Context, eventType events.EventType) ([]events.GameEvent, error) {
	query := `SELECT id, timestamp, event_type, actor_id, target_id, payload, game_day FROM events WHERE event_type = ? ORDER BY timestamp ASC`
	return r.getMany(ctx, query, string(eventType))
}
