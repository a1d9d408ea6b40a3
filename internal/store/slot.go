package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ProgressKey is the fixed storage key for the progress snapshot.
const ProgressKey = "numberninja.progress"

// Slot reads and writes one opaque blob under a fixed key. It
// satisfies progress.SnapshotRepo.
type Slot struct {
	db  *sql.DB
	key string
}

// ProgressRepo returns the durable slot holding the progress snapshot.
func (s *Store) ProgressRepo() *Slot {
	return &Slot{db: s.db, key: ProgressKey}
}

// Load returns the stored blob, or nil when the slot has never been
// written.
func (r *Slot) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx,
		"SELECT data FROM app_state WHERE key = ?", r.key,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load slot %s: %w", r.key, err)
	}
	return data, nil
}

// Save overwrites the slot with data.
func (r *Slot) Save(ctx context.Context, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO app_state (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		r.key, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save slot %s: %w", r.key, err)
	}
	return nil
}
