package fwstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// LastSyncTime returns the stored baseline timestamp for the
// (owner, installation, scope) tuple, or nil if no sync has completed yet.
func (s *Store) LastSyncTime(ctx context.Context, userID, installationID, scope string) (*time.Time, error) {
	var t time.Time
	err := s.db.QueryRowContext(ctx, `
		SELECT last_sync_at FROM sync_metadata
		WHERE user_id = ? AND installation_id = ? AND scope = ?
	`, userID, installationID, scope).Scan(&t)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get last sync time: %w", err)
	}
	return &t, nil
}

// SetLastSyncTime advances the baseline timestamp for the
// (owner, installation, scope) tuple.
func (s *Store) SetLastSyncTime(ctx context.Context, userID, installationID, scope string, t time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sync_metadata (user_id, installation_id, scope, last_sync_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, installation_id, scope) DO UPDATE SET last_sync_at = excluded.last_sync_at
	`, userID, installationID, scope, t)
	if err != nil {
		return fmt.Errorf("set last sync time: %w", err)
	}
	return nil
}

// ClearLastSyncTime removes the baseline for the tuple, forcing the next
// sync of that scope to perform a full download.
func (s *Store) ClearLastSyncTime(ctx context.Context, userID, installationID, scope string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM sync_metadata
		WHERE user_id = ? AND installation_id = ? AND scope = ?
	`, userID, installationID, scope)
	if err != nil {
		return fmt.Errorf("clear last sync time: %w", err)
	}
	return nil
}
