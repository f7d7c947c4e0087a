package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/slack-sheet-monitor/internal/domain/contract"
	"github.com/diegoclair/slack-sheet-monitor/internal/domain/entity"
)

type notificationStateRepo struct {
	db dbConn
}

// NewNotificationStateRepo returns the SQLite-backed notification state
// store.
func NewNotificationStateRepo(db *DB) contract.NotificationStateRepo {
	return &notificationStateRepo{db: db.conn}
}

func (r *notificationStateRepo) Get(key string) (*entity.StateEntry, error) {
	entry := &entity.StateEntry{}
	query := `
		SELECT row_key, notified_at
		FROM notification_state
		WHERE row_key = ?
	`

	err := r.db.QueryRow(query, key).Scan(
		&entry.Key,
		&entry.NotifiedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification state: %w", err)
	}

	return entry, nil
}

func (r *notificationStateRepo) Upsert(entry *entity.StateEntry) error {
	query := `
		INSERT INTO notification_state (row_key, notified_at)
		VALUES (?, ?)
		ON CONFLICT(row_key) DO UPDATE SET notified_at = excluded.notified_at
	`

	_, err := r.db.Exec(query, entry.Key, entry.NotifiedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert notification state: %w", err)
	}

	return nil
}

func (r *notificationStateRepo) Delete(key string) error {
	query := `DELETE FROM notification_state WHERE row_key = ?`

	_, err := r.db.Exec(query, key)
	if err != nil {
		return fmt.Errorf("failed to delete notification state: %w", err)
	}

	return nil
}
