package contract

import (
	"github.com/diegoclair/slack-sheet-monitor/internal/domain/entity"
)

// NotificationStateRepo defines the contract for the persisted
// key -> last-notified-timestamp store
type NotificationStateRepo interface {
	// Get returns the entry for key, or nil when the key has never been
	// notified
	Get(key string) (*entity.StateEntry, error)

	// Upsert creates or overwrites the entry for entry.Key
	Upsert(entry *entity.StateEntry) error

	// Delete removes the entry for key; deleting an absent key is not an
	// error
	Delete(key string) error
}
