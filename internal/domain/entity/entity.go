package entity

import "time"

// StateEntry records when a notification key was last acted on. Keys are
// "row_N" for per-row ETA reminders and fixed strings for recurring
// broadcasts.
type StateEntry struct {
	Key        string    `json:"key"`
	NotifiedAt time.Time `json:"notified_at"`
}
