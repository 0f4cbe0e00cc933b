package models

import "time"

// Reflection is a free-text journal entry. RealmID is nil for general entries
// not tied to a realm. Metadata is an opaque key-value bag (e.g. which lesson
// produced the entry), stored as JSONB on the durable backend.
type Reflection struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"userId"`
	RealmID   *string        `json:"realmId"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"createdAt"`
}
