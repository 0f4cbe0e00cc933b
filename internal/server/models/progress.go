package models

import "time"

// ProgressRecord is the per-(user, realm) progress state. CompletedAt is nil
// until the realm is completed and is set exactly once.
type ProgressRecord struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	RealmID     string     `json:"realmId"`
	Progress    int        `json:"progress"`
	IsUnlocked  bool       `json:"isUnlocked"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ProgressUpdate is a partial update of a ProgressRecord. Nil fields are left
// unchanged by the merge.
type ProgressUpdate struct {
	Progress    *int       `json:"progress"`
	IsUnlocked  *bool      `json:"isUnlocked"`
	IsCompleted *bool      `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt"`
}
