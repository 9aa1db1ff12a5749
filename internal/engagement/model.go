package engagement

import (
	"time"

	"github.com/google/uuid"
)

// Like marks that a user liked an essay. (UserID, EssayID) is unique: a user
// may like a given essay at most once, and the index is what makes two rapid
// duplicate clicks safe, not the application-level pre-check.
type Like struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"index;not null" json:"user_id"`
	EssayID   uuid.UUID `gorm:"type:uuid;index;not null" json:"essay_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// SavedEssay is a per-user bookmark. Same composite uniqueness as Like, but
// toggling is an idempotent upsert/delete rather than a checked insert.
type SavedEssay struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"index;not null" json:"user_id"`
	EssayID   uuid.UUID `gorm:"type:uuid;index;not null" json:"essay_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
