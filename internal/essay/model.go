package essay

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Essay is a submitted admissions essay. UserID is the owning user; only the
// owner may update or delete the row. WordCount is derived from Content and
// never authored directly.
type Essay struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      *uint64   `gorm:"index" json:"user_id,omitempty"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	College     string    `gorm:"type:text;not null;index" json:"college"`
	Prompt      string    `gorm:"type:text;not null" json:"prompt"`
	Major       string    `gorm:"type:text;not null;index" json:"major"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	WordCount   int       `gorm:"not null;default:0" json:"word_count"`
	Year        int       `gorm:"not null" json:"year"`
	Verified    bool      `gorm:"not null;default:false" json:"verified"`
	AuthorName  *string   `gorm:"type:text" json:"author_name,omitempty"`
	AuthorEmail *string   `gorm:"type:text" json:"author_email,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (e *Essay) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
