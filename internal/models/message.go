package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is a single chat room entry. AuthorEmail never changes after
// creation; removal is always a soft delete so history is retained.
type Message struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Text        string         `gorm:"size:500;not null" json:"text"`
	AuthorEmail string         `gorm:"size:255;not null;index" json:"author_email"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
