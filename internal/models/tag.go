package models

import (
	"time"
)

// Tag belongs to exactly one post. PostID is a soft reference: indexed but
// without a database-enforced foreign key, so the column survives schema
// migrations of the posts table. Insertion order is the submission order,
// so ordering by id reproduces the tag list as submitted.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;index" json:"name"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	CreatedBy string    `gorm:"not null" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
