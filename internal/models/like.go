package models

import (
	"time"
)

// Like has no uniqueness constraint on (post_id, created_by): the same actor
// liking twice produces two rows and both count. Kept as-is until product
// says otherwise.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	CreatedBy string    `gorm:"not null" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
