package models

import (
	"time"
)

type Post struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"not null" json:"title"`
	Content   string     `gorm:"type:text" json:"content"`
	CreatedBy string     `gorm:"not null;index" json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedBy *string `json:"updated_by,omitempty"`
	// autoUpdateTime off: the pair stays NULL until the first successful
	// update and is stamped explicitly by the service.
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`

	// 非数据库字段，用于查询时填充
	FirstTag  string `gorm:"-" json:"first_tag,omitempty"`
	LikeCount int64  `gorm:"-" json:"like_count"`
}

// Editable reports whether actor may mutate the post. Ownership is the
// original author, never a later updater.
func (p *Post) Editable(actor string) bool {
	return p.CreatedBy == actor
}

// Touch stamps the mutable audit pair. CreatedBy is never changed.
func (p *Post) Touch(updatedBy string) {
	now := time.Now()
	p.UpdatedBy = &updatedBy
	p.UpdatedAt = &now
}
