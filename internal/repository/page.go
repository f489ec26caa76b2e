package repository

import (
	"math"
	"time"
)

// PostSummary is the list-view projection. FirstTag and LikeCount are not
// columns of the posts table; they are filled by grouped follow-up queries.
type PostSummary struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	FirstTag  string    `json:"first_tag"`
	LikeCount int64     `json:"like_count"`
}

// Page is a bounded slice of an ordered result set plus the total matching
// row count, addressed by zero-based page number and page size.
type Page struct {
	Content    []PostSummary `json:"content"`
	Page       int           `json:"page"`
	Size       int           `json:"size"`
	TotalCount int64         `json:"total_count"`
	TotalPages int           `json:"total_pages"`
}

func NewPage(content []PostSummary, page, size int, total int64) *Page {
	totalPages := int(math.Ceil(float64(total) / float64(size)))
	if content == nil {
		content = []PostSummary{}
	}
	return &Page{
		Content:    content,
		Page:       page,
		Size:       size,
		TotalCount: total,
		TotalPages: totalPages,
	}
}

// PostFilter narrows the post listing. Tag takes precedence: when set, the
// query routes through the tags table instead of posts.
type PostFilter struct {
	Title     string
	CreatedBy string
	Tag       string
}
