package services

import (
	"goboard/internal/models"
	"goboard/internal/repository"

	"gorm.io/gorm"
)

// LikeService is a thin counter over like rows. PostID is a soft reference,
// so Create does not verify the post exists, and nothing prevents the same
// actor from liking twice.
type LikeService struct {
	db *gorm.DB
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db}
}

func (s *LikeService) Create(postID uint, createdBy string) error {
	like := models.Like{
		PostID:    postID,
		CreatedBy: createdBy,
	}
	return repository.NewLikeRepo(s.db).Insert(&like)
}

// Count returns the raw number of like rows for the post, 0 when none.
func (s *LikeService) Count(postID uint) (int64, error) {
	return repository.NewLikeRepo(s.db).CountByPostID(postID)
}
