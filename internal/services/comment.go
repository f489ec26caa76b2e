package services

import (
	"errors"
	"strings"

	"goboard/internal/errs"
	"goboard/internal/models"
	"goboard/internal/repository"

	"gorm.io/gorm"
)

// CommentService appends comments to posts. Comments are append-only; there
// is no update or delete.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

func (s *CommentService) Create(postID uint, content, createdBy string) (uint, error) {
	if strings.TrimSpace(content) == "" {
		return 0, errs.ErrEmptyContent
	}
	if _, err := repository.NewPostRepo(s.db).FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errs.ErrPostNotFound
		}
		return 0, err
	}

	comment := models.Comment{
		PostID:    postID,
		Content:   content,
		CreatedBy: createdBy,
	}
	if err := repository.NewCommentRepo(s.db).Insert(&comment); err != nil {
		return 0, err
	}
	return comment.ID, nil
}
