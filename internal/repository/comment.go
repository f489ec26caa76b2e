package repository

import (
	"goboard/internal/models"

	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

func (r *CommentRepo) Insert(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// FindByPostID returns the post's comments oldest first.
func (r *CommentRepo) FindByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_id = ?", postID).Order("id ASC").Find(&comments).Error
	return comments, err
}

func (r *CommentRepo) DeleteByPostID(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.Comment{}).Error
}
