package repository

import (
	"goboard/internal/models"

	"gorm.io/gorm"
)

type LikeRepo struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) *LikeRepo {
	return &LikeRepo{db}
}

func (r *LikeRepo) Insert(like *models.Like) error {
	return r.db.Create(like).Error
}

// CountByPostID is a raw row count: duplicate likes from the same actor all
// count.
func (r *LikeRepo) CountByPostID(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// CountByPostIDs batches the like counts for a page of posts into one
// grouped query. Posts without likes are absent from the map.
func (r *LikeRepo) CountByPostIDs(postIDs []uint) (map[uint]int64, error) {
	if len(postIDs) == 0 {
		return map[uint]int64{}, nil
	}

	type row struct {
		PostID uint
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.Like{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, item := range rows {
		counts[item.PostID] = item.Count
	}
	return counts, nil
}

func (r *LikeRepo) DeleteByPostID(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.Like{}).Error
}
