package repository

import (
	"time"

	"goboard/internal/models"

	"gorm.io/gorm"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindByPostID returns the post's tags in stored (= submitted) order.
func (r *TagRepo) FindByPostID(postID uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("post_id = ?", postID).Order("id ASC").Find(&tags).Error
	return tags, err
}

// InsertAll creates one tag row per name, preserving submission order.
// Duplicate names are allowed; there is no uniqueness constraint.
func (r *TagRepo) InsertAll(postID uint, names []string, createdBy string) error {
	if len(names) == 0 {
		return nil
	}
	tags := make([]models.Tag, len(names))
	now := time.Now()
	for i, name := range names {
		tags[i] = models.Tag{
			Name:      name,
			PostID:    postID,
			CreatedBy: createdBy,
			CreatedAt: now,
		}
	}
	return r.db.Create(&tags).Error
}

// ReplaceForPost discards the existing tag collection entirely and creates a
// fresh one from names. Callers run this inside the update transaction.
func (r *TagRepo) ReplaceForPost(postID uint, names []string, createdBy string) error {
	if err := r.DeleteByPostID(postID); err != nil {
		return err
	}
	return r.InsertAll(postID, names, createdBy)
}

func (r *TagRepo) DeleteByPostID(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.Tag{}).Error
}

// FindPageByName pages over tag rows whose name matches exactly, joined to
// the owning post and ordered by the post's creation time descending. One
// result row per matching tag row: a post carrying the same tag name twice
// appears twice. Known duplication risk, kept as specified.
func (r *TagRepo) FindPageByName(page, size int, name string) ([]PostSummary, int64, error) {
	query := r.db.Model(&models.Tag{}).
		Joins("JOIN posts ON posts.id = tags.post_id").
		Where("tags.name = ?", name).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if page < 0 {
		return nil, total, nil
	}

	var summaries []PostSummary
	err := query.
		Select("posts.id, posts.title, posts.created_by, posts.created_at").
		Order("posts.created_at DESC, posts.id DESC").
		Limit(size).
		Offset(page * size).
		Scan(&summaries).Error
	return summaries, total, err
}

// FirstTagByPostIDs resolves each post's first stored tag in one query
// instead of a per-row round trip. Posts without tags are absent from the
// map.
func (r *TagRepo) FirstTagByPostIDs(postIDs []uint) (map[uint]string, error) {
	if len(postIDs) == 0 {
		return map[uint]string{}, nil
	}

	type row struct {
		PostID uint
		Name   string
	}
	var rows []row
	err := r.db.
		Raw("SELECT DISTINCT ON (post_id) post_id, name FROM tags WHERE post_id IN ? ORDER BY post_id, id ASC", postIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	firstTags := make(map[uint]string, len(rows))
	for _, item := range rows {
		firstTags[item.PostID] = item.Name
	}
	return firstTags, nil
}
