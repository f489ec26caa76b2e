package repository

import (
	"goboard/internal/models"

	"gorm.io/gorm"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// FindByID returns the post or gorm.ErrRecordNotFound.
func (r *PostRepo) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepo) Insert(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *PostRepo) Save(post *models.Post) error {
	return r.db.Save(post).Error
}

func (r *PostRepo) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}

// FindPage lists post summaries filtered by title substring and/or exact
// author, newest first with id as tiebreak. A negative page yields an empty
// page while the total stays correct.
func (r *PostRepo) FindPage(page, size int, filter PostFilter) ([]PostSummary, int64, error) {
	query := r.db.Model(&models.Post{})
	if filter.Title != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Title+"%")
	}
	if filter.CreatedBy != "" {
		query = query.Where("created_by = ?", filter.CreatedBy)
	}
	// Reusable session: the same conditions feed both the count and the page.
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if page < 0 {
		return nil, total, nil
	}

	var summaries []PostSummary
	err := query.
		Select("id, title, created_by, created_at").
		Order("created_at DESC, id DESC").
		Limit(size).
		Offset(page * size).
		Scan(&summaries).Error
	return summaries, total, err
}
