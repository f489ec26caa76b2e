package services

import (
	"errors"
	"strings"
	"time"

	"goboard/internal/errs"
	"goboard/internal/models"
	"goboard/internal/repository"
	"goboard/internal/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PostService owns the post aggregate: a post plus its tags and comments,
// mutated as one transaction. Mutations are gated on the immutable original
// author; reads are ungated.
type PostService struct {
	db    *gorm.DB
	likes *LikeService
}

func NewPostService(db *gorm.DB, likes *LikeService) *PostService {
	return &PostService{db: db, likes: likes}
}

// CommentDetail is the comment projection inside a post detail.
type CommentDetail struct {
	Content   string    `json:"content"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// PostDetail is the composite detail projection: post fields plus tags in
// stored order, comments oldest first and the like count.
type PostDetail struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	ContentHTML string          `json:"content_html"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedBy   *string         `json:"updated_by,omitempty"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
	Tags        []string        `json:"tags"`
	Comments    []CommentDetail `json:"comments"`
	LikeCount   int64           `json:"like_count"`
}

// Create persists the post and one tag row per name, in submission order,
// inside one transaction. Creation has no prior owner, so there is no
// authorization check.
func (s *PostService) Create(title, content, createdBy string, tags []string) (uint, error) {
	if strings.TrimSpace(title) == "" {
		return 0, errs.ErrEmptyTitle
	}

	post := models.Post{
		Title:     title,
		Content:   content,
		CreatedBy: createdBy,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewPostRepo(tx).Insert(&post); err != nil {
			return err
		}
		return repository.NewTagRepo(tx).InsertAll(post.ID, tags, createdBy)
	})
	if err != nil {
		log.Error().Err(err).Str("created_by", createdBy).Msg("create post failed")
		return 0, err
	}
	return post.ID, nil
}

// Update overwrites title and content and stamps the audit pair. A non-nil
// tags list replaces the tag collection wholesale: old rows are deleted and
// the new list inserted fresh, order preserved. A nil tags list leaves the
// collection untouched. Only the original author may update, regardless of
// who updated last.
func (s *PostService) Update(id uint, title, content, updatedBy string, tags *[]string) (uint, error) {
	post, err := repository.NewPostRepo(s.db).FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errs.ErrPostNotFound
		}
		return 0, err
	}
	if !post.Editable(updatedBy) {
		return 0, errs.ErrPostNotUpdatable
	}
	if strings.TrimSpace(title) == "" {
		return 0, errs.ErrEmptyTitle
	}

	post.Title = title
	post.Content = content
	post.Touch(updatedBy)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewPostRepo(tx).Save(post); err != nil {
			return err
		}
		if tags != nil {
			return repository.NewTagRepo(tx).ReplaceForPost(post.ID, *tags, post.CreatedBy)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("post_id", id).Msg("update post failed")
		return 0, err
	}
	return id, nil
}

// Delete removes the post and cascades to its likes, comments and tags,
// children first, inside one transaction. Only the original author may
// delete.
func (s *PostService) Delete(id uint, deletedBy string) (uint, error) {
	post, err := repository.NewPostRepo(s.db).FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errs.ErrPostNotFound
		}
		return 0, err
	}
	if !post.Editable(deletedBy) {
		return 0, errs.ErrPostNotDeletable
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewLikeRepo(tx).DeleteByPostID(post.ID); err != nil {
			return err
		}
		if err := repository.NewCommentRepo(tx).DeleteByPostID(post.ID); err != nil {
			return err
		}
		if err := repository.NewTagRepo(tx).DeleteByPostID(post.ID); err != nil {
			return err
		}
		return repository.NewPostRepo(tx).Delete(post.ID)
	})
	if err != nil {
		log.Error().Err(err).Uint("post_id", id).Msg("delete post failed")
		return 0, err
	}
	return id, nil
}

// Get assembles the detail projection. The like count comes from the like
// component, not from a column on the post.
func (s *PostService) Get(id uint) (*PostDetail, error) {
	post, err := repository.NewPostRepo(s.db).FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPostNotFound
		}
		return nil, err
	}

	tags, err := repository.NewTagRepo(s.db).FindByPostID(post.ID)
	if err != nil {
		return nil, err
	}
	comments, err := repository.NewCommentRepo(s.db).FindByPostID(post.ID)
	if err != nil {
		return nil, err
	}
	likeCount, err := s.likes.Count(post.ID)
	if err != nil {
		return nil, err
	}

	detail := &PostDetail{
		ID:          post.ID,
		Title:       post.Title,
		Content:     post.Content,
		ContentHTML: utils.RenderMarkdown(post.Content),
		CreatedBy:   post.CreatedBy,
		CreatedAt:   post.CreatedAt,
		UpdatedBy:   post.UpdatedBy,
		UpdatedAt:   post.UpdatedAt,
		Tags:        make([]string, len(tags)),
		Comments:    make([]CommentDetail, len(comments)),
		LikeCount:   likeCount,
	}
	for i, tag := range tags {
		detail.Tags[i] = tag.Name
	}
	for i, comment := range comments {
		detail.Comments[i] = CommentDetail{
			Content:   comment.Content,
			CreatedBy: comment.CreatedBy,
			CreatedAt: comment.CreatedAt,
		}
	}
	return detail, nil
}

// FindPage returns one page of summaries. A tag filter routes through the
// tags table; otherwise the posts table is filtered by title substring
// and/or exact author. FirstTag and LikeCount are filled with two grouped
// queries over the page's post ids rather than per-row lookups.
func (s *PostService) FindPage(page, size int, filter repository.PostFilter) (*repository.Page, error) {
	if size <= 0 {
		return nil, errs.ErrInvalidPageSize
	}

	var (
		summaries []repository.PostSummary
		total     int64
		err       error
	)
	if filter.Tag != "" {
		summaries, total, err = repository.NewTagRepo(s.db).FindPageByName(page, size, filter.Tag)
	} else {
		summaries, total, err = repository.NewPostRepo(s.db).FindPage(page, size, filter)
	}
	if err != nil {
		return nil, err
	}

	if err := s.fillProjections(summaries); err != nil {
		return nil, err
	}
	return repository.NewPage(summaries, page, size, total), nil
}

// fillProjections batch-fills FirstTag and LikeCount for a page of
// summaries.
func (s *PostService) fillProjections(summaries []repository.PostSummary) error {
	if len(summaries) == 0 {
		return nil
	}

	postIDs := make([]uint, len(summaries))
	for i, summary := range summaries {
		postIDs[i] = summary.ID
	}

	firstTags, err := repository.NewTagRepo(s.db).FirstTagByPostIDs(postIDs)
	if err != nil {
		return err
	}
	likeCounts, err := repository.NewLikeRepo(s.db).CountByPostIDs(postIDs)
	if err != nil {
		return err
	}

	for i := range summaries {
		summaries[i].FirstTag = firstTags[summaries[i].ID]
		summaries[i].LikeCount = likeCounts[summaries[i].ID]
	}
	return nil
}
