package services

import (
	"testing"

	"goboard/internal/errs"
	"goboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	posts, _, comments, gdb := newTestServices(t)

	postID, err := posts.Create("title", "content", "harris", nil)
	require.NoError(t, err)

	id, err := comments.Create(postID, "a comment", "reader")
	require.NoError(t, err)
	assert.Greater(t, id, uint(0))

	var comment models.Comment
	require.NoError(t, gdb.First(&comment, id).Error)
	assert.Equal(t, postID, comment.PostID)
	assert.Equal(t, "a comment", comment.Content)
	assert.Equal(t, "reader", comment.CreatedBy)
}

func TestCreateCommentEmptyContent(t *testing.T) {
	posts, _, comments, _ := newTestServices(t)

	postID, err := posts.Create("title", "content", "harris", nil)
	require.NoError(t, err)

	_, err = comments.Create(postID, "   ", "reader")
	assert.ErrorIs(t, err, errs.ErrEmptyContent)
}

func TestCreateCommentPostNotFound(t *testing.T) {
	_, _, comments, _ := newTestServices(t)

	_, err := comments.Create(9999, "a comment", "reader")
	assert.ErrorIs(t, err, errs.ErrPostNotFound)
}
