package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeCountZero(t *testing.T) {
	posts, likes, _, _ := newTestServices(t)

	id, err := posts.Create("title", "content", "harris", nil)
	require.NoError(t, err)

	count, err := likes.Count(id)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLikeCountDistinctActors(t *testing.T) {
	posts, likes, _, _ := newTestServices(t)

	id, err := posts.Create("title", "content", "harris", nil)
	require.NoError(t, err)
	require.NoError(t, likes.Create(id, "harris"))
	require.NoError(t, likes.Create(id, "harris1"))
	require.NoError(t, likes.Create(id, "harris2"))

	count, err := likes.Count(id)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

// Duplicate likes from the same actor all count. This documents current
// behavior, which may not be intended product-wise; do not "fix" it here
// without clarified intent.
func TestLikeCountDuplicateActor(t *testing.T) {
	posts, likes, _, _ := newTestServices(t)

	id, err := posts.Create("title", "content", "harris", nil)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, likes.Create(id, "same actor"))
	}

	count, err := likes.Count(id)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
