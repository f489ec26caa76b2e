package repository

import (
	"os"
	"testing"

	"goboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Post{}, &models.Tag{}, &models.Comment{}, &models.Like{}))
	require.NoError(t, gdb.Exec("TRUNCATE posts, tags, comments, likes RESTART IDENTITY").Error)
	return gdb
}

func seedPost(t *testing.T, gdb *gorm.DB, title, createdBy string, tags ...string) uint {
	t.Helper()
	post := models.Post{Title: title, Content: "content", CreatedBy: createdBy}
	require.NoError(t, gdb.Create(&post).Error)
	require.NoError(t, NewTagRepo(gdb).InsertAll(post.ID, tags, createdBy))
	return post.ID
}

func TestFirstTagByPostIDs(t *testing.T) {
	gdb := testDB(t)

	a := seedPost(t, gdb, "a", "harris", "first", "second")
	b := seedPost(t, gdb, "b", "harris", "only")
	c := seedPost(t, gdb, "c", "harris") // no tags

	firstTags, err := NewTagRepo(gdb).FirstTagByPostIDs([]uint{a, b, c})
	require.NoError(t, err)
	assert.Equal(t, "first", firstTags[a])
	assert.Equal(t, "only", firstTags[b])
	_, ok := firstTags[c]
	assert.False(t, ok)
}

func TestCountByPostIDs(t *testing.T) {
	gdb := testDB(t)

	a := seedPost(t, gdb, "a", "harris")
	b := seedPost(t, gdb, "b", "harris")
	likeRepo := NewLikeRepo(gdb)
	require.NoError(t, likeRepo.Insert(&models.Like{PostID: a, CreatedBy: "x"}))
	require.NoError(t, likeRepo.Insert(&models.Like{PostID: a, CreatedBy: "y"}))

	counts, err := likeRepo.CountByPostIDs([]uint{a, b})
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts[a])
	assert.EqualValues(t, 0, counts[b])
}

// A post carrying the filter tag twice appears once per matching tag row.
// Known duplication risk of the tag-joined listing, documented here rather
// than silently deduplicated.
func TestFindPageByNameDuplicateTagRows(t *testing.T) {
	gdb := testDB(t)

	id := seedPost(t, gdb, "doubled", "harris", "dup", "dup")
	summaries, total, err := NewTagRepo(gdb).FindPageByName(0, 10, "dup")
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, summaries, 2)
	assert.Equal(t, id, summaries[0].ID)
	assert.Equal(t, id, summaries[1].ID)
}

func TestFindPageEmptyResult(t *testing.T) {
	gdb := testDB(t)
	seedPost(t, gdb, "a", "harris")

	summaries, total, err := NewPostRepo(gdb).FindPage(0, 10, PostFilter{CreatedBy: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.Zero(t, total)
}
