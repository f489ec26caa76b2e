package services

import (
	"os"
	"testing"

	"goboard/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a throwaway database. Tests are skipped unless
// TEST_DATABASE_URL points at a postgres instance; the referenced database
// is truncated.
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

	require.NoError(t, gdb.AutoMigrate(
		&models.Post{},
		&models.Tag{},
		&models.Comment{},
		&models.Like{},
	))
	require.NoError(t, gdb.Exec("TRUNCATE posts, tags, comments, likes RESTART IDENTITY").Error)
	return gdb
}

func newTestServices(t *testing.T) (*PostService, *LikeService, *CommentService, *gorm.DB) {
	t.Helper()
	gdb := testDB(t)
	likes := NewLikeService(gdb)
	return NewPostService(gdb, likes), likes, NewCommentService(gdb), gdb
}

func tagNames(t *testing.T, gdb *gorm.DB, postID uint) []string {
	t.Helper()
	var tags []models.Tag
	require.NoError(t, gdb.Where("post_id = ?", postID).Order("id ASC").Find(&tags).Error)
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Name
	}
	return names
}
