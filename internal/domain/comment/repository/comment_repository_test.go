package repository

import (
	"testing"
	"time"

	"social_hub/internal/domain/comment/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func commentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "creator_id", "post_id", "content", "created_at", "modified_at", "status", "parent_comment_id",
	})
}

func TestCommentRepositoryGetRootsByPost(t *testing.T) {
	t.Run("Roots are filtered to null parent", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectQuery(`SELECT (.+) FROM "comments" WHERE post_id = \$1 AND parent_comment_id IS NULL ORDER BY created_at asc`).
			WithArgs(int32(10)).
			WillReturnRows(commentRows().
				AddRow(int32(1), int32(2), int32(10), "First!", time.Now(), nil, model.StatusActive, nil))

		comments, err := repo.GetRootsByPost(10)

		assert.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Nil(t, comments[0].ParentCommentID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommentRepositoryGetRepliesByParent(t *testing.T) {
	t.Run("Replies are filtered to the direct parent only", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)
		parent := int32(5)

		mock.ExpectQuery(`SELECT (.+) FROM "comments" WHERE parent_comment_id = \$1 ORDER BY created_at asc`).
			WithArgs(parent).
			WillReturnRows(commentRows().
				AddRow(int32(6), int32(2), int32(10), "Agreed", time.Now(), nil, model.StatusActive, parent))

		replies, err := repo.GetRepliesByParent(parent)

		assert.NoError(t, err)
		require.Len(t, replies, 1)
		require.NotNil(t, replies[0].ParentCommentID)
		assert.Equal(t, parent, *replies[0].ParentCommentID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommentRepositorySoftDelete(t *testing.T) {
	t.Run("Delete updates status without removing the row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)
		comment := &model.Comment{ID: 3, CreatorID: 2, PostID: 10, Status: model.StatusActive}

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "comments" SET "status"=\$1 WHERE "id" = \$2`).
			WithArgs(model.StatusDeleted, int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.SoftDelete(comment)

		assert.NoError(t, err)
		assert.True(t, comment.IsDeleted())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
