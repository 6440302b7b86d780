package reply

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jdkim-dev/boardgo/internal/board"
	"github.com/jdkim-dev/boardgo/internal/models"
)

func newTestService(t *testing.T) (*Service, *gorm.DB, uint) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Board{}, &models.Reply{}))

	b := models.Board{Title: "parent", Writer: "alice", Content: "x"}
	require.NoError(t, db.Create(&b).Error)

	return NewService(db), db, b.ID
}

func TestCreateReturnsBoardReplyList(t *testing.T) {
	svc, _, boardID := newTestService(t)

	replies, err := svc.Create(boardID, 1, "first")
	require.NoError(t, err)
	require.Len(t, replies, 1)

	replies, err = svc.Create(boardID, 2, "second")
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, "first", replies[0].Content)
	assert.Equal(t, "second", replies[1].Content)
	assert.Equal(t, uint(2), replies[1].UserID)
}

func TestCreateOnMissingBoard(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(999, 1, "orphan")
	assert.ErrorIs(t, err, board.ErrNotFound)
}

func TestCreateOnDeletedBoard(t *testing.T) {
	svc, db, boardID := newTestService(t)

	require.NoError(t, db.Model(&models.Board{}).Where("id = ?", boardID).Update("is_deleted", true).Error)

	_, err := svc.Create(boardID, 1, "too late")
	assert.ErrorIs(t, err, board.ErrNotFound)
}

func TestUpdateReply(t *testing.T) {
	svc, _, boardID := newTestService(t)

	replies, err := svc.Create(boardID, 1, "tyop")
	require.NoError(t, err)

	updated, err := svc.Update(replies[0].ID, "typo")
	require.NoError(t, err)
	assert.Equal(t, "typo", updated.Content)

	got, err := svc.Get(replies[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "typo", got.Content)
}

func TestUpdateMissingReply(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Update(999, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSoftDeleteReply(t *testing.T) {
	svc, db, boardID := newTestService(t)

	replies, err := svc.Create(boardID, 1, "bye")
	require.NoError(t, err)
	replyID := replies[0].ID

	require.NoError(t, svc.Delete(replyID))

	_, err = svc.Get(replyID)
	assert.ErrorIs(t, err, ErrNotFound)

	listed, err := svc.ListByBoard(boardID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	// row survives behind the flag
	var raw models.Reply
	require.NoError(t, db.First(&raw, "id = ?", replyID).Error)
	assert.True(t, raw.Deleted)

	assert.ErrorIs(t, svc.Delete(replyID), ErrNotFound)
}
