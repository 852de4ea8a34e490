package service

import (
	"teamhumanity/story-api/internal/model"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedMessage(t *testing.T, db *gorm.DB) uint {
	t.Helper()

	require.NoError(t, db.AutoMigrate(model.ContactMessage{}))

	msg := model.ContactMessage{Name: "n", Email: "e@example.com", Message: "m", IP: "1.2.3.4", CreatedAt: 1}
	require.NoError(t, db.Create(&msg).Error)

	return msg.ID
}

func TestSetRead_TogglesTimestamp(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	id := seedMessage(t, db)

	require.NoError(t, SetRead(db, &model.ContactMessage{}, id, true))

	var msg model.ContactMessage
	require.NoError(t, db.First(&msg, id).Error)
	require.True(t, msg.IsRead)
	require.NotNil(t, msg.ReadAt)

	require.NoError(t, SetRead(db, &model.ContactMessage{}, id, false))

	require.NoError(t, db.First(&msg, id).Error)
	require.False(t, msg.IsRead)
	require.Nil(t, msg.ReadAt)
}

func TestSetArchived_TogglesTimestamp(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	id := seedMessage(t, db)

	require.NoError(t, SetArchived(db, &model.ContactMessage{}, id, true))

	var msg model.ContactMessage
	require.NoError(t, db.First(&msg, id).Error)
	require.True(t, msg.IsArchived)
	require.NotNil(t, msg.ArchivedAt)

	require.NoError(t, SetArchived(db, &model.ContactMessage{}, id, false))

	require.NoError(t, db.First(&msg, id).Error)
	require.False(t, msg.IsArchived)
	require.Nil(t, msg.ArchivedAt)
}

func TestModeration_UnknownID(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	seedMessage(t, db)

	require.ErrorIs(t, SetRead(db, &model.ContactMessage{}, 9999, true), ErrNotFound)
	require.ErrorIs(t, SetArchived(db, &model.ContactMessage{}, 9999, true), ErrNotFound)
}
