package service

import (
	"teamhumanity/story-api/internal/model"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// The pool must stay on one connection or each would get its own
	// private in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(model.Story{}))

	return db
}

func intPtr(v int) *int {
	return &v
}

func seedStory(t *testing.T, db *gorm.DB, name string, sortOrder *int) uint {
	t.Helper()

	story := model.Story{Name: name, SortOrder: sortOrder, IsPublished: true, CreatedAt: 1}
	require.NoError(t, db.Create(&story).Error)

	return story.ID
}

func sortKeys(t *testing.T, db *gorm.DB) map[string]*int {
	t.Helper()

	var stories []model.Story
	require.NoError(t, db.Order("id").Find(&stories).Error)

	out := make(map[string]*int, len(stories))
	for _, s := range stories {
		out[s.Name] = s.SortOrder
	}

	return out
}

func TestNextInsertionKey_EmptyTable(t *testing.T) {
	t.Parallel()

	s := NewSortOrder(testDB(t), 10)

	key, err := s.NextInsertionKey()
	require.NoError(t, err)
	require.Equal(t, 10, key)
}

func TestNextInsertionKey_BelowCurrentMinimum(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	seedStory(t, db, "a", intPtr(10))
	seedStory(t, db, "b", intPtr(30))

	s := NewSortOrder(db, 10)

	key, err := s.NextInsertionKey()
	require.NoError(t, err)
	require.Equal(t, 0, key)
}

func TestKeyForExistingOrAssign(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	keyed := seedStory(t, db, "keyed", intPtr(40))
	unkeyed := seedStory(t, db, "unkeyed", nil)

	s := NewSortOrder(db, 10)

	key, err := s.KeyForExistingOrAssign(keyed)
	require.NoError(t, err)
	require.Equal(t, 40, key)

	key, err = s.KeyForExistingOrAssign(unkeyed)
	require.NoError(t, err)
	require.Equal(t, 30, key)

	// The assignment persisted
	got := sortKeys(t, db)
	require.NotNil(t, got["unkeyed"])
	require.Equal(t, 30, *got["unkeyed"])

	_, err = s.KeyForExistingOrAssign(9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRepairIfNeeded_RenumbersNullsAndDuplicates(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	seedStory(t, db, "dup1", intPtr(20))
	seedStory(t, db, "dup2", intPtr(20))
	seedStory(t, db, "null1", nil)
	seedStory(t, db, "first", intPtr(5))

	s := NewSortOrder(db, 10)
	require.NoError(t, s.RepairIfNeeded())

	got := sortKeys(t, db)
	require.Equal(t, 10, *got["first"])
	require.Equal(t, 20, *got["dup1"])
	require.Equal(t, 30, *got["dup2"])
	require.Equal(t, 40, *got["null1"])
}

func TestRepairIfNeeded_CleanTableUntouched(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	seedStory(t, db, "a", intPtr(7))
	seedStory(t, db, "b", intPtr(13))

	s := NewSortOrder(db, 10)
	require.NoError(t, s.RepairIfNeeded())

	// Gapped but unique non-null keys aren't an anomaly
	got := sortKeys(t, db)
	require.Equal(t, 7, *got["a"])
	require.Equal(t, 13, *got["b"])
}

func TestRepairIfNeeded_Idempotent(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	seedStory(t, db, "a", nil)
	seedStory(t, db, "b", intPtr(10))

	s := NewSortOrder(db, 10)
	require.NoError(t, s.RepairIfNeeded())
	first := sortKeys(t, db)

	require.NoError(t, s.RepairIfNeeded())
	require.Equal(t, first, sortKeys(t, db))
}

func TestMoveAdjacent_SwapsWithNeighbor(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	seedStory(t, db, "a", intPtr(10))
	b := seedStory(t, db, "b", intPtr(20))
	seedStory(t, db, "c", intPtr(30))

	s := NewSortOrder(db, 10)
	require.NoError(t, s.MoveAdjacent(b, "up"))

	got := sortKeys(t, db)
	require.Equal(t, 20, *got["a"])
	require.Equal(t, 10, *got["b"])
	require.Equal(t, 30, *got["c"])
}

func TestMoveAdjacent_BoundariesAreNoOps(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	a := seedStory(t, db, "a", intPtr(10))
	seedStory(t, db, "b", intPtr(20))
	c := seedStory(t, db, "c", intPtr(30))

	s := NewSortOrder(db, 10)

	require.NoError(t, s.MoveAdjacent(a, "up"))
	require.NoError(t, s.MoveAdjacent(c, "down"))

	got := sortKeys(t, db)
	require.Equal(t, 10, *got["a"])
	require.Equal(t, 20, *got["b"])
	require.Equal(t, 30, *got["c"])
}

func TestMoveAdjacent_UnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	seedStory(t, db, "a", intPtr(10))

	s := NewSortOrder(db, 10)
	require.NoError(t, s.MoveAdjacent(9999, "down"))
}

func TestMoveAdjacent_RejectsBadDirection(t *testing.T) {
	t.Parallel()

	s := NewSortOrder(testDB(t), 10)
	require.ErrorIs(t, s.MoveAdjacent(1, "sideways"), ErrBadDirection)
}

func TestMoveAdjacent_RepairsBeforeMoving(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	a := seedStory(t, db, "a", nil)
	seedStory(t, db, "b", nil)

	s := NewSortOrder(db, 10)
	require.NoError(t, s.MoveAdjacent(a, "down"))

	got := sortKeys(t, db)
	require.Equal(t, 20, *got["a"])
	require.Equal(t, 10, *got["b"])
}
