// Package service holds the ordering, highlight and moderation logic
// that sits between the HTTP handlers and the database
package service

import (
	"errors"
	"teamhumanity/story-api/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrBadDirection = errors.New("direction must be up or down")
)

// Stories are ordered by sort_order ascending with null keys last,
// ties broken by id. Every read in this package uses this clause
const storyOrder = "sort_order IS NULL, sort_order, id"

// SortOrder keeps a gap-based total order over the stories table.
// Keys are spaced by gap so inserting a new story doesn't require
// renumbering its siblings.
type SortOrder struct {
	db  *gorm.DB
	gap int
}

func NewSortOrder(db *gorm.DB, gap int) *SortOrder {
	return &SortOrder{db: db, gap: gap}
}

// NextInsertionKey returns a key strictly below the current minimum so a
// new story lands first in the listing. An empty table starts at the gap
// baseline.
func (s *SortOrder) NextInsertionKey() (int, error) {
	var min *int

	err := s.db.
		Model(&model.Story{}).
		Select("MIN(sort_order)").
		Scan(&min).
		Error
	if err != nil {
		return 0, err
	}

	if min == nil {
		return s.gap, nil
	}

	return *min - s.gap, nil
}

// KeyForExistingOrAssign returns the story's sort key, assigning a fresh
// insertion key first if the story has none yet.
func (s *SortOrder) KeyForExistingOrAssign(id uint) (int, error) {
	var story model.Story

	err := s.db.
		Select("id", "sort_order").
		First(&story, id).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, ErrNotFound
		}

		return 0, err
	}

	if story.SortOrder != nil {
		return *story.SortOrder, nil
	}

	key, err := s.NextInsertionKey()
	if err != nil {
		return 0, err
	}

	err = s.db.
		Model(&model.Story{}).
		Where("id = ?", story.ID).
		Update("sort_order", key).
		Error
	if err != nil {
		return 0, err
	}

	return key, nil
}

// RepairIfNeeded renumbers the whole table to gap, 2*gap, ... in the
// current scan order, but only when it finds a null or duplicate key.
// A clean table produces no writes, so running it twice is a no-op.
func (s *SortOrder) RepairIfNeeded() error {
	var stories []model.Story

	err := s.db.
		Select("id", "sort_order").
		Order(storyOrder).
		Find(&stories).
		Error
	if err != nil {
		return err
	}

	if !needsRepair(stories) {
		return nil
	}

	zap.L().Info("Renumbering story sort keys", zap.Int("count", len(stories)))

	for i, story := range stories {
		want := (i + 1) * s.gap
		if story.SortOrder != nil && *story.SortOrder == want {
			continue
		}

		err = s.db.
			Model(&model.Story{}).
			Where("id = ?", story.ID).
			Update("sort_order", want).
			Error
		if err != nil {
			return err
		}
	}

	return nil
}

func needsRepair(stories []model.Story) bool {
	seen := make(map[int]bool, len(stories))

	for _, story := range stories {
		if story.SortOrder == nil {
			return true
		}

		if seen[*story.SortOrder] {
			return true
		}
		seen[*story.SortOrder] = true
	}

	return false
}

// MoveAdjacent swaps the story's sort key with its neighbor in the given
// direction. Unknown ids and moves past either end are silent no-ops.
// The swap is two independent writes: if the second fails the order is
// left inconsistent and the error is returned for the operator to retry.
func (s *SortOrder) MoveAdjacent(id uint, direction string) error {
	if direction != "up" && direction != "down" {
		return ErrBadDirection
	}

	if err := s.RepairIfNeeded(); err != nil {
		return err
	}

	var stories []model.Story

	err := s.db.
		Select("id", "sort_order").
		Order(storyOrder).
		Find(&stories).
		Error
	if err != nil {
		return err
	}

	pos := -1
	for i, story := range stories {
		if story.ID == id {
			pos = i
			break
		}
	}
	if pos == -1 {
		return nil
	}

	target := pos - 1
	if direction == "down" {
		target = pos + 1
	}
	if target < 0 || target >= len(stories) {
		return nil
	}

	a, b := stories[pos], stories[target]

	err = s.db.
		Model(&model.Story{}).
		Where("id = ?", a.ID).
		Update("sort_order", *b.SortOrder).
		Error
	if err != nil {
		return err
	}

	err = s.db.
		Model(&model.Story{}).
		Where("id = ?", b.ID).
		Update("sort_order", *a.SortOrder).
		Error
	if err != nil {
		zap.L().Error("Sort key swap failed halfway", zap.Uint("id", b.ID), zap.Error(err))
		return err
	}

	return nil
}
