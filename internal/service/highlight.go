package service

import (
	"errors"
	"sort"
	"teamhumanity/story-api/internal/model"

	"gorm.io/gorm"
)

var (
	ErrBadSlot  = errors.New("highlight slot must be 1 or 2")
	ErrCapacity = errors.New("both highlight slots are already taken")
)

// Highlight manages the two pinned display positions that sit above the
// normal sort order.
type Highlight struct {
	db *gorm.DB
}

func NewHighlight(db *gorm.DB) *Highlight {
	return &Highlight{db: db}
}

// Pin puts the story into the given slot, evicting whoever held it.
// Pinning a third story while both slots belong to other stories fails
// with ErrCapacity; re-pinning an already pinned story always succeeds.
//
// The clear and the set are two sequential writes. If the set fails the
// slot is left empty rather than held twice, so "at most one holder per
// slot" survives the partial failure.
func (h *Highlight) Pin(id uint, slot int) error {
	if slot != 1 && slot != 2 {
		return ErrBadSlot
	}

	var target model.Story

	err := h.db.
		Select("id", "highlight_slot").
		First(&target, id).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}

		return err
	}

	if target.HighlightSlot == nil {
		var taken int64

		err = h.db.
			Model(&model.Story{}).
			Where("highlight_slot IN (1, 2) AND id <> ?", id).
			Count(&taken).
			Error
		if err != nil {
			return err
		}

		if taken >= 2 {
			return ErrCapacity
		}
	}

	err = h.db.
		Model(&model.Story{}).
		Where("highlight_slot = ? AND id <> ?", slot, id).
		Update("highlight_slot", nil).
		Error
	if err != nil {
		return err
	}

	return h.db.
		Model(&model.Story{}).
		Where("id = ?", id).
		Update("highlight_slot", slot).
		Error
}

// Unpin clears the story's slot. Unpinning a story that isn't pinned is
// a harmless no-op write.
func (h *Highlight) Unpin(id uint) error {
	res := h.db.
		Model(&model.Story{}).
		Where("id = ?", id).
		Update("highlight_slot", nil)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// ComposeDisplay returns stories in presentation order: slot 1, slot 2,
// then everything unpinned by (sort_order nulls last, id). Pinned
// stories never repeat in the tail.
func ComposeDisplay(stories []model.Story) []model.Story {
	out := make([]model.Story, 0, len(stories))

	for _, want := range []int{1, 2} {
		for _, story := range stories {
			if story.HighlightSlot != nil && *story.HighlightSlot == want {
				out = append(out, story)
				break
			}
		}
	}

	rest := make([]model.Story, 0, len(stories))
	for _, story := range stories {
		if story.HighlightSlot == nil {
			rest = append(rest, story)
		}
	}

	sort.SliceStable(rest, func(i, j int) bool {
		a, b := rest[i].SortOrder, rest[j].SortOrder

		if a == nil && b == nil {
			return rest[i].ID < rest[j].ID
		}
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		if *a != *b {
			return *a < *b
		}

		return rest[i].ID < rest[j].ID
	})

	return append(out, rest...)
}
