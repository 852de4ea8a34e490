package service

import (
	"time"

	"gorm.io/gorm"
)

// Read and archive toggles shared by contact messages and join requests.
// Both tables carry the same is_read/read_at and is_archived/archived_at
// column pairs.

func SetRead(db *gorm.DB, m any, id uint, read bool) error {
	patch := map[string]any{
		"is_read": read,
		"read_at": nil,
	}
	if read {
		patch["read_at"] = time.Now().Unix()
	}

	return applyModeration(db, m, id, patch)
}

func SetArchived(db *gorm.DB, m any, id uint, archived bool) error {
	patch := map[string]any{
		"is_archived": archived,
		"archived_at": nil,
	}
	if archived {
		patch["archived_at"] = time.Now().Unix()
	}

	return applyModeration(db, m, id, patch)
}

func applyModeration(db *gorm.DB, m any, id uint, patch map[string]any) error {
	res := db.
		Model(m).
		Where("id = ?", id).
		Updates(patch)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
