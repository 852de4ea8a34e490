package model

type ContactMessage struct {
	ID      uint   `gorm:"primaryKey;autoIncrement;index" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Message string `gorm:"not null" json:"message"`

	// Captured for abuse handling, not shown publicly
	IP        string  `json:"-"`
	UserAgent *string `json:"-"`

	IsRead bool   `gorm:"default:false" json:"is_read"`
	ReadAt *int64 `json:"read_at,omitempty"`

	IsArchived bool   `gorm:"default:false" json:"is_archived"`
	ArchivedAt *int64 `json:"archived_at,omitempty"`

	CreatedAt int64 `gorm:"not null" json:"created_at"`
}
