package model

type JoinRequest struct {
	ID           uint   `gorm:"primaryKey;autoIncrement;index" json:"id"`
	Title        string `gorm:"not null" json:"title"`
	Email        string `gorm:"not null" json:"email"`
	Phone        string `gorm:"not null" json:"phone"`
	InstagramURL string `gorm:"not null" json:"instagram_url"`
	Story        string `gorm:"not null" json:"story"`
	ExtraInfo    *string `json:"extra_info,omitempty"`

	IP        string  `json:"-"`
	UserAgent *string `json:"-"`

	IsRead bool   `gorm:"default:false" json:"is_read"`
	ReadAt *int64 `json:"read_at,omitempty"`

	IsArchived bool   `gorm:"default:false" json:"is_archived"`
	ArchivedAt *int64 `json:"archived_at,omitempty"`

	CreatedAt int64 `gorm:"not null" json:"created_at"`
}
