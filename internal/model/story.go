// Package model defines database models
package model

type Story struct {
	ID   uint   `gorm:"primaryKey;autoIncrement;index" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Bio  *string `json:"bio,omitempty"`

	VideoURL *string `json:"video_url,omitempty"`

	// Single link kept for rows created before multiple links existed
	DonationLink  *string       `json:"donation_link,omitempty"`
	DonationLinks DonationLinks `json:"donation_links"`

	// Keys of objects stored in S3, relative to the bucket root
	ImagePaths StringSlice `json:"image_paths"`

	// Position among non-pinned stories. Null means the story hasn't been
	// ordered yet and sorts after every keyed row
	SortOrder *int `json:"sort_order,omitempty"`

	// 1 or 2 for pinned stories, null otherwise. At most one story may
	// hold each slot, which is enforced by the service layer
	HighlightSlot *int `json:"highlight_slot,omitempty"`

	IsPublished    bool    `gorm:"default:false" json:"is_published"`
	IsConfirmed    bool    `gorm:"default:false" json:"is_confirmed"`
	ConfirmedLabel *string `json:"confirmed_label,omitempty"`

	CreatedAt int64 `gorm:"not null" json:"created_at"`
}
