package model

import "time"

type Like struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	UserID    string    `json:"user_id" gorm:"size:64;not null;uniqueIndex:idx_like_user_artwork"`
	ArtworkID string    `json:"artwork_id" gorm:"size:64;not null;uniqueIndex:idx_like_user_artwork;index"`
	CreatedAt time.Time `json:"created_at"`
}
