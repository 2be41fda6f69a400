package model

import "time"

// Report 文化安全举报，只能由管理员从 open 关闭为 closed 一次。
type Report struct {
	ID           string     `json:"id" gorm:"primaryKey;size:64"`
	ArtworkID    string     `json:"artwork" gorm:"size:64;index"`
	ArtworkTitle string     `json:"artwork_title"`
	Reason       string     `json:"reason" gorm:"size:255;not null"`
	Detail       string     `json:"detail" gorm:"type:text"`
	Email        string     `json:"email"`
	Status       string     `json:"status" gorm:"size:20;index;not null"`
	Decision     string     `json:"decision,omitempty"`
	Note         string     `json:"note,omitempty" gorm:"type:text"`
	CreatedAt    time.Time  `json:"created"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy   string     `json:"reviewed_by,omitempty"`
}
