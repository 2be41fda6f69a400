package model

import "time"

// Session 登录会话，ID 即为不透明的会话令牌。
type Session struct {
	ID        string    `json:"session_id" gorm:"primaryKey;size:80"`
	UserID    string    `json:"user_id" gorm:"index;size:64;not null"`
	Username  string    `json:"username"`
	Role      string    `json:"role" gorm:"size:20"`
	CreatedAt time.Time `json:"created"`
	ExpiresAt time.Time `json:"expires" gorm:"index"`
}

// IsExpired 是会话过期的唯一判定，过期会话一律视为不存在。
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
