package model

import (
	"time"

	"art-atlas-server/internal/consts"
)

// User 站点账号。Role: user / artist / admin，Status: pending / approved / inactive。
type User struct {
	ID              string     `json:"id" gorm:"primaryKey;size:64"`
	Username        string     `json:"username" gorm:"uniqueIndex;size:100;not null"`
	Email           string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password        string     `json:"-" gorm:"not null"`
	Name            string     `json:"name" gorm:"size:255"`
	Role            string     `json:"role" gorm:"size:20;index;not null"`
	Status          string     `json:"status" gorm:"size:20;index;not null"`
	Region          string     `json:"region"`
	Nation          string     `json:"nation"`
	Bio             string     `json:"bio" gorm:"type:text"`
	ImageURL        string     `json:"imageUrl"`
	Phone           string     `json:"phone"`
	Dob             string     `json:"dob"`
	Gender          string     `json:"gender"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	StatusUpdatedAt *time.Time `json:"status_updated_at,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == consts.RoleAdmin
}
