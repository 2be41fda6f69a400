package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Artwork struct {
	ID              string     `json:"id" gorm:"primaryKey;size:64"`
	Title           string     `json:"title" gorm:"size:255;not null"`
	Artist          string     `json:"artist" gorm:"size:255;index"`
	SubmittedBy     string     `json:"submitted_by" gorm:"size:64;index"`
	ArtType         string     `json:"artType" gorm:"size:100;index"`
	Period          string     `json:"period" gorm:"size:100"`
	Region          string     `json:"region" gorm:"size:100;index"`
	Sensitive       bool       `json:"sensitive"`
	Address         *string    `json:"address"`
	Latitude        *float64   `json:"-"`
	Longitude       *float64   `json:"-"`
	Description     string     `json:"description" gorm:"type:text"`
	Images          StringList `json:"images" gorm:"type:text"`
	Status          string     `json:"status" gorm:"size:20;index;not null"`
	SubmittedAt     time.Time  `json:"submitted_at" gorm:"index"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy      string     `json:"reviewed_by,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty" gorm:"type:text"`
	FlaggedAt       *time.Time `json:"flagged_at,omitempty"`
	FlaggedBy       string     `json:"flagged_by,omitempty"`
	FlagReason      string     `json:"flag_reason,omitempty" gorm:"type:text"`
	Version         int        `json:"-" gorm:"not null;default:1"`
}

// Coords 前端地图使用的坐标对。
type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Coords 两个分量齐全时才返回坐标。
func (a *Artwork) Coords() *Coords {
	if a.Latitude == nil || a.Longitude == nil {
		return nil
	}
	return &Coords{Lat: *a.Latitude, Lng: *a.Longitude}
}

func (a *Artwork) SetCoords(c *Coords) {
	if c == nil {
		a.Latitude = nil
		a.Longitude = nil
		return
	}
	lat, lng := c.Lat, c.Lng
	a.Latitude = &lat
	a.Longitude = &lng
}

// StringList 以 JSON 数组形式落库的有序字符串列表
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported StringList source %T", src)
	}
	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(l))
}
