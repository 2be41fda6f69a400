package dto

import (
	"time"

	"art-atlas-server/internal/model"
	userdto "art-atlas-server/internal/modules/user/dto"
)

type CreateArtworkRequest struct {
	Title       string        `json:"title"`
	Artist      string        `json:"artist"`
	ArtType     string        `json:"artType"`
	Period      string        `json:"period"`
	Region      string        `json:"region"`
	Sensitive   bool          `json:"sensitive"`
	Address     *string       `json:"address"`
	Coords      *model.Coords `json:"coords"`
	Description string        `json:"description"`
	Images      []string      `json:"images"`
}

// UpdateArtworkRequest 未出现的字段保持不变；status 仅管理员可用。
// version 非空时必须与当前版本一致，否则视为并发修改。
type UpdateArtworkRequest struct {
	ArtworkID   string        `json:"artwork_id"`
	Title       *string       `json:"title"`
	Artist      *string       `json:"artist"`
	ArtType     *string       `json:"artType"`
	Period      *string       `json:"period"`
	Region      *string       `json:"region"`
	Sensitive   *bool         `json:"sensitive"`
	Address     *string       `json:"address"`
	Coords      *model.Coords `json:"coords"`
	Description *string       `json:"description"`
	Images      []string      `json:"images"`
	Status      *string       `json:"status"`
	Reason      *string       `json:"reason"`
	Version     *int          `json:"version"`
}

// ReviewRequest 审核、驳回与标记共用；artwork_id 兼容旧版 admin.php
type ReviewRequest struct {
	ArtworkID string `json:"artwork_id"`
	Reason    string `json:"reason"`
}

type ListQuery struct {
	Search  string
	ArtType string
	Region  string
	Period  string
	Status  string
}

// ArtworkResponse 对外输出的作品。敏感作品不输出 address 与 coords 键。
type ArtworkResponse struct {
	ID              string              `json:"id"`
	Title           string              `json:"title"`
	Artist          string              `json:"artist"`
	SubmittedBy     string              `json:"submitted_by"`
	ArtType         string              `json:"artType"`
	Period          string              `json:"period"`
	Region          string              `json:"region"`
	Sensitive       bool                `json:"sensitive"`
	Address         *string             `json:"address,omitempty"`
	Coords          *model.Coords       `json:"coords,omitempty"`
	Description     string              `json:"description"`
	Images          []string            `json:"images"`
	Status          string              `json:"status"`
	SubmittedAt     time.Time           `json:"submitted_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	ReviewedAt      *time.Time          `json:"reviewed_at,omitempty"`
	ReviewedBy      string              `json:"reviewed_by,omitempty"`
	RejectedAt      *time.Time          `json:"rejected_at,omitempty"`
	RejectionReason string              `json:"rejection_reason,omitempty"`
	FlaggedAt       *time.Time          `json:"flagged_at,omitempty"`
	FlaggedBy       string              `json:"flagged_by,omitempty"`
	FlagReason      string              `json:"flag_reason,omitempty"`
	Version         int                 `json:"version"`
	LikeCount       int64               `json:"like_count"`
	ArtistInfo      *userdto.ArtistInfo `json:"artistInfo,omitempty"`
}

func ToResponse(art *model.Artwork) ArtworkResponse {
	images := []string(art.Images)
	if images == nil {
		images = []string{}
	}
	resp := ArtworkResponse{
		ID:              art.ID,
		Title:           art.Title,
		Artist:          art.Artist,
		SubmittedBy:     art.SubmittedBy,
		ArtType:         art.ArtType,
		Period:          art.Period,
		Region:          art.Region,
		Sensitive:       art.Sensitive,
		Description:     art.Description,
		Images:          images,
		Status:          art.Status,
		SubmittedAt:     art.SubmittedAt,
		UpdatedAt:       art.UpdatedAt,
		ReviewedAt:      art.ReviewedAt,
		ReviewedBy:      art.ReviewedBy,
		RejectedAt:      art.RejectedAt,
		RejectionReason: art.RejectionReason,
		FlaggedAt:       art.FlaggedAt,
		FlaggedBy:       art.FlaggedBy,
		FlagReason:      art.FlagReason,
		Version:         art.Version,
	}
	if !art.Sensitive {
		resp.Address = art.Address
		resp.Coords = art.Coords()
	}
	return resp
}
