package dto

type LikeRequest struct {
	ArtworkID string `json:"artwork_id"`
}

type LikeStatus struct {
	Liked bool `json:"liked"`
}
