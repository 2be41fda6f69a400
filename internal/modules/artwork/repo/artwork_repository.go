package repo

import (
	"errors"

	"art-atlas-server/internal/model"
)

// ErrStaleWrite 作品在读取之后已被其他请求修改
var ErrStaleWrite = errors.New("artwork was modified concurrently")

// ArtworkFilter 列表查询条件，空字段不参与过滤
type ArtworkFilter struct {
	Search  string
	ArtType string
	Region  string
	Period  string
	// Status 为空表示不按状态过滤
	Status string
	// PublicOnly 为 true 时只返回已发布作品，以及 ViewerID 自己提交的作品
	PublicOnly bool
	ViewerID   string
}

type ArtworkStore interface {
	Create(art *model.Artwork) error
	FindByID(id string) (*model.Artwork, error)
	List(filter ArtworkFilter) ([]model.Artwork, error)
	ListRelated(art *model.Artwork, limit int) ([]model.Artwork, error)
	ListBySubmitter(userID string) ([]model.Artwork, error)
	ListAll() ([]model.Artwork, error)
	Update(art *model.Artwork) error
	DeleteCascade(id string) error
	Upsert(art *model.Artwork) error
}
