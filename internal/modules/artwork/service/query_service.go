package service

import (
	"log"
	"strings"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"
	moduledto "art-atlas-server/internal/modules/artwork/dto"
	"art-atlas-server/internal/modules/artwork/repo"
	"art-atlas-server/internal/modules/moderation"
	userdto "art-atlas-server/internal/modules/user/dto"
	platformservice "art-atlas-server/internal/platform/service"
)

const relatedLimit = 3

// canView 未发布作品只对管理员与提交者可见
func canView(actor moderation.Actor, art *model.Artwork) bool {
	return art.Status == consts.ArtworkStatusApproved || actor.IsAdmin() || actor.Owns(art.SubmittedBy)
}

// List 按条件查询作品，status 默认 approved，all 表示不过滤
func (s *Service) List(actor moderation.Actor, query moduledto.ListQuery) ([]moduledto.ArtworkResponse, error) {
	status := strings.TrimSpace(query.Status)
	if status == "" {
		status = consts.ArtworkStatusApproved
	}
	filter := repo.ArtworkFilter{
		Search:  query.Search,
		ArtType: strings.TrimSpace(query.ArtType),
		Region:  strings.TrimSpace(query.Region),
		Period:  strings.TrimSpace(query.Period),
	}
	if status != consts.StatusFilterAll {
		if !moderation.ValidArtworkStatus(status) {
			return nil, platformservice.NewValidationError("Invalid status")
		}
		filter.Status = status
	}
	if !actor.IsAdmin() {
		filter.PublicOnly = true
		filter.ViewerID = actor.ID
	}

	artworks, err := s.artworkStore.List(filter)
	if err != nil {
		return nil, platformservice.NewInternalError("Failed to load artworks")
	}
	return s.toResponses(artworks), nil
}

// Get 返回作品详情，附带作者资料与点赞数
func (s *Service) Get(actor moderation.Actor, artworkID string) (*moduledto.ArtworkResponse, error) {
	art, err := s.load(artworkID)
	if err != nil {
		return nil, err
	}
	// 无权查看与不存在返回相同结果
	if !canView(actor, art) {
		return nil, platformservice.NewNotFoundError("Artwork not found")
	}

	resp := moduledto.ToResponse(art)
	resp.ArtistInfo = s.artistInfo(art.SubmittedBy)
	if s.likes != nil {
		if count, err := s.likes.CountByArtwork(art.ID); err == nil {
			resp.LikeCount = count
		}
	}
	return &resp, nil
}

// Related 同一作者、类型或地区的其他已发布作品，最多 3 个
func (s *Service) Related(actor moderation.Actor, artworkID string) ([]moduledto.ArtworkResponse, error) {
	art, err := s.load(artworkID)
	if err != nil {
		return nil, err
	}
	if !canView(actor, art) {
		return nil, platformservice.NewNotFoundError("Artwork not found")
	}
	related, err := s.artworkStore.ListRelated(art, relatedLimit)
	if err != nil {
		return nil, platformservice.NewInternalError("Failed to load related artworks")
	}
	return s.toResponses(related), nil
}

// ListMine 当前用户提交的全部作品
func (s *Service) ListMine(actor moderation.Actor) ([]moduledto.ArtworkResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, platformservice.NewUnauthorizedError("Authentication required")
	}
	artworks, err := s.artworkStore.ListBySubmitter(actor.ID)
	if err != nil {
		return nil, platformservice.NewInternalError("Failed to load artworks")
	}
	return s.toResponses(artworks), nil
}

// ListPending 待审核作品，仅管理员
func (s *Service) ListPending(actor moderation.Actor) ([]moduledto.ArtworkResponse, error) {
	if err := moderation.Allow(moderation.ActionSetArtworkStatus, actor, ""); err != nil {
		return nil, err
	}
	artworks, err := s.artworkStore.List(repo.ArtworkFilter{Status: consts.ArtworkStatusPending})
	if err != nil {
		return nil, platformservice.NewInternalError("Failed to load artworks")
	}
	return s.toResponses(artworks), nil
}

func toArtistInfo(user *model.User) *userdto.ArtistInfo {
	return &userdto.ArtistInfo{
		ID:       user.ID,
		Name:     user.Name,
		Bio:      user.Bio,
		Nation:   user.Nation,
		Region:   user.Region,
		ImageURL: user.ImageURL,
	}
}

func (s *Service) artistInfo(userID string) *userdto.ArtistInfo {
	if userID == "" || s.users == nil {
		return nil
	}
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil
	}
	return toArtistInfo(user)
}

// toResponses 批量补充作者资料与点赞数，查询失败时只记录日志
func (s *Service) toResponses(artworks []model.Artwork) []moduledto.ArtworkResponse {
	out := make([]moduledto.ArtworkResponse, 0, len(artworks))
	ids := make([]string, 0, len(artworks))
	submitters := make([]string, 0, len(artworks))
	seen := make(map[string]bool, len(artworks))
	for i := range artworks {
		out = append(out, moduledto.ToResponse(&artworks[i]))
		ids = append(ids, artworks[i].ID)
		if owner := artworks[i].SubmittedBy; owner != "" && !seen[owner] {
			seen[owner] = true
			submitters = append(submitters, owner)
		}
	}
	if len(ids) == 0 {
		return out
	}

	if s.users != nil && len(submitters) > 0 {
		users, err := s.users.FindByIDs(submitters)
		if err != nil {
			log.Printf("⚠️ 读取作者资料失败: %v", err)
		} else {
			byID := make(map[string]*model.User, len(users))
			for i := range users {
				byID[users[i].ID] = &users[i]
			}
			for i := range out {
				if user, ok := byID[artworks[i].SubmittedBy]; ok {
					out[i].ArtistInfo = toArtistInfo(user)
				}
			}
		}
	}

	if s.likes != nil {
		counts, err := s.likes.CountByArtworks(ids)
		if err != nil {
			log.Printf("⚠️ 统计点赞数失败: %v", err)
			return out
		}
		for i := range out {
			out[i].LikeCount = counts[out[i].ID]
		}
	}
	return out
}
