package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"
	moduledto "art-atlas-server/internal/modules/artwork/dto"
	"art-atlas-server/internal/modules/events"
	"art-atlas-server/internal/modules/moderation"
	platformservice "art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/utils"

	"gorm.io/gorm"
)

func trimmedAddress(address *string) *string {
	if address == nil {
		return nil
	}
	v := strings.TrimSpace(*address)
	if v == "" {
		return nil
	}
	return &v
}

func validateCoords(c *model.Coords) error {
	if c == nil {
		return nil
	}
	if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return platformservice.NewValidationError("Coordinates out of range")
	}
	return nil
}

func cleanImages(images []string) model.StringList {
	out := make(model.StringList, 0, len(images))
	for _, img := range images {
		if img = strings.TrimSpace(img); img != "" {
			out = append(out, img)
		}
	}
	return out
}

// Create 提交新作品，初始状态为 pending
func (s *Service) Create(actor moderation.Actor, req moduledto.CreateArtworkRequest) (*moduledto.ArtworkResponse, error) {
	if err := moderation.Allow(moderation.ActionCreateArtwork, actor, ""); err != nil {
		return nil, err
	}

	required := []struct {
		field string
		value string
	}{
		{"title", req.Title},
		{"artist", req.Artist},
		{"artType", req.ArtType},
		{"period", req.Period},
		{"region", req.Region},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, platformservice.NewValidationError("Field '" + r.field + "' is required")
		}
	}
	if err := validateCoords(req.Coords); err != nil {
		return nil, err
	}

	now := time.Now()
	art := &model.Artwork{
		ID:          utils.NewID(consts.ArtworkIDPrefix),
		Title:       strings.TrimSpace(req.Title),
		Artist:      strings.TrimSpace(req.Artist),
		SubmittedBy: actor.ID,
		ArtType:     strings.TrimSpace(req.ArtType),
		Period:      strings.TrimSpace(req.Period),
		Region:      strings.TrimSpace(req.Region),
		Sensitive:   req.Sensitive,
		Address:     trimmedAddress(req.Address),
		Description: strings.TrimSpace(req.Description),
		Images:      cleanImages(req.Images),
		SubmittedAt: now,
		UpdatedAt:   now,
		Version:     1,
	}
	art.SetCoords(req.Coords)
	moderation.ScrubLocation(art)
	if err := moderation.Apply(art, moderation.TransitionSubmit, moderation.Review{ActorID: actor.ID, At: now}); err != nil {
		return nil, err
	}

	if err := s.artworkStore.Create(art); err != nil {
		log.Printf("❌ 创建作品失败: %v", err)
		return nil, platformservice.NewInternalError("Failed to submit artwork")
	}

	s.publisher.Publish(context.Background(), events.New(events.ArtworkSubmitted, art.ID, actor.ID, map[string]interface{}{
		"title": art.Title,
	}))
	resp := moduledto.ToResponse(art)
	return &resp, nil
}

// applyFieldEdits 写入请求中出现的内容字段，返回是否有字段变化
func applyFieldEdits(art *model.Artwork, req moduledto.UpdateArtworkRequest) (bool, error) {
	changed := false
	setString := func(dst *string, src *string, field string, required bool) error {
		if src == nil {
			return nil
		}
		v := strings.TrimSpace(*src)
		if required && v == "" {
			return platformservice.NewValidationError("Field '" + field + "' cannot be empty")
		}
		if *dst != v {
			*dst = v
			changed = true
		}
		return nil
	}

	if err := setString(&art.Title, req.Title, "title", true); err != nil {
		return false, err
	}
	if err := setString(&art.Artist, req.Artist, "artist", true); err != nil {
		return false, err
	}
	if err := setString(&art.ArtType, req.ArtType, "artType", true); err != nil {
		return false, err
	}
	if err := setString(&art.Period, req.Period, "period", true); err != nil {
		return false, err
	}
	if err := setString(&art.Region, req.Region, "region", true); err != nil {
		return false, err
	}
	if err := setString(&art.Description, req.Description, "description", false); err != nil {
		return false, err
	}

	if req.Sensitive != nil && *req.Sensitive != art.Sensitive {
		art.Sensitive = *req.Sensitive
		changed = true
	}
	before := locationOf(art)
	if req.Address != nil {
		art.Address = trimmedAddress(req.Address)
	}
	if req.Coords != nil {
		if err := validateCoords(req.Coords); err != nil {
			return false, err
		}
		art.SetCoords(req.Coords)
	}
	if req.Images != nil {
		art.Images = cleanImages(req.Images)
		changed = true
	}

	// 敏感作品在任何写入路径上都不保留位置，被清除的位置修改不算变化
	moderation.ScrubLocation(art)
	if locationOf(art) != before {
		changed = true
	}
	return changed, nil
}

type location struct {
	hasAddress bool
	address    string
	hasCoords  bool
	coords     model.Coords
}

func locationOf(art *model.Artwork) location {
	var loc location
	if art.Address != nil {
		loc.hasAddress, loc.address = true, *art.Address
	}
	if c := art.Coords(); c != nil {
		loc.hasCoords, loc.coords = true, *c
	}
	return loc
}

// Update 修改作品。作者修改内容后作品回到 pending；status 只有管理员可以指定。
func (s *Service) Update(actor moderation.Actor, artworkID string, req moduledto.UpdateArtworkRequest) (*moduledto.ArtworkResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, platformservice.NewUnauthorizedError("Authentication required")
	}
	if strings.TrimSpace(artworkID) == "" {
		return nil, platformservice.NewValidationError("Artwork ID required for update")
	}
	art, err := s.load(artworkID)
	if err != nil {
		return nil, err
	}
	if err := moderation.Allow(moderation.ActionEditArtwork, actor, art.SubmittedBy); err != nil {
		return nil, err
	}
	if req.Status != nil {
		if err := moderation.Allow(moderation.ActionSetArtworkStatus, actor, art.SubmittedBy); err != nil {
			return nil, err
		}
	}
	if req.Version != nil && *req.Version != art.Version {
		return nil, platformservice.NewConflictError("Artwork was modified by another request, please retry")
	}

	previousStatus := art.Status
	changed, err := applyFieldEdits(art, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	evt := events.Type("")
	if req.Status != nil {
		status := strings.TrimSpace(*req.Status)
		reason := ""
		if req.Reason != nil {
			reason = *req.Reason
		}
		if err := moderation.SetStatus(art, status, moderation.Review{ActorID: actor.ID, Reason: reason, At: now}); err != nil {
			return nil, err
		}
		if art.Status != previousStatus {
			evt = statusEvent(art.Status)
		}
	} else if changed && !actor.IsAdmin() {
		if moderation.ReviseAfterEdit(art, now) {
			evt = events.ArtworkRevised
		}
	}

	if err := s.save(art); err != nil {
		return nil, err
	}

	if evt != "" {
		s.publisher.Publish(context.Background(), events.New(evt, art.ID, actor.ID, map[string]interface{}{
			"from": previousStatus,
			"to":   art.Status,
		}))
	}
	resp := moduledto.ToResponse(art)
	return &resp, nil
}

func statusEvent(status string) events.Type {
	switch status {
	case consts.ArtworkStatusApproved:
		return events.ArtworkApproved
	case consts.ArtworkStatusRejected:
		return events.ArtworkRejected
	case consts.ArtworkStatusFlagged:
		return events.ArtworkFlagged
	default:
		return events.ArtworkRevised
	}
}

// transition 执行一次命名的状态迁移并写回
func (s *Service) transition(actor moderation.Actor, artworkID string, action moderation.Action, t moderation.Transition, reason string) (*moduledto.ArtworkResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, platformservice.NewUnauthorizedError("Authentication required")
	}
	if strings.TrimSpace(artworkID) == "" {
		return nil, platformservice.NewValidationError("Artwork ID required")
	}
	art, err := s.load(artworkID)
	if err != nil {
		return nil, err
	}
	if err := moderation.Allow(action, actor, art.SubmittedBy); err != nil {
		return nil, err
	}

	previousStatus := art.Status
	if err := moderation.Apply(art, t, moderation.Review{ActorID: actor.ID, Reason: reason, At: time.Now()}); err != nil {
		return nil, err
	}
	if err := s.save(art); err != nil {
		return nil, err
	}

	s.publisher.Publish(context.Background(), events.New(statusEvent(art.Status), art.ID, actor.ID, map[string]interface{}{
		"from":   previousStatus,
		"to":     art.Status,
		"reason": strings.TrimSpace(reason),
	}))
	resp := moduledto.ToResponse(art)
	return &resp, nil
}

func (s *Service) Approve(actor moderation.Actor, artworkID string) (*moduledto.ArtworkResponse, error) {
	return s.transition(actor, artworkID, moderation.ActionSetArtworkStatus, moderation.TransitionApprove, "")
}

// Reject 驳回作品，未填写原因时使用默认原因
func (s *Service) Reject(actor moderation.Actor, artworkID, reason string) (*moduledto.ArtworkResponse, error) {
	return s.transition(actor, artworkID, moderation.ActionSetArtworkStatus, moderation.TransitionReject, reason)
}

// Flag 管理员或作者标记作品需要复查
func (s *Service) Flag(actor moderation.Actor, artworkID, reason string) (*moduledto.ArtworkResponse, error) {
	return s.transition(actor, artworkID, moderation.ActionFlagArtwork, moderation.TransitionFlag, reason)
}

// Delete 删除作品及其点赞，并尽力清理图片文件
func (s *Service) Delete(actor moderation.Actor, artworkID string) error {
	if !actor.IsAuthenticated() {
		return platformservice.NewUnauthorizedError("Authentication required")
	}
	if strings.TrimSpace(artworkID) == "" {
		return platformservice.NewValidationError("Artwork ID required for deletion")
	}
	art, err := s.load(artworkID)
	if err != nil {
		return err
	}
	if err := moderation.Allow(moderation.ActionDeleteArtwork, actor, art.SubmittedBy); err != nil {
		return err
	}

	if err := s.artworkStore.DeleteCascade(art.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("Artwork not found")
		}
		log.Printf("❌ 删除作品 %s 失败: %v", art.ID, err)
		return platformservice.NewInternalError("Failed to delete artwork")
	}

	if s.images != nil && len(art.Images) > 0 {
		s.images.RemoveImages(art.Images)
	}
	s.publisher.Publish(context.Background(), events.New(events.ArtworkDeleted, art.ID, actor.ID, map[string]interface{}{
		"title": art.Title,
	}))
	return nil
}
