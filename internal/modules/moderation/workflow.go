package moderation

import (
	"strings"
	"time"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"
	platformservice "art-atlas-server/internal/platform/service"
)

type Transition string

const (
	TransitionSubmit          Transition = "submit"
	TransitionApprove         Transition = "approve"
	TransitionReject          Transition = "reject"
	TransitionFlag            Transition = "flag"
	TransitionReviseAfterEdit Transition = "revise_after_edit"
)

var transitionTable = map[Transition]struct {
	from map[string]bool
	to   string
}{
	TransitionSubmit: {from: map[string]bool{"": true}, to: consts.ArtworkStatusPending},
	TransitionApprove: {from: map[string]bool{
		consts.ArtworkStatusPending:  true,
		consts.ArtworkStatusFlagged:  true,
		consts.ArtworkStatusRejected: true,
	}, to: consts.ArtworkStatusApproved},
	TransitionReject: {from: map[string]bool{
		consts.ArtworkStatusPending:  true,
		consts.ArtworkStatusFlagged:  true,
		consts.ArtworkStatusApproved: true,
	}, to: consts.ArtworkStatusRejected},
	TransitionFlag: {from: map[string]bool{
		consts.ArtworkStatusPending:  true,
		consts.ArtworkStatusApproved: true,
	}, to: consts.ArtworkStatusFlagged},
	TransitionReviseAfterEdit: {from: map[string]bool{
		consts.ArtworkStatusPending:  true,
		consts.ArtworkStatusApproved: true,
		consts.ArtworkStatusRejected: true,
		consts.ArtworkStatusFlagged:  true,
	}, to: consts.ArtworkStatusPending},
}

func ValidArtworkStatus(status string) bool {
	switch status {
	case consts.ArtworkStatusPending, consts.ArtworkStatusApproved,
		consts.ArtworkStatusRejected, consts.ArtworkStatusFlagged:
		return true
	}
	return false
}

// Next 返回执行 t 后的状态，非法迁移返回 ValidationError。
func Next(t Transition, current string) (string, error) {
	entry, ok := transitionTable[t]
	if !ok {
		return "", platformservice.NewValidationError("Unknown transition")
	}
	if !entry.from[current] {
		return "", platformservice.NewValidationError("Cannot " + strings.ReplaceAll(string(t), "_", " ") + " an artwork that is " + describe(current))
	}
	return entry.to, nil
}

func describe(status string) string {
	if status == "" {
		return "already submitted"
	}
	return status
}

// Review 审核附带的信息
type Review struct {
	ActorID string
	Reason  string
	At      time.Time
}

// Apply 执行状态迁移并写入对应的审核字段。
func Apply(art *model.Artwork, t Transition, review Review) error {
	next, err := Next(t, art.Status)
	if err != nil {
		return err
	}
	recordStatus(art, next, review)
	return nil
}

// SetStatus 管理员直接指定任意合法状态。
func SetStatus(art *model.Artwork, status string, review Review) error {
	if !ValidArtworkStatus(status) {
		return platformservice.NewValidationError("Invalid status")
	}
	if art.Status == status {
		return nil
	}
	recordStatus(art, status, review)
	return nil
}

func recordStatus(art *model.Artwork, status string, review Review) {
	at := review.At
	art.Status = status
	switch status {
	case consts.ArtworkStatusApproved:
		art.ReviewedAt = &at
		art.ReviewedBy = review.ActorID
		art.RejectionReason = ""
		art.RejectedAt = nil
	case consts.ArtworkStatusRejected:
		reason := strings.TrimSpace(review.Reason)
		if reason == "" {
			reason = consts.DefaultRejectionReason
		}
		art.RejectedAt = &at
		art.ReviewedAt = &at
		art.ReviewedBy = review.ActorID
		art.RejectionReason = reason
	case consts.ArtworkStatusFlagged:
		art.FlaggedAt = &at
		art.FlaggedBy = review.ActorID
		art.FlagReason = strings.TrimSpace(review.Reason)
	case consts.ArtworkStatusPending:
		art.ReviewedAt = nil
		art.ReviewedBy = ""
		art.RejectedAt = nil
		art.RejectionReason = ""
	}
}

// ReviseAfterEdit 非管理员作者修改内容后，作品回到待审核。
// 已是 pending 时保持不变，返回是否发生了迁移。
func ReviseAfterEdit(art *model.Artwork, at time.Time) bool {
	if art.Status == consts.ArtworkStatusPending {
		return false
	}
	if err := Apply(art, TransitionReviseAfterEdit, Review{At: at}); err != nil {
		return false
	}
	return true
}

// ScrubLocation 敏感作品不保存地址与坐标。
func ScrubLocation(art *model.Artwork) {
	if !art.Sensitive {
		return
	}
	art.Address = nil
	art.SetCoords(nil)
}
