package moderation

import (
	"testing"
	"time"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"
	platformservice "art-atlas-server/internal/platform/service"
)

// 测试内容：穷举状态机，合法迁移得到目标状态，其余返回 ValidationError。
func TestNext_TransitionMatrix(t *testing.T) {
	statuses := []string{
		consts.ArtworkStatusPending,
		consts.ArtworkStatusApproved,
		consts.ArtworkStatusRejected,
		consts.ArtworkStatusFlagged,
	}
	allowed := map[Transition]map[string]string{
		TransitionApprove: {
			consts.ArtworkStatusPending:  consts.ArtworkStatusApproved,
			consts.ArtworkStatusFlagged:  consts.ArtworkStatusApproved,
			consts.ArtworkStatusRejected: consts.ArtworkStatusApproved,
		},
		TransitionReject: {
			consts.ArtworkStatusPending:  consts.ArtworkStatusRejected,
			consts.ArtworkStatusFlagged:  consts.ArtworkStatusRejected,
			consts.ArtworkStatusApproved: consts.ArtworkStatusRejected,
		},
		TransitionFlag: {
			consts.ArtworkStatusPending:  consts.ArtworkStatusFlagged,
			consts.ArtworkStatusApproved: consts.ArtworkStatusFlagged,
		},
		TransitionReviseAfterEdit: {
			consts.ArtworkStatusPending:  consts.ArtworkStatusPending,
			consts.ArtworkStatusApproved: consts.ArtworkStatusPending,
			consts.ArtworkStatusRejected: consts.ArtworkStatusPending,
			consts.ArtworkStatusFlagged:  consts.ArtworkStatusPending,
		},
	}

	for transition, table := range allowed {
		for _, from := range statuses {
			got, err := Next(transition, from)
			want, ok := table[from]
			if ok {
				if err != nil || got != want {
					t.Fatalf("%s from %s: 期望 %s，实际为 %q err=%v", transition, from, want, got, err)
				}
				continue
			}
			if !platformservice.IsCode(err, platformservice.ErrorCodeValidation) {
				t.Fatalf("%s from %s: 期望 ValidationError，实际为 %v", transition, from, err)
			}
		}
	}

	if got, err := Next(TransitionSubmit, ""); err != nil || got != consts.ArtworkStatusPending {
		t.Fatalf("submit 期望进入 pending，实际为 %q err=%v", got, err)
	}
	if _, err := Next(TransitionSubmit, consts.ArtworkStatusApproved); err == nil {
		t.Fatalf("已存在的作品不能再次 submit")
	}
}

// 测试内容：批准写入审核时间与审核人并清除驳回原因；驳回无原因时使用默认原因。
func TestApply_RecordsReviewFields(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	art := &model.Artwork{Status: consts.ArtworkStatusPending}

	if err := Apply(art, TransitionReject, Review{ActorID: "u_admin", At: now}); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if art.RejectionReason != consts.DefaultRejectionReason || art.RejectedAt == nil {
		t.Fatalf("驳回字段不符合预期: %+v", art)
	}

	later := now.Add(time.Hour)
	if err := Apply(art, TransitionApprove, Review{ActorID: "u_admin", At: later}); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if art.Status != consts.ArtworkStatusApproved || art.ReviewedAt == nil || !art.ReviewedAt.Equal(later) {
		t.Fatalf("批准字段不符合预期: %+v", art)
	}
	if art.ReviewedBy != "u_admin" || art.RejectionReason != "" || art.RejectedAt != nil {
		t.Fatalf("期望批准后清除驳回信息: %+v", art)
	}
}

// 测试内容：管理员直接设置状态只接受合法值。
func TestSetStatus(t *testing.T) {
	art := &model.Artwork{Status: consts.ArtworkStatusRejected}
	if err := SetStatus(art, "published", Review{}); !platformservice.IsCode(err, platformservice.ErrorCodeValidation) {
		t.Fatalf("期望非法状态被拒绝，实际为 %v", err)
	}
	if err := SetStatus(art, consts.ArtworkStatusFlagged, Review{ActorID: "u_admin", At: time.Now()}); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if art.Status != consts.ArtworkStatusFlagged || art.FlaggedBy != "u_admin" {
		t.Fatalf("期望直接进入 flagged: %+v", art)
	}
}

// 测试内容：作者修改已批准作品后回到 pending，pending 作品保持不变。
func TestReviseAfterEdit(t *testing.T) {
	approvedAt := time.Now()
	art := &model.Artwork{Status: consts.ArtworkStatusApproved, ReviewedAt: &approvedAt, ReviewedBy: "u_admin"}
	if !ReviseAfterEdit(art, time.Now()) {
		t.Fatalf("期望发生迁移")
	}
	if art.Status != consts.ArtworkStatusPending || art.ReviewedAt != nil {
		t.Fatalf("期望回到待审核并清除审核信息: %+v", art)
	}
	if ReviseAfterEdit(art, time.Now()) {
		t.Fatalf("pending 作品不应再次迁移")
	}
}

// 测试内容：被驳回作品修改后回到 pending，驳回时间与原因一并清除。
func TestReviseAfterEdit_FromRejectedClearsRejection(t *testing.T) {
	rejectedAt := time.Now()
	art := &model.Artwork{
		Status:          consts.ArtworkStatusRejected,
		ReviewedAt:      &rejectedAt,
		ReviewedBy:      "u_admin",
		RejectedAt:      &rejectedAt,
		RejectionReason: "blurry photo",
	}
	if !ReviseAfterEdit(art, time.Now()) {
		t.Fatalf("期望发生迁移")
	}
	if art.Status != consts.ArtworkStatusPending || art.RejectedAt != nil || art.RejectionReason != "" || art.ReviewedAt != nil {
		t.Fatalf("期望清除驳回信息: %+v", art)
	}
}

// 测试内容：敏感作品清除地址与坐标，非敏感作品保留。
func TestScrubLocation(t *testing.T) {
	addr := "1 Secret Rd"
	art := &model.Artwork{Sensitive: true, Address: &addr}
	art.SetCoords(&model.Coords{Lat: 1, Lng: 2})
	ScrubLocation(art)
	if art.Address != nil || art.Coords() != nil {
		t.Fatalf("期望敏感作品位置被清除: %+v", art)
	}

	open := &model.Artwork{Address: &addr}
	open.SetCoords(&model.Coords{Lat: 1, Lng: 2})
	ScrubLocation(open)
	if open.Address == nil || open.Coords() == nil {
		t.Fatalf("非敏感作品位置不应被清除")
	}
}
