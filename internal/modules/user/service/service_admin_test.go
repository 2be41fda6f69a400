package service

import (
	"testing"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"
	"art-atlas-server/internal/modules/events"
	"art-atlas-server/internal/modules/moderation"
	moduledto "art-atlas-server/internal/modules/user/dto"
	platformservice "art-atlas-server/internal/platform/service"
)

var adminActor = moderation.Actor{ID: "u_admin", Role: consts.RoleAdmin, Status: consts.UserStatusApproved}

func strPtr(s string) *string { return &s }

// 测试内容：验证非管理员无法列出用户，匿名返回 401 类错误，普通用户返回 403 类错误。
func TestAdminListUsers_RequiresAdmin(t *testing.T) {
	setupTestDB(t)

	_, err := testService.AdminListUsers(moderation.Actor{}, "")
	if !platformservice.IsCode(err, platformservice.ErrorCodeUnauthorized) {
		t.Fatalf("匿名: 期望 unauthorized，实际为 %v", err)
	}
	_, err = testService.AdminListUsers(moderation.Actor{ID: "u_x", Role: consts.RoleArtist, Status: consts.UserStatusApproved}, "")
	if !platformservice.IsCode(err, platformservice.ErrorCodeForbidden) {
		t.Fatalf("artist: 期望 forbidden，实际为 %v", err)
	}
}

// 测试内容：验证按状态过滤用户列表与非法状态校验。
func TestAdminListUsers_StatusFilter(t *testing.T) {
	gdb := setupTestDB(t)
	seedUser(t, gdb, "u_admin", "admin@example.com", consts.RoleAdmin, consts.UserStatusApproved)
	seedUser(t, gdb, "u_p", "p@example.com", consts.RoleArtist, consts.UserStatusPending)

	all, err := testService.AdminListUsers(adminActor, "all")
	if err != nil || len(all) != 2 {
		t.Fatalf("期望 2 个用户，实际为 %d (%v)", len(all), err)
	}
	pending, err := testService.AdminListUsers(adminActor, consts.UserStatusPending)
	if err != nil || len(pending) != 1 || pending[0].ID != "u_p" {
		t.Fatalf("期望仅返回 u_p，实际为 %+v (%v)", pending, err)
	}
	if _, err := testService.AdminListUsers(adminActor, "bogus"); !platformservice.IsCode(err, platformservice.ErrorCodeValidation) {
		t.Fatalf("期望 validation，实际为 %v", err)
	}
}

// 测试内容：验证审核通过账号写入 approved 状态与通过时间。
func TestAdminApproveUser_SetsApprovedAt(t *testing.T) {
	gdb := setupTestDB(t)
	seedUser(t, gdb, "u_p", "p@example.com", consts.RoleArtist, consts.UserStatusPending)

	user, err := testService.AdminApproveUser(adminActor, "u_p")
	if err != nil {
		t.Fatalf("AdminApproveUser: %v", err)
	}
	if user.Status != consts.UserStatusApproved || user.ApprovedAt == nil {
		t.Fatalf("期望 approved 且 approved_at 非空，实际为 %+v", user)
	}
	if _, err := testService.AdminApproveUser(adminActor, "u_missing"); !platformservice.IsCode(err, platformservice.ErrorCodeNotFound) {
		t.Fatalf("期望 not_found，实际为 %v", err)
	}
	if _, err := testService.AdminApproveUser(adminActor, ""); !platformservice.IsCode(err, platformservice.ErrorCodeValidation) {
		t.Fatalf("期望 validation，实际为 %v", err)
	}
}

// 测试内容：验证修改邮箱时检查唯一性，修改角色时强制下线。
func TestAdminUpdateUser_EmailAndRole(t *testing.T) {
	gdb := setupTestDB(t)
	seedUser(t, gdb, "u_a", "a@example.com", consts.RoleUser, consts.UserStatusApproved)
	seedUser(t, gdb, "u_b", "b@example.com", consts.RoleUser, consts.UserStatusApproved)

	_, err := testService.AdminUpdateUser(adminActor, "u_a", moduledto.UpdateUserRequest{Email: strPtr("B@example.com")})
	if !platformservice.IsCode(err, platformservice.ErrorCodeConflict) {
		t.Fatalf("期望 conflict，实际为 %v", err)
	}

	_, err = testService.AdminUpdateUser(adminActor, "u_a", moduledto.UpdateUserRequest{Role: strPtr("superuser")})
	if !platformservice.IsCode(err, platformservice.ErrorCodeValidation) {
		t.Fatalf("期望 validation，实际为 %v", err)
	}

	user, err := testService.AdminUpdateUser(adminActor, "u_a", moduledto.UpdateUserRequest{
		Name:  strPtr("Alice"),
		Email: strPtr(" New@Example.com "),
		Role:  strPtr(consts.RoleArtist),
	})
	if err != nil {
		t.Fatalf("AdminUpdateUser: %v", err)
	}
	if user.Name != "Alice" || user.Email != "new@example.com" || user.Role != consts.RoleArtist {
		t.Fatalf("更新结果不符: %+v", user)
	}
	if len(testEvicter.evicted) != 1 || testEvicter.evicted[0] != "u_a" {
		t.Fatalf("期望角色变化后清理 u_a 的会话，实际为 %v", testEvicter.evicted)
	}
}

// 测试内容：验证设置账号状态会校验取值、清理会话并发布事件。
func TestAdminSetUserStatus(t *testing.T) {
	gdb := setupTestDB(t)
	seedUser(t, gdb, "u_a", "a@example.com", consts.RoleArtist, consts.UserStatusApproved)

	if _, err := testService.AdminSetUserStatus(adminActor, "u_a", "banned"); !platformservice.IsCode(err, platformservice.ErrorCodeValidation) {
		t.Fatalf("期望 validation，实际为 %v", err)
	}

	user, err := testService.AdminSetUserStatus(adminActor, "u_a", consts.UserStatusInactive)
	if err != nil {
		t.Fatalf("AdminSetUserStatus: %v", err)
	}
	if user.Status != consts.UserStatusInactive || user.StatusUpdatedAt == nil {
		t.Fatalf("期望 inactive 且 status_updated_at 非空，实际为 %+v", user)
	}
	if len(testEvicter.evicted) != 1 {
		t.Fatalf("期望清理一次会话，实际为 %v", testEvicter.evicted)
	}
	types := testRecorder.Types()
	if len(types) != 1 || types[0] != events.UserStatusChanged {
		t.Fatalf("期望发布 user.status_changed，实际为 %v", types)
	}

	status, err := testService.GetUserStatus("u_a")
	if err != nil || status != consts.UserStatusInactive {
		t.Fatalf("GetUserStatus 期望 inactive，实际为 %q (%v)", status, err)
	}
}

// 测试内容：验证删除账号时禁止删除自己，并级联删除会话、点赞，作品解除归属但保留。
func TestAdminDeleteUser_Cascade(t *testing.T) {
	gdb := setupTestDB(t)
	seedUser(t, gdb, "u_admin", "admin@example.com", consts.RoleAdmin, consts.UserStatusApproved)
	seedUser(t, gdb, "u_a", "a@example.com", consts.RoleArtist, consts.UserStatusApproved)
	gdb.Create(&model.Session{ID: "sess_1", UserID: "u_a", Username: "u_a", Role: consts.RoleArtist})
	gdb.Create(&model.Artwork{ID: "art_1", Title: "River", SubmittedBy: "u_a", Status: consts.ArtworkStatusApproved})
	gdb.Create(&model.Like{ID: "like_1", UserID: "u_a", ArtworkID: "art_1"})
	gdb.Create(&model.Report{ID: "r_1", ArtworkID: "art_1", Reason: "x", Status: consts.ReportStatusOpen})

	if err := testService.AdminDeleteUser(adminActor, "u_admin"); !platformservice.IsCode(err, platformservice.ErrorCodeForbidden) {
		t.Fatalf("删除自己: 期望 forbidden，实际为 %v", err)
	}
	if err := testService.AdminDeleteUser(adminActor, "u_a"); err != nil {
		t.Fatalf("AdminDeleteUser: %v", err)
	}
	if err := testService.AdminDeleteUser(adminActor, "u_a"); !platformservice.IsCode(err, platformservice.ErrorCodeNotFound) {
		t.Fatalf("重复删除: 期望 not_found，实际为 %v", err)
	}

	var count int64
	gdb.Model(&model.Session{}).Where("user_id = ?", "u_a").Count(&count)
	if count != 0 {
		t.Fatalf("期望会话被删除，剩余 %d", count)
	}
	gdb.Model(&model.Like{}).Where("user_id = ?", "u_a").Count(&count)
	if count != 0 {
		t.Fatalf("期望点赞被删除，剩余 %d", count)
	}
	var art model.Artwork
	if err := gdb.First(&art, "id = ?", "art_1").Error; err != nil {
		t.Fatalf("作品应保留: %v", err)
	}
	if art.SubmittedBy != "" {
		t.Fatalf("期望 submitted_by 被清空，实际为 %q", art.SubmittedBy)
	}
	gdb.Model(&model.Report{}).Count(&count)
	if count != 1 {
		t.Fatalf("期望举报保留，实际为 %d", count)
	}
}
