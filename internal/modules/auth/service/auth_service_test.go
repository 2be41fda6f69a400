package service

import (
	"testing"
	"time"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"
	moduledto "art-atlas-server/internal/modules/auth/dto"
	"art-atlas-server/internal/modules/events"
	platformservice "art-atlas-server/internal/platform/service"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func registerReq(email string) moduledto.RegisterRequest {
	return moduledto.RegisterRequest{Name: "Alice", Email: email, Password: "abc12345", Role: consts.RoleArtist}
}

func approve(t *testing.T, gdb *gorm.DB, userID string) {
	t.Helper()
	if err := gdb.Model(&model.User{}).Where("id = ?", userID).Update("status", consts.UserStatusApproved).Error; err != nil {
		t.Fatalf("审核账号失败: %v", err)
	}
}

// 测试内容：验证注册创建 pending 账号、用户名取自邮箱并发布注册事件。
func TestRegister_CreatesPendingUser(t *testing.T) {
	setupTestDB(t)

	user, err := testService.Register(registerReq("Alice@Example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Status != consts.UserStatusPending || user.Username != "alice" || user.Email != "alice@example.com" {
		t.Fatalf("注册结果不符: %+v", user)
	}
	if len(user.ID) <= len(consts.UserIDPrefix) || user.ID[:len(consts.UserIDPrefix)] != consts.UserIDPrefix {
		t.Fatalf("期望 ID 以 %s 开头，实际为 %s", consts.UserIDPrefix, user.ID)
	}
	if user.Password == "abc12345" {
		t.Fatalf("密码未做哈希")
	}
	if types := testRecorder.Types(); len(types) != 1 || types[0] != events.UserRegistered {
		t.Fatalf("期望发布 user.registered，实际为 %v", types)
	}
}

// 测试内容：验证重复邮箱注册返回冲突且不产生新记录。
func TestRegister_DuplicateEmailConflict(t *testing.T) {
	gdb := setupTestDB(t)

	if _, err := testService.Register(registerReq("alice@example.com")); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := testService.Register(registerReq(" ALICE@example.com"))
	if !platformservice.IsCode(err, platformservice.ErrorCodeConflict) {
		t.Fatalf("期望 conflict，实际为 %v", err)
	}

	var count int64
	gdb.Model(&model.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("期望仍只有 1 个用户，实际为 %d", count)
	}
}

// 测试内容：验证用户名冲突时追加数字后缀。
func TestRegister_UsernameCollisionSuffix(t *testing.T) {
	setupTestDB(t)

	want := []string{"sam", "sam1", "sam2"}
	domains := []string{"a.com", "b.com", "c.com"}
	for i, d := range domains {
		user, err := testService.Register(registerReq("sam@" + d))
		if err != nil {
			t.Fatalf("Register %s: %v", d, err)
		}
		if user.Username != want[i] {
			t.Fatalf("期望用户名 %s，实际为 %s", want[i], user.Username)
		}
	}
}

// 测试内容：验证注册输入校验：缺失字段、邮箱格式、角色与密码规则。
func TestRegister_Validation(t *testing.T) {
	setupTestDB(t)

	cases := []struct {
		name string
		req  moduledto.RegisterRequest
		msg  string
	}{
		{"缺少名称", moduledto.RegisterRequest{Email: "a@b.com", Password: "abc12345", Role: "user"}, "Field 'name' is required"},
		{"邮箱格式", moduledto.RegisterRequest{Name: "A", Email: "nope", Password: "abc12345", Role: "user"}, "Invalid email format"},
		{"管理员角色", moduledto.RegisterRequest{Name: "A", Email: "a@b.com", Password: "abc12345", Role: "admin"}, "Invalid role"},
		{"弱密码", moduledto.RegisterRequest{Name: "A", Email: "a@b.com", Password: "abcdefgh", Role: "user"}, "Password must contain at least one letter and one digit"},
	}
	for _, tc := range cases {
		_, err := testService.Register(tc.req)
		se, ok := platformservice.AsServiceError(err)
		if !ok || se.Code != platformservice.ErrorCodeValidation || se.Message != tc.msg {
			t.Fatalf("%s: 期望 %q，实际为 %v", tc.name, tc.msg, err)
		}
	}
}

// 测试内容：验证关闭注册后返回 forbidden。
func TestRegister_Closed(t *testing.T) {
	gdb := setupTestDB(t)
	gdb.Save(&model.Setting{Key: consts.ConfigAllowRegister, Value: "false"})
	testService.ClearCache()

	if _, err := testService.Register(registerReq("a@example.com")); !platformservice.IsCode(err, platformservice.ErrorCodeForbidden) {
		t.Fatalf("期望 forbidden，实际为 %v", err)
	}
}

// 测试内容：验证完整账号流程：注册、待审核无法登录、审核后登录、重复登录使旧会话失效、登出后会话失效。
func TestAuthLifecycle(t *testing.T) {
	gdb := setupTestDB(t)

	user, err := testService.Register(registerReq("alice@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err = testService.Login("alice", "abc12345")
	if se, ok := platformservice.AsServiceError(err); !ok || se.Code != platformservice.ErrorCodeUnauthorized || se.Message != "Account pending approval" {
		t.Fatalf("待审核登录: 期望 Account pending approval，实际为 %v", err)
	}

	approve(t, gdb, user.ID)

	first, err := testService.Login("alice@example.com", "abc12345")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if first.User.ID != user.ID || first.SessionID == "" {
		t.Fatalf("登录结果不符: %+v", first)
	}
	if _, err := testService.VerifySession(first.SessionID); err != nil {
		t.Fatalf("VerifySession: %v", err)
	}

	second, err := testService.Login("alice", "abc12345")
	if err != nil {
		t.Fatalf("第二次 Login: %v", err)
	}
	if _, err := testService.VerifySession(first.SessionID); !platformservice.IsCode(err, platformservice.ErrorCodeUnauthorized) {
		t.Fatalf("旧会话应失效，实际为 %v", err)
	}

	var count int64
	gdb.Model(&model.Session{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Fatalf("期望每个用户只有 1 个会话，实际为 %d", count)
	}

	if err := testService.Logout(second.SessionID); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if err := testService.Logout(second.SessionID); err != nil {
		t.Fatalf("重复 Logout 应成功: %v", err)
	}
	if _, err := testService.VerifySession(second.SessionID); !platformservice.IsCode(err, platformservice.ErrorCodeUnauthorized) {
		t.Fatalf("登出后会话应失效，实际为 %v", err)
	}
}

// 测试内容：验证错误密码、未知账号与 inactive 账号的登录错误信息。
func TestLogin_Failures(t *testing.T) {
	gdb := setupTestDB(t)
	user, err := testService.Register(registerReq("bob@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	for _, id := range []string{"bob", "nobody"} {
		_, err := testService.Login(id, "wrongpass1")
		if se, ok := platformservice.AsServiceError(err); !ok || se.Message != invalidCredentialsMessage {
			t.Fatalf("%s: 期望凭证错误，实际为 %v", id, err)
		}
	}

	gdb.Model(&model.User{}).Where("id = ?", user.ID).Update("status", consts.UserStatusInactive)
	_, err = testService.Login("bob", "abc12345")
	if se, ok := platformservice.AsServiceError(err); !ok || se.Message != "Account is inactive" {
		t.Fatalf("期望 Account is inactive，实际为 %v", err)
	}
}

// 测试内容：验证用户名登录不区分大小写，旧数据中的大小写混合用户名也能登录。
func TestLogin_UsernameCaseInsensitive(t *testing.T) {
	gdb := setupTestDB(t)
	hashed, _ := bcrypt.GenerateFromPassword([]byte("abc12345"), bcrypt.MinCost)
	gdb.Create(&model.User{ID: "u_jane", Username: "Jane.Doe", Email: "jane.doe@example.com", Password: string(hashed), Name: "Jane", Role: consts.RoleArtist, Status: consts.UserStatusApproved})

	for _, id := range []string{"Jane.Doe", "jane.doe", "JANE.DOE", "Jane.Doe@Example.com"} {
		resp, err := testService.Login(id, "abc12345")
		if err != nil {
			t.Fatalf("%s: 期望登录成功，实际为 %v", id, err)
		}
		if resp.User.ID != "u_jane" {
			t.Fatalf("%s: 期望 u_jane，实际为 %s", id, resp.User.ID)
		}
	}
}

// 测试内容：验证过期会话被视为不存在，账号被停用后会话校验失败。
func TestVerifySession_ExpiredAndDeactivated(t *testing.T) {
	gdb := setupTestDB(t)
	gdb.Create(&model.User{ID: "u_1", Username: "c", Email: "c@example.com", Password: "x", Role: consts.RoleUser, Status: consts.UserStatusApproved})
	gdb.Create(&model.Session{ID: "sess_old", UserID: "u_1", CreatedAt: time.Now().Add(-2 * time.Hour), ExpiresAt: time.Now().Add(-time.Hour)})
	gdb.Create(&model.Session{ID: "sess_new", UserID: "u_1", CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)})

	if _, err := testService.ResolveSession("sess_old"); !platformservice.IsCode(err, platformservice.ErrorCodeUnauthorized) {
		t.Fatalf("过期会话: 期望 unauthorized，实际为 %v", err)
	}
	if _, err := testService.VerifySession("sess_new"); err != nil {
		t.Fatalf("VerifySession: %v", err)
	}

	gdb.Model(&model.User{}).Where("id = ?", "u_1").Update("status", consts.UserStatusInactive)
	if _, err := testService.VerifySession("sess_new"); !platformservice.IsCode(err, platformservice.ErrorCodeUnauthorized) {
		t.Fatalf("停用账号: 期望 unauthorized，实际为 %v", err)
	}

	if err := testService.EvictUserSessions("u_1"); err != nil {
		t.Fatalf("EvictUserSessions: %v", err)
	}
	var count int64
	gdb.Model(&model.Session{}).Count(&count)
	if count != 0 {
		t.Fatalf("期望会话全部清理，剩余 %d", count)
	}
}
