package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"

	"github.com/gin-gonic/gin"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("响应不是合法 JSON: %v (%s)", err, w.Body.String())
	}
	return env
}

// 测试内容：验证空请求体时使用路径参数审核通过账号。
func TestApproveUser_PathID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	seedUser(t, gdb, "u_p", consts.RoleArtist, consts.UserStatusPending)

	r := gin.New()
	r.POST("/users/:id/approve", asActor("u_admin", consts.RoleAdmin), testHandler.ApproveUser)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users/u_p/approve", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d: %s", w.Code, w.Body.String())
	}
	var user model.User
	gdb.First(&user, "id = ?", "u_p")
	if user.Status != consts.UserStatusApproved {
		t.Fatalf("期望 approved，实际为 %s", user.Status)
	}
}

// 测试内容：验证旧接口通过请求体 user_id 设置状态，非法状态返回 400。
func TestSetUserStatus_BodyUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	seedUser(t, gdb, "u_a", consts.RoleUser, consts.UserStatusApproved)

	r := gin.New()
	r.POST("/admin", asActor("u_admin", consts.RoleAdmin), testHandler.SetUserStatus)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin", strings.NewReader(`{"user_id":"u_a","status":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d", w.Code)
	}
	if env := decode(t, w); env.Success || env.Message != "Invalid status. Must be one of: approved, pending, inactive" {
		t.Fatalf("错误信息不符: %+v", env)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/admin", strings.NewReader(`{"user_id":"u_a","status":"inactive"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d: %s", w.Code, w.Body.String())
	}
	if env := decode(t, w); !env.Success || env.Message != "User status updated successfully" {
		t.Fatalf("响应不符: %+v", env)
	}
}

// 测试内容：验证非管理员调用用户列表返回 403。
func TestListUsers_NonAdminForbidden(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	r := gin.New()
	r.GET("/users", asActor("u_a", consts.RoleArtist), testHandler.ListUsers)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", w.Code)
	}
}

// 测试内容：验证用户列表不会序列化密码字段。
func TestListUsers_HidesPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	seedUser(t, gdb, "u_a", consts.RoleUser, consts.UserStatusApproved)

	r := gin.New()
	r.GET("/users", asActor("u_admin", consts.RoleAdmin), testHandler.ListUsers)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("响应包含密码字段: %s", w.Body.String())
	}
}
