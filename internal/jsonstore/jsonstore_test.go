package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	artworkrepo "art-atlas-server/internal/modules/artwork/repo"
	authrepo "art-atlas-server/internal/modules/auth/repo"
	authservice "art-atlas-server/internal/modules/auth/service"
	likerepo "art-atlas-server/internal/modules/like/repo"
	reportrepo "art-atlas-server/internal/modules/report/repo"
	settingsrepo "art-atlas-server/internal/modules/settings/repo"
	userrepo "art-atlas-server/internal/modules/user/repo"
	platformservice "art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/testutils"

	"golang.org/x/crypto/bcrypt"
)

func setupStores(t *testing.T) Stores {
	t.Helper()
	gdb := testutils.SetupDB(t)
	return Stores{
		Users:    userrepo.NewUserRepository(gdb),
		Artworks: artworkrepo.NewArtworkRepository(gdb),
		Sessions: authrepo.NewSessionRepository(gdb),
		Reports:  reportrepo.NewReportRepository(gdb),
		Likes:    likerepo.NewLikeRepository(gdb),
	}
}

func writeLegacy(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("写入 %s 失败: %v", name, err)
	}
}

func phpHash(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("生成密码失败: %v", err)
	}
	// PHP password_hash 输出 $2y$ 前缀
	return "$2y$" + strings.TrimPrefix(string(hashed), "$2a$")
}

func seedLegacyDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	hash := phpHash(t, "admin123")
	writeLegacy(t, dir, UsersFile, `[
    {"id": "u_admin", "username": "admin", "password": "`+hash+`", "email": "Admin@Example.com",
     "name": "System Administrator", "role": "admin", "status": "approved", "created_at": "2024-03-01 09:00:00"},
    {"id": "u_artist", "username": "artist", "password": "`+hash+`", "email": "artist@example.com",
     "name": "Artist", "role": "artist", "created_at": "2024-03-01 09:30:00", "approved_at": null}
]`)
	writeLegacy(t, dir, ArtworksFile, `[
    {"id": "art_1", "title": "Dreaming", "artist": "Artist", "artType": "Painting", "period": "Contemporary",
     "region": "North", "sensitive": false, "address": "1 Main St", "coords": {"lat": -12.5, "lng": 130.8},
     "description": "", "status": "approved", "submitted_by": "u_artist", "submitted_at": "2024-03-01 10:00:00",
     "approved_at": "2024-03-02 08:00:00", "images": ["uploads/a.png"]},
    {"id": "art_2", "title": "Sacred", "artist": "Artist", "artType": "Carving", "period": "Historic",
     "region": "South", "sensitive": true, "address": "secret", "coords": {"lat": 1, "lng": 2},
     "status": "pending", "submitted_by": "u_artist", "submitted_at": "2024-03-03 10:00:00"}
]`)
	writeLegacy(t, dir, SessionsFile, `[
    {"id": "sess_1", "user_id": "u_admin", "username": "admin", "role": "admin",
     "created_at": "2024-03-01 09:00:00", "expires_at": "2024-03-02 09:00:00"}
]`)
	writeLegacy(t, dir, ReportsFile, `[
    {"id": "r_1", "artwork": "art_1", "artwork_title": "Dreaming", "reason": "Sacred content",
     "detail": "", "email": "", "created": "2024-03-04 11:00:00", "status": "open"}
]`)
	writeLegacy(t, dir, LikesFile, `[
    {"id": "like_1", "user_id": "u_admin", "artwork_id": "art_1", "created_at": "2024-03-05 12:00:00"},
    {"id": "like_2", "user_id": "u_admin", "artwork_id": "art_1", "created_at": "2024-03-05 12:01:00"}
]`)
	return dir
}

// 测试内容：验证 PHPTime 能解析旧格式、RFC3339 与空值，并以旧格式输出。
func TestPHPTime_Unmarshal(t *testing.T) {
	var v struct {
		A PHPTime `json:"a"`
		B PHPTime `json:"b"`
		C PHPTime `json:"c"`
		D PHPTime `json:"d"`
	}
	raw := `{"a": "2024-03-01 10:00:00", "b": "2024-03-01T10:00:00Z", "c": "", "d": null}`
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if v.A.Local().Format(PHPTimeLayout) != "2024-03-01 10:00:00" {
		t.Fatalf("旧格式解析错误: %v", v.A)
	}
	if !v.B.Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("RFC3339 解析错误: %v", v.B)
	}
	if !v.C.IsZero() || !v.D.IsZero() {
		t.Fatalf("期望空值解析为零值")
	}

	out, err := json.Marshal(v.A)
	if err != nil || string(out) != `"2024-03-01 10:00:00"` {
		t.Fatalf("期望输出旧格式，实际为 %s", out)
	}
	out, _ = json.Marshal(v.C)
	if string(out) != "null" {
		t.Fatalf("零值期望输出 null，实际为 %s", out)
	}
}

// 测试内容：验证导入旧数据：邮箱归一化、缺失状态默认 pending、敏感作品位置被清除、重复点赞被去重、PHP 哈希可校验。
func TestImport_LegacyFiles(t *testing.T) {
	stores := setupStores(t)
	dir := seedLegacyDir(t)

	summary, err := Import(dir, stores)
	if err != nil {
		t.Fatalf("导入失败: %v", err)
	}
	if summary[UsersFile] != 2 || summary[ArtworksFile] != 2 || summary[SessionsFile] != 1 || summary[ReportsFile] != 1 || summary[LikesFile] != 1 {
		t.Fatalf("导入数量不符合预期: %s", summary)
	}

	users, _ := stores.Users.ListAll()
	byID := map[string]int{}
	for i, u := range users {
		byID[u.ID] = i
	}
	admin := users[byID["u_admin"]]
	if admin.Email != "admin@example.com" {
		t.Fatalf("期望邮箱转为小写，实际为 %q", admin.Email)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")) != nil {
		t.Fatalf("期望 PHP 哈希可被校验")
	}
	if users[byID["u_artist"]].Status != "pending" {
		t.Fatalf("缺失状态期望默认 pending，实际为 %q", users[byID["u_artist"]].Status)
	}

	art1, err := stores.Artworks.(artworkrepo.ArtworkStore).FindByID("art_1")
	if err != nil {
		t.Fatalf("查询作品失败: %v", err)
	}
	if art1.Coords() == nil || art1.Coords().Lat != -12.5 || art1.Address == nil {
		t.Fatalf("期望保留非敏感作品位置")
	}
	if art1.ReviewedAt == nil {
		t.Fatalf("期望 approved_at 映射为 reviewed_at")
	}
	art2, _ := stores.Artworks.(artworkrepo.ArtworkStore).FindByID("art_2")
	if art2.Address != nil || art2.Latitude != nil || art2.Longitude != nil {
		t.Fatalf("敏感作品不应保留位置")
	}
}

// 测试内容：验证重复导入结果不变。
func TestImport_Idempotent(t *testing.T) {
	stores := setupStores(t)
	dir := seedLegacyDir(t)

	if _, err := Import(dir, stores); err != nil {
		t.Fatalf("第一次导入失败: %v", err)
	}
	if _, err := Import(dir, stores); err != nil {
		t.Fatalf("第二次导入失败: %v", err)
	}
	users, _ := stores.Users.ListAll()
	artworks, _ := stores.Artworks.ListAll()
	likes, _ := stores.Likes.ListAll()
	if len(users) != 2 || len(artworks) != 2 || len(likes) != 1 {
		t.Fatalf("重复导入后数量变化: users=%d artworks=%d likes=%d", len(users), len(artworks), len(likes))
	}
}

// 测试内容：验证缺失的数据文件被跳过，非法 JSON 返回错误。
func TestImport_MissingAndInvalidFiles(t *testing.T) {
	stores := setupStores(t)

	summary, err := Import(t.TempDir(), stores)
	if err != nil {
		t.Fatalf("空目录导入不应失败: %v", err)
	}
	if summary[UsersFile] != 0 {
		t.Fatalf("期望未导入任何用户")
	}

	dir := t.TempDir()
	writeLegacy(t, dir, UsersFile, `{not json`)
	if _, err := Import(dir, stores); err == nil {
		t.Fatalf("期望非法 JSON 返回错误")
	}
}

// 测试内容：验证导出后的文件保持旧版字段与时间格式，并可再次导入。
func TestExport_RoundTrip(t *testing.T) {
	stores := setupStores(t)
	if _, err := Import(seedLegacyDir(t), stores); err != nil {
		t.Fatalf("导入失败: %v", err)
	}

	out := t.TempDir()
	summary, err := Export(out, stores)
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	if summary[ArtworksFile] != 2 || summary[ReportsFile] != 1 {
		t.Fatalf("导出数量不符合预期: %s", summary)
	}

	raw, err := os.ReadFile(filepath.Join(out, ArtworksFile))
	if err != nil {
		t.Fatalf("读取导出文件失败: %v", err)
	}
	var artworks []map[string]interface{}
	if err := json.Unmarshal(raw, &artworks); err != nil {
		t.Fatalf("导出 JSON 无效: %v", err)
	}
	found := false
	for _, a := range artworks {
		if a["id"] != "art_1" {
			continue
		}
		found = true
		if a["submitted_at"] != "2024-03-01 10:00:00" {
			t.Fatalf("期望旧版时间格式，实际为 %v", a["submitted_at"])
		}
		coords, ok := a["coords"].(map[string]interface{})
		if !ok || coords["lng"] != 130.8 {
			t.Fatalf("期望导出 coords，实际为 %v", a["coords"])
		}
	}
	if !found {
		t.Fatalf("导出结果缺少 art_1")
	}

	rawReports, _ := os.ReadFile(filepath.Join(out, ReportsFile))
	if !strings.Contains(string(rawReports), `"artwork": "art_1"`) || !strings.Contains(string(rawReports), `"created": "2024-03-04 11:00:00"`) {
		t.Fatalf("举报导出字段不符合旧版格式: %s", rawReports)
	}

	other := setupStores(t)
	if _, err := Import(out, other); err != nil {
		t.Fatalf("导出结果再次导入失败: %v", err)
	}
	users, _ := other.Users.ListAll()
	if len(users) != 2 {
		t.Fatalf("期望再次导入 2 个用户，实际为 %d", len(users))
	}
}

// 测试内容：验证导入的旧用户名保留大小写，并可用原样或小写的用户名登录。
func TestImport_LegacyUsernameCanLogin(t *testing.T) {
	gdb := testutils.SetupDB(t)
	userStore := userrepo.NewUserRepository(gdb)
	sessionStore := authrepo.NewSessionRepository(gdb)
	stores := Stores{
		Users:    userStore,
		Artworks: artworkrepo.NewArtworkRepository(gdb),
		Sessions: sessionStore,
		Reports:  reportrepo.NewReportRepository(gdb),
		Likes:    likerepo.NewLikeRepository(gdb),
	}

	dir := t.TempDir()
	writeLegacy(t, dir, UsersFile, `[
    {"id": "u_jane", "username": "Jane.Doe", "password": "`+phpHash(t, "abc12345")+`", "email": "Jane.Doe@example.com",
     "name": "Jane", "role": "artist", "status": "approved", "created_at": "2024-03-01 09:00:00"}
]`)
	if _, err := Import(dir, stores); err != nil {
		t.Fatalf("导入失败: %v", err)
	}

	auth := authservice.New(platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb)), userStore, sessionStore, nil)
	for _, id := range []string{"Jane.Doe", "jane.doe"} {
		resp, err := auth.Login(id, "abc12345")
		if err != nil {
			t.Fatalf("%s: 期望登录成功，实际为 %v", id, err)
		}
		if resp.User.Username != "Jane.Doe" {
			t.Fatalf("期望保留用户名 Jane.Doe，实际为 %q", resp.User.Username)
		}
	}
}
