package service

import (
	"fmt"
	"testing"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"
)

// 测试内容：验证初始化设置会清理非默认配置键，并保留默认键已有值。
func TestInitializeSettings_RemovesUnknownKeys(t *testing.T) {
	gdb := setupTestDB(t)
	svc := mustTestService(t)

	if err := gdb.Create(&model.Setting{Key: "legacy_custom_key", Value: "legacy"}).Error; err != nil {
		t.Fatalf("创建旧配置失败: %v", err)
	}
	if err := gdb.Create(&model.Setting{Key: consts.ConfigSiteName, Value: "My Atlas"}).Error; err != nil {
		t.Fatalf("创建默认配置失败: %v", err)
	}

	if err := svc.InitializeSettings(); err != nil {
		t.Fatalf("InitializeSettings: %v", err)
	}

	var count int64
	gdb.Model(&model.Setting{}).Where(&model.Setting{Key: "legacy_custom_key"}).Count(&count)
	if count != 0 {
		t.Fatalf("期望旧配置被清理")
	}
	if got := svc.GetString(consts.ConfigSiteName); got != "My Atlas" {
		t.Fatalf("期望保留已有值，实际为 %q", got)
	}

	var total int64
	gdb.Model(&model.Setting{}).Count(&total)
	if int(total) != len(DefaultSettings) {
		t.Fatalf("期望 %d 个配置，实际为 %d", len(DefaultSettings), total)
	}
}

// 测试内容：验证数据库缺失时回落到默认值，并支持数值与布尔类型读取。
func TestGetters_FallbackToDefaults(t *testing.T) {
	setupTestDB(t)
	svc := mustTestService(t)

	if got := svc.GetInt(consts.ConfigMaxUploadSize); got != 5 {
		t.Fatalf("期望默认上传限制 5MB，实际为 %d", got)
	}
	if got := svc.GetInt(consts.ConfigMaxProfileUploadSize); got != 2 {
		t.Fatalf("期望默认头像限制 2MB，实际为 %d", got)
	}
	if !svc.GetBool(consts.ConfigAllowRegister) {
		t.Fatalf("期望默认开放注册")
	}
	if got := svc.GetFloat64(consts.ConfigRateLimitAuthRPS); got != 0.5 {
		t.Fatalf("期望认证限流 0.5，实际为 %v", got)
	}
	if got := svc.GetString("no_such_key"); got != "" {
		t.Fatalf("期望未知键返回空字符串，实际为 %q", got)
	}
}

// 测试内容：验证缓存命中后需要 ClearCache 才能读取到新值。
func TestClearCache_ReloadsValue(t *testing.T) {
	gdb := setupTestDB(t)
	svc := mustTestService(t)

	_ = svc.GetString(consts.ConfigSiteName)
	gdb.Model(&model.Setting{}).Where(&model.Setting{Key: consts.ConfigSiteName}).Update("value", "Changed")

	if got := svc.GetString(consts.ConfigSiteName); got == "Changed" {
		t.Fatalf("期望缓存未清理前仍为旧值")
	}
	svc.ClearCache()
	if got := svc.GetString(consts.ConfigSiteName); got != "Changed" {
		t.Fatalf("期望清理缓存后读取新值，实际为 %q", got)
	}
}

// 测试内容：验证服务错误的类别判断。
func TestIsCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewConflictError("dup"))
	if !IsCode(err, ErrorCodeConflict) {
		t.Fatalf("期望识别包装后的冲突错误")
	}
	if IsCode(err, ErrorCodeNotFound) {
		t.Fatalf("错误类别不应匹配 not_found")
	}
	if IsCode(fmt.Errorf("plain"), ErrorCodeInternal) {
		t.Fatalf("普通错误不应被识别为服务错误")
	}
}
