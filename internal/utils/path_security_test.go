package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// 测试内容：验证基目录内的相对路径可以正常拼接。
func TestSecureJoin_AllowsWithinBase(t *testing.T) {
	base := t.TempDir()
	got, err := SecureJoin(base, "a/b.png")
	if err != nil {
		t.Fatalf("SecureJoin: %v", err)
	}
	baseAbs, _ := filepath.Abs(base)
	if got != filepath.Join(baseAbs, "a", "b.png") {
		t.Fatalf("拼接结果不符合预期: %s", got)
	}
}

// 测试内容：验证越界与绝对路径会被拒绝。
func TestSecureJoin_RejectsTraversal(t *testing.T) {
	base := t.TempDir()
	if _, err := SecureJoin(base, "../escape.png"); err == nil {
		t.Fatalf("期望 .. 越界被拒绝")
	}
	if _, err := SecureJoin(base, filepath.Join(string(os.PathSeparator), "etc", "passwd")); err == nil && runtime.GOOS != "windows" {
		t.Fatalf("期望绝对路径被拒绝")
	}
}

// 测试内容：验证基目录下的符号链接会被拒绝。
func TestSecureJoin_RejectsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink 需要额外权限")
	}
	base := t.TempDir()
	outside := t.TempDir()
	if err := os.Symlink(outside, filepath.Join(base, "link")); err != nil {
		t.Fatalf("创建符号链接失败: %v", err)
	}
	if _, err := SecureJoin(base, "link/x.png"); err == nil {
		t.Fatalf("期望符号链接被拒绝")
	}
}
