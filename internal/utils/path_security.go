package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SecureJoin 将相对路径安全拼接到 basePath 下。
//
// 拒绝绝对路径与 ".." 越界，结果路径必须位于 basePath 内，
// 且 basePath 到目标之间已存在的节点都不能是符号链接。
func SecureJoin(basePath, relativePath string) (string, error) {
	baseAbs, err := filepath.Abs(basePath)
	if err != nil {
		return "", fmt.Errorf("路径解析失败: %w", err)
	}

	cleanRel := filepath.Clean(relativePath)
	if cleanRel == "." {
		cleanRel = ""
	}
	if filepath.IsAbs(cleanRel) || filepath.VolumeName(cleanRel) != "" {
		return "", fmt.Errorf("非法路径: 不允许绝对路径")
	}

	targetAbs := filepath.Join(baseAbs, cleanRel)
	rel, err := filepath.Rel(baseAbs, targetAbs)
	if err != nil {
		return "", fmt.Errorf("非法路径: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("非法路径: 目标超出基目录")
	}

	// 从目标逐级回溯到基目录，检查符号链接
	for current := targetAbs; ; current = filepath.Dir(current) {
		info, statErr := os.Lstat(current)
		if statErr == nil && info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("检测到符号链接穿透风险: %s", current)
		}
		if statErr != nil && !os.IsNotExist(statErr) {
			return "", fmt.Errorf("检查路径失败: %w", statErr)
		}
		if current == baseAbs || current == filepath.Dir(current) {
			break
		}
	}

	return targetAbs, nil
}
