package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewID 生成带前缀的记录 ID，例如 art_3f2c...
func NewID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewSessionToken 生成 sess_ + 64 位十六进制的不透明会话令牌
func NewSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "sess_" + hex.EncodeToString(buf), nil
}
