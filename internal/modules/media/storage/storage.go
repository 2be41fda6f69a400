// Package storage 提供作品图片与头像的存储后端。
package storage

import (
	"context"
	"io"
	"log"
	"strings"

	"art-atlas-server/internal/config"
)

// Storage 按扁平文件名保存对象
type Storage interface {
	Save(ctx context.Context, name string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, name string) error
	// URL 返回对象的访问路径
	URL(name string) string
}

// New 根据 upload.storage 选择后端，S3 初始化失败时回退到本地目录
func New(ctx context.Context, cfg config.UploadConfig) Storage {
	if strings.EqualFold(cfg.Storage, "s3") {
		s3Storage, err := NewS3Storage(ctx, cfg)
		if err == nil {
			log.Printf("✅ 使用 S3 存储: bucket=%s", cfg.S3Bucket)
			return s3Storage
		}
		log.Printf("⚠️ S3 存储初始化失败，回退为本地存储: %v", err)
	}
	return NewLocalStorage(cfg.Path, cfg.URLPrefix)
}
