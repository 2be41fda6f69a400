package di

import (
	"context"

	"art-atlas-server/internal/config"
	"art-atlas-server/internal/modules/media/storage"
)

// ProvideStorage 按 upload.storage 选择本地目录或 S3 兼容存储
func ProvideStorage() storage.Storage {
	return storage.New(context.Background(), config.Get().Upload)
}
