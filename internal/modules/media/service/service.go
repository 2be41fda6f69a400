package service

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/modules/media/dto"
	"art-atlas-server/internal/modules/media/storage"
	"art-atlas-server/internal/modules/moderation"
	platformservice "art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/utils"

	"github.com/google/uuid"
)

const (
	artworkFilePrefix = "artwork_"
	profileFilePrefix = "profile_"
)

type Service struct {
	*platformservice.AppService
	storage storage.Storage
}

func New(appService *platformservice.AppService, store storage.Storage) *Service {
	return &Service{AppService: appService, storage: store}
}

// checkImage 校验大小、扩展名与文件头，返回小写扩展名与探测到的 MIME
func (s *Service) checkImage(file *multipart.FileHeader, maxSizeMB int) (string, string, error) {
	if maxSizeMB <= 0 {
		maxSizeMB = 5
	}
	if file.Size > int64(maxSizeMB)*1024*1024 {
		return "", "", fmt.Errorf("%s exceeds maximum size (%dMB)", file.Filename, maxSizeMB)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := false
	for _, allowExt := range strings.Split(s.GetString(consts.ConfigAllowFileExtensions), ",") {
		if ext != "" && strings.TrimSpace(strings.ToLower(allowExt)) == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", "", fmt.Errorf("%s is not a valid image type", file.Filename)
	}

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("Error uploading %s", file.Filename)
	}
	defer func() { _ = src.Close() }()

	ok, detail := utils.ValidateImageContent(src, ext)
	if !ok {
		return "", "", fmt.Errorf("%s: %s", file.Filename, detail)
	}
	return ext, detail, nil
}

func (s *Service) store(ctx context.Context, file *multipart.FileHeader, name, contentType string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()
	return s.storage.Save(ctx, name, src, file.Size, contentType)
}

// UploadArtworkImages 逐个保存作品图片，全部失败时返回校验错误
func (s *Service) UploadArtworkImages(ctx context.Context, actor moderation.Actor, files []*multipart.FileHeader) (*dto.UploadResult, error) {
	if !actor.IsAuthenticated() {
		return nil, platformservice.NewUnauthorizedError("Authentication required")
	}
	if len(files) == 0 {
		return nil, platformservice.NewValidationError("No images uploaded")
	}

	result := &dto.UploadResult{Files: []dto.StoredFile{}, Errors: []string{}}
	maxSize := s.GetInt(consts.ConfigMaxUploadSize)
	for _, file := range files {
		ext, contentType, err := s.checkImage(file, maxSize)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		name := artworkFilePrefix + uuid.New().String() + ext
		if err := s.store(ctx, file, name, contentType); err != nil {
			log.Printf("❌ 保存作品图片失败 %s: %v", file.Filename, err)
			result.Errors = append(result.Errors, "Failed to move "+file.Filename)
			continue
		}
		result.Files = append(result.Files, dto.StoredFile{
			Name:         name,
			OriginalName: file.Filename,
			Size:         file.Size,
			Type:         contentType,
			Path:         s.storage.URL(name),
		})
	}

	if len(result.Files) == 0 {
		return nil, platformservice.NewValidationError("No files were successfully uploaded: " + strings.Join(result.Errors, ", "))
	}
	return result, nil
}

// UploadProfileImage 注册前即可上传头像，不要求登录
func (s *Service) UploadProfileImage(ctx context.Context, file *multipart.FileHeader) (*dto.ProfileImage, error) {
	if file == nil {
		return nil, platformservice.NewValidationError("No profile image uploaded or upload error occurred")
	}
	ext, contentType, err := s.checkImage(file, s.GetInt(consts.ConfigMaxProfileUploadSize))
	if err != nil {
		return nil, platformservice.NewValidationError(err.Error())
	}

	name := profileFilePrefix + uuid.New().String() + ext
	if err := s.store(ctx, file, name, contentType); err != nil {
		log.Printf("❌ 保存头像失败: %v", err)
		return nil, platformservice.NewInternalError("Failed to save profile picture")
	}
	return &dto.ProfileImage{
		Filename: name,
		Path:     s.storage.URL(name),
		Size:     file.Size,
		Type:     contentType,
	}, nil
}

// RemoveImages 删除作品引用的已上传图片，失败只记录日志。
// 外部链接或非本服务生成的文件名会被跳过
func (s *Service) RemoveImages(names []string) {
	for _, raw := range names {
		name := path.Base(strings.TrimSpace(raw))
		if !strings.HasPrefix(name, artworkFilePrefix) || strings.Contains(raw, "://") {
			continue
		}
		if err := s.storage.Delete(context.Background(), name); err != nil {
			log.Printf("⚠️ 删除作品图片失败 %s: %v", name, err)
		}
	}
}
