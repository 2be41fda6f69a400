package service

import (
	"errors"
	"log"

	"art-atlas-server/internal/model"
	"art-atlas-server/internal/modules/events"
	"art-atlas-server/internal/modules/user/repo"
	platformservice "art-atlas-server/internal/platform/service"

	"gorm.io/gorm"
)

// SessionEvicter 删除用户的全部会话，状态或角色变化后调用
type SessionEvicter interface {
	EvictUserSessions(userID string) error
}

type Service struct {
	*platformservice.AppService
	userStore repo.UserStore
	sessions  SessionEvicter
	publisher events.Publisher
}

func New(appService *platformservice.AppService, userStore repo.UserStore, sessions SessionEvicter, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Service{
		AppService: appService,
		userStore:  userStore,
		sessions:   sessions,
		publisher:  publisher,
	}
}

// GetUserStatus 供状态检查中间件读取用户当前状态
func (s *Service) GetUserStatus(userID string) (string, error) {
	status, err := s.userStore.GetStatus(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", platformservice.NewNotFoundError("User not found")
		}
		return "", platformservice.NewInternalError("Failed to read user status")
	}
	return status, nil
}

func (s *Service) FindByID(userID string) (*model.User, error) {
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("User not found")
		}
		return nil, platformservice.NewInternalError("Failed to load user")
	}
	return user, nil
}

// FindByIDs 批量读取，缺失的 id 直接忽略
func (s *Service) FindByIDs(userIDs []string) ([]model.User, error) {
	users, err := s.userStore.FindByIDs(userIDs)
	if err != nil {
		return nil, platformservice.NewInternalError("Failed to load users")
	}
	return users, nil
}

func (s *Service) evictSessions(userID string) {
	if s.sessions == nil {
		return
	}
	if err := s.sessions.EvictUserSessions(userID); err != nil {
		log.Printf("⚠️ 清理用户 %s 的会话失败: %v", userID, err)
	}
}
