package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"art-atlas-server/internal/config"
	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"
	moduledto "art-atlas-server/internal/modules/auth/dto"
	platformservice "art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const invalidCredentialsMessage = "Invalid username/email or password"

// statusError 非 approved 账号不能登录或持有会话
func statusError(status string) error {
	switch status {
	case consts.UserStatusApproved:
		return nil
	case consts.UserStatusPending:
		return platformservice.NewUnauthorizedError("Account pending approval")
	default:
		return platformservice.NewUnauthorizedError("Account is inactive")
	}
}

// Login 校验凭证并签发新会话，同时使该用户的旧会话失效
func (s *Service) Login(identifier, password string) (*moduledto.LoginResponse, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, platformservice.NewValidationError("Username/email and password cannot be empty")
	}

	user, err := s.userStore.FindByUsernameOrEmail(identifier)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("❌ 登录查询用户失败: %v", err)
			return nil, platformservice.NewInternalError("Login failed")
		}
		return nil, platformservice.NewUnauthorizedError(invalidCredentialsMessage)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, platformservice.NewUnauthorizedError(invalidCredentialsMessage)
	}
	if err := statusError(user.Status); err != nil {
		return nil, err
	}

	token, err := utils.NewSessionToken()
	if err != nil {
		return nil, platformservice.NewInternalError("Login failed")
	}
	now := time.Now()
	session := &model.Session{
		ID:        token,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(config.Get().SessionTTLHours()) * time.Hour),
	}
	if err := s.sessionStore.ReplaceUserSession(session); err != nil {
		log.Printf("❌ 创建会话失败: %v", err)
		return nil, platformservice.NewInternalError("Login failed")
	}

	return &moduledto.LoginResponse{User: user, SessionID: token}, nil
}

// Logout 删除会话，会话不存在时同样视为成功
func (s *Service) Logout(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return platformservice.NewValidationError("Session ID required")
	}
	if err := s.sessionStore.DeleteByID(token); err != nil {
		return platformservice.NewInternalError("Logout failed")
	}
	return nil
}

// ResolveSession 返回未过期的会话，供鉴权中间件使用
func (s *Service) ResolveSession(token string) (*model.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, platformservice.NewUnauthorizedError("Session ID required")
	}
	session, err := s.sessionStore.FindByID(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewUnauthorizedError("Invalid session")
		}
		return nil, platformservice.NewInternalError("Failed to load session")
	}
	if session.IsExpired(time.Now()) {
		return nil, platformservice.NewUnauthorizedError("Session expired")
	}
	return session, nil
}

// VerifySession 会话有效且所属账号仍为 approved 时返回账号与会话
func (s *Service) VerifySession(token string) (*moduledto.VerifyResponse, error) {
	session, err := s.ResolveSession(token)
	if err != nil {
		return nil, err
	}
	user, err := s.userStore.FindByID(session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewUnauthorizedError("Invalid session")
		}
		return nil, platformservice.NewInternalError("Failed to load user")
	}
	if err := statusError(user.Status); err != nil {
		return nil, err
	}
	return &moduledto.VerifyResponse{User: user, Session: session}, nil
}

func (s *Service) EvictUserSessions(userID string) error {
	return s.sessionStore.DeleteByUserID(userID)
}
