package service

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"
	moduledto "art-atlas-server/internal/modules/auth/dto"
	"art-atlas-server/internal/modules/events"
	platformservice "art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// Register 创建待审核账号
func (s *Service) Register(req moduledto.RegisterRequest) (*model.User, error) {
	if !s.IsRegistrationOpen() {
		return nil, platformservice.NewForbiddenError("Registration is currently closed")
	}

	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"password", req.Password},
		{"role", req.Role},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, platformservice.NewValidationError("Field '" + r.field + "' is required")
		}
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if ok, msg := utils.ValidateEmail(email); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	role := strings.TrimSpace(req.Role)
	if role != consts.RoleUser && role != consts.RoleArtist {
		return nil, platformservice.NewValidationError("Invalid role")
	}
	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		return nil, platformservice.NewValidationError(msg)
	}

	taken, err := s.userStore.IsEmailTaken(email, "")
	if err != nil {
		return nil, platformservice.NewInternalError("Registration failed")
	}
	if taken {
		return nil, platformservice.NewConflictError("Email already registered")
	}

	username, err := s.uniqueUsername(utils.UsernameFromEmail(email))
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, platformservice.NewInternalError("Registration failed")
	}

	now := time.Now()
	user := &model.User{
		ID:        utils.NewID(consts.UserIDPrefix),
		Username:  username,
		Email:     email,
		Password:  string(hashed),
		Name:      strings.TrimSpace(req.Name),
		Role:      role,
		Status:    consts.UserStatusPending,
		Region:    strings.TrimSpace(req.Region),
		Nation:    strings.TrimSpace(req.Nation),
		Bio:       strings.TrimSpace(req.Bio),
		ImageURL:  strings.TrimSpace(req.ImageURL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.userStore.Create(user); err != nil {
		// 并发注册同一邮箱时由唯一索引兜底
		if taken, _ := s.userStore.IsEmailTaken(email, ""); taken {
			return nil, platformservice.NewConflictError("Email already registered")
		}
		log.Printf("❌ 创建用户失败: %v", err)
		return nil, platformservice.NewInternalError("Registration failed")
	}

	s.publisher.Publish(context.Background(), events.New(events.UserRegistered, user.ID, user.ID, map[string]interface{}{
		"username": user.Username,
		"role":     user.Role,
	}))
	return user, nil
}

// uniqueUsername 用户名冲突时依次追加 1, 2, ...
func (s *Service) uniqueUsername(base string) (string, error) {
	candidate := base
	for counter := 1; ; counter++ {
		taken, err := s.userStore.IsUsernameTaken(candidate)
		if err != nil {
			return "", platformservice.NewInternalError("Registration failed")
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + strconv.Itoa(counter)
	}
}
