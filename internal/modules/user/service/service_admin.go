package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"
	"art-atlas-server/internal/modules/events"
	"art-atlas-server/internal/modules/moderation"
	moduledto "art-atlas-server/internal/modules/user/dto"
	platformservice "art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/utils"

	"gorm.io/gorm"
)

func validUserStatus(status string) bool {
	switch status {
	case consts.UserStatusApproved, consts.UserStatusPending, consts.UserStatusInactive:
		return true
	}
	return false
}

func validRole(role string) bool {
	switch role {
	case consts.RoleUser, consts.RoleArtist, consts.RoleAdmin:
		return true
	}
	return false
}

// AdminListUsers 列出账号，status 为空或 all 时返回全部
func (s *Service) AdminListUsers(actor moderation.Actor, status string) ([]model.User, error) {
	if err := moderation.Allow(moderation.ActionManageUsers, actor, ""); err != nil {
		return nil, err
	}

	status = strings.TrimSpace(status)
	var (
		users []model.User
		err   error
	)
	if status == "" || status == consts.StatusFilterAll {
		users, err = s.userStore.ListAll()
	} else {
		if !validUserStatus(status) {
			return nil, platformservice.NewValidationError("Invalid status. Must be one of: approved, pending, inactive")
		}
		users, err = s.userStore.ListByStatus(status)
	}
	if err != nil {
		return nil, platformservice.NewInternalError("Failed to load users")
	}
	return users, nil
}

// AdminApproveUser 审核通过账号
func (s *Service) AdminApproveUser(actor moderation.Actor, userID string) (*model.User, error) {
	if err := moderation.Allow(moderation.ActionManageUsers, actor, ""); err != nil {
		return nil, err
	}
	if strings.TrimSpace(userID) == "" {
		return nil, platformservice.NewValidationError("User ID required")
	}

	now := time.Now()
	if err := s.applyUserFields(userID, map[string]interface{}{
		"status":            consts.UserStatusApproved,
		"approved_at":       now,
		"status_updated_at": now,
		"updated_at":        now,
	}); err != nil {
		return nil, err
	}

	s.publisher.Publish(context.Background(), events.New(events.UserStatusChanged, userID, actor.ID, map[string]interface{}{
		"status": consts.UserStatusApproved,
	}))
	return s.FindByID(userID)
}

// AdminUpdateUser 修改账号资料、邮箱或角色
func (s *Service) AdminUpdateUser(actor moderation.Actor, userID string, req moduledto.UpdateUserRequest) (*model.User, error) {
	if err := moderation.Allow(moderation.ActionManageUsers, actor, ""); err != nil {
		return nil, err
	}
	if strings.TrimSpace(userID) == "" {
		return nil, platformservice.NewValidationError("User ID required")
	}

	current, err := s.FindByID(userID)
	if err != nil {
		return nil, err
	}

	updates := profileUpdates(moduledto.UpdateProfileRequest{
		Name:     req.Name,
		Region:   req.Region,
		Nation:   req.Nation,
		Bio:      req.Bio,
		ImageURL: req.ImageURL,
		Phone:    req.Phone,
		Dob:      req.Dob,
		Gender:   req.Gender,
	})

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if ok, msg := utils.ValidateEmail(email); !ok {
			return nil, platformservice.NewValidationError(msg)
		}
		if email != current.Email {
			taken, err := s.userStore.IsEmailTaken(email, userID)
			if err != nil {
				return nil, platformservice.NewInternalError("Failed to update user")
			}
			if taken {
				return nil, platformservice.NewConflictError("Email already exists")
			}
			updates["email"] = email
		}
	}

	roleChanged := false
	if req.Role != nil {
		role := strings.TrimSpace(*req.Role)
		if !validRole(role) {
			return nil, platformservice.NewValidationError("Invalid role. Must be one of: user, artist, admin")
		}
		if role != current.Role {
			updates["role"] = role
			roleChanged = true
		}
	}

	if len(updates) == 0 {
		return current, nil
	}
	updates["updated_at"] = time.Now()
	if err := s.applyUserFields(userID, updates); err != nil {
		return nil, err
	}

	// 会话里冗余了角色，角色变化后要求重新登录
	if roleChanged {
		s.evictSessions(userID)
	}
	return s.FindByID(userID)
}

// AdminSetUserStatus 设置账号状态，脱离 approved 的账号会被强制下线
func (s *Service) AdminSetUserStatus(actor moderation.Actor, userID string, status string) (*model.User, error) {
	if err := moderation.Allow(moderation.ActionManageUsers, actor, ""); err != nil {
		return nil, err
	}
	if strings.TrimSpace(userID) == "" {
		return nil, platformservice.NewValidationError("User ID required")
	}
	status = strings.TrimSpace(status)
	if !validUserStatus(status) {
		return nil, platformservice.NewValidationError("Invalid status. Must be one of: approved, pending, inactive")
	}

	current, err := s.FindByID(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":            status,
		"status_updated_at": now,
		"updated_at":        now,
	}
	if status == consts.UserStatusApproved && current.ApprovedAt == nil {
		updates["approved_at"] = now
	}
	if err := s.applyUserFields(userID, updates); err != nil {
		return nil, err
	}

	if status != current.Status {
		s.evictSessions(userID)
		s.publisher.Publish(context.Background(), events.New(events.UserStatusChanged, userID, actor.ID, map[string]interface{}{
			"from": current.Status,
			"to":   status,
		}))
	}
	return s.FindByID(userID)
}

// AdminDeleteUser 删除账号：会话与点赞一并删除，作品保留但不再归属该用户
func (s *Service) AdminDeleteUser(actor moderation.Actor, userID string) error {
	if err := moderation.Allow(moderation.ActionManageUsers, actor, ""); err != nil {
		return err
	}
	if strings.TrimSpace(userID) == "" {
		return platformservice.NewValidationError("User ID required")
	}
	if userID == actor.ID {
		return platformservice.NewForbiddenError("You cannot delete your own account")
	}

	if err := s.userStore.DeleteCascade(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("User not found")
		}
		return platformservice.NewInternalError("Failed to delete user")
	}

	s.publisher.Publish(context.Background(), events.New(events.UserDeleted, userID, actor.ID, nil))
	return nil
}

func (s *Service) applyUserFields(userID string, updates map[string]interface{}) error {
	if err := s.userStore.UpdateFields(userID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError("User not found")
		}
		return platformservice.NewInternalError("Failed to update user")
	}
	return nil
}
