package service

import (
	"strings"
	"time"

	"art-atlas-server/internal/model"
	"art-atlas-server/internal/modules/moderation"
	moduledto "art-atlas-server/internal/modules/user/dto"
	platformservice "art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

func profileUpdates(req moduledto.UpdateProfileRequest) map[string]interface{} {
	updates := make(map[string]interface{})
	set := func(column string, value *string) {
		if value != nil {
			updates[column] = strings.TrimSpace(*value)
		}
	}
	set("name", req.Name)
	set("region", req.Region)
	set("nation", req.Nation)
	set("bio", req.Bio)
	set("image_url", req.ImageURL)
	set("phone", req.Phone)
	set("dob", req.Dob)
	set("gender", req.Gender)
	return updates
}

func (s *Service) GetProfile(actor moderation.Actor) (*model.User, error) {
	if !actor.IsAuthenticated() {
		return nil, platformservice.NewUnauthorizedError("Authentication required")
	}
	return s.FindByID(actor.ID)
}

// UpdateProfile 修改自己的资料，角色与邮箱只能由管理员修改
func (s *Service) UpdateProfile(actor moderation.Actor, req moduledto.UpdateProfileRequest) (*model.User, error) {
	if !actor.IsAuthenticated() {
		return nil, platformservice.NewUnauthorizedError("Authentication required")
	}
	updates := profileUpdates(req)
	if name, ok := updates["name"]; ok && name == "" {
		return nil, platformservice.NewValidationError("Name cannot be empty")
	}
	if len(updates) == 0 {
		return s.FindByID(actor.ID)
	}
	updates["updated_at"] = time.Now()
	if err := s.applyUserFields(actor.ID, updates); err != nil {
		return nil, err
	}
	return s.FindByID(actor.ID)
}

func (s *Service) ChangePassword(actor moderation.Actor, oldPassword, newPassword string) error {
	if !actor.IsAuthenticated() {
		return platformservice.NewUnauthorizedError("Authentication required")
	}
	user, err := s.FindByID(actor.ID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return platformservice.NewUnauthorizedError("Current password is incorrect")
	}
	if ok, msg := utils.ValidatePassword(newPassword); !ok {
		return platformservice.NewValidationError(msg)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return platformservice.NewInternalError("Failed to update password")
	}
	return s.applyUserFields(actor.ID, map[string]interface{}{
		"password":   string(hashed),
		"updated_at": time.Now(),
	})
}
