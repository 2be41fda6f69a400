package service

import (
	"log"
	"strings"
	"time"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"
	moduledto "art-atlas-server/internal/modules/system/dto"
	platformservice "art-atlas-server/internal/platform/service"
	"art-atlas-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// IsSystemInitialized 返回系统是否已完成初始化。
func (s *Service) IsSystemInitialized() bool {
	return !s.GetBool(consts.ConfigAllowInit)
}

// InitializeSystem 执行系统初始化：写入站点设置并创建已审核的管理员账号。
func (s *Service) InitializeSystem(payload moduledto.InitRequest) (*model.User, error) {
	if s.IsSystemInitialized() {
		return nil, platformservice.NewForbiddenError("System already initialized")
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if ok, msg := utils.ValidateEmail(email); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(payload.Password); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	siteName := strings.TrimSpace(payload.SiteName)
	if siteName == "" {
		return nil, platformservice.NewValidationError("Site name cannot be empty")
	}

	username := strings.ToLower(strings.TrimSpace(payload.Username))
	if username == "" {
		username = utils.UsernameFromEmail(email)
	}
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		name = "Administrator"
	}

	passwordHashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, platformservice.NewInternalError("Initialization failed")
	}

	settingsToUpdate := map[string]string{
		consts.ConfigSiteName:        siteName,
		consts.ConfigSiteDescription: strings.TrimSpace(payload.SiteDescription),
		consts.ConfigAllowInit:       "false",
	}
	now := time.Now()
	admin := &model.User{
		ID:              utils.NewID(consts.UserIDPrefix),
		Username:        username,
		Email:           email,
		Password:        string(passwordHashed),
		Name:            name,
		Role:            consts.RoleAdmin,
		Status:          consts.UserStatusApproved,
		CreatedAt:       now,
		UpdatedAt:       now,
		ApprovedAt:      &now,
		StatusUpdatedAt: &now,
	}
	if err := s.systemStore.InitializeSystem(settingsToUpdate, admin); err != nil {
		log.Printf("❌ 系统初始化失败: %v", err)
		return nil, platformservice.NewInternalError("Initialization failed")
	}

	s.ClearCache()
	return admin, nil
}
