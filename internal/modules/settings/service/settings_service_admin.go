package service

import (
	"strconv"
	"strings"

	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"
	"art-atlas-server/internal/modules/moderation"
	moduledto "art-atlas-server/internal/modules/settings/dto"
	settingsrepo "art-atlas-server/internal/modules/settings/repo"
	platformservice "art-atlas-server/internal/platform/service"
)

var boolSettingKeys = map[string]bool{
	consts.ConfigAllowInit:            true,
	consts.ConfigAllowRegister:        true,
	consts.ConfigRateLimitEnabled:     true,
	consts.ConfigReportCaptchaEnabled: true,
}

var positiveNumberSettingKeys = map[string]bool{
	consts.ConfigMaxUploadSize:        true,
	consts.ConfigMaxProfileUploadSize: true,
	consts.ConfigMaxRequestBodySize:   true,
	consts.ConfigRateLimitAuthRPS:     true,
	consts.ConfigRateLimitAuthBurst:   true,
	consts.ConfigRateLimitUploadRPS:   true,
	consts.ConfigRateLimitUploadBurst: true,
	consts.ConfigRateLimitReportRPS:   true,
	consts.ConfigRateLimitReportBurst: true,
}

// AdminListSettings 获取全部系统设置。
func (s *Service) AdminListSettings(actor moderation.Actor) ([]model.Setting, error) {
	if err := moderation.Allow(moderation.ActionManageSettings, actor, ""); err != nil {
		return nil, err
	}
	settings, err := s.settingStore.FindAll()
	if err != nil {
		return nil, platformservice.NewInternalError("Failed to load settings")
	}

	sortSettingsForAdmin(settings)
	maskSensitiveSettings(settings)
	return settings, nil
}

// AdminUpdateSettings 批量更新系统设置，并在成功后清理配置缓存。
func (s *Service) AdminUpdateSettings(actor moderation.Actor, items []moduledto.UpdateSettingRequest) error {
	if err := moderation.Allow(moderation.ActionManageSettings, actor, ""); err != nil {
		return err
	}
	for _, item := range items {
		if err := validateSettingUpdate(item); err != nil {
			return err
		}
	}

	repoItems := make([]settingsrepo.UpdateSettingItem, 0, len(items))
	for _, item := range items {
		repoItems = append(repoItems, settingsrepo.UpdateSettingItem{
			Key:   item.Key,
			Value: strings.TrimSpace(item.Value),
		})
	}

	if err := s.settingStore.UpdateSettings(repoItems, maskedSettingValue); err != nil {
		return platformservice.NewInternalError("Failed to update settings")
	}

	s.ClearCache()
	return nil
}

func validateSettingUpdate(item moduledto.UpdateSettingRequest) error {
	key := strings.TrimSpace(item.Key)
	if key == "" {
		return platformservice.NewValidationError("Setting key is required")
	}
	if _, known := defaultRanks[key]; !known {
		return platformservice.NewValidationError("Unknown setting: " + key)
	}

	value := strings.TrimSpace(item.Value)
	switch {
	case boolSettingKeys[key]:
		if _, err := strconv.ParseBool(value); err != nil {
			return platformservice.NewValidationError(key + " must be true or false")
		}
	case positiveNumberSettingKeys[key]:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || n <= 0 {
			return platformservice.NewValidationError(key + " must be a positive number")
		}
	case key == consts.ConfigSiteName && value == "":
		return platformservice.NewValidationError("Site name cannot be empty")
	}
	return nil
}
