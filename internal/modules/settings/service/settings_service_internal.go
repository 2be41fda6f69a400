package service

import (
	"sort"

	"art-atlas-server/internal/model"
	platformservice "art-atlas-server/internal/platform/service"
)

const maskedSettingValue = "**********"

// settingRank 默认设置中的位置，未收录的键排在末尾
type settingRank struct {
	category int
	index    int
}

var defaultRanks = buildDefaultRanks()

func buildDefaultRanks() map[string]settingRank {
	categories := map[string]int{}
	ranks := make(map[string]settingRank, len(platformservice.DefaultSettings))
	for i, def := range platformservice.DefaultSettings {
		if _, ok := categories[def.Category]; !ok {
			categories[def.Category] = len(categories)
		}
		ranks[def.Key] = settingRank{category: categories[def.Category], index: i}
	}
	return ranks
}

func maskSensitiveSettings(settings []model.Setting) {
	for i := range settings {
		if settings[i].Sensitive {
			settings[i].Value = maskedSettingValue
		}
	}
}

// sortSettingsForAdmin 已知键按默认定义顺序，其余按分类与键名
func sortSettingsForAdmin(settings []model.Setting) {
	sort.SliceStable(settings, func(i, j int) bool {
		left, leftKnown := defaultRanks[settings[i].Key]
		right, rightKnown := defaultRanks[settings[j].Key]
		switch {
		case leftKnown && rightKnown:
			return left.index < right.index
		case leftKnown != rightKnown:
			return leftKnown
		case settings[i].Category != settings[j].Category:
			return settings[i].Category < settings[j].Category
		default:
			return settings[i].Key < settings[j].Key
		}
	})
}
