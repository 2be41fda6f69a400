package service

import (
	"art-atlas-server/internal/consts"
	moduledto "art-atlas-server/internal/modules/settings/dto"
)

func (s *Service) WebInfo() moduledto.WebInfoResponse {
	return moduledto.WebInfoResponse{
		SiteName:             s.GetString(consts.ConfigSiteName),
		SiteDescription:      s.GetString(consts.ConfigSiteDescription),
		AllowRegister:        s.GetBool(consts.ConfigAllowRegister),
		ReportCaptchaEnabled: s.GetBool(consts.ConfigReportCaptchaEnabled),
		Version:              consts.ApplicationVersion,
	}
}
