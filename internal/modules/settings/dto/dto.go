package dto

type UpdateSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// WebInfoResponse 前台可见的站点信息
type WebInfoResponse struct {
	SiteName             string `json:"site_name"`
	SiteDescription      string `json:"site_description"`
	AllowRegister        bool   `json:"allow_register"`
	ReportCaptchaEnabled bool   `json:"report_captcha_enabled"`
	Version              string `json:"version"`
}
