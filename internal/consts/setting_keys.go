package consts

const (

	// ConfigSiteName 网站名称
	ConfigSiteName = "site_name"

	// ConfigSiteDescription 网站描述
	ConfigSiteDescription = "site_description"

	// ConfigAllowInit 是否允许初始化管理员账号 (true/false)
	ConfigAllowInit = "allow_init"

	// ConfigAllowRegister 是否开放注册 (true/false)
	ConfigAllowRegister = "allow_register"

	// ConfigMaxUploadSize 作品图片单个文件最大上传限制 (MB)
	ConfigMaxUploadSize = "max_upload_size"

	// ConfigMaxProfileUploadSize 头像图片最大上传限制 (MB)
	ConfigMaxProfileUploadSize = "max_profile_upload_size"

	// ConfigAllowFileExtensions 允许上传的文件扩展名 (逗号分隔)
	ConfigAllowFileExtensions = "allow_file_extensions"

	// ConfigRateLimitEnabled 是否开启限流
	ConfigRateLimitEnabled = "rate_limit_enabled"

	// ConfigRateLimitAuthRPS 认证接口限流 RPS
	ConfigRateLimitAuthRPS = "rate_limit_auth_rps"

	// ConfigRateLimitAuthBurst 认证接口限流 Burst
	ConfigRateLimitAuthBurst = "rate_limit_auth_burst"

	// ConfigRateLimitUploadRPS 上传接口限流 RPS
	ConfigRateLimitUploadRPS = "rate_limit_upload_rps"

	// ConfigRateLimitUploadBurst 上传接口限流 Burst
	ConfigRateLimitUploadBurst = "rate_limit_upload_burst"

	// ConfigRateLimitReportRPS 举报接口限流 RPS
	ConfigRateLimitReportRPS = "rate_limit_report_rps"

	// ConfigRateLimitReportBurst 举报接口限流 Burst
	ConfigRateLimitReportBurst = "rate_limit_report_burst"

	// ConfigMaxRequestBodySize 最大请求体限制 (MB)
	ConfigMaxRequestBodySize = "max_request_body_size"

	// ConfigStaticCacheControl 静态资源缓存设置 (Cache-Control header value)
	ConfigStaticCacheControl = "static_cache_control"

	// ConfigReportCaptchaEnabled 匿名举报是否需要图形验证码
	ConfigReportCaptchaEnabled = "report_captcha_enabled"
)
