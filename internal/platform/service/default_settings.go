package service

import (
	"art-atlas-server/internal/consts"
	"art-atlas-server/internal/model"
)

var DefaultSettings = []model.Setting{
	{Key: consts.ConfigSiteName, Value: "Indigenous Art Atlas", Desc: "网站名称", Category: "site"},
	{Key: consts.ConfigSiteDescription, Value: "A community atlas of Indigenous artworks", Desc: "网站描述", Category: "site"},
	{Key: consts.ConfigAllowInit, Value: "true", Desc: "是否允许初始化管理员账号", Category: "site"},
	{Key: consts.ConfigAllowRegister, Value: "true", Desc: "是否开放注册 (true/false)", Category: "account"},
	{Key: consts.ConfigReportCaptchaEnabled, Value: "false", Desc: "举报是否需要图形验证码", Category: "account"},
	{Key: consts.ConfigMaxUploadSize, Value: "5", Desc: "作品图片单个文件最大大小 (MB)", Category: "upload"},
	{Key: consts.ConfigMaxProfileUploadSize, Value: "2", Desc: "头像图片最大大小 (MB)", Category: "upload"},
	{Key: consts.ConfigAllowFileExtensions, Value: ".jpg,.jpeg,.png,.gif,.webp", Desc: "允许上传的文件扩展名", Category: "upload"},
	{Key: consts.ConfigRateLimitEnabled, Value: "true", Desc: "是否开启接口限流", Category: "security"},
	{Key: consts.ConfigRateLimitAuthRPS, Value: "0.5", Desc: "认证接口每秒请求限制 (RPS)", Category: "security"},
	{Key: consts.ConfigRateLimitAuthBurst, Value: "5", Desc: "认证接口突发请求限制", Category: "security"},
	{Key: consts.ConfigRateLimitUploadRPS, Value: "1.0", Desc: "上传接口每秒请求限制 (RPS)", Category: "security"},
	{Key: consts.ConfigRateLimitUploadBurst, Value: "5", Desc: "上传接口突发请求限制", Category: "security"},
	{Key: consts.ConfigRateLimitReportRPS, Value: "0.2", Desc: "举报接口每秒请求限制 (RPS)", Category: "security"},
	{Key: consts.ConfigRateLimitReportBurst, Value: "3", Desc: "举报接口突发请求限制", Category: "security"},
	{Key: consts.ConfigMaxRequestBodySize, Value: "2", Desc: "非文件上传接口最大请求体限制 (MB)", Category: "security"},
	{Key: consts.ConfigStaticCacheControl, Value: "public, max-age=31536000", Desc: "静态资源缓存设置 (Cache-Control)", Category: "upload"},
}
