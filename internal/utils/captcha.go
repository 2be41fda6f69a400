package utils

import "github.com/mojocn/base64Captcha"

var captchaStore = base64Captcha.DefaultMemStore

// MakeCaptcha 生成 4 位数字图形验证码（举报表单使用）
func MakeCaptcha() (id, b64s, answer string, err error) {
	// height: 80, width: 240, length: 4, maxSkew: 0.7, dotCount: 80
	driver := base64Captcha.NewDriverDigit(80, 240, 4, 0.7, 80)
	return base64Captcha.NewCaptcha(driver, captchaStore).Generate()
}

// VerifyCaptcha 校验验证码，校验后立即失效
func VerifyCaptcha(id string, answer string) bool {
	if id == "" || answer == "" {
		return false
	}
	return captchaStore.Verify(id, answer, true)
}
