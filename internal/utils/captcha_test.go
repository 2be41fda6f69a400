package utils

import "testing"

// 测试内容：验证验证码生成、正确校验、一次性失效及空参数失败。
func TestCaptcha_GenerateAndVerify(t *testing.T) {
	id, b64, answer, err := MakeCaptcha()
	if err != nil {
		t.Fatalf("MakeCaptcha 错误: %v", err)
	}
	if id == "" || b64 == "" || answer == "" {
		t.Fatalf("期望验证码字段非空, id=%q answer=%q", id, answer)
	}
	if !VerifyCaptcha(id, answer) {
		t.Fatalf("期望正确答案校验通过")
	}
	if VerifyCaptcha(id, answer) {
		t.Fatalf("期望验证码使用后失效")
	}
	if VerifyCaptcha("", "") {
		t.Fatalf("期望空参数校验失败")
	}
}
