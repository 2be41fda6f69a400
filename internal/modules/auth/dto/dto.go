package dto

import "art-atlas-server/internal/model"

// RegisterRequest 必填项在服务层逐项校验，以便返回具体的字段名
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Region   string `json:"region"`
	Nation   string `json:"nation"`
	Bio      string `json:"bio"`
	ImageURL string `json:"imageUrl"`
}

// LoginRequest username 字段也接受邮箱
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LogoutRequest struct {
	SessionID string `json:"session_id"`
}

type RegisterResponse struct {
	User *model.User `json:"user"`
}

type LoginResponse struct {
	User      *model.User `json:"user"`
	SessionID string      `json:"session_id"`
}

type VerifyResponse struct {
	User    *model.User    `json:"user"`
	Session *model.Session `json:"session"`
}

type CaptchaResponse struct {
	CaptchaID    string `json:"captcha_id"`
	CaptchaImage string `json:"captcha_image"`
}
