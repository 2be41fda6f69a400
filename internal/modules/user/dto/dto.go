package dto

// UpdateUserRequest 管理员修改账号，未出现的字段保持不变。
// user_id 与路径参数二选一，兼容旧版 admin.php 的请求体。
type UpdateUserRequest struct {
	UserID   string  `json:"user_id"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Region   *string `json:"region"`
	Nation   *string `json:"nation"`
	Bio      *string `json:"bio"`
	ImageURL *string `json:"imageUrl"`
	Phone    *string `json:"phone"`
	Dob      *string `json:"dob"`
	Gender   *string `json:"gender"`
}

type UserIDRequest struct {
	UserID string `json:"user_id"`
}

type SetUserStatusRequest struct {
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

// UpdateProfileRequest 用户修改自己的资料，不允许修改角色与邮箱
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Region   *string `json:"region"`
	Nation   *string `json:"nation"`
	Bio      *string `json:"bio"`
	ImageURL *string `json:"imageUrl"`
	Phone    *string `json:"phone"`
	Dob      *string `json:"dob"`
	Gender   *string `json:"gender"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ArtistInfo 作品详情页展示的作者资料
type ArtistInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Nation   string `json:"nation"`
	Region   string `json:"region"`
	ImageURL string `json:"imageUrl"`
}
