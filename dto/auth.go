package dto

import "time"

// LoginInput là DTO cho request đăng nhập
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserLoginResponse là DTO cho thông tin user trả về khi đăng nhập
type UserLoginResponse struct {
	UserID      uint      `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	UserRole    int       `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
