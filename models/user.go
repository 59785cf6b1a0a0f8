package models

import "time"

// User là tài khoản nhân viên của dashboard (admin hoặc staff)
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Username    string    `gorm:"unique;not null" json:"username"`
	Password    string    `json:"-"`
	DisplayName string    `json:"displayName"`
	Role        int       `gorm:"default:2" json:"role"`
	Status      int       `gorm:"default:1" json:"status"`
}
