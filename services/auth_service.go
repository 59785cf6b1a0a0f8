package services

import (
	"log"
	"os"
	"time"

	"resort/constants"
	"resort/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// secretKey đọc lúc dùng để chắc chắn .env đã được load
func secretKey() []byte {
	return []byte(os.Getenv("SECRET_KEY"))
}

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// GenerateToken tạo access token HS256 chứa userid và role
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// VerifyToken parse và kiểm tra chữ ký token, trả về claims
func VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secretKey(), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// defaultUsers là các tài khoản nhân viên mặc định của resort
// (đổi mật khẩu qua dashboard sau khi seed)
var defaultUsers = []struct {
	Username    string
	Password    string
	DisplayName string
	Role        int
}{
	{Username: "admin", Password: "admin1234", DisplayName: "Admin", Role: constants.RoleAdmin},
	{Username: "user1", Password: "user1234", DisplayName: "พนักงาน 1", Role: constants.RoleStaff},
	{Username: "user2", Password: "user2234", DisplayName: "พนักงาน 2", Role: constants.RoleStaff},
}

// SeedUsersIfEmpty chèn tài khoản nhân viên mặc định nếu bảng users còn trống
func SeedUsersIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, u := range defaultUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{
			Username:    u.Username,
			Password:    string(hashed),
			DisplayName: u.DisplayName,
			Role:        u.Role,
			Status:      constants.UserStatusActive,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}
	log.Printf("Đã seed %d tài khoản nhân viên", len(defaultUsers))
	return nil
}
