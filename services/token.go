package services

import (
	"resort/errors"
)

// GetUserIDFromToken lấy userID và role từ access token
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	claims, err := VerifyToken(tokenString)
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}

	if claims.UserInfo.UserId == 0 {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy thông tin user trong token", nil)
	}

	return claims.UserInfo.UserId, claims.UserInfo.Role, nil
}
