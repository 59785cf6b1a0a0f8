package services

import (
	"errors"
	"log"
	"time"

	"resort/config"
	"resort/constants"
	apperrors "resort/errors"
	"resort/models"

	"gorm.io/gorm"
)

// RoomsCacheKey là key cache danh sách phòng trên Redis
var RoomsCacheKey = "rooms:all"

// ListRooms lấy toàn bộ phòng theo thứ tự id, ưu tiên cache Redis
func ListRooms() ([]models.Room, error) {
	var rooms []models.Room

	if config.RedisClient != nil {
		if err := GetFromRedis(config.Ctx, config.RedisClient, RoomsCacheKey, &rooms); err == nil && len(rooms) > 0 {
			return rooms, nil
		}
	}

	if err := config.DB.Order("room_id").Find(&rooms).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể lấy danh sách phòng", err)
	}

	if config.RedisClient != nil {
		if err := SetToRedis(config.Ctx, config.RedisClient, RoomsCacheKey, rooms, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách phòng vào Redis: %v", err)
		}
	}

	return rooms, nil
}

// GetRoom lấy một phòng theo id từ database (bỏ qua cache để thao tác
// mutation luôn đọc trạng thái mới nhất)
func GetRoom(roomId string) (models.Room, error) {
	var room models.Room
	if err := config.DB.First(&room, "room_id = ?", roomId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Không tìm thấy phòng "+roomId, err)
		}
		return room, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể lấy thông tin phòng", err)
	}
	return room, nil
}

// SaveRoom ghi trạng thái + danh sách booking của phòng bằng update có điều
// kiện theo version. Hai phiên cùng sửa một phòng thì phiên ghi sau nhận
// lỗi conflict thay vì đè dữ liệu nhau; caller phải đọc lại từ server.
func SaveRoom(room models.Room) (models.Room, error) {
	previousVersion := room.Version
	room.Version = previousVersion + 1

	result := config.DB.Model(&models.Room{}).
		Where("room_id = ? AND version = ?", room.RoomId, previousVersion).
		Updates(map[string]interface{}{
			"status":   room.Status,
			"bookings": room.Bookings,
			"version":  room.Version,
		})
	if result.Error != nil {
		return room, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể lưu phòng", result.Error)
	}
	if result.RowsAffected == 0 {
		return room, apperrors.NewAppError(apperrors.ErrCodeVersionConflict,
			"Phòng vừa được cập nhật bởi phiên khác", nil)
	}

	InvalidateRoomCache()
	return room, nil
}

// InvalidateRoomCache xóa cache danh sách phòng sau khi ghi thành công
func InvalidateRoomCache() {
	if config.RedisClient == nil {
		return
	}
	if err := DeleteFromRedis(config.Ctx, config.RedisClient, RoomsCacheKey); err != nil {
		log.Printf("Lỗi khi xóa cache phòng: %v", err)
	}
}

// ResetAllRooms đưa toàn bộ phòng về trạng thái trống, xóa hết booking
// (chỉ admin dùng, phục vụ dọn dữ liệu demo/đầu mùa)
func ResetAllRooms() error {
	result := config.DB.Model(&models.Room{}).
		Where("1 = 1").
		Updates(map[string]interface{}{
			"status":   constants.RoomStatusAvailable,
			"bookings": models.BookingList{},
			"version":  gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Không thể reset danh sách phòng", result.Error)
	}

	InvalidateRoomCache()
	return nil
}
