package models

import (
	"fmt"
	"time"

	"resort/constants"
)

// Room là một phòng trong resort. Trường Status chỉ có thẩm quyền với
// cleaning và available-khi-không-có-booking; trạng thái hiển thị phải
// lấy qua hàm resolution, không đọc trực tiếp trường này.
type Room struct {
	RoomId    string      `json:"id" gorm:"column:room_id;primaryKey"`
	Number    string      `json:"number"`
	Zone      string      `json:"zone" gorm:"index"`
	Type      string      `json:"type"`
	Floor     *int        `json:"floor"`
	Building  *string     `json:"building"`
	Status    string      `json:"status" gorm:"default:available"`
	Bookings  BookingList `json:"bookings" gorm:"type:jsonb"`
	Version   int         `json:"version" gorm:"default:1"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ValidateStatus kiểm tra trạng thái lưu trên phòng có hợp lệ không
func (r *Room) ValidateStatus() error {
	switch r.Status {
	case constants.RoomStatusAvailable, constants.RoomStatusBooked,
		constants.RoomStatusOccupied, constants.RoomStatusCleaning:
		return nil
	}
	return fmt.Errorf("trạng thái không hợp lệ: %s", r.Status)
}
