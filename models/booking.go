package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Booking là một lượt đặt phòng trong danh sách bookings của phòng.
// CheckOut để trống với loại theo giờ (chỉ ở trong ngày CheckIn).
type Booking struct {
	ID           string `json:"id"`
	GuestName    string `json:"guestName"`
	Phone        string `json:"phone"`
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	CheckInTime  string `json:"checkInTime"`
	CheckOutTime string `json:"checkOutTime"`
	Adults       int    `json:"adults"`
	Note         string `json:"note"`
	CarPlate     string `json:"carPlate"`
	CarProvince  string `json:"carProvince"`
	StayType     string `json:"stayType"`
	BookedBy     string `json:"bookedBy"`
	Status       string `json:"status"`
}

// BookingList lưu danh sách booking dưới dạng cột jsonb trên bảng rooms
type BookingList []Booking

// Value serialize BookingList thành jsonb để lưu vào database
func (b BookingList) Value() (driver.Value, error) {
	if b == nil {
		return "[]", nil
	}
	data, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan đọc cột jsonb từ database vào BookingList
func (b *BookingList) Scan(value interface{}) error {
	if value == nil {
		*b = BookingList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("không thể scan kiểu %T vào BookingList", value)
	}

	if len(data) == 0 {
		*b = BookingList{}
		return nil
	}
	return json.Unmarshal(data, b)
}
