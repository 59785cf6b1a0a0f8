package services

import (
	"sort"
	"time"

	"resort/constants"
	"resort/models"
)

// TodayStr trả về ngày hiện tại theo giờ resort (Asia/Bangkok), dạng ISO yyyy-mm-dd.
// Các hàm resolution nhận ngày tham chiếu từ caller, không tự đọc đồng hồ.
func TodayStr() string {
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		return time.Now().Format("2006-01-02")
	}
	return time.Now().In(loc).Format("2006-01-02")
}

// GetActiveBooking lấy booking đang active của phòng: booking có checkIn sớm nhất
// trong số các booking booked/occupied. So sánh chuỗi ISO là đúng theo ngày.
// Khi checkIn bằng nhau thì giữ thứ tự trong danh sách (sort ổn định).
func GetActiveBooking(room models.Room) *models.Booking {
	if len(room.Bookings) == 0 {
		return nil
	}

	active := make([]models.Booking, 0, len(room.Bookings))
	for _, b := range room.Bookings {
		if b.Status == constants.BookingStatusBooked || b.Status == constants.BookingStatusOccupied {
			active = append(active, b)
		}
	}
	if len(active) == 0 {
		return nil
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CheckIn < active[j].CheckIn
	})

	result := active[0]
	return &result
}

// ComputeRoomStatus tính trạng thái hiển thị realtime của phòng từ danh sách booking.
// Chỉ qua đường này cleaning và available mới xuất hiện (từ trường Status lưu trên phòng).
func ComputeRoomStatus(room models.Room) string {
	for _, b := range room.Bookings {
		if b.Status == constants.BookingStatusOccupied {
			return constants.RoomStatusOccupied
		}
	}
	for _, b := range room.Bookings {
		if b.Status == constants.BookingStatusBooked {
			return constants.RoomStatusBooked
		}
	}
	return room.Status
}

// bookingCoversDate kiểm tra booking có phủ ngày date không.
// Theo giờ: chỉ đúng ngày checkIn. Theo ngày: ngày checkOut là ngày trống
// (khách trả 12:00, khách mới nhận 13:00 cùng ngày) nên date < checkOut.
func bookingCoversDate(b models.Booking, date string) bool {
	if b.CheckIn == "" {
		return false
	}
	if b.StayType == constants.StayTypeHourly {
		return b.CheckIn == date
	}
	if b.CheckOut == "" {
		return b.CheckIn <= date && date <= b.CheckIn
	}
	return b.CheckIn <= date && date < b.CheckOut
}

// GetRoomStatusOnDate tính trạng thái phòng vào một ngày bất kỳ.
// today là ngày tham chiếu do caller cung cấp; nếu date là hôm nay thì
// trả trạng thái realtime (bao gồm cleaning). Nhiều booking cùng phủ một
// ngày thì booking đứng trước trong danh sách thắng.
func GetRoomStatusOnDate(room models.Room, date string, today string) string {
	if date == today {
		return ComputeRoomStatus(room)
	}

	for _, b := range room.Bookings {
		if bookingCoversDate(b, date) {
			if b.Status == constants.BookingStatusOccupied {
				return constants.RoomStatusOccupied
			}
			return constants.RoomStatusBooked
		}
	}
	return constants.RoomStatusAvailable
}

// GetBookingOnDate lấy booking phủ ngày date; với hôm nay trả booking đang active
func GetBookingOnDate(room models.Room, date string, today string) *models.Booking {
	if date == today {
		return GetActiveBooking(room)
	}

	for _, b := range room.Bookings {
		if bookingCoversDate(b, date) {
			result := b
			return &result
		}
	}
	return nil
}
