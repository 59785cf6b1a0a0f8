package services

import (
	"fmt"

	"resort/constants"
	"resort/dto"
	"resort/errors"
	"resort/models"
	"resort/validator"

	"github.com/google/uuid"
)

// StrictOverlap bật chế độ chặn booking trùng khoảng ngày (mặc định tắt,
// giữ nguyên hành vi booking đứng trước thắng như tài liệu mô tả)
var StrictOverlap bool

// SetStrictOverlap thiết lập chế độ chặn booking trùng ngày
func SetStrictOverlap(enabled bool) {
	StrictOverlap = enabled
}

// NewBookingID sinh ID duy nhất cho booking
func NewBookingID() string {
	return "bk_" + uuid.NewString()
}

// cloneBookings copy danh sách booking để các thao tác không đụng vào phòng gốc
func cloneBookings(bookings models.BookingList) models.BookingList {
	cloned := make(models.BookingList, len(bookings))
	copy(cloned, bookings)
	return cloned
}

// newBookingFromRequest tạo booking mới với trạng thái booked.
// Loại theo ngày luôn dùng giờ 13:00/12:00 cố định bất kể form gửi gì;
// loại theo giờ chỉ ở trong ngày checkIn.
func newBookingFromRequest(guestName, phone, checkIn, checkOut, checkInTime, checkOutTime string, adults int, note, carPlate, carProvince, stayType, bookedBy string) models.Booking {
	b := models.Booking{
		ID:          NewBookingID(),
		GuestName:   guestName,
		Phone:       phone,
		CheckIn:     checkIn,
		Adults:      adults,
		Note:        note,
		CarPlate:    carPlate,
		CarProvince: carProvince,
		StayType:    stayType,
		BookedBy:    bookedBy,
		Status:      constants.BookingStatusBooked,
	}

	if stayType == constants.StayTypeHourly {
		b.CheckOut = checkIn
		b.CheckInTime = checkInTime
		b.CheckOutTime = checkOutTime
	} else {
		b.CheckOut = checkOut
		b.CheckInTime = constants.DailyCheckInTime
		b.CheckOutTime = constants.DailyCheckOutTime
	}
	return b
}

// checkOverlap kiểm tra booking mới có trùng khoảng với booking sẵn có không
// (chỉ dùng khi bật StrictOverlap). Theo giờ chỉ tính trùng khi cùng ngày
// và cùng giờ nhận phòng.
func checkOverlap(bookings models.BookingList, candidate models.Booking) error {
	for _, b := range bookings {
		if candidate.StayType == constants.StayTypeHourly || b.StayType == constants.StayTypeHourly {
			if b.StayType == candidate.StayType && b.CheckIn == candidate.CheckIn && b.CheckInTime == candidate.CheckInTime {
				return errors.NewAppError(errors.ErrCodeBookingOverlap,
					fmt.Sprintf("Phòng đã có booking theo giờ lúc %s ngày %s", b.CheckInTime, b.CheckIn), nil)
			}
			continue
		}

		bEnd := b.CheckOut
		if bEnd == "" {
			bEnd = b.CheckIn
		}
		cEnd := candidate.CheckOut
		if cEnd == "" {
			cEnd = candidate.CheckIn
		}
		// hai khoảng [checkIn, checkOut) giao nhau
		if candidate.CheckIn < bEnd && b.CheckIn < cEnd {
			return errors.NewAppError(errors.ErrCodeBookingOverlap,
				fmt.Sprintf("Khoảng ngày bị trùng với booking của khách %s", b.GuestName), nil)
		}
	}
	return nil
}

// CreateBooking tạo booking mới cho phòng đang trống. Trả về bản sao phòng
// đã cập nhật; lỗi validation thì phòng gốc giữ nguyên.
func CreateBooking(room models.Room, req dto.BookingRequest, bookedBy string) (models.Room, error) {
	if status := ComputeRoomStatus(room); status != constants.RoomStatusAvailable {
		return room, errors.NewAppError(errors.ErrCodeRoomNotAvailable,
			fmt.Sprintf("Phòng %s không trống (trạng thái: %s)", room.Number, status), nil)
	}

	if err := validator.ValidateBookingRequest(&req); err != nil {
		return room, err
	}

	booking := newBookingFromRequest(req.GuestName, req.Phone, req.CheckIn, req.CheckOut,
		req.CheckInTime, req.CheckOutTime, req.Adults, req.Note, req.CarPlate, req.CarProvince,
		req.StayType, bookedBy)

	if StrictOverlap {
		if err := checkOverlap(room.Bookings, booking); err != nil {
			return room, err
		}
	}

	room.Bookings = append(cloneBookings(room.Bookings), booking)
	return room, nil
}

// AddContinuationBooking thêm booking nối tiếp vào phòng đang có booking active,
// xếp hàng lượt ở tương lai mà không chặn lượt hiện tại
func AddContinuationBooking(room models.Room, req dto.BookingRequest, bookedBy string) (models.Room, error) {
	if GetActiveBooking(room) == nil {
		return room, errors.NewAppError(errors.ErrCodeNoActiveBooking,
			"Phòng chưa có booking active, hãy dùng thao tác đặt phòng thường", nil)
	}

	if err := validator.ValidateBookingRequest(&req); err != nil {
		return room, err
	}

	booking := newBookingFromRequest(req.GuestName, req.Phone, req.CheckIn, req.CheckOut,
		req.CheckInTime, req.CheckOutTime, req.Adults, req.Note, req.CarPlate, req.CarProvince,
		req.StayType, bookedBy)

	if StrictOverlap {
		if err := checkOverlap(room.Bookings, booking); err != nil {
			return room, err
		}
	}

	room.Bookings = append(cloneBookings(room.Bookings), booking)
	return room, nil
}

// CheckInBooking chuyển booking active từ booked sang occupied
func CheckInBooking(room models.Room) (models.Room, error) {
	active := GetActiveBooking(room)
	if active == nil {
		return room, errors.NewAppError(errors.ErrCodeNoActiveBooking, "Phòng chưa có booking để check-in", nil)
	}
	if active.Status != constants.BookingStatusBooked {
		return room, errors.NewAppError(errors.ErrCodeBookingNotBooked, "Khách đã check-in rồi", nil)
	}

	bookings := cloneBookings(room.Bookings)
	for i := range bookings {
		if bookings[i].ID == active.ID {
			bookings[i].Status = constants.BookingStatusOccupied
			break
		}
	}
	room.Bookings = bookings
	return room, nil
}

// CheckOutBooking xóa hẳn booking active khỏi phòng và chuyển phòng sang
// trạng thái dọn dẹp. Cho phép check-out cả booking chưa check-in (đường tắt trên UI).
func CheckOutBooking(room models.Room) (models.Room, error) {
	active := GetActiveBooking(room)
	if active == nil {
		return room, errors.NewAppError(errors.ErrCodeNoActiveBooking, "Phòng chưa có booking để check-out", nil)
	}

	room.Bookings = removeBooking(room.Bookings, active.ID)
	room.Status = constants.RoomStatusCleaning
	return room, nil
}

// MarkRoomCleaned chuyển phòng từ dọn dẹp về trống. Phòng không ở trạng thái
// dọn dẹp thì báo lỗi chứ không bỏ qua im lặng.
func MarkRoomCleaned(room models.Room) (models.Room, error) {
	if room.Status != constants.RoomStatusCleaning {
		return room, errors.NewAppError(errors.ErrCodeRoomNotCleaning,
			fmt.Sprintf("Phòng %s không ở trạng thái dọn dẹp", room.Number), nil)
	}

	room.Status = constants.RoomStatusAvailable
	return room, nil
}

// CancelActiveBooking xóa booking active khỏi phòng; còn booking khác thì
// lượt kế tiếp tự thành active ở lần resolve sau, hết booking thì phòng về trống
func CancelActiveBooking(room models.Room) (models.Room, error) {
	active := GetActiveBooking(room)
	if active == nil {
		return room, errors.NewAppError(errors.ErrCodeNoActiveBooking, "Phòng chưa có booking để hủy", nil)
	}

	room.Bookings = removeBooking(room.Bookings, active.ID)
	if len(room.Bookings) == 0 {
		room.Status = constants.RoomStatusAvailable
	}
	return room, nil
}

// UpdateGuestInfo sửa thông tin khách trên booking active, không đụng vào
// ngày và trạng thái
func UpdateGuestInfo(room models.Room, guestName, phone, carPlate, carProvince, note string) (models.Room, error) {
	active := GetActiveBooking(room)
	if active == nil {
		return room, errors.NewAppError(errors.ErrCodeNoActiveBooking, "Phòng chưa có booking để sửa", nil)
	}

	bookings := cloneBookings(room.Bookings)
	for i := range bookings {
		if bookings[i].ID != active.ID {
			continue
		}
		if guestName != "" {
			bookings[i].GuestName = guestName
		}
		if phone != "" {
			bookings[i].Phone = phone
		}
		if carPlate != "" {
			bookings[i].CarPlate = carPlate
		}
		if carProvince != "" {
			bookings[i].CarProvince = carProvince
		}
		if note != "" {
			bookings[i].Note = note
		}
		break
	}
	room.Bookings = bookings
	return room, nil
}

// removeBooking trả về danh sách mới không còn booking có id tương ứng
func removeBooking(bookings models.BookingList, id string) models.BookingList {
	result := make(models.BookingList, 0, len(bookings))
	for _, b := range bookings {
		if b.ID != id {
			result = append(result, b)
		}
	}
	return result
}
