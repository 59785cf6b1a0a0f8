package services

import (
	"strings"
	"testing"

	"resort/constants"
	"resort/dto"
	apperrors "resort/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dailyRequest() dto.BookingRequest {
	return dto.BookingRequest{
		RoomId:    "R-01",
		GuestName: "Nguyen Van A",
		Phone:     "0912345678",
		CheckIn:   "2024-06-01",
		CheckOut:  "2024-06-03",
		Adults:    2,
		StayType:  constants.StayTypeDaily,
	}
}

func hourlyRequest() dto.BookingRequest {
	return dto.BookingRequest{
		RoomId:       "R-01",
		GuestName:    "Tran Thi B",
		CheckIn:      "2024-06-01",
		CheckInTime:  "14:00",
		CheckOutTime: "18:00",
		StayType:     constants.StayTypeHourly,
	}
}

func assertErrCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestNewBookingIDUnique(t *testing.T) {
	first := NewBookingID()
	second := NewBookingID()

	assert.True(t, strings.HasPrefix(first, "bk_"))
	assert.NotEqual(t, first, second)
}

func TestCreateBookingDaily(t *testing.T) {
	room := makeRoom(constants.RoomStatusAvailable)

	// Request cố tình gửi giờ lạ, loại theo ngày phải ghi đè bằng giờ chuẩn
	req := dailyRequest()
	req.CheckInTime = "09:00"
	req.CheckOutTime = "20:00"

	updated, err := CreateBooking(room, req, "Admin")
	require.NoError(t, err)
	require.Len(t, updated.Bookings, 1)

	b := updated.Bookings[0]
	assert.True(t, strings.HasPrefix(b.ID, "bk_"))
	assert.Equal(t, "Nguyen Van A", b.GuestName)
	assert.Equal(t, "2024-06-01", b.CheckIn)
	assert.Equal(t, "2024-06-03", b.CheckOut)
	assert.Equal(t, constants.DailyCheckInTime, b.CheckInTime)
	assert.Equal(t, constants.DailyCheckOutTime, b.CheckOutTime)
	assert.Equal(t, constants.BookingStatusBooked, b.Status)
	assert.Equal(t, "Admin", b.BookedBy)
}

func TestCreateBookingHourlyStaysWithinDay(t *testing.T) {
	room := makeRoom(constants.RoomStatusAvailable)

	updated, err := CreateBooking(room, hourlyRequest(), "Admin")
	require.NoError(t, err)
	require.Len(t, updated.Bookings, 1)

	b := updated.Bookings[0]
	assert.Equal(t, "2024-06-01", b.CheckIn)
	assert.Equal(t, "2024-06-01", b.CheckOut)
	assert.Equal(t, "14:00", b.CheckInTime)
	assert.Equal(t, "18:00", b.CheckOutTime)
}

func TestCreateBookingRoomNotAvailable(t *testing.T) {
	room := makeRoom(constants.RoomStatusAvailable,
		dailyBooking("b1", "2024-06-01", "2024-06-03", constants.BookingStatusOccupied),
	)

	_, err := CreateBooking(room, dailyRequest(), "Admin")
	assertErrCode(t, err, apperrors.ErrCodeRoomNotAvailable)
}

func TestCreateBookingCleaningRoomRejected(t *testing.T) {
	room := makeRoom(constants.RoomStatusCleaning)

	_, err := CreateBooking(room, dailyRequest(), "Admin")
	assertErrCode(t, err, apperrors.ErrCodeRoomNotAvailable)
}

func TestCreateBookingValidationFailureKeepsRoomUntouched(t *testing.T) {
	room := makeRoom(constants.RoomStatusAvailable)

	req := dailyRequest()
	req.GuestName = "   "

	result, err := CreateBooking(room, req, "Admin")
	assertErrCode(t, err, apperrors.ErrCodeRequiredField)
	assert.Len(t, result.Bookings, 0)
	assert.Len(t, room.Bookings, 0)
}

func TestCreateBookingDoesNotMutateInput(t *testing.T) {
	room := makeRoom(constants.RoomStatusAvailable)

	updated, err := CreateBooking(room, dailyRequest(), "Admin")
	require.NoError(t, err)

	assert.Len(t, room.Bookings, 0)
	assert.Len(t, updated.Bookings, 1)
}

func TestCreateBookingStrictOverlap(t *testing.T) {
	SetStrictOverlap(true)
	defer SetStrictOverlap(false)

	room := makeRoom(constants.RoomStatusAvailable,
		dailyBooking("b1", "2024-06-01", "2024-06-03", constants.BookingStatusBooked),
	)

	// Phòng đang booked nên đặt thường bị chặn, phải đi đường nối tiếp
	req := dailyRequest()
	req.CheckIn = "2024-06-02"
	req.CheckOut = "2024-06-04"
	_, err := AddContinuationBooking(room, req, "Admin")
	assertErrCode(t, err, apperrors.ErrCodeBookingOverlap)

	// Nhận phòng đúng ngày trả của booking trước thì không trùng
	req.CheckIn = "2024-06-03"
	req.CheckOut = "2024-06-05"
	updated, err := AddContinuationBooking(room, req, "Admin")
	require.NoError(t, err)
	assert.Len(t, updated.Bookings, 2)
}

func TestAddContinuationBookingRequiresActive(t *testing.T) {
	room := makeRoom(constants.RoomStatusAvailable)

	_, err := AddContinuationBooking(room, dailyRequest(), "Admin")
	assertErrCode(t, err, apperrors.ErrCodeNoActiveBooking)
}

func TestAddContinuationBookingQueuesBehindActive(t *testing.T) {
	room := makeRoom(constants.RoomStatusAvailable,
		dailyBooking("b1", "2024-06-01", "2024-06-03", constants.BookingStatusOccupied),
	)

	req := dailyRequest()
	req.CheckIn = "2024-06-03"
	req.CheckOut = "2024-06-05"

	updated, err := AddContinuationBooking(room, req, "Admin")
	require.NoError(t, err)
	require.Len(t, updated.Bookings, 2)

	// Lượt đang ở vẫn là active
	active := GetActiveBooking(updated)
	require.NotNil(t, active)
	assert.Equal(t, "b1", active.ID)
}

func TestCheckInBooking(t *testing.T) {
	room := makeRoom(constants.RoomStatusAvailable,
		dailyBooking("b1", "2024-06-01", "2024-06-03", constants.BookingStatusBooked),
	)

	updated, err := CheckInBooking(room)
	require.NoError(t, err)
	assert.Equal(t, constants.BookingStatusOccupied, updated.Bookings[0].Status)

	// Phòng gốc không bị sửa
	assert.Equal(t, constants.BookingStatusBooked, room.Bookings[0].Status)
}

func TestCheckInBookingAlreadyOccupied(t *testing.T) {
	room := makeRoom(constants.RoomStatusAvailable,
		dailyBooking("b1", "2024-06-01", "2024-06-03", constants.BookingStatusOccupied),
	)

	_, err := CheckInBooking(room)
	assertErrCode(t, err, apperrors.ErrCodeBookingNotBooked)
}

func TestCheckInBookingNoActive(t *testing.T) {
	room := makeRoom(constants.RoomStatusAvailable)

	_, err := CheckInBooking(room)
	assertErrCode(t, err, apperrors.ErrCodeNoActiveBooking)
}

func TestCheckOutBookingRemovesAndSetsCleaning(t *testing.T) {
	room := makeRoom(constants.RoomStatusAvailable,
		dailyBooking("b1", "2024-06-01", "2024-06-03", constants.BookingStatusOccupied),
	)

	updated, err := CheckOutBooking(room)
	require.NoError(t, err)
	assert.Len(t, updated.Bookings, 0)
	assert.Equal(t, constants.RoomStatusCleaning, updated.Status)
}

func TestCheckOutBookingAllowedFromBooked(t *testing.T) {
	room := makeRoom(constants.RoomStatusAvailable,
		dailyBooking("b1", "2024-06-01", "2024-06-03", constants.BookingStatusBooked),
	)

	updated, err := CheckOutBooking(room)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusCleaning, updated.Status)
}

func TestCheckOutBookingKeepsQueuedBookings(t *testing.T) {
	room := makeRoom(constants.RoomStatusAvailable,
		dailyBooking("b1", "2024-06-01", "2024-06-03", constants.BookingStatusOccupied),
		dailyBooking("b2", "2024-06-03", "2024-06-05", constants.BookingStatusBooked),
	)

	updated, err := CheckOutBooking(room)
	require.NoError(t, err)
	require.Len(t, updated.Bookings, 1)
	assert.Equal(t, "b2", updated.Bookings[0].ID)
	// Booking xếp hàng còn đó nên trạng thái hiển thị là booked chứ không phải cleaning
	assert.Equal(t, constants.RoomStatusBooked, ComputeRoomStatus(updated))
}

func TestMarkRoomCleaned(t *testing.T) {
	room := makeRoom(constants.RoomStatusCleaning)

	updated, err := MarkRoomCleaned(room)
	require.NoError(t, err)
	assert.Equal(t, constants.RoomStatusAvailable, updated.Status)
}

func TestMarkRoomCleanedRejectsNonCleaningRoom(t *testing.T) {
	room := makeRoom(constants.RoomStatusAvailable)

	_, err := MarkRoomCleaned(room)
	assertErrCode(t, err, apperrors.ErrCodeRoomNotCleaning)
}

func TestCancelActiveBookingPromotesNext(t *testing.T) {
	room := makeRoom(constants.RoomStatusAvailable,
		dailyBooking("b1", "2024-06-01", "2024-06-03", constants.BookingStatusBooked),
		dailyBooking("b2", "2024-06-03", "2024-06-05", constants.BookingStatusBooked),
	)

	updated, err := CancelActiveBooking(room)
	require.NoError(t, err)
	require.Len(t, updated.Bookings, 1)

	active := GetActiveBooking(updated)
	require.NotNil(t, active)
	assert.Equal(t, "b2", active.ID)
}

func TestCancelLastBookingFreesRoom(t *testing.T) {
	room := makeRoom(constants.RoomStatusBooked,
		dailyBooking("b1", "2024-06-01", "2024-06-03", constants.BookingStatusBooked),
	)

	updated, err := CancelActiveBooking(room)
	require.NoError(t, err)
	assert.Len(t, updated.Bookings, 0)
	assert.Equal(t, constants.RoomStatusAvailable, updated.Status)
}

func TestUpdateGuestInfoAppliesNonEmptyFields(t *testing.T) {
	room := makeRoom(constants.RoomStatusAvailable,
		dailyBooking("b1", "2024-06-01", "2024-06-03", constants.BookingStatusOccupied),
	)

	updated, err := UpdateGuestInfo(room, "Le Van C", "", "51A-12345", "", "khách quen")
	require.NoError(t, err)

	b := updated.Bookings[0]
	assert.Equal(t, "Le Van C", b.GuestName)
	assert.Equal(t, "51A-12345", b.CarPlate)
	assert.Equal(t, "khách quen", b.Note)
	// Trường để trống giữ nguyên giá trị cũ
	assert.Equal(t, room.Bookings[0].Phone, b.Phone)
	// Ngày giờ không bị đụng tới
	assert.Equal(t, "2024-06-01", b.CheckIn)
	assert.Equal(t, "2024-06-03", b.CheckOut)
}

func TestUpdateGuestInfoOnlyTouchesActiveBooking(t *testing.T) {
	room := makeRoom(constants.RoomStatusAvailable,
		dailyBooking("b1", "2024-06-01", "2024-06-03", constants.BookingStatusOccupied),
		dailyBooking("b2", "2024-06-03", "2024-06-05", constants.BookingStatusBooked),
	)

	updated, err := UpdateGuestInfo(room, "Le Van C", "", "", "", "")
	require.NoError(t, err)

	assert.Equal(t, "Le Van C", updated.Bookings[0].GuestName)
	assert.Equal(t, "Nguyen Van A", updated.Bookings[1].GuestName)
}

func TestUpdateGuestInfoNoActiveBooking(t *testing.T) {
	room := makeRoom(constants.RoomStatusAvailable)

	_, err := UpdateGuestInfo(room, "Le Van C", "", "", "", "")
	assertErrCode(t, err, apperrors.ErrCodeNoActiveBooking)
}
