package constants

// Trạng thái phòng
const (
	RoomStatusAvailable = "available"
	RoomStatusBooked    = "booked"
	RoomStatusOccupied  = "occupied"
	RoomStatusCleaning  = "cleaning"
)

// Trạng thái booking (check-out hoặc hủy thì xóa hẳn record, không lưu lịch sử)
const (
	BookingStatusBooked   = "booked"
	BookingStatusOccupied = "occupied"
)

// Loại lưu trú
const (
	StayTypeDaily  = "daily"
	StayTypeHourly = "hourly"
)

// Giờ nhận/trả phòng cố định cho loại theo ngày
const (
	DailyCheckInTime  = "13:00"
	DailyCheckOutTime = "12:00"
)

// Khu vực
const (
	ZoneResort    = "resort"
	ZoneBuildingA = "building_a"
	ZoneBuildingB = "building_b"
)

// Role của user
const (
	RoleAdmin = 1
	RoleStaff = 2
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)
