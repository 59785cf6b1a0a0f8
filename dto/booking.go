package dto

// BookingRequest là DTO cho request tạo booking mới hoặc booking nối tiếp
type BookingRequest struct {
	RoomId       string `json:"roomId" binding:"required"`
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
}

// RoomActionRequest là DTO cho các thao tác theo phòng (check-in, check-out, dọn xong, hủy)
type RoomActionRequest struct {
	RoomId string `json:"roomId" binding:"required"`
}

// GuestUpdateRequest là DTO cho request sửa thông tin khách của booking đang active
type GuestUpdateRequest struct {
	RoomId      string `json:"roomId" binding:"required"`
	GuestName   string `json:"guestName"`
	Phone       string `json:"phone"`
	CarPlate    string `json:"carPlate"`
	CarProvince string `json:"carProvince"`
	Note        string `json:"note"`
}
