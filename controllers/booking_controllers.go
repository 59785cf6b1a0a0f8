package controllers

import (
	"resort/dto"
	"resort/models"
	"resort/response"
	"resort/services"
	"resort/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// BookingController gom các thao tác thay đổi trạng thái phòng; mọi thao tác
// ghi đều broadcast phòng mới qua WebSocket cho các dashboard đang mở
type BookingController struct {
	DB     *gorm.DB
	Melody *melody.Melody
	Logger logger.Logger
}

func NewBookingController(db *gorm.DB, m *melody.Melody, l logger.Logger) BookingController {
	return BookingController{
		DB:     db,
		Melody: m,
		Logger: l,
	}
}

// bookedByName lấy tên hiển thị của nhân viên đang thao tác để ghi vào booking
func (bc BookingController) bookedByName(c *gin.Context) string {
	userID := c.GetUint("userID")
	if userID == 0 {
		return ""
	}

	var user models.User
	if err := bc.DB.First(&user, userID).Error; err != nil {
		return ""
	}
	if user.DisplayName != "" {
		return user.DisplayName
	}
	return user.Username
}

// saveAndRespond lưu phòng với update có điều kiện theo version,
// broadcast và trả phòng mới về cho client
func (bc BookingController) saveAndRespond(c *gin.Context, room models.Room, action string) {
	saved, err := services.SaveRoom(room)
	if err != nil {
		bc.Logger.Error("Lỗi khi lưu phòng %s (%s): %v", room.RoomId, action, err)
		handleServiceError(c, err)
		return
	}

	bc.Logger.Info("Phòng %s: %s thành công (version %d)", saved.RoomId, action, saved.Version)
	services.BroadcastRoomUpdate(bc.Melody, saved)
	response.Success(c, toRoomResponse(saved))
}

// CreateBooking đặt phòng mới cho phòng đang trống
func (bc BookingController) CreateBooking(c *gin.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room, err := services.GetRoom(req.RoomId)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	updated, err := services.CreateBooking(room, req, bc.bookedByName(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	bc.saveAndRespond(c, updated, "đặt phòng")
}

// ContinueBooking thêm booking nối tiếp cho phòng đang có khách,
// xếp hàng lượt ở sau mà không chặn lượt hiện tại
func (bc BookingController) ContinueBooking(c *gin.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room, err := services.GetRoom(req.RoomId)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	updated, err := services.AddContinuationBooking(room, req, bc.bookedByName(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	bc.saveAndRespond(c, updated, "đặt nối tiếp")
}

// CheckIn chuyển booking active của phòng từ booked sang occupied
func (bc BookingController) CheckIn(c *gin.Context) {
	var req dto.RoomActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room, err := services.GetRoom(req.RoomId)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	updated, err := services.CheckInBooking(room)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	bc.saveAndRespond(c, updated, "check-in")
}

// CheckOut trả phòng: xóa booking active và chuyển phòng sang dọn dẹp
func (bc BookingController) CheckOut(c *gin.Context) {
	var req dto.RoomActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room, err := services.GetRoom(req.RoomId)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	updated, err := services.CheckOutBooking(room)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	bc.saveAndRespond(c, updated, "check-out")
}

// MarkCleaned xác nhận phòng đã dọn xong, chuyển về trống
func (bc BookingController) MarkCleaned(c *gin.Context) {
	var req dto.RoomActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room, err := services.GetRoom(req.RoomId)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	updated, err := services.MarkRoomCleaned(room)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	bc.saveAndRespond(c, updated, "dọn xong")
}

// CancelBooking hủy booking active của phòng (chỉ admin, đã chặn ở route)
func (bc BookingController) CancelBooking(c *gin.Context) {
	var req dto.RoomActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if !services.CanCancel(c.GetInt("userRole")) {
		response.Forbidden(c)
		return
	}

	room, err := services.GetRoom(req.RoomId)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	updated, err := services.CancelActiveBooking(room)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	bc.saveAndRespond(c, updated, "hủy booking")
}

// UpdateGuest sửa thông tin khách trên booking active, không đụng ngày giờ
func (bc BookingController) UpdateGuest(c *gin.Context) {
	var req dto.GuestUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room, err := services.GetRoom(req.RoomId)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	updated, err := services.UpdateGuestInfo(room, req.GuestName, req.Phone, req.CarPlate, req.CarProvince, req.Note)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	bc.saveAndRespond(c, updated, "sửa thông tin khách")
}

// ResetRooms đưa toàn bộ phòng về trống và xóa hết booking (chỉ admin)
func (bc BookingController) ResetRooms(c *gin.Context) {
	if err := services.ResetAllRooms(); err != nil {
		bc.Logger.Error("Lỗi khi reset danh sách phòng: %v", err)
		handleServiceError(c, err)
		return
	}

	bc.Logger.Info("Đã reset toàn bộ phòng về trạng thái trống")

	rooms, err := services.ListRooms()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	for _, room := range rooms {
		services.BroadcastRoomUpdate(bc.Melody, room)
	}

	results := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		results = append(results, toRoomResponse(room))
	}
	response.SuccessWithTotal(c, results, len(results))
}
