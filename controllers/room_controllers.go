package controllers

import (
	"sort"
	"strconv"
	"time"

	"resort/constants"
	"resort/dto"
	apperrors "resort/errors"
	"resort/models"
	"resort/response"
	"resort/services"
	"resort/validator"

	"github.com/gin-gonic/gin"
)

// toRoomResponse đổi model phòng sang DTO với trạng thái đã resolve realtime
func toRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		RoomId:   room.RoomId,
		Number:   room.Number,
		Zone:     room.Zone,
		Type:     room.Type,
		Floor:    room.Floor,
		Building: room.Building,
		Status:   services.ComputeRoomStatus(room),
		Version:  room.Version,
		Bookings: room.Bookings,
	}
}

// handleServiceError map AppError sang response HTTP tương ứng
func handleServiceError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeRoomNotFound:
		response.NotFound(c)
	case apperrors.ErrCodeVersionConflict:
		response.Conflict(c)
	case apperrors.ErrCodeDBError:
		response.ServerError(c)
	case apperrors.ErrCodeValidation, apperrors.ErrCodeRequiredField,
		apperrors.ErrCodeInvalidFormat, apperrors.ErrCodeInvalidStayType:
		response.ValidationError(c, appErr.Message)
	default:
		response.BadRequest(c, appErr.Message)
	}
}

// GetAllRooms trả về lưới phòng với trạng thái realtime, lọc theo zone,
// trạng thái (sau khi resolve) và tầng
func GetAllRooms(c *gin.Context) {
	zone := c.Query("zone")
	status := c.Query("status")
	floorStr := c.Query("floor")

	rooms, err := services.ListRooms()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	results := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		if zone != "" && room.Zone != zone {
			continue
		}
		if floorStr != "" {
			floor, err := strconv.Atoi(floorStr)
			if err != nil || room.Floor == nil || *room.Floor != floor {
				continue
			}
		}

		resolved := toRoomResponse(room)
		if status != "" && resolved.Status != status {
			continue
		}
		results = append(results, resolved)
	}

	response.SuccessWithTotal(c, results, len(results))
}

// GetRoomDetail trả về chi tiết một phòng theo id
func GetRoomDetail(c *gin.Context) {
	roomId := c.Param("id")

	room, err := services.GetRoom(roomId)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, toRoomResponse(room))
}

// GetRoomStatusByDate trả về trạng thái một phòng vào một ngày bất kỳ
// kèm booking phủ ngày đó (nếu có)
func GetRoomStatusByDate(c *gin.Context) {
	roomId := c.Query("id")
	date := c.Query("date")

	if roomId == "" {
		response.BadRequest(c, "Tham số id không được để trống")
		return
	}
	if err := validator.ValidateDateParam(date); err != nil {
		handleServiceError(c, err)
		return
	}

	room, err := services.GetRoom(roomId)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	today := services.TodayStr()
	result := dto.RoomOnDateResponse{
		RoomId:  room.RoomId,
		Number:  room.Number,
		Date:    date,
		Status:  services.GetRoomStatusOnDate(room, date, today),
		Booking: services.GetBookingOnDate(room, date, today),
	}

	response.Success(c, result)
}

// GetSummary đếm số phòng theo từng trạng thái vào một ngày
// (mặc định là hôm nay)
func GetSummary(c *gin.Context) {
	date := c.Query("date")
	today := services.TodayStr()
	if date == "" {
		date = today
	}
	if err := validator.ValidateDateParam(date); err != nil {
		handleServiceError(c, err)
		return
	}

	rooms, err := services.ListRooms()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	summary := dto.SummaryResponse{Date: date, Total: len(rooms)}
	for _, room := range rooms {
		switch services.GetRoomStatusOnDate(room, date, today) {
		case constants.RoomStatusAvailable:
			summary.Available++
		case constants.RoomStatusBooked:
			summary.Booked++
		case constants.RoomStatusOccupied:
			summary.Occupied++
		case constants.RoomStatusCleaning:
			summary.Cleaning++
		}
	}

	response.Success(c, summary)
}

// GetTimeline trả về view Gantt: mỗi phòng một dòng, mỗi ngày một ô.
// Ô chứa booking theo ngày phủ ngày đó và các booking theo giờ trong ngày,
// sắp theo giờ nhận phòng.
func GetTimeline(c *gin.Context) {
	from := c.Query("from")
	if from == "" {
		from = services.TodayStr()
	}
	if err := validator.ValidateDateParam(from); err != nil {
		handleServiceError(c, err)
		return
	}

	days := 7
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 1 {
			response.BadRequest(c, "Tham số days không hợp lệ")
			return
		}
		days = parsed
	}
	if days > 31 {
		days = 31
	}

	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		response.BadRequest(c, "Ngày không hợp lệ, dùng định dạng yyyy-mm-dd")
		return
	}

	rooms, listErr := services.ListRooms()
	if listErr != nil {
		handleServiceError(c, listErr)
		return
	}

	rows := make([]dto.TimelineRow, 0, len(rooms))
	for _, room := range rooms {
		row := dto.TimelineRow{
			RoomId: room.RoomId,
			Number: room.Number,
			Zone:   room.Zone,
			Cells:  make([]dto.TimelineCell, 0, days),
		}

		for i := 0; i < days; i++ {
			date := start.AddDate(0, 0, i).Format("2006-01-02")
			row.Cells = append(row.Cells, buildTimelineCell(room, date))
		}
		rows = append(rows, row)
	}

	response.SuccessWithTotal(c, rows, len(rows))
}

// buildTimelineCell dựng một ô ngày cho một phòng
func buildTimelineCell(room models.Room, date string) dto.TimelineCell {
	cell := dto.TimelineCell{Date: date}

	for _, b := range room.Bookings {
		if b.CheckIn == "" {
			continue
		}
		if b.StayType == constants.StayTypeHourly {
			if b.CheckIn == date {
				cell.Hourly = append(cell.Hourly, b)
			}
			continue
		}

		end := b.CheckOut
		if end == "" {
			end = b.CheckIn
		}
		covers := b.CheckIn <= date && (date < end || date == b.CheckIn)
		if covers && cell.Daily == nil {
			daily := b
			cell.Daily = &daily
			cell.Start = b.CheckIn == date
		}
	}

	sort.SliceStable(cell.Hourly, func(i, j int) bool {
		return cell.Hourly[i].CheckInTime < cell.Hourly[j].CheckInTime
	})

	return cell
}

// SearchGuest tìm khách theo tên, số điện thoại, biển số xe hoặc số phòng
func SearchGuest(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Tham số q không được để trống")
		return
	}

	rooms, err := services.ListRooms()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	results := services.SearchBookings(rooms, query)
	response.SuccessWithTotal(c, results, len(results))
}
