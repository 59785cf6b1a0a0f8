package dto

import "resort/models"

// RoomResponse là DTO cho một phòng trên lưới dashboard,
// Status là trạng thái đã resolve chứ không phải trường lưu trong DB
type RoomResponse struct {
	RoomId   string             `json:"id"`
	Number   string             `json:"number"`
	Zone     string             `json:"zone"`
	Type     string             `json:"type"`
	Floor    *int               `json:"floor"`
	Building *string            `json:"building"`
	Status   string             `json:"status"`
	Version  int                `json:"version"`
	Bookings models.BookingList `json:"bookings"`
}

// RoomOnDateResponse là DTO cho truy vấn trạng thái phòng theo ngày
type RoomOnDateResponse struct {
	RoomId  string          `json:"id"`
	Number  string          `json:"number"`
	Date    string          `json:"date"`
	Status  string          `json:"status"`
	Booking *models.Booking `json:"booking,omitempty"`
}

// SummaryResponse là DTO cho thanh tổng hợp theo trạng thái
type SummaryResponse struct {
	Date      string `json:"date"`
	Total     int    `json:"total"`
	Available int    `json:"available"`
	Booked    int    `json:"booked"`
	Occupied  int    `json:"occupied"`
	Cleaning  int    `json:"cleaning"`
}

// TimelineCell là một ô ngày của một phòng trên view Gantt.
// Daily là booking theo ngày phủ ngày đó (nếu có), Hourly là các booking
// theo giờ trong đúng ngày đó, sắp theo giờ nhận phòng.
type TimelineCell struct {
	Date   string           `json:"date"`
	Start  bool             `json:"start"`
	Daily  *models.Booking  `json:"daily,omitempty"`
	Hourly []models.Booking `json:"hourly,omitempty"`
}

// TimelineRow là một dòng phòng trên view Gantt
type TimelineRow struct {
	RoomId string         `json:"roomId"`
	Number string         `json:"number"`
	Zone   string         `json:"zone"`
	Cells  []TimelineCell `json:"cells"`
}

// ScoredRoom là kết quả tìm kiếm khách kèm điểm phù hợp
type ScoredRoom struct {
	RoomId    string         `json:"roomId"`
	Number    string         `json:"number"`
	Zone      string         `json:"zone"`
	Booking   models.Booking `json:"booking"`
	Score     int            `json:"score"`
}
