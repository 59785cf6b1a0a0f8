package jobs

import (
	"log"

	"resort/services"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày: trạng thái theo ngày phụ thuộc "hôm nay"
	// nên khi sang ngày mới cần xóa cache và báo các client tính lại
	_, err := c.AddFunc("0 0 * * *", func() {
		today := services.TodayStr()
		log.Printf("Sang ngày mới %s, làm mới trạng thái phòng", today)
		services.InvalidateRoomCache()
		services.BroadcastDayChanged(m, today)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
