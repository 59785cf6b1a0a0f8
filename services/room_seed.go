package services

import (
	"fmt"
	"log"

	"resort/constants"
	"resort/models"

	"gorm.io/gorm"
)

// generateResortRooms sinh 40 bungalow khu resort (R-01 .. R-40)
func generateResortRooms() []models.Room {
	rooms := make([]models.Room, 0, 40)
	for i := 1; i <= 40; i++ {
		number := fmt.Sprintf("R-%02d", i)
		rooms = append(rooms, models.Room{
			RoomId:   number,
			Number:   number,
			Zone:     constants.ZoneResort,
			Type:     "บ้านหลัง",
			Status:   constants.RoomStatusAvailable,
			Bookings: models.BookingList{},
			Version:  1,
		})
	}
	return rooms
}

// generateBuildingRooms sinh phòng cho một tòa: 2 tầng, mỗi tầng 12 phòng
func generateBuildingRooms(building string) []models.Room {
	zone := constants.ZoneBuildingA
	if building == "B" {
		zone = constants.ZoneBuildingB
	}
	buildingName := "ตึก " + building

	rooms := make([]models.Room, 0, 24)
	for floor := 1; floor <= 2; floor++ {
		for num := 1; num <= 12; num++ {
			number := fmt.Sprintf("%s%d%02d", building, floor, num)
			f := floor
			b := buildingName
			rooms = append(rooms, models.Room{
				RoomId:   number,
				Number:   number,
				Zone:     zone,
				Type:     "ห้องพัก",
				Floor:    &f,
				Building: &b,
				Status:   constants.RoomStatusAvailable,
				Bookings: models.BookingList{},
				Version:  1,
			})
		}
	}
	return rooms
}

// GenerateAllRooms sinh đủ 88 phòng của resort theo thứ tự cố định:
// 40 bungalow, 24 phòng tòa A, 24 phòng tòa B
func GenerateAllRooms() []models.Room {
	rooms := generateResortRooms()
	rooms = append(rooms, generateBuildingRooms("A")...)
	rooms = append(rooms, generateBuildingRooms("B")...)
	return rooms
}

// SeedRoomsIfEmpty chèn 88 phòng mặc định nếu bảng rooms còn trống
func SeedRoomsIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Room{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rooms := GenerateAllRooms()
	if err := db.Create(&rooms).Error; err != nil {
		return err
	}
	log.Printf("Đã seed %d phòng vào database", len(rooms))
	return nil
}
