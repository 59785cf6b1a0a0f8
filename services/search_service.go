package services

import (
	"sort"
	"strings"
	"sync"

	"resort/dto"
	"resort/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi tìm kiếm (bỏ dấu, thường hóa)
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách số phòng
func createRoomMatcher(rooms []models.Room) *closestmatch.ClosestMatch {
	numbers := make([]string, 0, len(rooms))
	for _, room := range rooms {
		numbers = append(numbers, normalizeInput(room.Number))
	}
	return closestmatch.New(numbers, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// scoreBooking chấm điểm một booking so với query đã chuẩn hóa
func scoreBooking(query string, room models.Room, booking models.Booking, cmRoom *closestmatch.ClosestMatch) int {
	score := 0

	normalizedGuest := normalizeInput(booking.GuestName)
	if normalizedGuest != "" {
		if strings.Contains(normalizedGuest, query) || strings.Contains(query, normalizedGuest) {
			score += 20
		} else if calculateSimilarity(query, normalizedGuest) > 0.7 {
			score += 15
		}
	}

	if booking.Phone != "" && strings.Contains(booking.Phone, strings.TrimSpace(query)) {
		score += 10
	}

	if booking.CarPlate != "" && strings.Contains(normalizeInput(booking.CarPlate), query) {
		score += 10
	}

	if cmRoom.Closest(query) == normalizeInput(room.Number) {
		score += 13
	}

	return score
}

// SearchBookings tìm khách trên toàn bộ booking hiện có theo tên (gần đúng),
// số điện thoại, biển số xe hoặc số phòng; kết quả sắp theo điểm giảm dần
func SearchBookings(rooms []models.Room, query string) []dto.ScoredRoom {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return []dto.ScoredRoom{}
	}

	cmRoom := createRoomMatcher(rooms)

	scoreCh := make(chan dto.ScoredRoom, len(rooms)*2)
	var wg sync.WaitGroup

	for _, room := range rooms {
		wg.Add(1)
		go func(room models.Room) {
			defer wg.Done()
			for _, booking := range room.Bookings {
				score := scoreBooking(normalizedQuery, room, booking, cmRoom)
				if score > 0 {
					scoreCh <- dto.ScoredRoom{
						RoomId:  room.RoomId,
						Number:  room.Number,
						Zone:    room.Zone,
						Booking: booking,
						Score:   score,
					}
				}
			}
		}(room)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	results := make([]dto.ScoredRoom, 0)
	for scored := range scoreCh {
		results = append(results, scored)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].RoomId < results[j].RoomId
	})

	return results
}
