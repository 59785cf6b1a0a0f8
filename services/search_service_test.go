package services

import (
	"testing"

	"resort/constants"
	"resort/dto"
	"resort/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture() []models.Room {
	rooms := GenerateAllRooms()

	rooms[0].Bookings = models.BookingList{
		{
			ID:        "b1",
			GuestName: "Nguyễn Văn An",
			Phone:     "0912345678",
			CheckIn:   "2024-06-01",
			CheckOut:  "2024-06-03",
			StayType:  constants.StayTypeDaily,
			Status:    constants.BookingStatusOccupied,
		},
	}
	rooms[1].Bookings = models.BookingList{
		{
			ID:        "b2",
			GuestName: "Trần Thị Bích",
			Phone:     "0987654321",
			CarPlate:  "51A-12345",
			CheckIn:   "2024-06-02",
			CheckOut:  "2024-06-04",
			StayType:  constants.StayTypeDaily,
			Status:    constants.BookingStatusBooked,
		},
	}
	return rooms
}

func containsBooking(results []dto.ScoredRoom, id string) bool {
	for _, r := range results {
		if r.Booking.ID == id {
			return true
		}
	}
	return false
}

func TestSearchBookingsEmptyQuery(t *testing.T) {
	assert.Empty(t, SearchBookings(searchFixture(), "   "))
}

func TestSearchBookingsByGuestName(t *testing.T) {
	results := SearchBookings(searchFixture(), "văn an")

	require.NotEmpty(t, results)
	assert.Equal(t, "b1", results[0].Booking.ID)
	assert.Equal(t, "R-01", results[0].RoomId)
}

func TestSearchBookingsNameWithoutDiacritics(t *testing.T) {
	// Gõ không dấu vẫn phải tìm ra khách
	results := SearchBookings(searchFixture(), "tran thi bich")

	require.NotEmpty(t, results)
	assert.Equal(t, "b2", results[0].Booking.ID)
}

func TestSearchBookingsByPhone(t *testing.T) {
	results := SearchBookings(searchFixture(), "0987654321")

	require.NotEmpty(t, results)
	assert.True(t, containsBooking(results, "b2"))
}

func TestSearchBookingsByCarPlate(t *testing.T) {
	results := SearchBookings(searchFixture(), "51a-12345")

	require.NotEmpty(t, results)
	assert.True(t, containsBooking(results, "b2"))
}

func TestSearchBookingsSortedByScore(t *testing.T) {
	results := SearchBookings(searchFixture(), "nguyễn văn an")

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestSearchBookingsNoMatch(t *testing.T) {
	results := SearchBookings(searchFixture(), "zzzzzzzzzz")

	for _, r := range results {
		assert.Greater(t, r.Score, 0)
	}
}
