package services

import (
	"testing"

	"resort/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAllRoomsCount(t *testing.T) {
	rooms := GenerateAllRooms()
	require.Len(t, rooms, 88)

	counts := map[string]int{}
	for _, room := range rooms {
		counts[room.Zone]++
	}
	assert.Equal(t, 40, counts[constants.ZoneResort])
	assert.Equal(t, 24, counts[constants.ZoneBuildingA])
	assert.Equal(t, 24, counts[constants.ZoneBuildingB])
}

func TestGenerateAllRoomsOrderAndIds(t *testing.T) {
	rooms := GenerateAllRooms()

	assert.Equal(t, "R-01", rooms[0].RoomId)
	assert.Equal(t, "R-40", rooms[39].RoomId)
	assert.Equal(t, "A101", rooms[40].RoomId)
	assert.Equal(t, "A112", rooms[51].RoomId)
	assert.Equal(t, "A201", rooms[52].RoomId)
	assert.Equal(t, "B101", rooms[64].RoomId)
	assert.Equal(t, "B212", rooms[87].RoomId)
}

func TestGenerateAllRoomsResortRoomsHaveNoFloor(t *testing.T) {
	rooms := GenerateAllRooms()

	for _, room := range rooms[:40] {
		assert.Equal(t, "บ้านหลัง", room.Type)
		assert.Nil(t, room.Floor)
		assert.Nil(t, room.Building)
	}
}

func TestGenerateAllRoomsBuildingRoomsHaveFloorAndBuilding(t *testing.T) {
	rooms := GenerateAllRooms()

	a101 := rooms[40]
	require.NotNil(t, a101.Floor)
	require.NotNil(t, a101.Building)
	assert.Equal(t, "ห้องพัก", a101.Type)
	assert.Equal(t, 1, *a101.Floor)
	assert.Equal(t, "ตึก A", *a101.Building)

	b212 := rooms[87]
	require.NotNil(t, b212.Floor)
	require.NotNil(t, b212.Building)
	assert.Equal(t, 2, *b212.Floor)
	assert.Equal(t, "ตึก B", *b212.Building)
}

func TestGenerateAllRoomsStartClean(t *testing.T) {
	for _, room := range GenerateAllRooms() {
		assert.Equal(t, constants.RoomStatusAvailable, room.Status)
		assert.Len(t, room.Bookings, 0)
		assert.Equal(t, 1, room.Version)
	}
}

func TestGenerateAllRoomsDeterministic(t *testing.T) {
	first := GenerateAllRooms()
	second := GenerateAllRooms()
	assert.Equal(t, first, second)
}
