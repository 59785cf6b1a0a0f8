package services

import (
	"encoding/json"
	"log"

	"resort/models"

	"github.com/olahol/melody"
)

// WsEvent là message đẩy xuống các client dashboard đang mở
type WsEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// BroadcastRoomUpdate đẩy phòng vừa được ghi thành công xuống mọi session
// để lưới phòng của các máy khác cập nhật ngay
func BroadcastRoomUpdate(m *melody.Melody, room models.Room) {
	if m == nil {
		return
	}

	payload, err := json.Marshal(WsEvent{Type: "room_updated", Data: room})
	if err != nil {
		log.Printf("Lỗi khi serialize thông báo phòng: %v", err)
		return
	}
	if err := m.Broadcast(payload); err != nil {
		log.Printf("Lỗi khi broadcast cập nhật phòng %s: %v", room.RoomId, err)
	}
}

// BroadcastDayChanged báo các client biết đã sang ngày mới, trạng thái theo
// ngày cần tính lại
func BroadcastDayChanged(m *melody.Melody, today string) {
	if m == nil {
		return
	}

	payload, err := json.Marshal(WsEvent{Type: "day_changed", Data: today})
	if err != nil {
		log.Printf("Lỗi khi serialize thông báo sang ngày: %v", err)
		return
	}
	if err := m.Broadcast(payload); err != nil {
		log.Printf("Lỗi khi broadcast sang ngày mới: %v", err)
	}
}
