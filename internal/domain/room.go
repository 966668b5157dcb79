package domain

// RoomType represents the kind of bookable space
type RoomType string

const (
	RoomTypeTraining RoomType = "training"
	RoomTypeOffice   RoomType = "office"
)

// IsValid returns true for a known room type
func (t RoomType) IsValid() bool {
	return t == RoomTypeTraining || t == RoomTypeOffice
}

// Room represents a bookable resource. Office rooms additionally act as a
// referent identity for leave tracking: a Leave whose ReferentID equals the
// room id blocks bookings of that room.
type Room struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Type RoomType `json:"type"`
}

// IsOffice returns true if the room is an office (has a referent)
func (r *Room) IsOffice() bool {
	return r.Type == RoomTypeOffice
}

// RoomUpdate carries the fields of a partial room update.
// Nil fields keep their current value.
type RoomUpdate struct {
	Name *string
	Type *RoomType
}
