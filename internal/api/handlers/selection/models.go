package selection

// SelectionResponse текущее состояние выбора залов
type SelectionResponse struct {
	SelectedRoom  string   `json:"selectedRoom"`
	SelectedRooms []string `json:"selectedRooms"`
}

// SetRoomRequest запрос на выбор зала для одиночного вида
type SetRoomRequest struct {
	RoomID string `json:"roomId"`
}

// SetRoomsRequest запрос на выбор залов для мульти-вида
type SetRoomsRequest struct {
	RoomIDs []string `json:"roomIds"`
}
