package models

import "github.com/m04kA/SMC-PlanningService/internal/domain"

// CreateRoomRequest запрос на создание зала
type CreateRoomRequest struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// UpdateRoomRequest запрос на частичное обновление зала
type UpdateRoomRequest struct {
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// RoomResponse представление зала в ответе
type RoomResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// RoomListResponse список залов
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует доменный зал в response
func FromDomainRoom(room domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:   room.ID,
		Name: room.Name,
		Type: string(room.Type),
	}
}

// FromDomainRoomList конвертирует список доменных залов в response
func FromDomainRoomList(rooms []domain.Room) *RoomListResponse {
	out := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		out[i] = *FromDomainRoom(r)
	}
	return &RoomListResponse{Rooms: out}
}
