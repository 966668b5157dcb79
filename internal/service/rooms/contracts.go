package rooms

import (
	"context"

	"github.com/m04kA/SMC-PlanningService/internal/domain"
)

// PlanningStore интерфейс стора для операций с залами
type PlanningStore interface {
	AddRoom(ctx context.Context, room domain.Room) (domain.Room, error)
	UpdateRoom(ctx context.Context, id string, updates domain.RoomUpdate) (domain.Room, error)
	RemoveRoom(ctx context.Context, id string) error
	ListRooms() []domain.Room
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
