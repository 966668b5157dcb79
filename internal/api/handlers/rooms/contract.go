package rooms

import (
	"context"

	"github.com/m04kA/SMC-PlanningService/internal/service/rooms/models"
)

type RoomsService interface {
	Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error)
	Update(ctx context.Context, id string, req *models.UpdateRoomRequest) (*models.RoomResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) (*models.RoomListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
