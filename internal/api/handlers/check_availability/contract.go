package check_availability

import (
	"github.com/m04kA/SMC-PlanningService/internal/domain"
	"github.com/m04kA/SMC-PlanningService/pkg/types"
)

// PlanningStore интерфейс стора для проверки доступности
type PlanningStore interface {
	IsRoomAvailable(roomID, date string, startTime, endTime types.TimeString, excludeBookingID string) bool
	FindLeaveConflict(roomID, date string) *domain.Leave
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
