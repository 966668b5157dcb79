package create_booking

import (
	"context"

	"github.com/m04kA/SMC-PlanningService/internal/domain"
	"github.com/m04kA/SMC-PlanningService/internal/store"
)

// PlanningStore интерфейс стора для создания бронирований
type PlanningStore interface {
	CreateBooking(ctx context.Context, booking domain.Booking) (*store.CreateBookingResult, error)
	FindLeaveConflict(roomID, date string) *domain.Leave
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
