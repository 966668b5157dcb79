package delete_booking

import "context"

// PlanningStore интерфейс стора для удаления бронирований
type PlanningStore interface {
	RemoveBooking(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
