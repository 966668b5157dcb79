package list_bookings

import "github.com/m04kA/SMC-PlanningService/internal/domain"

// PlanningStore интерфейс стора для чтения бронирований
type PlanningStore interface {
	ListBookings(filter domain.BookingsFilter) []domain.Booking
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
