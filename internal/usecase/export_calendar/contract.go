package export_calendar

import "github.com/m04kA/SMC-PlanningService/internal/domain"

// PlanningStore интерфейс стора для экспорта календаря
type PlanningStore interface {
	ListBookings(filter domain.BookingsFilter) []domain.Booking
	ListRooms() []domain.Room
	Selection() (string, []string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
