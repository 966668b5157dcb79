package create_booking

import (
	"github.com/m04kA/SMC-PlanningService/internal/domain"
	"github.com/m04kA/SMC-PlanningService/internal/store"
	"github.com/m04kA/SMC-PlanningService/pkg/types"
)

// Request запрос на создание бронирования (разового или повторяющегося)
type Request struct {
	ID                string // опционально: пустой id генерируется стором
	RoomID            string
	Title             string
	Date              string // YYYY-MM-DD
	StartTime         types.TimeString
	EndTime           types.TimeString
	Type              string
	Description       string
	IsRecurring       bool
	RecurrenceEndDate string // YYYY-MM-DD, включительно
	RecurrencePattern string // daily | weekly | monthly | yearly
}

// OccurrenceResult исход одной даты развертывания
type OccurrenceResult struct {
	Date      string
	BookingID string
	Status    string // created | skipped_conflict | skipped_leave
}

// Response результат создания. Для повторяющегося бронирования
// Occurrences содержит полный список дат, включая пропущенные.
type Response struct {
	TemplateID  string
	Created     []domain.Booking
	Occurrences []OccurrenceResult
	// LeaveConflict отпуск, из-за которого отклонено разовое бронирование
	// бюро; заполняется только вместе с ErrReferentOnLeave через
	// FindLeaveConflict: вызывающему нужна причина для предупреждения
	LeaveConflict *domain.Leave
}

func (r *Request) toDomain() domain.Booking {
	return domain.Booking{
		ID:                r.ID,
		RoomID:            r.RoomID,
		Title:             r.Title,
		Date:              r.Date,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		Type:              r.Type,
		Description:       r.Description,
		IsRecurring:       r.IsRecurring,
		RecurrenceEndDate: r.RecurrenceEndDate,
		RecurrencePattern: domain.RecurrencePattern(r.RecurrencePattern),
	}
}

func fromStoreResult(result *store.CreateBookingResult) *Response {
	occurrences := make([]OccurrenceResult, len(result.Occurrences))
	for i, occ := range result.Occurrences {
		occurrences[i] = OccurrenceResult{
			Date:      occ.Date,
			BookingID: occ.BookingID,
			Status:    string(occ.Status),
		}
	}
	return &Response{
		TemplateID:  result.TemplateID,
		Created:     result.Created,
		Occurrences: occurrences,
	}
}
