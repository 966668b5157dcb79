package create_booking

import (
	"github.com/m04kA/SMC-PlanningService/internal/domain"
	createBooking "github.com/m04kA/SMC-PlanningService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-PlanningService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ID                string `json:"id,omitempty"`
	RoomID            string `json:"roomId"`
	Title             string `json:"title"`
	Date              string `json:"date"`      // "2025-10-15"
	StartTime         string `json:"startTime"` // "10:00"
	EndTime           string `json:"endTime"`   // "12:00"
	Type              string `json:"type,omitempty"`
	Description       string `json:"description,omitempty"`
	IsRecurring       bool   `json:"isRecurring,omitempty"`
	RecurrenceEndDate string `json:"recurrenceEndDate,omitempty"`
	RecurrencePattern string `json:"recurrencePattern,omitempty"`
}

// BookingResponse представление бронирования в ответе
type BookingResponse struct {
	ID                string `json:"id"`
	RoomID            string `json:"roomId"`
	Title             string `json:"title"`
	Date              string `json:"date"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	Type              string `json:"type,omitempty"`
	Description       string `json:"description,omitempty"`
	IsRecurring       bool   `json:"isRecurring,omitempty"`
	RecurrenceEndDate string `json:"recurrenceEndDate,omitempty"`
	RecurrencePattern string `json:"recurrencePattern,omitempty"`
}

// OccurrenceResponse исход одной даты развертывания
type OccurrenceResponse struct {
	Date      string `json:"date"`
	BookingID string `json:"bookingId,omitempty"`
	Status    string `json:"status"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	TemplateID  string               `json:"templateId,omitempty"`
	Bookings    []BookingResponse    `json:"bookings"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ID:                r.ID,
		RoomID:            r.RoomID,
		Title:             r.Title,
		Date:              r.Date,
		StartTime:         types.TimeString(r.StartTime),
		EndTime:           types.TimeString(r.EndTime),
		Type:              r.Type,
		Description:       r.Description,
		IsRecurring:       r.IsRecurring,
		RecurrenceEndDate: r.RecurrenceEndDate,
		RecurrencePattern: r.RecurrencePattern,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	bookings := make([]BookingResponse, len(resp.Created))
	for i, b := range resp.Created {
		bookings[i] = fromDomainBooking(b)
	}

	occurrences := make([]OccurrenceResponse, len(resp.Occurrences))
	for i, occ := range resp.Occurrences {
		occurrences[i] = OccurrenceResponse{
			Date:      occ.Date,
			BookingID: occ.BookingID,
			Status:    occ.Status,
		}
	}

	return &CreateBookingResponse{
		TemplateID:  resp.TemplateID,
		Bookings:    bookings,
		Occurrences: occurrences,
	}
}

func fromDomainBooking(b domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                b.ID,
		RoomID:            b.RoomID,
		Title:             b.Title,
		Date:              b.Date,
		StartTime:         b.StartTime.String(),
		EndTime:           b.EndTime.String(),
		Type:              b.Type,
		Description:       b.Description,
		IsRecurring:       b.IsRecurring,
		RecurrenceEndDate: b.RecurrenceEndDate,
		RecurrencePattern: string(b.RecurrencePattern),
	}
}
