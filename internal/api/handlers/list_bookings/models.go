package list_bookings

import "github.com/m04kA/SMC-PlanningService/internal/domain"

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

// BookingListResponse список бронирований в хронологическом порядке
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBookingList конвертирует список доменных бронирований в response
func FromDomainBookingList(bookings []domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = BookingResponse{
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
	return &BookingListResponse{Bookings: out}
}
