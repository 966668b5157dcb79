package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PlanningService/internal/domain"
)

// validateRequest валидирует входные данные запроса. Границей валидации
// служит usecase, чтобы стор принимал только согласованные записи.
func validateRequest(req *Request) error {
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}
	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}
	if len(req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: invalid date %q", ErrInvalidInput, req.Date)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	// Интервал полуоткрытый [start, end): конец строго позже начала
	if !req.StartTime.IsBefore(req.EndTime) {
		return ErrInvalidTimeRange
	}

	if req.IsRecurring {
		return validateRecurrence(req)
	}
	return nil
}

// validateRecurrence валидирует параметры повторяющегося бронирования
func validateRecurrence(req *Request) error {
	if req.RecurrenceEndDate == "" {
		return fmt.Errorf("%w: recurrenceEndDate is required for a recurring booking", ErrInvalidRecurrence)
	}
	if _, err := time.Parse(domain.DateFormat, req.RecurrenceEndDate); err != nil {
		return fmt.Errorf("%w: invalid recurrenceEndDate %q", ErrInvalidRecurrence, req.RecurrenceEndDate)
	}
	if req.RecurrenceEndDate < req.Date {
		return fmt.Errorf("%w: recurrenceEndDate %q is before date %q", ErrInvalidRecurrence, req.RecurrenceEndDate, req.Date)
	}
	if !domain.RecurrencePattern(req.RecurrencePattern).IsValid() {
		return fmt.Errorf("%w: unknown pattern %q", ErrInvalidRecurrence, req.RecurrencePattern)
	}
	return nil
}
