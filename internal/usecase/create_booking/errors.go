package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidTimeRange возвращается, когда время конца не позже времени начала
	ErrInvalidTimeRange = errors.New("create_booking: end time must be after start time")

	// ErrInvalidRecurrence возвращается при некорректных параметрах повторения
	ErrInvalidRecurrence = errors.New("create_booking: invalid recurrence parameters")

	// ErrSlotConflict возвращается, когда интервал разового бронирования
	// пересекается с существующим бронированием
	ErrSlotConflict = errors.New("create_booking: slot conflicts with an existing booking")

	// ErrReferentOnLeave возвращается, когда дата разового бронирования бюро
	// попадает в отпуск референта
	ErrReferentOnLeave = errors.New("create_booking: referent is on leave")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
