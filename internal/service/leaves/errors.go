package leaves

import "errors"

var (
	// ErrLeaveNotFound возвращается, когда отпуск не найден
	ErrLeaveNotFound = errors.New("leave not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidRange возвращается, когда дата конца раньше даты начала
	ErrInvalidRange = errors.New("end date is before start date")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("leaves service: internal error")
)
