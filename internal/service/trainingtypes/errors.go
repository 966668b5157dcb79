package trainingtypes

import "errors"

var (
	// ErrTrainingTypeNotFound возвращается, когда тип формации не найден
	ErrTrainingTypeNotFound = errors.New("training type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("trainingtypes service: internal error")
)
