package store

import "errors"

var (
	// ErrRoomNotFound возвращается, когда зал не найден
	ErrRoomNotFound = errors.New("store: room not found")

	// ErrLeaveNotFound возвращается, когда отпуск не найден
	ErrLeaveNotFound = errors.New("store: leave not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("store: booking not found")

	// ErrTrainingTypeNotFound возвращается, когда тип формации не найден
	ErrTrainingTypeNotFound = errors.New("store: training type not found")

	// ErrSlotConflict возвращается, когда интервал пересекается с
	// существующим бронированием того же зала на ту же дату
	ErrSlotConflict = errors.New("store: time slot conflicts with an existing booking")

	// ErrReferentOnLeave возвращается, когда дата бронирования бюро
	// попадает в период отпуска его референта
	ErrReferentOnLeave = errors.New("store: referent is on leave on this date")

	// ErrInvalidRecurrence возвращается при некорректных параметрах
	// повторяющегося бронирования
	ErrInvalidRecurrence = errors.New("store: invalid recurrence parameters")

	// ErrPersist возвращается, когда не удалось сохранить снапшот состояния
	ErrPersist = errors.New("store: failed to persist state")

	// ErrLoad возвращается, когда не удалось загрузить снапшот состояния
	ErrLoad = errors.New("store: failed to load state")
)
