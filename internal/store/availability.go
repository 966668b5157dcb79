package store

import (
	"github.com/m04kA/SMC-PlanningService/internal/domain"
	"github.com/m04kA/SMC-PlanningService/pkg/types"
)

// IsRoomAvailable проверяет, свободен ли интервал [startTime, endTime)
// зала roomID на дату date. Предикат без побочных эффектов: используется
// и как пред-валидация перед созданием, и реактивно для предупреждений UI.
//
// excludeBookingID исключает из проверки редактируемое бронирование:
// и его точный id, и экземпляры повторения с префиксом "{id}-".
func (s *Store) IsRoomAvailable(roomID, date string, startTime, endTime types.TimeString, excludeBookingID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.hasConflictLocked(roomID, date, startTime, endTime, excludeBookingID) {
		return false
	}
	return s.findLeaveConflictLocked(roomID, date) == nil
}

// FindLeaveConflict возвращает отпуск, блокирующий бронирование бюро на
// указанную дату, или nil. Предикат доступности причину не сообщает;
// этим методом вызывающие получают запись отпуска для отображения.
func (s *Store) FindLeaveConflict(roomID, date string) *domain.Leave {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findLeaveConflictLocked(roomID, date)
}

// hasConflictLocked проверяет пересечение с существующими бронированиями
// того же зала на ту же дату. Интервалы полуоткрытые [start, end);
// соприкасающиеся границы пересечением не считаются. Времена HH:MM с
// ведущими нулями сравниваются лексикографически.
func (s *Store) hasConflictLocked(roomID, date string, startTime, endTime types.TimeString, excludeBookingID string) bool {
	for i := range s.state.Bookings {
		b := &s.state.Bookings[i]

		if excludeBookingID != "" && b.MatchesOrInstanceOf(excludeBookingID) {
			continue
		}
		if b.RoomID != roomID || b.Date != date {
			continue
		}

		// Пересечение есть, только если начало одного строго раньше
		// конца другого в обе стороны
		if b.StartTime.IsBefore(endTime) && b.EndTime.IsAfter(startTime) {
			return true
		}
	}
	return false
}

// findLeaveConflictLocked возвращает отпуск референта, покрывающий дату,
// если зал является бюро. Для учебных залов отпуска не действуют.
// Сравнение дат включительно с обеих сторон.
func (s *Store) findLeaveConflictLocked(roomID, date string) *domain.Leave {
	room := s.state.RoomByID(roomID)
	if room == nil || !room.IsOffice() {
		return nil
	}

	for i := range s.state.Leaves {
		l := &s.state.Leaves[i]
		if l.ReferentID == roomID && l.Covers(date) {
			leave := *l
			return &leave
		}
	}
	return nil
}
