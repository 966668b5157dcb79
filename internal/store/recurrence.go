package store

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PlanningService/internal/domain"
)

// OccurrenceStatus исход одной даты при развертывании повторяющегося
// бронирования
type OccurrenceStatus string

const (
	// OccurrenceCreated экземпляр создан
	OccurrenceCreated OccurrenceStatus = "created"
	// OccurrenceSkippedConflict дата пропущена: пересечение с существующим бронированием
	OccurrenceSkippedConflict OccurrenceStatus = "skipped_conflict"
	// OccurrenceSkippedLeave дата пропущена: референт бюро в отпуске
	OccurrenceSkippedLeave OccurrenceStatus = "skipped_leave"
)

// Occurrence исход одной даты развертывания
type Occurrence struct {
	Date      string
	BookingID string // пустой для пропущенных дат
	Status    OccurrenceStatus
}

// CreateBookingResult результат создания бронирования. Для разового
// бронирования Created содержит одну запись, для повторяющегося все
// созданные экземпляры; Occurrences дает полный список дат с исходами,
// включая пропущенные.
type CreateBookingResult struct {
	TemplateID  string
	Created     []domain.Booking
	Occurrences []Occurrence
}

// expandRecurringLocked материализует повторяющееся бронирование: по
// одному экземпляру на дату от template.Date до RecurrenceEndDate
// включительно, с шагом RecurrencePattern. Даты обрабатываются по
// возрастанию; каждая проверяется на конфликт против всех бронирований
// стора, включая уже добавленные экземпляры этой же серии. Конфликтные
// даты пропускаются молча: без ошибки, но с записью в списке исходов.
func (s *Store) expandRecurringLocked(template domain.Booking) ([]domain.Booking, []Occurrence, error) {
	if !template.RecurrencePattern.IsValid() {
		return nil, nil, fmt.Errorf("%w: unknown pattern %q", ErrInvalidRecurrence, template.RecurrencePattern)
	}

	start, err := time.Parse(domain.DateFormat, template.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid start date %q", ErrInvalidRecurrence, template.Date)
	}
	end, err := time.Parse(domain.DateFormat, template.RecurrenceEndDate)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid end date %q", ErrInvalidRecurrence, template.RecurrenceEndDate)
	}
	if end.Before(start) {
		return nil, nil, fmt.Errorf("%w: end date %q before start date %q",
			ErrInvalidRecurrence, template.RecurrenceEndDate, template.Date)
	}

	created := make([]domain.Booking, 0)
	occurrences := make([]Occurrence, 0)

	// batch учитывает экземпляры текущей серии, еще не добавленные в
	// состояние: более поздняя дата серии не должна пересекаться с уже
	// принятой более ранней
	batch := make([]domain.Booking, 0)

	// step порядковый номер шага от начальной даты; месячный и годовой
	// шаги всегда считаются от исходной даты, чтобы усечение к концу
	// короткого месяца не накапливалось (31 янв → 28 фев → 31 мар)
	for step, current := 0, start; !current.After(end); step++ {
		date := current.Format(domain.DateFormat)

		switch {
		case s.hasConflictLocked(template.RoomID, date, template.StartTime, template.EndTime, "") ||
			hasBatchConflict(batch, template.RoomID, date, &template):
			occurrences = append(occurrences, Occurrence{Date: date, Status: OccurrenceSkippedConflict})

		case s.findLeaveConflictLocked(template.RoomID, date) != nil:
			occurrences = append(occurrences, Occurrence{Date: date, Status: OccurrenceSkippedLeave})

		default:
			instance := template
			instance.ID = template.InstanceID(date)
			instance.Date = date
			batch = append(batch, instance)
			created = append(created, instance)
			occurrences = append(occurrences, Occurrence{Date: date, BookingID: instance.ID, Status: OccurrenceCreated})
		}

		current = advance(start, template.RecurrencePattern, step+1)
	}

	return created, occurrences, nil
}

// hasBatchConflict проверяет пересечение с экземплярами текущей серии.
// Все экземпляры серии имеют один интервал времени, поэтому достаточно
// совпадения зала и даты.
func hasBatchConflict(batch []domain.Booking, roomID, date string, template *domain.Booking) bool {
	for i := range batch {
		if batch[i].RoomID == roomID && batch[i].Date == date &&
			batch[i].StartTime.IsBefore(template.EndTime) && batch[i].EndTime.IsAfter(template.StartTime) {
			return true
		}
	}
	return false
}

// advance возвращает дату n-го шага от начальной даты
func advance(start time.Time, pattern domain.RecurrencePattern, n int) time.Time {
	switch pattern {
	case domain.RecurrenceDaily:
		return start.AddDate(0, 0, n)
	case domain.RecurrenceWeekly:
		return start.AddDate(0, 0, 7*n)
	case domain.RecurrenceMonthly:
		return addMonthsClamped(start, n)
	case domain.RecurrenceYearly:
		return addYearsClamped(start, n)
	default:
		// Недостижимо: паттерн провалидирован до цикла
		return start.AddDate(0, 0, n)
	}
}

// addMonthsClamped добавляет месяцы, усекая день к последнему дню
// целевого месяца вместо переноса: 31 янв + 1 мес = 28/29 фев,
// никогда не 2/3 марта
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())

	last := lastDayOfMonth(target.Year(), target.Month())
	if day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, t.Location())
}

// addYearsClamped добавляет годы с тем же усечением дня
// (29 фев → 28 фев в невисокосный год)
func addYearsClamped(t time.Time, years int) time.Time {
	year, month, day := t.Date()

	last := lastDayOfMonth(year+years, month)
	if day > last {
		day = last
	}
	return time.Date(year+years, month, day, 0, 0, 0, 0, t.Location())
}

// lastDayOfMonth возвращает число последнего дня месяца
func lastDayOfMonth(year int, month time.Month) int {
	// День 0 следующего месяца равен последнему дню текущего
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
