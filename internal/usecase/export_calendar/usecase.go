package export_calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-PlanningService/internal/domain"
)

// csvHeader заголовок экспорта. Формат зафиксирован: его потребляют
// внешние таблицы, колонки и язык менять нельзя.
const csvHeader = "Espace,Titre,Date,Heure de début,Heure de fin,Type,Description,Récurrent"

// monthNamesFR французские названия месяцев для имени файла
var monthNamesFR = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// Request запрос на экспорт календарного месяца
type Request struct {
	Month int // 1-12
	Year  int
	// RoomIDs явный набор залов. Пустой набор означает текущий выбор
	// стора: selectedRooms в мульти-режиме, иначе selectedRoom.
	RoomIDs   []string
	MultiRoom bool
}

// Response готовый CSV документ
type Response struct {
	Filename string
	Content  string
}

// UseCase use case экспорта календаря в CSV
type UseCase struct {
	store  PlanningStore
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store PlanningStore, logger Logger) *UseCase {
	return &UseCase{store: store, logger: logger}
}

// Execute формирует CSV по бронированиям выбранных залов за календарный
// месяц. Строки идут хронологически; даты в формате DD/MM/YYYY; текстовые
// поля всегда в кавычках с удвоением внутренних кавычек; признак
// повторения как Oui/Non.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Month < 1 || req.Month > 12 {
		uc.logger.Warn("ExportCalendar: invalid month=%d", req.Month)
		return nil, fmt.Errorf("%w: month must be 1-12", ErrInvalidInput)
	}
	if req.Year < 1 {
		uc.logger.Warn("ExportCalendar: invalid year=%d", req.Year)
		return nil, fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}

	roomIDs := req.RoomIDs
	multi := req.MultiRoom || len(roomIDs) > 1
	if len(roomIDs) == 0 {
		selectedRoom, selectedRooms := uc.store.Selection()
		if req.MultiRoom {
			roomIDs = selectedRooms
		} else {
			roomIDs = []string{selectedRoom}
		}
	}

	bookings := uc.store.ListBookings(domain.BookingsFilter{
		RoomIDs: roomIDs,
		Month:   &req.Month,
		Year:    &req.Year,
	})

	roomNames := make(map[string]string)
	for _, r := range uc.store.ListRooms() {
		roomNames[r.ID] = r.Name
	}

	var sb strings.Builder
	sb.WriteString(csvHeader)
	sb.WriteByte('\n')

	for _, b := range bookings {
		name, ok := roomNames[b.RoomID]
		if !ok {
			// Осиротевшее бронирование: зала больше нет, выводим сырой id
			name = b.RoomID
		}

		recurring := "Non"
		if b.IsRecurring {
			recurring = "Oui"
		}

		sb.WriteString(strings.Join([]string{
			quote(name),
			quote(b.Title),
			formatDateFR(b.Date),
			b.StartTime.String(),
			b.EndTime.String(),
			quoteOrEmpty(b.Type),
			quoteOrEmpty(b.Description),
			recurring,
		}, ","))
		sb.WriteByte('\n')
	}

	filename := fmt.Sprintf("calendrier_%s_%d", monthNamesFR[req.Month-1], req.Year)
	if multi {
		filename += "_multi"
	}
	filename += ".csv"

	uc.logger.Info("ExportCalendar: exported %d bookings for %02d/%d into %s",
		len(bookings), req.Month, req.Year, filename)

	return &Response{Filename: filename, Content: sb.String()}, nil
}

// formatDateFR переводит YYYY-MM-DD в DD/MM/YYYY
func formatDateFR(date string) string {
	t, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

// quote оборачивает текстовое поле в кавычки с удвоением внутренних
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// quoteOrEmpty как quote, но пустое поле остается пустым, без кавычек
func quoteOrEmpty(s string) string {
	if s == "" {
		return ""
	}
	return quote(s)
}
