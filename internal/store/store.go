package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PlanningService/internal/domain"
	stateRepo "github.com/m04kA/SMC-PlanningService/internal/infra/storage/state"
)

// Options настройки поведения стора
type Options struct {
	// CascadeOnRoomDelete при удалении зала удалять его бронирования и
	// отпуска его референта. Выключено по умолчанию: осиротевшие записи
	// остаются.
	CascadeOnRoomDelete bool
}

// Store владелец состояния планирования: четыре коллекции сущностей и две
// выборки. Все мутации сериализуются мьютексом; после каждой успешной
// мутации весь граф состояния сохраняется целиком через StateRepository.
// Чтения возвращают копии, поэтому снапшоты безопасны для конкурентных
// потребителей.
type Store struct {
	mu       sync.RWMutex
	state    domain.State
	repo     StateRepository
	logger   Logger
	recorder Recorder
	opts     Options
}

// New создает стор. Состояние пустое до вызова Load.
func New(repo StateRepository, logger Logger, recorder Recorder, opts Options) *Store {
	return &Store{
		repo:     repo,
		logger:   logger,
		recorder: recorder,
		opts:     opts,
	}
}

// Load загружает снапшот состояния из хранилища. Если снапшота нет
// (первый запуск), инициализирует состояние данными по умолчанию и
// сразу сохраняет его.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, stateRepo.ErrStateNotFound) {
			s.logger.Info("Load: no persisted state, seeding defaults")
			s.state = domain.DefaultState()
			s.persist(ctx, "seed")
			return nil
		}
		s.logger.Error("Load: failed to load state: %v", err)
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}

	s.state = *loaded
	s.normalizeLocked()
	s.logger.Info("Load: state loaded (%d bookings, %d rooms, %d leaves, %d training types)",
		len(s.state.Bookings), len(s.state.Rooms), len(s.state.Leaves), len(s.state.CustomTrainingTypes))
	return nil
}

// normalizeLocked чинит nil-слайсы после десериализации старых снапшотов
func (s *Store) normalizeLocked() {
	if s.state.Bookings == nil {
		s.state.Bookings = []domain.Booking{}
	}
	if s.state.SelectedRooms == nil {
		s.state.SelectedRooms = []string{}
	}
	if s.state.CustomTrainingTypes == nil {
		s.state.CustomTrainingTypes = []domain.TrainingType{}
	}
	if s.state.Rooms == nil {
		s.state.Rooms = []domain.Room{}
	}
	if s.state.Leaves == nil {
		s.state.Leaves = []domain.Leave{}
	}
}

// Snapshot возвращает глубокую копию всего состояния
func (s *Store) Snapshot() domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// ----------------------------------------------------------------------
// Проекции (read-side)
// ----------------------------------------------------------------------

// ListRooms возвращает залы в порядке добавления
func (s *Store) ListRooms() []domain.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Room, len(s.state.Rooms))
	copy(out, s.state.Rooms)
	return out
}

// ListTrainingTypes возвращает типы формаций в порядке добавления
func (s *Store) ListTrainingTypes() []domain.TrainingType {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.TrainingType, len(s.state.CustomTrainingTypes))
	copy(out, s.state.CustomTrainingTypes)
	return out
}

// ListBookings возвращает бронирования по фильтру, отсортированные
// хронологически (дата, затем время начала)
func (s *Store) ListBookings(filter domain.BookingsFilter) []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Booking, 0)
	for _, b := range s.state.Bookings {
		if matchesBookingFilter(&b, filter) {
			out = append(out, b)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// ListLeaves возвращает отпуска по фильтру, отсортированные по дате начала
func (s *Store) ListLeaves(filter domain.LeavesFilter) []domain.Leave {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Leave, 0)
	for _, l := range s.state.Leaves {
		if filter.ReferentID != "" && l.ReferentID != filter.ReferentID {
			continue
		}
		if filter.Date != "" && !l.Covers(filter.Date) {
			continue
		}
		out = append(out, l)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartDate != out[j].StartDate {
			return out[i].StartDate < out[j].StartDate
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// Selection возвращает текущий выбранный зал и набор залов мульти-режима
func (s *Store) Selection() (string, []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]string, len(s.state.SelectedRooms))
	copy(rooms, s.state.SelectedRooms)
	return s.state.SelectedRoom, rooms
}

func matchesBookingFilter(b *domain.Booking, filter domain.BookingsFilter) bool {
	if filter.RoomID != "" && b.RoomID != filter.RoomID {
		return false
	}
	if len(filter.RoomIDs) > 0 {
		found := false
		for _, id := range filter.RoomIDs {
			if b.RoomID == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.Date != "" && b.Date != filter.Date {
		return false
	}
	if filter.Month != nil && filter.Year != nil {
		// Дата в формате YYYY-MM-DD: префиксного сравнения достаточно
		prefix := fmt.Sprintf("%04d-%02d-", *filter.Year, *filter.Month)
		if !strings.HasPrefix(b.Date, prefix) {
			return false
		}
	}
	return true
}

// ----------------------------------------------------------------------
// Залы
// ----------------------------------------------------------------------

// AddRoom добавляет зал. Если id пустой, генерируется UUID.
func (s *Store) AddRoom(ctx context.Context, room domain.Room) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if room.ID == "" {
		room.ID = uuid.NewString()
	}

	s.state.Rooms = append(s.state.Rooms, room)
	s.persist(ctx, "rooms.add")
	return room, nil
}

// UpdateRoom обновляет зал: применяются только переданные поля
func (s *Store) UpdateRoom(ctx context.Context, id string, updates domain.RoomUpdate) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Rooms {
		if s.state.Rooms[i].ID != id {
			continue
		}
		if updates.Name != nil {
			s.state.Rooms[i].Name = *updates.Name
		}
		if updates.Type != nil {
			s.state.Rooms[i].Type = *updates.Type
		}
		s.persist(ctx, "rooms.update")
		return s.state.Rooms[i], nil
	}

	return domain.Room{}, ErrRoomNotFound
}

// RemoveRoom удаляет зал. Если удаленный зал был выбран, выбирается любой
// другой зал (или запасной id, когда залов не осталось); из набора
// мульти-режима id убирается. Каскадное удаление бронирований и отпусков
// управляется опцией CascadeOnRoomDelete.
func (s *Store) RemoveRoom(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rooms := make([]domain.Room, 0, len(s.state.Rooms))
	found := false
	for _, r := range s.state.Rooms {
		if r.ID == id {
			found = true
			continue
		}
		rooms = append(rooms, r)
	}
	if !found {
		return ErrRoomNotFound
	}
	s.state.Rooms = rooms

	// Перевыбор зала
	if s.state.SelectedRoom == id {
		if len(rooms) > 0 {
			s.state.SelectedRoom = rooms[0].ID
		} else {
			s.state.SelectedRoom = domain.FallbackRoomID
		}
	}

	selected := make([]string, 0, len(s.state.SelectedRooms))
	for _, roomID := range s.state.SelectedRooms {
		if roomID != id {
			selected = append(selected, roomID)
		}
	}
	s.state.SelectedRooms = selected

	if s.opts.CascadeOnRoomDelete {
		bookings := make([]domain.Booking, 0, len(s.state.Bookings))
		for _, b := range s.state.Bookings {
			if b.RoomID != id {
				bookings = append(bookings, b)
			}
		}
		removedBookings := len(s.state.Bookings) - len(bookings)
		s.state.Bookings = bookings

		leaves := make([]domain.Leave, 0, len(s.state.Leaves))
		for _, l := range s.state.Leaves {
			if l.ReferentID != id {
				leaves = append(leaves, l)
			}
		}
		removedLeaves := len(s.state.Leaves) - len(leaves)
		s.state.Leaves = leaves

		s.logger.Info("RemoveRoom: cascade removed %d bookings and %d leaves for room=%s",
			removedBookings, removedLeaves, id)
	}

	s.persist(ctx, "rooms.remove")
	return nil
}

// ----------------------------------------------------------------------
// Типы формаций
// ----------------------------------------------------------------------

// AddTrainingType добавляет тип формации. Если id пустой, генерируется UUID.
func (s *Store) AddTrainingType(ctx context.Context, t domain.TrainingType) (domain.TrainingType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	s.state.CustomTrainingTypes = append(s.state.CustomTrainingTypes, t)
	s.persist(ctx, "training_types.add")
	return t, nil
}

// RemoveTrainingType удаляет тип формации
func (s *Store) RemoveTrainingType(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	types := make([]domain.TrainingType, 0, len(s.state.CustomTrainingTypes))
	found := false
	for _, t := range s.state.CustomTrainingTypes {
		if t.ID == id {
			found = true
			continue
		}
		types = append(types, t)
	}
	if !found {
		return ErrTrainingTypeNotFound
	}

	s.state.CustomTrainingTypes = types
	s.persist(ctx, "training_types.remove")
	return nil
}

// ----------------------------------------------------------------------
// Отпуска
// ----------------------------------------------------------------------

// AddLeave добавляет отпуск референта. Если id пустой, генерируется UUID.
func (s *Store) AddLeave(ctx context.Context, leave domain.Leave) (domain.Leave, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if leave.ID == "" {
		leave.ID = uuid.NewString()
	}

	s.state.Leaves = append(s.state.Leaves, leave)
	s.persist(ctx, "leaves.add")
	return leave, nil
}

// UpdateLeave обновляет отпуск: применяются только переданные поля
func (s *Store) UpdateLeave(ctx context.Context, id string, updates domain.LeaveUpdate) (domain.Leave, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Leaves {
		if s.state.Leaves[i].ID != id {
			continue
		}
		if updates.ReferentID != nil {
			s.state.Leaves[i].ReferentID = *updates.ReferentID
		}
		if updates.StartDate != nil {
			s.state.Leaves[i].StartDate = *updates.StartDate
		}
		if updates.EndDate != nil {
			s.state.Leaves[i].EndDate = *updates.EndDate
		}
		if updates.Title != nil {
			s.state.Leaves[i].Title = *updates.Title
		}
		if updates.Reason != nil {
			s.state.Leaves[i].Reason = *updates.Reason
		}
		s.persist(ctx, "leaves.update")
		return s.state.Leaves[i], nil
	}

	return domain.Leave{}, ErrLeaveNotFound
}

// RemoveLeave удаляет отпуск
func (s *Store) RemoveLeave(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	leaves := make([]domain.Leave, 0, len(s.state.Leaves))
	found := false
	for _, l := range s.state.Leaves {
		if l.ID == id {
			found = true
			continue
		}
		leaves = append(leaves, l)
	}
	if !found {
		return ErrLeaveNotFound
	}

	s.state.Leaves = leaves
	s.persist(ctx, "leaves.remove")
	return nil
}

// ----------------------------------------------------------------------
// Бронирования
// ----------------------------------------------------------------------

// CreateBooking единая точка входа для создания бронирования. Всегда
// валидирует доступность, и для разового, и для повторяющегося
// бронирования.
//
// Разовое бронирование: при пересечении интервалов возвращается
// ErrSlotConflict, при отпуске референта бюро ErrReferentOnLeave.
//
// Повторяющееся бронирование: разворачивается в конкретные экземпляры;
// конфликтные даты пропускаются без ошибки, но каждая дата попадает в
// список исходов результата (created / skipped_conflict / skipped_leave).
func (s *Store) CreateBooking(ctx context.Context, booking domain.Booking) (*CreateBookingResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	if booking.IsRecurringTemplate() {
		created, occurrences, err := s.expandRecurringLocked(booking)
		if err != nil {
			return nil, err
		}

		s.state.Bookings = append(s.state.Bookings, created...)
		s.persist(ctx, "bookings.add_recurring")

		s.logger.Info("CreateBooking: recurring template=%s expanded into %d instances (%d skipped)",
			booking.ID, len(created), len(occurrences)-len(created))

		return &CreateBookingResult{
			TemplateID:  booking.ID,
			Created:     created,
			Occurrences: occurrences,
		}, nil
	}

	// Разовое бронирование: проверка пересечений и отпуска референта
	if s.hasConflictLocked(booking.RoomID, booking.Date, booking.StartTime, booking.EndTime, "") {
		return nil, ErrSlotConflict
	}
	if leave := s.findLeaveConflictLocked(booking.RoomID, booking.Date); leave != nil {
		return nil, ErrReferentOnLeave
	}

	s.state.Bookings = append(s.state.Bookings, booking)
	s.persist(ctx, "bookings.add")

	return &CreateBookingResult{
		Created: []domain.Booking{booking},
		Occurrences: []Occurrence{
			{Date: booking.Date, BookingID: booking.ID, Status: OccurrenceCreated},
		},
	}, nil
}

// RemoveBooking удаляет бронирование по id вместе со всеми экземплярами
// повторения, чьи id начинаются с "{id}-"
func (s *Store) RemoveBooking(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := make([]domain.Booking, 0, len(s.state.Bookings))
	removed := 0
	for _, b := range s.state.Bookings {
		if b.MatchesOrInstanceOf(id) {
			removed++
			continue
		}
		bookings = append(bookings, b)
	}
	if removed == 0 {
		return ErrBookingNotFound
	}

	s.state.Bookings = bookings
	s.persist(ctx, "bookings.remove")
	s.logger.Info("RemoveBooking: removed %d booking(s) for id=%s", removed, id)
	return nil
}

// ----------------------------------------------------------------------
// Выбор залов (view-state)
// ----------------------------------------------------------------------

// SetSelectedRoom заменяет выбранный зал
func (s *Store) SetSelectedRoom(ctx context.Context, roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SelectedRoom = roomID
	s.persist(ctx, "selection.set_room")
}

// SetSelectedRooms заменяет набор залов мульти-режима
func (s *Store) SetSelectedRooms(ctx context.Context, roomIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rooms := make([]string, len(roomIDs))
	copy(rooms, roomIDs)
	s.state.SelectedRooms = rooms
	s.persist(ctx, "selection.set_rooms")
}

// ToggleSelectedRoom добавляет зал в набор, если его там нет, иначе убирает
func (s *Store) ToggleSelectedRoom(ctx context.Context, roomID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.state.SelectedRooms {
		if id == roomID {
			s.state.SelectedRooms = append(s.state.SelectedRooms[:i], s.state.SelectedRooms[i+1:]...)
			s.persist(ctx, "selection.toggle_room")
			out := make([]string, len(s.state.SelectedRooms))
			copy(out, s.state.SelectedRooms)
			return out
		}
	}

	s.state.SelectedRooms = append(s.state.SelectedRooms, roomID)
	s.persist(ctx, "selection.toggle_room")
	out := make([]string, len(s.state.SelectedRooms))
	copy(out, s.state.SelectedRooms)
	return out
}

// ----------------------------------------------------------------------
// Персистентность
// ----------------------------------------------------------------------

// persist сохраняет весь граф состояния. Вызывается под мьютексом после
// каждой мутации. Ошибка записи логируется и учитывается в метриках, но
// мутацию не откатывает: вызывающему подтверждение записи не требуется.
func (s *Store) persist(ctx context.Context, operation string) {
	if s.recorder != nil {
		s.recorder.MutationApplied(operation)
	}

	if err := s.repo.Save(ctx, &s.state); err != nil {
		s.logger.Error("persist: %s - failed to save state: %v", operation, err)
		if s.recorder != nil {
			s.recorder.SnapshotFailed()
		}
		return
	}

	if s.recorder != nil {
		s.recorder.SnapshotSaved()
	}
}
