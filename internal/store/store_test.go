package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PlanningService/internal/domain"
	stateRepo "github.com/m04kA/SMC-PlanningService/internal/infra/storage/state"
)

// fakeRepo репозиторий состояния в памяти для тестов
type fakeRepo struct {
	state    *domain.State
	saves    int
	failSave bool
}

func (r *fakeRepo) Load(_ context.Context) (*domain.State, error) {
	if r.state == nil {
		return nil, stateRepo.ErrStateNotFound
	}
	clone := r.state.Clone()
	return &clone, nil
}

func (r *fakeRepo) Save(_ context.Context, state *domain.State) error {
	if r.failSave {
		return errors.New("disk full")
	}
	clone := state.Clone()
	r.state = &clone
	r.saves++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestStore(t *testing.T) (*Store, *fakeRepo) {
	t.Helper()
	repo := &fakeRepo{}
	s := New(repo, nopLogger{}, nil, Options{})
	require.NoError(t, s.Load(context.Background()))
	return s, repo
}

func TestLoad_SeedsDefaultsOnFirstRun(t *testing.T) {
	s, repo := newTestStore(t)

	rooms := s.ListRooms()
	require.Len(t, rooms, 9)
	assert.Equal(t, "salle1", rooms[0].ID)
	assert.Equal(t, domain.RoomTypeTraining, rooms[0].Type)
	assert.Equal(t, domain.RoomTypeOffice, rooms[2].Type)

	types := s.ListTrainingTypes()
	require.Len(t, types, 7)
	assert.Equal(t, "1", types[0].ID)
	assert.Equal(t, "AUTRE", types[6].Name)

	selected, multi := s.Selection()
	assert.Equal(t, "salle1", selected)
	assert.Empty(t, multi)

	// Посев сразу сохраняется
	assert.Equal(t, 1, repo.saves)
	require.NotNil(t, repo.state)
}

func TestLoad_RestoresPersistedState(t *testing.T) {
	s1, repo := newTestStore(t)
	ctx := context.Background()

	_, err := s1.CreateBooking(ctx, domain.Booking{
		ID:        "b1",
		RoomID:    "salle1",
		Title:     "Atelier CV",
		Date:      "2024-05-02",
		StartTime: "09:00",
		EndTime:   "10:30",
	})
	require.NoError(t, err)
	s1.SetSelectedRoom(ctx, "kathy")
	s1.SetSelectedRooms(ctx, []string{"salle1", "kathy"})

	// Второй стор поверх того же репозитория видит то же состояние
	s2 := New(repo, nopLogger{}, nil, Options{})
	require.NoError(t, s2.Load(ctx))

	bookings := s2.ListBookings(domain.BookingsFilter{})
	require.Len(t, bookings, 1)
	assert.Equal(t, "b1", bookings[0].ID)

	selected, multi := s2.Selection()
	assert.Equal(t, "kathy", selected)
	assert.Equal(t, []string{"salle1", "kathy"}, multi)
}

func TestLoad_NormalizesNilSlices(t *testing.T) {
	repo := &fakeRepo{state: &domain.State{SelectedRoom: "salle1"}}
	s := New(repo, nopLogger{}, nil, Options{})
	require.NoError(t, s.Load(context.Background()))

	assert.NotNil(t, s.ListBookings(domain.BookingsFilter{}))
	assert.NotNil(t, s.ListRooms())
	_, multi := s.Selection()
	assert.NotNil(t, multi)
}

func TestAddRoom_GeneratesIDWhenEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	room, err := s.AddRoom(context.Background(), domain.Room{Name: "Salle 3", Type: domain.RoomTypeTraining})
	require.NoError(t, err)
	assert.NotEmpty(t, room.ID)

	rooms := s.ListRooms()
	assert.Len(t, rooms, 10)
	assert.Equal(t, room.ID, rooms[9].ID)
}

func TestUpdateRoom(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	name := "Grande salle"
	room, err := s.UpdateRoom(ctx, "salle1", domain.RoomUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Grande salle", room.Name)
	assert.Equal(t, domain.RoomTypeTraining, room.Type)

	_, err = s.UpdateRoom(ctx, "missing", domain.RoomUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRemoveRoom_ReassignsSelection(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.SetSelectedRoom(ctx, "salle2")
	s.SetSelectedRooms(ctx, []string{"salle1", "salle2", "kathy"})

	require.NoError(t, s.RemoveRoom(ctx, "salle2"))

	selected, multi := s.Selection()
	assert.Equal(t, "salle1", selected)
	assert.Equal(t, []string{"salle1", "kathy"}, multi)
	assert.Len(t, s.ListRooms(), 8)
}

func TestRemoveRoom_FallbackWhenNoRoomsLeft(t *testing.T) {
	repo := &fakeRepo{state: &domain.State{
		Rooms:        []domain.Room{{ID: "unique", Name: "Salle unique", Type: domain.RoomTypeTraining}},
		SelectedRoom: "unique",
	}}
	s := New(repo, nopLogger{}, nil, Options{})
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	require.NoError(t, s.RemoveRoom(ctx, "unique"))

	selected, _ := s.Selection()
	assert.Equal(t, domain.FallbackRoomID, selected)
}

func TestRemoveRoom_NotFound(t *testing.T) {
	s, _ := newTestStore(t)
	assert.ErrorIs(t, s.RemoveRoom(context.Background(), "missing"), ErrRoomNotFound)
}

func TestRemoveRoom_KeepsOrphanedBookingsByDefault(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateBooking(ctx, domain.Booking{
		ID: "b1", RoomID: "kathy", Title: "Entretien", Date: "2024-05-02",
		StartTime: "09:00", EndTime: "10:00",
	})
	require.NoError(t, err)

	require.NoError(t, s.RemoveRoom(ctx, "kathy"))

	// Бронирование осиротело, но осталось
	assert.Len(t, s.ListBookings(domain.BookingsFilter{RoomID: "kathy"}), 1)
}

func TestRemoveRoom_CascadeRemovesBookingsAndLeaves(t *testing.T) {
	repo := &fakeRepo{}
	s := New(repo, nopLogger{}, nil, Options{CascadeOnRoomDelete: true})
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	_, err := s.CreateBooking(ctx, domain.Booking{
		ID: "b1", RoomID: "kathy", Title: "Entretien", Date: "2024-05-02",
		StartTime: "09:00", EndTime: "10:00",
	})
	require.NoError(t, err)
	_, err = s.AddLeave(ctx, domain.Leave{
		ID: "l1", ReferentID: "kathy", StartDate: "2024-06-01", EndDate: "2024-06-15", Title: "Congés",
	})
	require.NoError(t, err)

	require.NoError(t, s.RemoveRoom(ctx, "kathy"))

	assert.Empty(t, s.ListBookings(domain.BookingsFilter{RoomID: "kathy"}))
	assert.Empty(t, s.ListLeaves(domain.LeavesFilter{ReferentID: "kathy"}))
}

func TestTrainingTypes(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	added, err := s.AddTrainingType(ctx, domain.TrainingType{Name: "MOBILITE"})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Len(t, s.ListTrainingTypes(), 8)

	require.NoError(t, s.RemoveTrainingType(ctx, added.ID))
	assert.Len(t, s.ListTrainingTypes(), 7)

	assert.ErrorIs(t, s.RemoveTrainingType(ctx, added.ID), ErrTrainingTypeNotFound)
}

func TestLeaves_CRUD(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	leave, err := s.AddLeave(ctx, domain.Leave{
		ReferentID: "kathy", StartDate: "2024-03-01", EndDate: "2024-03-10", Title: "Congés annuels",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, leave.ID)

	endDate := "2024-03-15"
	updated, err := s.UpdateLeave(ctx, leave.ID, domain.LeaveUpdate{EndDate: &endDate})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", updated.EndDate)
	assert.Equal(t, "2024-03-01", updated.StartDate)

	_, err = s.UpdateLeave(ctx, "missing", domain.LeaveUpdate{EndDate: &endDate})
	assert.ErrorIs(t, err, ErrLeaveNotFound)

	require.NoError(t, s.RemoveLeave(ctx, leave.ID))
	assert.ErrorIs(t, s.RemoveLeave(ctx, leave.ID), ErrLeaveNotFound)
}

func TestListLeaves_Filters(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddLeave(ctx, domain.Leave{
		ID: "l1", ReferentID: "kathy", StartDate: "2024-03-01", EndDate: "2024-03-10", Title: "Congés",
	})
	require.NoError(t, err)
	_, err = s.AddLeave(ctx, domain.Leave{
		ID: "l2", ReferentID: "yvan", StartDate: "2024-02-01", EndDate: "2024-02-05", Title: "Formation",
	})
	require.NoError(t, err)

	all := s.ListLeaves(domain.LeavesFilter{})
	require.Len(t, all, 2)
	// Сортировка по дате начала
	assert.Equal(t, "l2", all[0].ID)

	kathy := s.ListLeaves(domain.LeavesFilter{ReferentID: "kathy"})
	require.Len(t, kathy, 1)
	assert.Equal(t, "l1", kathy[0].ID)

	// Дата внутри диапазона, границы включительно
	assert.Len(t, s.ListLeaves(domain.LeavesFilter{Date: "2024-03-10"}), 1)
	assert.Empty(t, s.ListLeaves(domain.LeavesFilter{Date: "2024-03-11"}))
}

func TestCreateBooking_SingleConflict(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateBooking(ctx, domain.Booking{
		ID: "b1", RoomID: "salle1", Title: "Atelier", Date: "2024-05-02",
		StartTime: "09:00", EndTime: "10:00",
	})
	require.NoError(t, err)

	_, err = s.CreateBooking(ctx, domain.Booking{
		ID: "b2", RoomID: "salle1", Title: "Réunion", Date: "2024-05-02",
		StartTime: "09:30", EndTime: "10:30",
	})
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Смежный интервал не конфликтует
	result, err := s.CreateBooking(ctx, domain.Booking{
		ID: "b3", RoomID: "salle1", Title: "Réunion", Date: "2024-05-02",
		StartTime: "10:00", EndTime: "11:00",
	})
	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	require.Len(t, result.Occurrences, 1)
	assert.Equal(t, OccurrenceCreated, result.Occurrences[0].Status)
	assert.Equal(t, "b3", result.Occurrences[0].BookingID)
}

func TestCreateBooking_ReferentOnLeave(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddLeave(ctx, domain.Leave{
		ID: "l1", ReferentID: "kathy", StartDate: "2024-03-01", EndDate: "2024-03-10", Title: "Congés",
	})
	require.NoError(t, err)

	_, err = s.CreateBooking(ctx, domain.Booking{
		ID: "b1", RoomID: "kathy", Title: "Entretien", Date: "2024-03-05",
		StartTime: "09:00", EndTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrReferentOnLeave)

	// Учебный зал отпуском не блокируется
	_, err = s.AddLeave(ctx, domain.Leave{
		ID: "l2", ReferentID: "salle1", StartDate: "2024-03-01", EndDate: "2024-03-10", Title: "Congés",
	})
	require.NoError(t, err)
	_, err = s.CreateBooking(ctx, domain.Booking{
		ID: "b2", RoomID: "salle1", Title: "Atelier", Date: "2024-03-05",
		StartTime: "09:00", EndTime: "10:00",
	})
	assert.NoError(t, err)
}

func TestCreateBooking_GeneratesIDWhenEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	result, err := s.CreateBooking(context.Background(), domain.Booking{
		RoomID: "salle1", Title: "Atelier", Date: "2024-05-02",
		StartTime: "09:00", EndTime: "10:00",
	})
	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	assert.NotEmpty(t, result.Created[0].ID)
}

func TestRemoveBooking_RemovesRecurringInstances(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	result, err := s.CreateBooking(ctx, domain.Booking{
		ID: "tpl", RoomID: "salle1", Title: "Atelier hebdo", Date: "2024-01-01",
		StartTime: "09:00", EndTime: "10:00",
		IsRecurring: true, RecurrenceEndDate: "2024-01-22", RecurrencePattern: domain.RecurrenceWeekly,
	})
	require.NoError(t, err)
	require.Len(t, result.Created, 4)

	require.NoError(t, s.RemoveBooking(ctx, "tpl"))
	assert.Empty(t, s.ListBookings(domain.BookingsFilter{}))

	assert.ErrorIs(t, s.RemoveBooking(ctx, "tpl"), ErrBookingNotFound)
}

func TestRemoveBooking_DoesNotTouchSimilarIDs(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	dates := map[string]string{"abc": "2024-05-01", "abcd": "2024-05-02"}
	for id, date := range dates {
		_, err := s.CreateBooking(ctx, domain.Booking{
			ID: id, RoomID: "salle1", Title: "Atelier", Date: date,
			StartTime: "09:00", EndTime: "10:00",
		})
		require.NoError(t, err)
	}

	require.NoError(t, s.RemoveBooking(ctx, "abc"))

	// "abcd" не начинается с "abc-", значит остается
	left := s.ListBookings(domain.BookingsFilter{})
	require.Len(t, left, 1)
	assert.Equal(t, "abcd", left[0].ID)
}

func TestListBookings_FilterAndOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	seed := []domain.Booking{
		{ID: "b1", RoomID: "salle1", Title: "T", Date: "2024-05-03", StartTime: "09:00", EndTime: "10:00"},
		{ID: "b2", RoomID: "salle2", Title: "T", Date: "2024-05-01", StartTime: "14:00", EndTime: "15:00"},
		{ID: "b3", RoomID: "salle1", Title: "T", Date: "2024-05-01", StartTime: "09:00", EndTime: "10:00"},
		{ID: "b4", RoomID: "kathy", Title: "T", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00"},
	}
	for _, b := range seed {
		_, err := s.CreateBooking(ctx, b)
		require.NoError(t, err)
	}

	all := s.ListBookings(domain.BookingsFilter{})
	require.Len(t, all, 4)
	assert.Equal(t, []string{"b3", "b2", "b1", "b4"},
		[]string{all[0].ID, all[1].ID, all[2].ID, all[3].ID})

	assert.Len(t, s.ListBookings(domain.BookingsFilter{RoomID: "salle1"}), 2)
	assert.Len(t, s.ListBookings(domain.BookingsFilter{Date: "2024-05-01"}), 2)
	assert.Len(t, s.ListBookings(domain.BookingsFilter{RoomIDs: []string{"salle2", "kathy"}}), 2)

	month, year := 5, 2024
	assert.Len(t, s.ListBookings(domain.BookingsFilter{Month: &month, Year: &year}), 3)
}

func TestSelection_Toggle(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	rooms := s.ToggleSelectedRoom(ctx, "salle1")
	assert.Equal(t, []string{"salle1"}, rooms)

	rooms = s.ToggleSelectedRoom(ctx, "kathy")
	assert.Equal(t, []string{"salle1", "kathy"}, rooms)

	rooms = s.ToggleSelectedRoom(ctx, "salle1")
	assert.Equal(t, []string{"kathy"}, rooms)
}

func TestPersistFailure_DoesNotRollbackMutation(t *testing.T) {
	s, repo := newTestStore(t)
	repo.failSave = true

	room, err := s.AddRoom(context.Background(), domain.Room{Name: "Salle 3", Type: domain.RoomTypeTraining})
	require.NoError(t, err)

	// Мутация применена, несмотря на ошибку записи снапшота
	assert.NotNil(t, findRoom(s.ListRooms(), room.ID))
}

func TestSnapshot_ReturnsDeepCopy(t *testing.T) {
	s, _ := newTestStore(t)

	snap := s.Snapshot()
	snap.Rooms[0].Name = "mutated"

	assert.Equal(t, "Salle 1", s.ListRooms()[0].Name)
}

func findRoom(rooms []domain.Room, id string) *domain.Room {
	for i := range rooms {
		if rooms[i].ID == id {
			return &rooms[i]
		}
	}
	return nil
}
