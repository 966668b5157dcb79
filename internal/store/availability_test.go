package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PlanningService/internal/domain"
)

func TestIsRoomAvailable_HalfOpenBoundaries(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateBooking(ctx, domain.Booking{
		ID: "b1", RoomID: "salle1", Title: "Atelier", Date: "2024-05-01",
		StartTime: "09:00", EndTime: "10:00",
	})
	require.NoError(t, err)

	// Смежные интервалы свободны: [start, end) не включает границу
	assert.True(t, s.IsRoomAvailable("salle1", "2024-05-01", "10:00", "11:00", ""))
	assert.True(t, s.IsRoomAvailable("salle1", "2024-05-01", "08:00", "09:00", ""))

	// Пересечение в обе стороны
	assert.False(t, s.IsRoomAvailable("salle1", "2024-05-01", "09:30", "10:30", ""))
	assert.False(t, s.IsRoomAvailable("salle1", "2024-05-01", "08:30", "09:30", ""))

	// Вложенный и покрывающий интервалы
	assert.False(t, s.IsRoomAvailable("salle1", "2024-05-01", "09:15", "09:45", ""))
	assert.False(t, s.IsRoomAvailable("salle1", "2024-05-01", "08:00", "11:00", ""))

	// Другой зал и другая дата свободны
	assert.True(t, s.IsRoomAvailable("salle2", "2024-05-01", "09:00", "10:00", ""))
	assert.True(t, s.IsRoomAvailable("salle1", "2024-05-02", "09:00", "10:00", ""))
}

func TestIsRoomAvailable_ExcludeBookingID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateBooking(ctx, domain.Booking{
		ID: "b1", RoomID: "salle1", Title: "Atelier", Date: "2024-05-01",
		StartTime: "09:00", EndTime: "10:00",
	})
	require.NoError(t, err)

	// Редактируемое бронирование не конфликтует само с собой
	assert.False(t, s.IsRoomAvailable("salle1", "2024-05-01", "09:00", "10:00", ""))
	assert.True(t, s.IsRoomAvailable("salle1", "2024-05-01", "09:00", "10:00", "b1"))
}

func TestIsRoomAvailable_ExcludeRecurringInstances(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	result, err := s.CreateBooking(ctx, domain.Booking{
		ID: "tpl", RoomID: "salle1", Title: "Atelier hebdo", Date: "2024-01-01",
		StartTime: "09:00", EndTime: "10:00",
		IsRecurring: true, RecurrenceEndDate: "2024-01-15", RecurrencePattern: domain.RecurrenceWeekly,
	})
	require.NoError(t, err)
	require.Len(t, result.Created, 3)

	// Экземпляры серии "tpl-YYYY-MM-DD" исключаются по префиксу
	assert.False(t, s.IsRoomAvailable("salle1", "2024-01-08", "09:00", "10:00", ""))
	assert.True(t, s.IsRoomAvailable("salle1", "2024-01-08", "09:00", "10:00", "tpl"))
}

func TestIsRoomAvailable_LeaveBlocksOfficeOnly(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddLeave(ctx, domain.Leave{
		ID: "l1", ReferentID: "kathy", StartDate: "2024-03-01", EndDate: "2024-03-10", Title: "Congés",
	})
	require.NoError(t, err)
	_, err = s.AddLeave(ctx, domain.Leave{
		ID: "l2", ReferentID: "salle1", StartDate: "2024-03-01", EndDate: "2024-03-10", Title: "Congés",
	})
	require.NoError(t, err)

	// Границы диапазона включительны
	assert.False(t, s.IsRoomAvailable("kathy", "2024-03-01", "09:00", "10:00", ""))
	assert.False(t, s.IsRoomAvailable("kathy", "2024-03-10", "09:00", "10:00", ""))
	assert.True(t, s.IsRoomAvailable("kathy", "2024-02-29", "09:00", "10:00", ""))
	assert.True(t, s.IsRoomAvailable("kathy", "2024-03-11", "09:00", "10:00", ""))

	// Учебный зал отпуском не блокируется
	assert.True(t, s.IsRoomAvailable("salle1", "2024-03-05", "09:00", "10:00", ""))
}

func TestFindLeaveConflict(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddLeave(ctx, domain.Leave{
		ID: "l1", ReferentID: "kathy", StartDate: "2024-03-01", EndDate: "2024-03-10",
		Title: "Congés annuels", Reason: "vacances",
	})
	require.NoError(t, err)

	leave := s.FindLeaveConflict("kathy", "2024-03-05")
	require.NotNil(t, leave)
	assert.Equal(t, "l1", leave.ID)
	assert.Equal(t, "Congés annuels", leave.Title)

	assert.Nil(t, s.FindLeaveConflict("kathy", "2024-03-11"))
	assert.Nil(t, s.FindLeaveConflict("salle1", "2024-03-05"))
	assert.Nil(t, s.FindLeaveConflict("missing", "2024-03-05"))
}
