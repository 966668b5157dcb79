package state

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-PlanningService/internal/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)

	repo := NewRepository(db, "booking-storage")
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func TestRepository_LoadEmptySlot(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrStateNotFound)
}

func TestRepository_SaveAndLoadRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	state := domain.DefaultState()
	state.Bookings = append(state.Bookings, domain.Booking{
		ID: "b1", RoomID: "salle1", Title: "Atelier", Date: "2024-05-02",
		StartTime: "09:00", EndTime: "10:30",
		IsRecurring: true, RecurrenceEndDate: "2024-06-01", RecurrencePattern: domain.RecurrenceWeekly,
	})
	state.SelectedRoom = "kathy"
	state.SelectedRooms = []string{"salle1", "kathy"}
	state.Leaves = append(state.Leaves, domain.Leave{
		ID: "l1", ReferentID: "kathy", StartDate: "2024-03-01", EndDate: "2024-03-10", Title: "Congés",
	})

	require.NoError(t, repo.Save(ctx, &state))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, state, *loaded)
}

func TestRepository_SaveOverwritesSlot(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := domain.DefaultState()
	require.NoError(t, repo.Save(ctx, &first))

	second := domain.DefaultState()
	second.SelectedRoom = "yvan"
	require.NoError(t, repo.Save(ctx, &second))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "yvan", loaded.SelectedRoom)
}

func TestRepository_SlotsAreIndependent(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	main := NewRepository(db, "booking-storage")
	require.NoError(t, main.EnsureSchema(ctx))
	other := NewRepository(db, "booking-storage-test")

	state := domain.DefaultState()
	require.NoError(t, main.Save(ctx, &state))

	_, err = other.Load(ctx)
	assert.ErrorIs(t, err, ErrStateNotFound)
}
