package rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PlanningService/internal/domain"
	"github.com/m04kA/SMC-PlanningService/internal/service/rooms/models"
	"github.com/m04kA/SMC-PlanningService/internal/store"
)

type fakeStore struct {
	rooms     []domain.Room
	addErr    error
	updateErr error
	removeErr error
}

func (f *fakeStore) AddRoom(_ context.Context, room domain.Room) (domain.Room, error) {
	if f.addErr != nil {
		return domain.Room{}, f.addErr
	}
	if room.ID == "" {
		room.ID = "generated"
	}
	f.rooms = append(f.rooms, room)
	return room, nil
}

func (f *fakeStore) UpdateRoom(_ context.Context, id string, updates domain.RoomUpdate) (domain.Room, error) {
	if f.updateErr != nil {
		return domain.Room{}, f.updateErr
	}
	for i := range f.rooms {
		if f.rooms[i].ID == id {
			if updates.Name != nil {
				f.rooms[i].Name = *updates.Name
			}
			if updates.Type != nil {
				f.rooms[i].Type = *updates.Type
			}
			return f.rooms[i], nil
		}
	}
	return domain.Room{}, store.ErrRoomNotFound
}

func (f *fakeStore) RemoveRoom(_ context.Context, id string) error {
	return f.removeErr
}

func (f *fakeStore) ListRooms() []domain.Room {
	return f.rooms
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate(t *testing.T) {
	svc := NewService(&fakeStore{}, nopLogger{})

	room, err := svc.Create(context.Background(), &models.CreateRoomRequest{Name: "Salle 3", Type: "training"})
	require.NoError(t, err)
	assert.Equal(t, "generated", room.ID)
	assert.Equal(t, "training", room.Type)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&fakeStore{}, nopLogger{})
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateRoomRequest{Type: "training"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, &models.CreateRoomRequest{Name: "Salle 3", Type: "warehouse"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_MapsNotFound(t *testing.T) {
	svc := NewService(&fakeStore{}, nopLogger{})

	name := "Nouvelle salle"
	_, err := svc.Update(context.Background(), "missing", &models.UpdateRoomRequest{Name: &name})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUpdate_RejectsInvalidType(t *testing.T) {
	fake := &fakeStore{rooms: []domain.Room{{ID: "salle1", Name: "Salle 1", Type: domain.RoomTypeTraining}}}
	svc := NewService(fake, nopLogger{})

	badType := "warehouse"
	_, err := svc.Update(context.Background(), "salle1", &models.UpdateRoomRequest{Type: &badType})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_MapsNotFound(t *testing.T) {
	svc := NewService(&fakeStore{removeErr: store.ErrRoomNotFound}, nopLogger{})

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestList(t *testing.T) {
	fake := &fakeStore{rooms: []domain.Room{
		{ID: "salle1", Name: "Salle 1", Type: domain.RoomTypeTraining},
		{ID: "kathy", Name: "Bureau Kathy", Type: domain.RoomTypeOffice},
	}}
	svc := NewService(fake, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, "office", resp.Rooms[1].Type)
}
