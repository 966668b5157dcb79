package selection

import "context"

type PlanningStore interface {
	Selection() (string, []string)
	SetSelectedRoom(ctx context.Context, roomID string)
	SetSelectedRooms(ctx context.Context, roomIDs []string)
	ToggleSelectedRoom(ctx context.Context, roomID string) []string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
