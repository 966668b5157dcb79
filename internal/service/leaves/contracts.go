package leaves

import (
	"context"

	"github.com/m04kA/SMC-PlanningService/internal/domain"
)

// PlanningStore интерфейс стора для операций с отпусками
type PlanningStore interface {
	AddLeave(ctx context.Context, leave domain.Leave) (domain.Leave, error)
	UpdateLeave(ctx context.Context, id string, updates domain.LeaveUpdate) (domain.Leave, error)
	RemoveLeave(ctx context.Context, id string) error
	ListLeaves(filter domain.LeavesFilter) []domain.Leave
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
