package trainingtypes

import (
	"context"

	"github.com/m04kA/SMC-PlanningService/internal/domain"
)

// PlanningStore интерфейс стора для операций с типами формаций
type PlanningStore interface {
	AddTrainingType(ctx context.Context, t domain.TrainingType) (domain.TrainingType, error)
	RemoveTrainingType(ctx context.Context, id string) error
	ListTrainingTypes() []domain.TrainingType
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
