package training_types

import (
	"context"

	"github.com/m04kA/SMC-PlanningService/internal/service/trainingtypes"
)

type TrainingTypesService interface {
	Create(ctx context.Context, id, name string) (*trainingtypes.TrainingTypeResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) (*trainingtypes.TrainingTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
