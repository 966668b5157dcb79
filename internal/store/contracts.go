package store

import (
	"context"

	"github.com/m04kA/SMC-PlanningService/internal/domain"
)

// StateRepository интерфейс репозитория снапшотов состояния.
// Хранилище работает с целым графом состояния: загрузка при старте,
// полная запись после каждой мутации.
type StateRepository interface {
	Load(ctx context.Context) (*domain.State, error)
	Save(ctx context.Context, state *domain.State) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Recorder интерфейс для метрик стора. Реализуется pkg/metrics;
// nil допустим, если метрики выключены.
type Recorder interface {
	MutationApplied(operation string)
	SnapshotSaved()
	SnapshotFailed()
}
