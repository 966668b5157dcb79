package trainingtypes

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PlanningService/internal/domain"
	"github.com/m04kA/SMC-PlanningService/internal/store"
)

// TrainingTypeResponse представление типа формации в ответе
type TrainingTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TrainingTypeListResponse список типов формаций
type TrainingTypeListResponse struct {
	TrainingTypes []TrainingTypeResponse `json:"trainingTypes"`
}

// Service сервис для работы с типами формаций
type Service struct {
	store  PlanningStore
	logger Logger
}

// NewService создает новый экземпляр сервиса типов формаций
func NewService(store PlanningStore, logger Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Create создает тип формации. Если id не передан, стор генерирует UUID.
func (s *Service) Create(ctx context.Context, id, name string) (*TrainingTypeResponse, error) {
	s.logger.Info("Create: creating training type name=%q", name)

	if name == "" {
		s.logger.Warn("Create: empty training type name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	t, err := s.store.AddTrainingType(ctx, domain.TrainingType{ID: id, Name: name})
	if err != nil {
		s.logger.Error("Create: store error: %v", err)
		return nil, fmt.Errorf("%w: Create - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created training type id=%s", t.ID)
	return &TrainingTypeResponse{ID: t.ID, Name: t.Name}, nil
}

// Delete удаляет тип формации. Бронирования хранят имя типа текстом,
// поэтому существующие записи удаление не затрагивает.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting training type id=%s", id)

	if err := s.store.RemoveTrainingType(ctx, id); err != nil {
		if errors.Is(err, store.ErrTrainingTypeNotFound) {
			s.logger.Warn("Delete: training type id=%s not found", id)
			return ErrTrainingTypeNotFound
		}
		s.logger.Error("Delete: store error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted training type id=%s", id)
	return nil
}

// List возвращает типы формаций в порядке добавления
func (s *Service) List(ctx context.Context) (*TrainingTypeListResponse, error) {
	types := s.store.ListTrainingTypes()
	s.logger.Info("List: fetched %d training types", len(types))

	out := make([]TrainingTypeResponse, len(types))
	for i, t := range types {
		out[i] = TrainingTypeResponse{ID: t.ID, Name: t.Name}
	}
	return &TrainingTypeListResponse{TrainingTypes: out}, nil
}
