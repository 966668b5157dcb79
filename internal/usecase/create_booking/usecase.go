package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PlanningService/internal/store"
)

// UseCase use case создания бронирования. Единственная точка записи
// бронирований: и разовый, и повторяющийся пути валидируются здесь и в
// сторе одинаково.
type UseCase struct {
	store  PlanningStore
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store PlanningStore, logger Logger) *UseCase {
	return &UseCase{store: store, logger: logger}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%s date=%s time=%s-%s recurring=%t",
		req.RoomID, req.Date, req.StartTime, req.EndTime, req.IsRecurring)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Создание через стор (стор сам проверяет пересечения и отпуска)
	result, err := uc.store.CreateBooking(ctx, req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, store.ErrSlotConflict):
			uc.logger.Warn("CreateBooking: slot conflict room=%s date=%s time=%s-%s",
				req.RoomID, req.Date, req.StartTime, req.EndTime)
			return nil, ErrSlotConflict

		case errors.Is(err, store.ErrReferentOnLeave):
			uc.logger.Warn("CreateBooking: referent on leave room=%s date=%s", req.RoomID, req.Date)
			// Причина отказа нужна вызывающему для предупреждения:
			// предикат доступности её не сообщает
			resp := &Response{LeaveConflict: uc.store.FindLeaveConflict(req.RoomID, req.Date)}
			return resp, ErrReferentOnLeave

		case errors.Is(err, store.ErrInvalidRecurrence):
			uc.logger.Warn("CreateBooking: invalid recurrence: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecurrence, err)

		default:
			uc.logger.Error("CreateBooking: store error: %v", err)
			return nil, fmt.Errorf("%w: store error: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: created %d booking(s), %d occurrence(s) total",
		len(result.Created), len(result.Occurrences))
	return fromStoreResult(result), nil
}
