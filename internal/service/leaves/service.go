package leaves

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PlanningService/internal/domain"
	"github.com/m04kA/SMC-PlanningService/internal/service/leaves/models"
	"github.com/m04kA/SMC-PlanningService/internal/store"
)

// Service сервис для работы с отпусками референтов
type Service struct {
	store  PlanningStore
	logger Logger
}

// NewService создает новый экземпляр сервиса отпусков
func NewService(store PlanningStore, logger Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Create создает отпуск. Если id не передан, стор генерирует UUID.
func (s *Service) Create(ctx context.Context, req *models.CreateLeaveRequest) (*models.LeaveResponse, error) {
	s.logger.Info("Create: creating leave referent=%s period=%s..%s", req.ReferentID, req.StartDate, req.EndDate)

	if req.ReferentID == "" {
		s.logger.Warn("Create: empty referent id")
		return nil, fmt.Errorf("%w: referentId is required", ErrInvalidInput)
	}
	if req.Title == "" {
		s.logger.Warn("Create: empty leave title")
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if err := validateRange(req.StartDate, req.EndDate); err != nil {
		s.logger.Warn("Create: invalid range for referent=%s: %v", req.ReferentID, err)
		return nil, err
	}

	leave, err := s.store.AddLeave(ctx, domain.Leave{
		ID:         req.ID,
		ReferentID: req.ReferentID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Title:      req.Title,
		Reason:     req.Reason,
	})
	if err != nil {
		s.logger.Error("Create: store error: %v", err)
		return nil, fmt.Errorf("%w: Create - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created leave id=%s", leave.ID)
	return models.FromDomainLeave(leave), nil
}

// Update частично обновляет отпуск: применяются только переданные поля
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateLeaveRequest) (*models.LeaveResponse, error) {
	s.logger.Info("Update: updating leave id=%s", id)

	if req.StartDate != nil {
		if _, err := time.Parse(domain.DateFormat, *req.StartDate); err != nil {
			return nil, fmt.Errorf("%w: invalid startDate %q", ErrInvalidInput, *req.StartDate)
		}
	}
	if req.EndDate != nil {
		if _, err := time.Parse(domain.DateFormat, *req.EndDate); err != nil {
			return nil, fmt.Errorf("%w: invalid endDate %q", ErrInvalidInput, *req.EndDate)
		}
	}

	leave, err := s.store.UpdateLeave(ctx, id, domain.LeaveUpdate{
		ReferentID: req.ReferentID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Title:      req.Title,
		Reason:     req.Reason,
	})
	if err != nil {
		if errors.Is(err, store.ErrLeaveNotFound) {
			s.logger.Warn("Update: leave id=%s not found", id)
			return nil, ErrLeaveNotFound
		}
		s.logger.Error("Update: store error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - store error: %v", ErrInternal, err)
	}

	// Диапазон после слияния обязан остаться корректным
	if leave.EndDate < leave.StartDate {
		s.logger.Warn("Update: merged range invalid for id=%s: %s..%s", id, leave.StartDate, leave.EndDate)
		return nil, ErrInvalidRange
	}

	s.logger.Info("Update: successfully updated leave id=%s", id)
	return models.FromDomainLeave(leave), nil
}

// Delete удаляет отпуск
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting leave id=%s", id)

	if err := s.store.RemoveLeave(ctx, id); err != nil {
		if errors.Is(err, store.ErrLeaveNotFound) {
			s.logger.Warn("Delete: leave id=%s not found", id)
			return ErrLeaveNotFound
		}
		s.logger.Error("Delete: store error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted leave id=%s", id)
	return nil
}

// List возвращает отпуска по фильтру, отсортированные по дате начала
func (s *Service) List(ctx context.Context, referentID, date string) (*models.LeaveListResponse, error) {
	if date != "" {
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, date)
		}
	}

	leaves := s.store.ListLeaves(domain.LeavesFilter{ReferentID: referentID, Date: date})
	s.logger.Info("List: fetched %d leaves (referent=%q, date=%q)", len(leaves), referentID, date)
	return models.FromDomainLeaveList(leaves), nil
}

// validateRange проверяет формат дат и порядок границ (включительных)
func validateRange(startDate, endDate string) error {
	if _, err := time.Parse(domain.DateFormat, startDate); err != nil {
		return fmt.Errorf("%w: invalid startDate %q", ErrInvalidInput, startDate)
	}
	if _, err := time.Parse(domain.DateFormat, endDate); err != nil {
		return fmt.Errorf("%w: invalid endDate %q", ErrInvalidInput, endDate)
	}
	if endDate < startDate {
		return ErrInvalidRange
	}
	return nil
}
