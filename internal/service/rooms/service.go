package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PlanningService/internal/domain"
	"github.com/m04kA/SMC-PlanningService/internal/service/rooms/models"
	"github.com/m04kA/SMC-PlanningService/internal/store"
)

// Service сервис для работы с залами и бюро
type Service struct {
	store  PlanningStore
	logger Logger
}

// NewService создает новый экземпляр сервиса залов
func NewService(store PlanningStore, logger Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Create создает зал. Если id не передан, стор генерирует UUID.
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room name=%q type=%s", req.Name, req.Type)

	if req.Name == "" {
		s.logger.Warn("Create: empty room name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	roomType := domain.RoomType(req.Type)
	if !roomType.IsValid() {
		s.logger.Warn("Create: invalid room type=%q", req.Type)
		return nil, fmt.Errorf("%w: type must be %q or %q", ErrInvalidInput, domain.RoomTypeTraining, domain.RoomTypeOffice)
	}

	room, err := s.store.AddRoom(ctx, domain.Room{
		ID:   req.ID,
		Name: req.Name,
		Type: roomType,
	})
	if err != nil {
		s.logger.Error("Create: store error: %v", err)
		return nil, fmt.Errorf("%w: Create - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%s", room.ID)
	return models.FromDomainRoom(room), nil
}

// Update частично обновляет зал: применяются только переданные поля
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: updating room id=%s", id)

	updates := domain.RoomUpdate{Name: req.Name}
	if req.Type != nil {
		roomType := domain.RoomType(*req.Type)
		if !roomType.IsValid() {
			s.logger.Warn("Update: invalid room type=%q for id=%s", *req.Type, id)
			return nil, fmt.Errorf("%w: type must be %q or %q", ErrInvalidInput, domain.RoomTypeTraining, domain.RoomTypeOffice)
		}
		updates.Type = &roomType
	}

	room, err := s.store.UpdateRoom(ctx, id, updates)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: store error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated room id=%s", id)
	return models.FromDomainRoom(room), nil
}

// Delete удаляет зал. Перевыбор выбранного зала и чистку набора
// мульти-режима выполняет стор.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting room id=%s", id)

	if err := s.store.RemoveRoom(ctx, id); err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			s.logger.Warn("Delete: room id=%s not found", id)
			return ErrRoomNotFound
		}
		s.logger.Error("Delete: store error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted room id=%s", id)
	return nil
}

// List возвращает залы в порядке добавления
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	rooms := s.store.ListRooms()
	s.logger.Info("List: fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}
