package rooms

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PlanningService/internal/api/handlers"
	roomsService "github.com/m04kA/SMC-PlanningService/internal/service/rooms"
	"github.com/m04kA/SMC-PlanningService/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidRoom        = "données de salle invalides"
	msgRoomNotFound       = "salle introuvable"
)

type Handler struct {
	service RoomsService
	logger  Logger
}

func NewHandler(service RoomsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// HandleCreate POST /api/v1/rooms
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, roomsService.ErrInvalidInput) {
			h.logger.Warn("POST /rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRoom)
			return
		}
		h.logger.Error("POST /rooms - Failed to create room: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, room)
}

// HandleUpdate PATCH /api/v1/rooms/{roomId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["roomId"]

	var req models.UpdateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /rooms/%s - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, roomsService.ErrRoomNotFound):
			h.logger.Warn("PATCH /rooms/%s - Room not found", id)
			handlers.RespondNotFound(w, msgRoomNotFound)
		case errors.Is(err, roomsService.ErrInvalidInput):
			h.logger.Warn("PATCH /rooms/%s - Invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidRoom)
		default:
			h.logger.Error("PATCH /rooms/%s - Failed to update room: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, room)
}

// HandleDelete DELETE /api/v1/rooms/{roomId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["roomId"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, roomsService.ErrRoomNotFound) {
			h.logger.Warn("DELETE /rooms/%s - Room not found", id)
			handlers.RespondNotFound(w, msgRoomNotFound)
			return
		}
		h.logger.Error("DELETE /rooms/%s - Failed to delete room: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}

// HandleList GET /api/v1/rooms
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rooms)
}
