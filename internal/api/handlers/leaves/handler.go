package leaves

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PlanningService/internal/api/handlers"
	leavesService "github.com/m04kA/SMC-PlanningService/internal/service/leaves"
	"github.com/m04kA/SMC-PlanningService/internal/service/leaves/models"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidLeave       = "données de congé invalides"
	msgInvalidRange       = "la date de fin est antérieure à la date de début"
	msgLeaveNotFound      = "congé introuvable"
)

type Handler struct {
	service LeavesService
	logger  Logger
}

func NewHandler(service LeavesService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// HandleCreate POST /api/v1/leaves
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLeaveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /leaves - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	leave, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, leavesService.ErrInvalidRange):
			h.logger.Warn("POST /leaves - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
		case errors.Is(err, leavesService.ErrInvalidInput):
			h.logger.Warn("POST /leaves - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLeave)
		default:
			h.logger.Error("POST /leaves - Failed to create leave: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, leave)
}

// HandleUpdate PATCH /api/v1/leaves/{leaveId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["leaveId"]

	var req models.UpdateLeaveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /leaves/%s - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	leave, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, leavesService.ErrLeaveNotFound):
			h.logger.Warn("PATCH /leaves/%s - Leave not found", id)
			handlers.RespondNotFound(w, msgLeaveNotFound)
		case errors.Is(err, leavesService.ErrInvalidRange):
			h.logger.Warn("PATCH /leaves/%s - Invalid range: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidRange)
		case errors.Is(err, leavesService.ErrInvalidInput):
			h.logger.Warn("PATCH /leaves/%s - Invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidLeave)
		default:
			h.logger.Error("PATCH /leaves/%s - Failed to update leave: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, leave)
}

// HandleDelete DELETE /api/v1/leaves/{leaveId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["leaveId"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, leavesService.ErrLeaveNotFound) {
			h.logger.Warn("DELETE /leaves/%s - Leave not found", id)
			handlers.RespondNotFound(w, msgLeaveNotFound)
			return
		}
		h.logger.Error("DELETE /leaves/%s - Failed to delete leave: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}

// HandleList GET /api/v1/leaves?referent=&date=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	leaves, err := h.service.List(r.Context(), query.Get("referent"), query.Get("date"))
	if err != nil {
		if errors.Is(err, leavesService.ErrInvalidInput) {
			h.logger.Warn("GET /leaves - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLeave)
			return
		}
		h.logger.Error("GET /leaves - Failed to list leaves: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, leaves)
}
